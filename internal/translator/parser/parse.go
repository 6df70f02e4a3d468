package parser

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ParseFunc parses one decoded link into a Profile.
type ParseFunc func(*DecodedURI) (*Profile, error)

// Dispatch maps a URI scheme to its parser. The scheme set is closed;
// anything else fails with ErrUnsupportedScheme.
func Dispatch(scheme string) (ParseFunc, error) {
	switch strings.ToLower(scheme) {
	case "vmess":
		return parseVMess, nil
	case "vless":
		return parseVLESS, nil
	case "trojan":
		return parseTrojan, nil
	case "ss", "shadowsocks":
		return parseShadowsocks, nil
	case "socks", "socks5":
		return parseSocks, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}
}

// Parse converts a raw share link into a normalized Profile.
func Parse(raw string) (*Profile, error) {
	raw = sanitize(raw)

	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok {
		return nil, fmt.Errorf("%w: missing scheme separator", ErrInvalidLink)
	}

	// Scheme check comes first: unknown schemes fail before any field
	// is touched.
	fn, err := Dispatch(scheme)
	if err != nil {
		return nil, err
	}

	// Legacy payload forms carry one base64 blob instead of a URI
	// authority; they never contain an "@".
	if !strings.Contains(rest, "@") {
		payload, _, _ := strings.Cut(rest, "#")
		switch strings.ToLower(scheme) {
		case "vmess":
			return parseVMessLegacy(raw, payload)
		case "ss", "shadowsocks":
			return parseShadowsocksLegacy(raw, rest)
		}
	}

	u, err := Decode(raw)
	if err != nil {
		return nil, err
	}

	p, err := fn(u)
	if err != nil {
		return nil, err
	}
	p.RawURI = raw
	return p, nil
}

// --- VLESS ---

func parseVLESS(u *DecodedURI) (*Profile, error) {
	id := userinfo(u)
	if id == "" {
		return nil, fmt.Errorf("%w: vless link without id", ErrInvalidCredential)
	}

	p := &Profile{
		Protocol: "vless",
		Remark:   u.Remark,
		Address:  u.Host,
		Port:     portOrDefault(u, DefaultPortVLESS),
		Password: canonicalID(id),
	}
	applyQuery(p, u.Query)

	p.Method = u.Query.Get("encryption")
	if p.Method == "" {
		p.Method = "none"
	}
	return p, nil
}

// --- Trojan ---

func parseTrojan(u *DecodedURI) (*Profile, error) {
	password := userinfo(u)
	if password == "" {
		return nil, fmt.Errorf("%w: trojan link without password", ErrInvalidCredential)
	}

	p := &Profile{
		Protocol: "trojan",
		Remark:   u.Remark,
		Address:  u.Host,
		Port:     portOrDefault(u, DefaultPortTrojan),
		Password: password,
	}
	applyQuery(p, u.Query)

	if p.Network == "" {
		p.Network = "tcp"
	}
	return p, nil
}

// --- Socks ---

func parseSocks(u *DecodedURI) (*Profile, error) {
	p := &Profile{
		Protocol: "socks",
		Remark:   u.Remark,
		Address:  u.Host,
		Port:     portOrDefault(u, DefaultPortSocks),
	}

	switch {
	case u.HasPassword:
		// Plain user:pass in the authority.
		p.Username = u.Username
		p.Password = u.Password
	case u.Username != "":
		// Single blob: base64("user:pass"). A blob that does not decode
		// is kept literally as the username.
		decoded, err := DecodeBase64(u.Username)
		if err != nil {
			p.Username = u.Username
			break
		}
		p.Username, p.Password, _ = strings.Cut(decoded, ":")
	}
	return p, nil
}

// --- shared helpers ---

// userinfo reassembles the full decoded user-info. Secrets may legally
// contain a ":", which url.Parse splits off as a password.
func userinfo(u *DecodedURI) string {
	if u.HasPassword {
		return u.Username + ":" + u.Password
	}
	return u.Username
}

func portOrDefault(u *DecodedURI, def int) int {
	if u.Port > 0 {
		return u.Port
	}
	return def
}

// canonicalID lowercases well-formed UUIDs so equivalent links compare
// equal. Non-UUID ids pass through, the core maps them itself.
func canonicalID(id string) string {
	if parsed, err := uuid.Parse(id); err == nil {
		return parsed.String()
	}
	return id
}
