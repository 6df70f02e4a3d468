package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// parseShadowsocks handles SIP002 links: ss://base64(method:password)@host:port.
// Transport/security come either from an embedded v2ray-plugin option
// string or from the standard query params.
func parseShadowsocks(u *DecodedURI) (*Profile, error) {
	p := &Profile{
		Protocol: "shadowsocks",
		Remark:   u.Remark,
		Address:  u.Host,
		Port:     portOrDefault(u, DefaultPortSS),
	}
	p.Method, p.Password = ssCredential(u)

	plugin := u.Query.Get("plugin")
	if opts, ok := parsePlugin(plugin); ok {
		opts.apply(p)
		return p, nil
	}

	// No plugin, or a plugin we do not understand: standard query params.
	applyQuery(p, u.Query)
	return p, nil
}

// parseShadowsocksLegacy handles the pre-SIP002 form where the whole
// authority is one base64 blob: ss://base64(method:password@host:port).
func parseShadowsocksLegacy(raw, rest string) (*Profile, error) {
	payload, fragment, _ := strings.Cut(rest, "#")

	decoded, err := DecodeBase64(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: shadowsocks payload base64: %v", ErrInvalidCredential, err)
	}

	at := strings.LastIndex(decoded, "@")
	if at < 0 {
		return nil, fmt.Errorf("%w: shadowsocks payload without authority", ErrInvalidLink)
	}

	p := &Profile{
		Protocol: "shadowsocks",
		RawURI:   raw,
		Remark:   decodeRemark(fragment),
		Port:     DefaultPortSS,
	}

	userinfo, hostport := decoded[:at], decoded[at+1:]
	var ok bool
	if p.Method, p.Password, ok = strings.Cut(userinfo, ":"); !ok {
		p.Method, p.Password = "none", ""
	}

	if host, port, ok := cutLast(hostport, ":"); ok {
		p.Address = host
		if n, err := strconv.Atoi(port); err == nil {
			p.Port = n
		}
	} else {
		p.Address = hostport
	}
	return p, nil
}

func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}

// ssCredential resolves method/password from the user-info blob. Legacy
// links with undecodable user-info are common; they degrade to safe
// defaults instead of failing the link.
func ssCredential(u *DecodedURI) (method, password string) {
	if u.HasPassword {
		// Already split as plain method:password.
		return u.Username, u.Password
	}

	decoded, err := DecodeBase64(u.Username)
	if err != nil {
		return "none", ""
	}

	// Split on the first colon only: the password may contain colons.
	method, password, ok := strings.Cut(decoded, ":")
	if !ok {
		return "none", ""
	}
	return method, password
}
