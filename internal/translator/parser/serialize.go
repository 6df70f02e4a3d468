package parser

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// ToURI converts a Profile back into its native link format. Parsing the
// result yields an equivalent Profile, so it doubles as a canonical form
// for re-sharing.
func (p *Profile) ToURI() string {
	switch p.Protocol {
	case "vmess":
		return p.toVMessURI()
	case "shadowsocks":
		return p.toShadowsocksURI()
	case "socks":
		return p.toSocksURI()
	default:
		// VLESS and Trojan share the generic URI structure.
		return p.toGenericURI()
	}
}

func (p *Profile) toVMessURI() string {
	v := vmessJSON{
		V:    "2",
		Ps:   p.Remark,
		Add:  p.Address,
		Port: p.Port,
		ID:   p.Password,
		Aid:  p.AlterID,
		Scy:  p.Method,
		Net:  p.Network,
		Type: p.HeaderType,
		Host: p.Host,
		Path: p.Path,
		TLS:  p.Security,
		Sni:  p.SNI,
		Alpn: strings.Join(p.ALPN, ","),
		Fp:   p.Fingerprint,
	}

	switch p.Network {
	case "grpc":
		v.Type = p.Mode
		v.Path = p.ServiceName
	case "kcp", "mkcp":
		v.Path = p.Seed
	}

	b, _ := json.Marshal(v)
	return "vmess://" + base64.StdEncoding.EncodeToString(b)
}

func (p *Profile) toShadowsocksURI() string {
	userInfo := fmt.Sprintf("%s:%s", p.Method, p.Password)

	// SIP002: base64 user-info is safe for special chars
	safeUser := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString([]byte(userInfo))

	u := url.URL{
		Scheme:   "ss",
		User:     url.User(safeUser),
		Host:     fmt.Sprintf("%s:%d", p.Address, p.Port),
		Fragment: p.Remark,
	}
	u.RawQuery = p.buildQuery().Encode()
	return u.String()
}

func (p *Profile) toSocksURI() string {
	u := url.URL{
		Scheme:   "socks",
		Host:     fmt.Sprintf("%s:%d", p.Address, p.Port),
		Fragment: p.Remark,
	}
	if p.Username != "" {
		blob := fmt.Sprintf("%s:%s", p.Username, p.Password)
		u.User = url.User(base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString([]byte(blob)))
	}
	return u.String()
}

func (p *Profile) toGenericURI() string {
	u := url.URL{
		Scheme:   p.Protocol,
		User:     url.User(p.Password),
		Host:     fmt.Sprintf("%s:%d", p.Address, p.Port),
		Fragment: p.Remark,
	}
	u.RawQuery = p.buildQuery().Encode()
	return u.String()
}

// buildQuery emits the standard transport/security params. Values equal
// to their parse-time defaults are omitted.
func (p *Profile) buildQuery() url.Values {
	q := url.Values{}

	if p.Network != "" && p.Network != "tcp" {
		q.Set("type", p.Network)
	}
	if p.HeaderType != "" && p.HeaderType != "none" {
		q.Set("headerType", p.HeaderType)
	}
	if p.Host != "" {
		q.Set("host", p.Host)
	}
	if p.Path != "" {
		q.Set("path", p.Path)
	}
	if p.Seed != "" {
		q.Set("seed", p.Seed)
	}
	if p.QuicSecurity != "" && p.QuicSecurity != "none" {
		q.Set("quicSecurity", p.QuicSecurity)
	}
	if p.QuicKey != "" {
		q.Set("key", p.QuicKey)
	}
	if p.Mode != "" {
		q.Set("mode", p.Mode)
	}
	if p.ServiceName != "" {
		q.Set("serviceName", p.ServiceName)
	}
	if p.Security != "" {
		q.Set("security", p.Security)
	}
	if p.SNI != "" {
		q.Set("sni", p.SNI)
	}
	if p.Fingerprint != "" {
		q.Set("fp", p.Fingerprint)
	}
	if len(p.ALPN) > 0 {
		q.Set("alpn", strings.Join(p.ALPN, ","))
	}
	if p.Insecure {
		q.Set("allowInsecure", "1")
	}
	if p.Protocol == "vless" && p.Method != "" && p.Method != "none" {
		q.Set("encryption", p.Method)
	}

	// Reality
	if p.PublicKey != "" {
		q.Set("pbk", p.PublicKey)
	}
	if p.ShortID != "" {
		q.Set("sid", p.ShortID)
	}
	if p.SpiderX != "" {
		q.Set("spx", p.SpiderX)
	}
	if p.Flow != "" {
		q.Set("flow", p.Flow)
	}

	return q
}
