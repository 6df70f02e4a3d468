package parser

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// vmessJSON is the legacy base64 payload layout. Numeric fields arrive
// as either strings or numbers depending on the generator.
type vmessJSON struct {
	V    any    `json:"v"`
	Ps   string `json:"ps"`
	Add  string `json:"add"`
	Port any    `json:"port"`
	ID   string `json:"id"`
	Aid  any    `json:"aid"`
	Scy  string `json:"scy"`
	Net  string `json:"net"`
	Type string `json:"type"`
	Host string `json:"host"`
	Path string `json:"path"`
	TLS  string `json:"tls"`
	Sni  string `json:"sni"`
	Alpn string `json:"alpn"`
	Fp   string `json:"fp"`
}

// parseVMess handles the standard URI form: vmess://id@host:port?params.
func parseVMess(u *DecodedURI) (*Profile, error) {
	id := userinfo(u)
	if id == "" {
		return nil, fmt.Errorf("%w: vmess link without id", ErrInvalidCredential)
	}

	p := &Profile{
		Protocol: "vmess",
		Remark:   u.Remark,
		Address:  u.Host,
		Port:     portOrDefault(u, DefaultPortVMess),
		Password: canonicalID(id),
		Method:   "auto",
	}
	applyQuery(p, u.Query)
	return p, nil
}

// parseVMessLegacy handles the base64 JSON form. The payload carries the
// primary secret, so a decode failure here is a credential error rather
// than a soft degrade.
func parseVMessLegacy(raw, payload string) (*Profile, error) {
	jsonStr, err := DecodeBase64(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: vmess payload base64: %v", ErrInvalidCredential, err)
	}

	var v vmessJSON
	if err := json.Unmarshal([]byte(jsonStr), &v); err != nil {
		return nil, fmt.Errorf("%w: vmess payload json: %v", ErrInvalidCredential, err)
	}
	if v.ID == "" {
		return nil, fmt.Errorf("%w: vmess payload without id", ErrInvalidCredential)
	}

	p := &Profile{
		Protocol:    "vmess",
		RawURI:      raw,
		Remark:      v.Ps,
		Address:     v.Add,
		Port:        looseInt(v.Port),
		Password:    canonicalID(v.ID),
		AlterID:     looseInt(v.Aid),
		Method:      v.Scy,
		Network:     v.Net,
		HeaderType:  v.Type,
		Host:        v.Host,
		Path:        v.Path,
		Security:    v.TLS,
		SNI:         v.Sni,
		Fingerprint: v.Fp,
	}
	if p.Method == "" {
		p.Method = "auto"
	}
	if p.Port == 0 {
		p.Port = DefaultPortVMess
	}
	if v.Alpn != "" {
		p.ALPN = strings.Split(v.Alpn, ",")
	}

	// The generic "type" field doubles as grpc mode and the kcp seed
	// lives in "path" in this dialect.
	switch p.Network {
	case "grpc":
		p.Mode = v.Type
		p.ServiceName = v.Path
	case "kcp", "mkcp":
		p.Seed = v.Path
	}
	return p, nil
}

// looseInt reads a JSON value that may be a number or a numeric string.
func looseInt(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		n, _ := strconv.Atoi(t)
		return n
	default:
		return 0
	}
}
