package translator

import (
	"strings"

	"linkconv/internal/translator/parser"
	"linkconv/internal/xconf"
)

// buildTransport maps a profile's transport fields onto stream settings.
// It also returns the SNI candidate derived from the transport host,
// used by buildSecurity when the link carries no explicit sni.
func buildTransport(p *parser.Profile) (*xconf.StreamSettings, string) {
	network := normalizeNetwork(p.Network)
	ss := &xconf.StreamSettings{Network: network}
	var derivedSNI string

	switch network {
	case "ws":
		ws := &xconf.WSSettings{Path: p.Path}
		if p.Host != "" || len(p.Headers) > 0 {
			ws.Headers = map[string]string{}
			for k, v := range p.Headers {
				ws.Headers[k] = v
			}
			if p.Host != "" {
				ws.Headers["Host"] = p.Host
			}
		}
		ss.WSSettings = ws
		derivedSNI = p.Host

	case "h2":
		h := &xconf.HTTPSettings{Path: p.Path}
		if p.Host != "" {
			h.Host = []string{p.Host}
		}
		ss.HTTPSettings = h
		derivedSNI = p.Host

	case "grpc":
		// An absent serviceName is tolerated as "".
		ss.GRPCSettings = &xconf.GRPCSettings{
			ServiceName: p.ServiceName,
			MultiMode:   p.Mode == "multi",
		}

	case "quic":
		security := p.QuicSecurity
		if security == "" {
			security = "none"
		}
		q := &xconf.QUICSettings{Security: security, Key: p.QuicKey}
		if t := headerType(p.HeaderType); t != "none" {
			q.Header = &xconf.ObjectType{Type: t}
		}
		ss.QUICSettings = q

	case "kcp":
		k := &xconf.KCPSettings{Seed: p.Seed}
		if t := headerType(p.HeaderType); t != "none" {
			k.Header = &xconf.ObjectType{Type: t}
		}
		ss.KCPSettings = k

	case "tcp":
		if p.HeaderType == "http" {
			req := &xconf.HTTPRequest{}
			if p.Path != "" {
				req.Path = []string{p.Path}
			}
			if p.Host != "" {
				req.Headers = map[string][]string{"Host": {p.Host}}
			}
			ss.TCPSettings = &xconf.TCPSettings{
				Header: &xconf.TCPHeader{Type: "http", Request: req},
			}
		}
	}

	return ss, derivedSNI
}

// normalizeNetwork folds the transport aliases found in the wild down to
// the supported kinds. Anything unrecognized falls back to tcp.
func normalizeNetwork(network string) string {
	switch strings.ToLower(network) {
	case "ws", "websocket":
		return "ws"
	case "h2", "http", "http2":
		return "h2"
	case "grpc", "gun":
		return "grpc"
	case "quic":
		return "quic"
	case "kcp", "mkcp":
		return "kcp"
	default:
		return "tcp"
	}
}

func headerType(t string) string {
	if t == "" {
		return "none"
	}
	return t
}
