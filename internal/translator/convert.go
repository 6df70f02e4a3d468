// Package translator turns proxy share links into outbound configuration
// objects and full config documents for a v2ray-compatible core.
package translator

import (
	"linkconv/internal/translator/parser"
	"linkconv/internal/xconf"
)

// Translate converts one raw share link into an outbound configuration.
func Translate(raw string) (*xconf.Outbound, error) {
	p, err := parser.Parse(raw)
	if err != nil {
		return nil, err
	}
	return BuildOutbound(p), nil
}

// BuildOutbound assembles the outbound object for a parsed profile:
// protocol settings, composed stream settings, fixed tag and mux.
func BuildOutbound(p *parser.Profile) *xconf.Outbound {
	stream, derivedSNI := buildTransport(p)
	buildSecurity(p, stream, derivedSNI)

	out := &xconf.Outbound{
		Tag:            xconf.DefaultTag,
		StreamSettings: stream,
		Mux:            xconf.DefaultMux(),
	}

	switch p.Protocol {
	case "vmess":
		out.Protocol = "vmess"
		out.Settings = &xconf.VnextSettings{
			Vnext: []xconf.VnextServer{{
				Address: p.Address,
				Port:    p.Port,
				Users: []xconf.VnextUser{{
					ID:       p.Password,
					AlterID:  p.AlterID,
					Security: p.Method,
				}},
			}},
		}

	case "vless":
		out.Protocol = "vless"
		out.Settings = &xconf.VnextSettings{
			Vnext: []xconf.VnextServer{{
				Address: p.Address,
				Port:    p.Port,
				Users: []xconf.VnextUser{{
					ID:         p.Password,
					Encryption: p.Method,
					Flow:       p.Flow,
				}},
			}},
		}

	case "trojan":
		out.Protocol = "trojan"
		out.Settings = &xconf.ServerSettings{
			Servers: []xconf.Server{{
				Address:  p.Address,
				Port:     p.Port,
				Password: p.Password,
			}},
		}

	case "shadowsocks":
		out.Protocol = "shadowsocks"
		out.Settings = &xconf.ServerSettings{
			Servers: []xconf.Server{{
				Address:  p.Address,
				Port:     p.Port,
				Method:   p.Method,
				Password: p.Password,
			}},
		}

	case "socks":
		out.Protocol = "socks"
		server := xconf.Server{Address: p.Address, Port: p.Port}
		if p.Username != "" {
			server.Users = []xconf.ServerUser{{User: p.Username, Pass: p.Password}}
		}
		out.Settings = &xconf.ServerSettings{Servers: []xconf.Server{server}}
	}

	return out
}
