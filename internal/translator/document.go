package translator

import "linkconv/internal/xconf"

// Fixed stubs of the generated document.
const (
	defaultInboundListen = "127.0.0.1"
	defaultInboundPort   = 10808
)

// DocumentOptions controls the full-document serialization. The zero
// value produces the default local socks inbound and compact JSON.
type DocumentOptions struct {
	Listen string // inbound listen address
	Port   int    // inbound port
	Indent int    // spaces per level, <=0 compact
}

// ToDocument wraps one outbound configuration into the complete JSON
// document the proxy core expects: log stub, a local socks inbound,
// the proxy outbound plus direct/block companions, and a routing stub.
// Key order is fixed by the xconf struct layout, so output is
// diff-stable.
func ToDocument(out *xconf.Outbound, opts DocumentOptions) ([]byte, error) {
	if opts.Listen == "" {
		opts.Listen = defaultInboundListen
	}
	if opts.Port == 0 {
		opts.Port = defaultInboundPort
	}

	doc := &xconf.Document{
		Log: &xconf.LogSettings{Loglevel: "warning"},
		Inbounds: []xconf.Inbound{{
			Tag:      "socks-in",
			Listen:   opts.Listen,
			Port:     opts.Port,
			Protocol: "socks",
			Settings: &xconf.SocksInboundSettings{Auth: "noauth", UDP: true},
		}},
		Outbounds: []xconf.Outbound{
			*out,
			{Tag: "direct", Protocol: "freedom", Settings: struct{}{}},
			{Tag: "block", Protocol: "blackhole", Settings: struct{}{}},
		},
		Routing: &xconf.Routing{
			DomainStrategy: "AsIs",
			Rules: []xconf.Rule{{
				Type:        "field",
				InboundTag:  []string{"socks-in"},
				OutboundTag: out.Tag,
			}},
		},
	}

	return xconf.Marshal(doc, opts.Indent)
}
