package parser

import "strings"

// pluginName is the only plugin whose option string we interpret. Links
// using other plugins (obfs-local, simple-obfs, ...) fall back to the
// standard query params; see parsePlugin.
const pluginName = "v2ray-plugin"

// pluginOpts is the intermediate record produced by the plugin option
// tokenizer before it is folded into a Profile.
type pluginOpts struct {
	TLS     bool
	QUIC    bool
	Mode    string
	Host    string
	Path    string
	Headers map[string]string
}

// parsePlugin tokenizes a shadowsocks plugin query value. The second
// return is false when there is no plugin or the plugin is not
// recognized, in which case the caller uses the standard query path.
func parsePlugin(plugin string) (*pluginOpts, bool) {
	if !strings.HasPrefix(plugin, pluginName) {
		return nil, false
	}

	opts := &pluginOpts{Headers: map[string]string{}}
	tokens := strings.Split(plugin, ";")
	for _, tok := range tokens[1:] { // tokens[0] is the plugin name
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		key, value, ok := strings.Cut(tok, "=")
		if !ok {
			// Value-less tokens are flags.
			switch strings.ToLower(tok) {
			case "tls":
				opts.TLS = true
			case "quic":
				opts.QUIC = true
			}
			continue
		}

		switch strings.ToLower(key) {
		case "host":
			opts.Host = value
		case "path":
			opts.Path = value
		case "mode":
			opts.Mode = value
		case "header":
			if name, v, ok := strings.Cut(value, ":"); ok {
				opts.Headers[name] = v
			}
		}
	}
	return opts, true
}

// apply folds the plugin options into the profile's transport and
// security fields.
func (o *pluginOpts) apply(p *Profile) {
	p.Network = o.network()
	p.Host = o.Host
	p.Path = o.Path
	if len(o.Headers) > 0 {
		p.Headers = o.Headers
	}
	if o.TLS {
		p.Security = "tls"
	}
}

func (o *pluginOpts) network() string {
	switch strings.ToLower(o.Mode) {
	case "websocket", "ws":
		return "ws"
	case "http", "h2", "http2":
		return "h2"
	case "grpc":
		return "grpc"
	case "quic":
		return "quic"
	case "":
		if o.QUIC {
			return "quic"
		}
		if o.Path != "" {
			// A path without an explicit mode implies websocket.
			return "ws"
		}
	}
	return "tcp"
}
