package translator

import (
	"strings"

	"linkconv/internal/translator/parser"
	"linkconv/internal/xconf"
)

// buildSecurity layers the TLS/Reality settings onto stream settings.
// Exactly one settings object is attached: tlsSettings for tls,
// realitySettings for reality, nothing for none. The explicit sni wins
// over the transport-derived candidate.
func buildSecurity(p *parser.Profile, ss *xconf.StreamSettings, derivedSNI string) {
	sni := p.SNI
	if sni == "" {
		sni = derivedSNI
	}

	switch strings.ToLower(p.Security) {
	case "tls":
		ss.Security = "tls"
		ss.TLSSettings = &xconf.TLSSettings{
			ServerName:    sni,
			AllowInsecure: p.Insecure,
			Fingerprint:   p.Fingerprint,
			ALPN:          p.ALPN,
		}
	case "reality":
		ss.Security = "reality"
		ss.RealitySettings = &xconf.RealitySettings{
			ServerName:  sni,
			Fingerprint: p.Fingerprint,
			PublicKey:   p.PublicKey,
			ShortID:     p.ShortID,
			SpiderX:     p.SpiderX,
		}
	}
}
