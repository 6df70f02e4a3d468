package parser

import (
	"net/url"
	"strings"
)

// applyQuery extracts the standard transport/security params shared by
// every URI-style scheme.
func applyQuery(p *Profile, q url.Values) {
	if v := q.Get("type"); v != "" {
		p.Network = v
	}
	if v := q.Get("headerType"); v != "" {
		p.HeaderType = v
	}
	if v := q.Get("host"); v != "" {
		p.Host = v
	}
	if v := q.Get("path"); v != "" {
		p.Path = v
	}
	if v := q.Get("seed"); v != "" {
		p.Seed = v
	}
	if v := q.Get("quicSecurity"); v != "" {
		p.QuicSecurity = v
	}
	if v := q.Get("key"); v != "" {
		p.QuicKey = v
	}
	if v := q.Get("mode"); v != "" {
		p.Mode = v
	}
	if v := q.Get("serviceName"); v != "" {
		p.ServiceName = v
	}
	if v := q.Get("security"); v != "" {
		p.Security = v
	}
	if v := q.Get("sni"); v != "" {
		p.SNI = v
	}
	if v := firstOf(q, "fp", "fingerprint"); v != "" {
		p.Fingerprint = v
	}
	if v := q.Get("alpn"); v != "" {
		p.ALPN = strings.Split(v, ",")
	}
	if v := firstOf(q, "pbk", "publicKey"); v != "" {
		p.PublicKey = v
	}
	if v := firstOf(q, "sid", "shortId"); v != "" {
		p.ShortID = v
	}
	if v := firstOf(q, "spx", "spiderX"); v != "" {
		p.SpiderX = v
	}
	if v := q.Get("flow"); v != "" {
		p.Flow = v
	}

	// Insecure mapping (1/0/true/false), several spellings in the wild
	for _, key := range []string{"allowInsecure", "insecure", "allow_insecure"} {
		if v := q.Get(key); v != "" {
			p.Insecure = v == "1" || v == "true"
			break
		}
	}
}

// firstOf returns the first non-empty value among the given keys. Reality
// and fingerprint params circulate under both short and long names.
func firstOf(q url.Values, keys ...string) string {
	for _, k := range keys {
		if v := q.Get(k); v != "" {
			return v
		}
	}
	return ""
}
