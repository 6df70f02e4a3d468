package translator

import (
	"linkconv/internal/logger"
	"linkconv/internal/translator/parser"
)

// NormalizeLinks re-emits every valid link in canonical form, dropping
// links that describe the same server twice. Invalid links are logged
// and skipped; output keeps input order.
func NormalizeLinks(links []string) []string {
	log := logger.Get()

	seen := make(map[string]bool)
	out := make([]string, 0, len(links))
	for i, link := range links {
		p, err := parser.Parse(link)
		if err != nil {
			log.Debugf("skipping link %d: %v", i, err)
			continue
		}
		hash := p.CalculateHash()
		if seen[hash] {
			continue
		}
		seen[hash] = true
		out = append(out, p.ToURI())
	}
	return out
}
