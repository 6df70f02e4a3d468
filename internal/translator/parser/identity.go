package parser

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// CalculateHash returns a stable identifier for the connection the
// profile describes. Cosmetic fields (remark, raw URI) are excluded, and
// transport defaults are normalized, so the same server reached through
// differently-written links hashes identically.
func (p *Profile) CalculateHash() string {
	var parts []string

	parts = append(parts, strings.ToLower(p.Protocol))
	parts = append(parts, strings.ToLower(p.Address))
	parts = append(parts, fmt.Sprintf("%d", p.Port))

	parts = append(parts, p.Username)
	parts = append(parts, p.Password)

	// "none" and empty mean the same thing for vless encryption.
	method := strings.ToLower(p.Method)
	if p.Protocol == "vless" && method == "none" {
		method = ""
	}
	parts = append(parts, method)

	// Empty network implies tcp; "none" headerType implies empty.
	network := strings.ToLower(p.Network)
	if network == "" {
		network = "tcp"
	}
	parts = append(parts, network)

	header := strings.ToLower(p.HeaderType)
	if header == "none" {
		header = ""
	}
	parts = append(parts, header)

	parts = append(parts, p.Host)
	parts = append(parts, p.Path)
	parts = append(parts, p.Mode)
	parts = append(parts, p.ServiceName)
	parts = append(parts, p.Seed)

	parts = append(parts, p.Flow)

	// Reality keys are case-sensitive, keep them as is.
	parts = append(parts, p.PublicKey)
	parts = append(parts, p.ShortID)

	signature := strings.Join(parts, "|")
	hash := sha256.Sum256([]byte(signature))
	return hex.EncodeToString(hash[:])
}
