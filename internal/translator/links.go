package translator

import (
	"bufio"
	"regexp"
	"strings"

	"linkconv/internal/translator/parser"
)

var linkPattern = regexp.MustCompile(`(vmess|vless|trojan|ss|shadowsocks|socks|socks5)://[a-zA-Z0-9_\-\.\:@\?=&%#+/]+`)

// ExtractLinks pulls share links out of free text. Subscription payloads
// are usually one base64 blob over the whole body, so a whole-payload
// decode is attempted first.
func ExtractLinks(text string) []string {
	if decoded, err := parser.DecodeBase64(strings.TrimSpace(text)); err == nil && strings.Contains(decoded, "://") {
		text = decoded
	}

	var links []string
	text = strings.ReplaceAll(text, "\r\n", "\n")
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		for _, match := range linkPattern.FindAllString(line, -1) {
			clean := strings.TrimRight(match, ".,;)\"")
			if clean != "" {
				links = append(links, clean)
			}
		}
	}
	return deduplicate(links)
}

func deduplicate(input []string) []string {
	seen := make(map[string]bool)
	list := []string{}
	for _, entry := range input {
		if !seen[entry] {
			seen[entry] = true
			list = append(list, entry)
		}
	}
	return list
}
