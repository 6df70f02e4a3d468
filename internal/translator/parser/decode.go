package parser

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DecodedURI is the normalized form of one share link. Derived once per
// link and never mutated afterwards.
type DecodedURI struct {
	Scheme      string
	Username    string // percent-decoded user-info, first part
	Password    string // user-info after ":", when present
	HasPassword bool
	Host        string
	Port        int // 0 when the link omits a port
	Path        string
	Query       url.Values
	Fragment    string // raw fragment text
	Remark      string // decoded display name, never fails
}

// Decode normalizes a raw share-link string into a DecodedURI. It fails
// with ErrInvalidLink only when the string cannot be parsed as a URI at
// all; cosmetic decode problems degrade instead.
func Decode(raw string) (*DecodedURI, error) {
	raw = sanitize(raw)

	// The fragment is split off before url.Parse so a malformed remark
	// can never fail the whole link.
	main, fragment, _ := strings.Cut(raw, "#")

	u, err := url.Parse(main)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLink, err)
	}
	if u.Scheme == "" || u.Hostname() == "" {
		return nil, fmt.Errorf("%w: missing scheme or host", ErrInvalidLink)
	}

	d := &DecodedURI{
		Scheme:   strings.ToLower(u.Scheme),
		Host:     u.Hostname(),
		Path:     u.Path,
		Query:    u.Query(),
		Fragment: fragment,
		Remark:   decodeRemark(fragment),
	}
	if p := u.Port(); p != "" {
		d.Port, _ = strconv.Atoi(p)
	}
	if u.User != nil {
		d.Username = u.User.Username()
		d.Password, d.HasPassword = u.User.Password()
	}
	return d, nil
}

// sanitize cleans up common issues in scraped links.
func sanitize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "")
	return s
}

// decodeRemark percent-decodes a URI fragment into a display name. A
// literal "+" is kept; only the invalid-escape fallback turns it into a
// space. It never fails.
func decodeRemark(fragment string) string {
	decoded, err := url.PathUnescape(fragment)
	if err != nil {
		return strings.ReplaceAll(fragment, "+", " ")
	}
	return decoded
}

// DecodeBase64 decodes standard and URL-safe base64, automatically
// repairing missing padding.
func DecodeBase64(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	if n := len(s) % 4; n != 0 {
		s += strings.Repeat("=", 4-n)
	}

	b, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return string(b), nil
	}

	b, err = base64.URLEncoding.DecodeString(s)
	if err == nil {
		return string(b), nil
	}

	return "", err
}
