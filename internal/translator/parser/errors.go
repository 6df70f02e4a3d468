package parser

import "errors"

// Sentinel errors of the parsing layer. Callers test with errors.Is;
// every returned error wraps exactly one of these.
var (
	// ErrUnsupportedScheme is returned before any field is touched when
	// the link's scheme is not one of the five supported protocols.
	ErrUnsupportedScheme = errors.New("unsupported scheme")

	// ErrInvalidLink marks input that cannot be parsed as a URI at all.
	ErrInvalidLink = errors.New("invalid link")

	// ErrInvalidCredential marks a structurally required secret that
	// could not be decoded. Cosmetic fields degrade instead.
	ErrInvalidCredential = errors.New("invalid credential")
)
