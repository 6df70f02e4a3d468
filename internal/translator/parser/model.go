package parser

// Default ports applied when a link omits one.
const (
	DefaultPortVMess  = 443
	DefaultPortVLESS  = 443
	DefaultPortTrojan = 443
	DefaultPortSS     = 8388
	DefaultPortSocks  = 1080
)

// Profile is the normalized result of parsing one share link. It acts as
// the DTO between the raw URI dialects and outbound config construction.
type Profile struct {
	Protocol string // vmess, vless, trojan, shadowsocks, socks
	RawURI   string
	Remark   string

	// Connection Details
	Address string
	Port    int

	// Credential. Fully resolved after a successful parse, never partial.
	Username string // socks
	Password string // UUID, key, password
	Method   string // encryption method (ss/vmess/vless)
	AlterID  int    // vmess
	Flow     string // vless

	// Transport (stream settings)
	Network      string // tcp, ws, h2, grpc, quic, kcp
	HeaderType   string
	Host         string
	Path         string
	Headers      map[string]string // extra request headers (ss plugin grammar)
	Seed         string // kcp
	QuicSecurity string
	QuicKey      string
	Mode         string // grpc mode (gun/multi)
	ServiceName  string

	// Security (TLS/REALITY)
	Security    string // tls, reality, ""
	Insecure    bool
	SNI         string
	Fingerprint string
	ALPN        []string // order-significant

	// REALITY specifics
	PublicKey string
	ShortID   string
	SpiderX   string
}
