// Package xconf defines the JSON shapes consumed by a v2ray-compatible
// proxy core. Field order inside each struct is the serialization order,
// so generated documents are byte-stable across runs.
package xconf

import (
	"encoding/json"
	"strings"
)

const (
	// DefaultTag is the tag assigned to every translated outbound.
	DefaultTag = "proxy"

	// MuxConcurrency is the fixed concurrency written into mux settings.
	MuxConcurrency = 8
)

// Outbound is a single outbound entry of a core config.
type Outbound struct {
	Tag            string          `json:"tag"`
	Protocol       string          `json:"protocol"`
	Settings       any             `json:"settings"`
	StreamSettings *StreamSettings `json:"streamSettings,omitempty"`
	Mux            *Mux            `json:"mux,omitempty"`
}

// Mux controls stream multiplexing on an outbound.
type Mux struct {
	Enabled     bool `json:"enabled"`
	Concurrency int  `json:"concurrency"`
}

// DefaultMux returns the mux block attached to every outbound:
// disabled, fixed concurrency.
func DefaultMux() *Mux {
	return &Mux{Enabled: false, Concurrency: MuxConcurrency}
}

// --- Stream settings (transport + security) ---

type StreamSettings struct {
	Network         string           `json:"network"`
	Security        string           `json:"security,omitempty"`
	TLSSettings     *TLSSettings     `json:"tlsSettings,omitempty"`
	RealitySettings *RealitySettings `json:"realitySettings,omitempty"`
	TCPSettings     *TCPSettings     `json:"tcpSettings,omitempty"`
	KCPSettings     *KCPSettings     `json:"kcpSettings,omitempty"`
	WSSettings      *WSSettings      `json:"wsSettings,omitempty"`
	HTTPSettings    *HTTPSettings    `json:"httpSettings,omitempty"`
	GRPCSettings    *GRPCSettings    `json:"grpcSettings,omitempty"`
	QUICSettings    *QUICSettings    `json:"quicSettings,omitempty"`
}

type TLSSettings struct {
	ServerName    string   `json:"serverName,omitempty"`
	AllowInsecure bool     `json:"allowInsecure"`
	Fingerprint   string   `json:"fingerprint,omitempty"`
	ALPN          []string `json:"alpn,omitempty"`
}

type RealitySettings struct {
	ServerName  string `json:"serverName,omitempty"`
	Fingerprint string `json:"fingerprint,omitempty"`
	PublicKey   string `json:"publicKey"`
	ShortID     string `json:"shortId"`
	SpiderX     string `json:"spiderX,omitempty"`
}

type TCPSettings struct {
	Header *TCPHeader `json:"header,omitempty"`
}

type TCPHeader struct {
	Type    string       `json:"type"`
	Request *HTTPRequest `json:"request,omitempty"`
}

// HTTPRequest is the camouflage request of the tcp/http header.
type HTTPRequest struct {
	Path    []string            `json:"path,omitempty"`
	Headers map[string][]string `json:"headers,omitempty"`
}

type KCPSettings struct {
	Seed   string      `json:"seed,omitempty"`
	Header *ObjectType `json:"header,omitempty"`
}

type WSSettings struct {
	Path    string            `json:"path,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}

type HTTPSettings struct {
	Host []string `json:"host,omitempty"`
	Path string   `json:"path,omitempty"`
}

type GRPCSettings struct {
	ServiceName string `json:"serviceName"`
	MultiMode   bool   `json:"multiMode,omitempty"`
}

type QUICSettings struct {
	Security string      `json:"security"`
	Key      string      `json:"key,omitempty"`
	Header   *ObjectType `json:"header,omitempty"`
}

// ObjectType is the `{"type": ...}` header object shared by kcp and quic.
type ObjectType struct {
	Type string `json:"type"`
}

// --- Protocol settings ---

// VnextSettings is the settings block of vmess and vless outbounds.
type VnextSettings struct {
	Vnext []VnextServer `json:"vnext"`
}

type VnextServer struct {
	Address string      `json:"address"`
	Port    int         `json:"port"`
	Users   []VnextUser `json:"users"`
}

type VnextUser struct {
	ID         string `json:"id"`
	AlterID    int    `json:"alterId,omitempty"`
	Security   string `json:"security,omitempty"`
	Encryption string `json:"encryption,omitempty"`
	Flow       string `json:"flow,omitempty"`
}

// ServerSettings is the settings block of trojan, shadowsocks and socks
// outbounds.
type ServerSettings struct {
	Servers []Server `json:"servers"`
}

type Server struct {
	Address  string       `json:"address"`
	Port     int          `json:"port"`
	Method   string       `json:"method,omitempty"`
	Password string       `json:"password,omitempty"`
	Users    []ServerUser `json:"users,omitempty"`
}

type ServerUser struct {
	User string `json:"user"`
	Pass string `json:"pass"`
}

// --- Full document ---

// Document is the complete config file handed to the proxy core.
type Document struct {
	Log       *LogSettings `json:"log"`
	Inbounds  []Inbound    `json:"inbounds"`
	Outbounds []Outbound   `json:"outbounds"`
	Routing   *Routing     `json:"routing"`
}

type LogSettings struct {
	Loglevel string `json:"loglevel"`
}

type Inbound struct {
	Tag      string `json:"tag"`
	Listen   string `json:"listen"`
	Port     int    `json:"port"`
	Protocol string `json:"protocol"`
	Settings any    `json:"settings,omitempty"`
}

// SocksInboundSettings is the settings block of the local socks inbound stub.
type SocksInboundSettings struct {
	Auth string `json:"auth"`
	UDP  bool   `json:"udp"`
}

type Routing struct {
	DomainStrategy string `json:"domainStrategy"`
	Rules          []Rule `json:"rules"`
}

type Rule struct {
	Type        string   `json:"type"`
	InboundTag  []string `json:"inboundTag,omitempty"`
	OutboundTag string   `json:"outboundTag"`
}

// Marshal renders v as JSON. indent is the number of spaces per level;
// zero or negative produces compact output.
func Marshal(v any, indent int) ([]byte, error) {
	if indent <= 0 {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", strings.Repeat(" ", indent))
}
