package translator

import (
	"testing"

	"github.com/stretchr/testify/require"
	"linkconv/internal/xconf"
)

func mustTranslate(t *testing.T, link string) *xconf.Outbound {
	t.Helper()
	out, err := Translate(link)
	require.NoError(t, err)
	return out
}

const testUUID = "b831381d-6324-4d53-ad4f-8cda48b30811"

func TestTranslate_VMess(t *testing.T) {
	out := mustTranslate(t, "vmess://"+testUUID+"@example.com:443?type=ws&path=%2Fv")

	require.Equal(t, "proxy", out.Tag)
	require.Equal(t, "vmess", out.Protocol)

	settings, ok := out.Settings.(*xconf.VnextSettings)
	require.True(t, ok)
	require.Len(t, settings.Vnext, 1)
	require.Equal(t, "example.com", settings.Vnext[0].Address)
	require.Equal(t, 443, settings.Vnext[0].Port)
	require.Equal(t, testUUID, settings.Vnext[0].Users[0].ID)
	require.Equal(t, "auto", settings.Vnext[0].Users[0].Security)
}

func TestTranslate_Shadowsocks(t *testing.T) {
	out := mustTranslate(t, "ss://YWVzLTEyOC1nY206cHc@example.com:8388")

	require.Equal(t, "shadowsocks", out.Protocol)
	settings, ok := out.Settings.(*xconf.ServerSettings)
	require.True(t, ok)
	require.Equal(t, "aes-128-gcm", settings.Servers[0].Method)
	require.Equal(t, "pw", settings.Servers[0].Password)
}

func TestTranslate_SocksUsersOnlyWithCredentials(t *testing.T) {
	out := mustTranslate(t, "socks://dXNlcjpwYXNz@example.com:1080")
	settings := out.Settings.(*xconf.ServerSettings)
	require.Len(t, settings.Servers[0].Users, 1)
	require.Equal(t, "user", settings.Servers[0].Users[0].User)

	out = mustTranslate(t, "socks://example.com:1080")
	settings = out.Settings.(*xconf.ServerSettings)
	require.Empty(t, settings.Servers[0].Users)
}

func TestTransport_WSDerivedSNI(t *testing.T) {
	// No explicit sni: the ws host becomes the TLS server name.
	out := mustTranslate(t, "vless://"+testUUID+"@example.com:443?type=ws&host=cdn.example.com&security=tls")

	ss := out.StreamSettings
	require.Equal(t, "ws", ss.Network)
	require.Equal(t, "cdn.example.com", ss.WSSettings.Headers["Host"])
	require.NotNil(t, ss.TLSSettings)
	require.Equal(t, "cdn.example.com", ss.TLSSettings.ServerName)
}

func TestTransport_ExplicitSNIWins(t *testing.T) {
	out := mustTranslate(t, "vless://"+testUUID+"@example.com:443?type=ws&host=cdn.example.com&security=tls&sni=real.example.com")
	require.Equal(t, "real.example.com", out.StreamSettings.TLSSettings.ServerName)
}

func TestTransport_H2(t *testing.T) {
	out := mustTranslate(t, "vless://"+testUUID+"@example.com:443?type=h2&host=h2.example.com&path=%2Fh&security=tls")

	ss := out.StreamSettings
	require.Equal(t, "h2", ss.Network)
	require.Equal(t, []string{"h2.example.com"}, ss.HTTPSettings.Host)
	require.Equal(t, "/h", ss.HTTPSettings.Path)
	require.Equal(t, "h2.example.com", ss.TLSSettings.ServerName)
}

func TestTransport_GRPCToleratesEmptyServiceName(t *testing.T) {
	out := mustTranslate(t, "vless://"+testUUID+"@example.com:443?type=grpc")
	require.NotNil(t, out.StreamSettings.GRPCSettings)
	require.Empty(t, out.StreamSettings.GRPCSettings.ServiceName)
}

func TestTransport_QUICDefaults(t *testing.T) {
	out := mustTranslate(t, "vless://"+testUUID+"@example.com:443?type=quic")
	require.NotNil(t, out.StreamSettings.QUICSettings)
	require.Equal(t, "none", out.StreamSettings.QUICSettings.Security)
	require.Empty(t, out.StreamSettings.QUICSettings.Key)
}

func TestTransport_KCPSeed(t *testing.T) {
	out := mustTranslate(t, "vless://"+testUUID+"@example.com:443?type=kcp&seed=mySeed&headerType=wechat-video")
	require.Equal(t, "kcp", out.StreamSettings.Network)
	require.Equal(t, "mySeed", out.StreamSettings.KCPSettings.Seed)
	require.Equal(t, "wechat-video", out.StreamSettings.KCPSettings.Header.Type)
}

func TestTransport_UnknownKindFallsBackToTCP(t *testing.T) {
	out := mustTranslate(t, "vless://"+testUUID+"@example.com:443?type=carrier-pigeon")
	require.Equal(t, "tcp", out.StreamSettings.Network)
	require.Nil(t, out.StreamSettings.TCPSettings)
}

func TestTransport_TCPHTTPHeader(t *testing.T) {
	out := mustTranslate(t, "vless://"+testUUID+"@example.com:443?type=tcp&headerType=http&host=camouflage.example.com&path=%2F")

	tcp := out.StreamSettings.TCPSettings
	require.NotNil(t, tcp)
	require.Equal(t, "http", tcp.Header.Type)
	require.Equal(t, []string{"camouflage.example.com"}, tcp.Header.Request.Headers["Host"])
	require.Equal(t, []string{"/"}, tcp.Header.Request.Path)
}

func TestSecurity_None(t *testing.T) {
	out := mustTranslate(t, "vless://"+testUUID+"@example.com:443?type=ws")
	require.Empty(t, out.StreamSettings.Security)
	require.Nil(t, out.StreamSettings.TLSSettings)
	require.Nil(t, out.StreamSettings.RealitySettings)
}

func TestSecurity_Reality(t *testing.T) {
	out := mustTranslate(t, "vless://"+testUUID+"@example.com:443"+
		"?security=reality&pbk=pubkey&sid=ab12&spx=%2F&fp=chrome&sni=real.example.com")

	ss := out.StreamSettings
	require.Equal(t, "reality", ss.Security)
	require.Nil(t, ss.TLSSettings)
	require.NotNil(t, ss.RealitySettings)
	require.Equal(t, "pubkey", ss.RealitySettings.PublicKey)
	require.Equal(t, "ab12", ss.RealitySettings.ShortID)
	require.Equal(t, "/", ss.RealitySettings.SpiderX)
	require.Equal(t, "chrome", ss.RealitySettings.Fingerprint)
	require.Equal(t, "real.example.com", ss.RealitySettings.ServerName)
}

func TestSecurity_ALPNOrderPreserved(t *testing.T) {
	out := mustTranslate(t, "vless://"+testUUID+"@example.com:443?security=tls&alpn=h2,http/1.1")
	require.Equal(t, []string{"h2", "http/1.1"}, out.StreamSettings.TLSSettings.ALPN)
}

func TestSecurity_AllowInsecureDefaultsFalse(t *testing.T) {
	out := mustTranslate(t, "vless://"+testUUID+"@example.com:443?security=tls")
	require.False(t, out.StreamSettings.TLSSettings.AllowInsecure)

	out = mustTranslate(t, "vless://"+testUUID+"@example.com:443?security=tls&allowInsecure=1")
	require.True(t, out.StreamSettings.TLSSettings.AllowInsecure)
}

func TestMuxDefaults(t *testing.T) {
	out := mustTranslate(t, "trojan://pw@example.com:443")
	require.NotNil(t, out.Mux)
	require.False(t, out.Mux.Enabled)
	require.Equal(t, 8, out.Mux.Concurrency)
}

func TestTranslate_Deterministic(t *testing.T) {
	link := "vless://" + testUUID + "@example.com:443?type=ws&host=cdn.example.com&security=tls&alpn=h2,http/1.1#node"

	first := mustTranslate(t, link)
	second := mustTranslate(t, link)

	a, err := xconf.Marshal(first, 2)
	require.NoError(t, err)
	b, err := xconf.Marshal(second, 2)
	require.NoError(t, err)
	require.Equal(t, a, b)
}
