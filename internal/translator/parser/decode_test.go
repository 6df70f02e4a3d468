package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeBase64(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"padded standard", "YWVzLTEyOC1nY206cHc=", "aes-128-gcm:pw", true},
		{"missing padding repaired", "YWVzLTEyOC1nY206cHc", "aes-128-gcm:pw", true},
		{"url-safe alphabet", "YWJjLV8", "abc-_", true},
		{"empty", "", "", true},
		{"garbage", "!!!", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBase64(tt.in)
			if !tt.ok {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDecode(t *testing.T) {
	d, err := Decode("vless://id@example.com:8443/base?type=ws&path=%2Fws#Node%201")
	require.NoError(t, err)

	require.Equal(t, "vless", d.Scheme)
	require.Equal(t, "id", d.Username)
	require.False(t, d.HasPassword)
	require.Equal(t, "example.com", d.Host)
	require.Equal(t, 8443, d.Port)
	require.Equal(t, "ws", d.Query.Get("type"))
	require.Equal(t, "/ws", d.Query.Get("path"))
	require.Equal(t, "Node 1", d.Remark)
}

func TestDecode_NoPort(t *testing.T) {
	d, err := Decode("trojan://pw@example.com#x")
	require.NoError(t, err)
	require.Zero(t, d.Port)
}

func TestDecode_MissingHost(t *testing.T) {
	_, err := Decode("trojan://pw@:443")
	require.ErrorIs(t, err, ErrInvalidLink)
}

func TestDecode_BadFragmentDoesNotFail(t *testing.T) {
	// An invalid escape in the fragment must not fail the whole link.
	d, err := Decode("trojan://pw@example.com:443#%zz+oops")
	require.NoError(t, err)
	require.Equal(t, "%zz oops", d.Remark)
}

func TestDecode_PlusKeptInValidFragment(t *testing.T) {
	d, err := Decode("trojan://pw@example.com:443#a+b%20c")
	require.NoError(t, err)
	require.Equal(t, "a+b c", d.Remark)
}

func TestDecode_WhitespaceSanitized(t *testing.T) {
	d, err := Decode("  trojan://pw@example.com:443\r\n")
	require.NoError(t, err)
	require.Equal(t, "example.com", d.Host)
}
