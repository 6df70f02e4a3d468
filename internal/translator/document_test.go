package translator

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToDocument_Shape(t *testing.T) {
	out := mustTranslate(t, "trojan://pw@example.com:443#node")

	data, err := ToDocument(out, DocumentOptions{Indent: 2})
	require.NoError(t, err)

	var doc struct {
		Log       map[string]string `json:"log"`
		Inbounds  []map[string]any  `json:"inbounds"`
		Outbounds []map[string]any  `json:"outbounds"`
		Routing   struct {
			Rules []map[string]any `json:"rules"`
		} `json:"routing"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	require.Equal(t, "warning", doc.Log["loglevel"])

	require.Len(t, doc.Inbounds, 1)
	require.Equal(t, "socks-in", doc.Inbounds[0]["tag"])
	require.Equal(t, "127.0.0.1", doc.Inbounds[0]["listen"])
	require.Equal(t, float64(10808), doc.Inbounds[0]["port"])

	require.Len(t, doc.Outbounds, 3)
	require.Equal(t, "proxy", doc.Outbounds[0]["tag"])
	require.Equal(t, "trojan", doc.Outbounds[0]["protocol"])
	require.Equal(t, "direct", doc.Outbounds[1]["tag"])
	require.Equal(t, "block", doc.Outbounds[2]["tag"])

	require.Len(t, doc.Routing.Rules, 1)
	require.Equal(t, "proxy", doc.Routing.Rules[0]["outboundTag"])
}

func TestToDocument_KeyOrderStable(t *testing.T) {
	out := mustTranslate(t, "trojan://pw@example.com:443")

	data, err := ToDocument(out, DocumentOptions{})
	require.NoError(t, err)

	s := string(data)
	require.Less(t, strings.Index(s, `"log"`), strings.Index(s, `"inbounds"`))
	require.Less(t, strings.Index(s, `"inbounds"`), strings.Index(s, `"outbounds"`))
	require.Less(t, strings.Index(s, `"outbounds"`), strings.Index(s, `"routing"`))

	again, err := ToDocument(out, DocumentOptions{})
	require.NoError(t, err)
	require.Equal(t, data, again)
}

func TestToDocument_Indent(t *testing.T) {
	out := mustTranslate(t, "trojan://pw@example.com:443")

	compact, err := ToDocument(out, DocumentOptions{Indent: 0})
	require.NoError(t, err)
	require.NotContains(t, string(compact), "\n")

	indented, err := ToDocument(out, DocumentOptions{Indent: 4})
	require.NoError(t, err)
	require.Contains(t, string(indented), "\n    \"log\"")
}

func TestToDocument_InboundOverride(t *testing.T) {
	out := mustTranslate(t, "trojan://pw@example.com:443")

	data, err := ToDocument(out, DocumentOptions{Listen: "0.0.0.0", Port: 2080})
	require.NoError(t, err)

	var doc struct {
		Inbounds []map[string]any `json:"inbounds"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Equal(t, "0.0.0.0", doc.Inbounds[0]["listen"])
	require.Equal(t, float64(2080), doc.Inbounds[0]["port"])
}
