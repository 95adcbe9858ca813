//go:build unit || !integration

package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shdw-drive/shdw-cli/internal/models"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YAML")
	require.NoError(t, err)
	require.Equal(t, YAMLFormat, f)

	_, err = ParseFormat("csv")
	require.Error(t, err)
}

func TestReportJSON(t *testing.T) {
	var buf bytes.Buffer
	resp := &models.TransactionResponse{TxID: "tx"}
	require.NoError(t, NewPrinter(&buf, Options{}).Report(resp))

	var decoded models.TransactionResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, *resp, decoded)
	require.Contains(t, buf.String(), "\n  \"txid\"")
}

func TestReportYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, Options{Format: YAMLFormat}).Report(&models.TransactionResponse{TxID: "tx"}))
	require.Equal(t, "txid: tx\n", buf.String())
}

func TestReportTable(t *testing.T) {
	t.Run("files", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewPrinter(&buf, Options{Format: TableFormat, NoStyle: true}).Report([]string{"a.txt", "b.txt"}))
		require.Contains(t, buf.String(), "FILE")
		require.Contains(t, buf.String(), "a.txt")
		require.Contains(t, buf.String(), "b.txt")
	})

	t.Run("accounts", func(t *testing.T) {
		var buf bytes.Buffer
		accounts := []models.StorageAccount{{Identifier: "bucket", Storage: 3 << 20, Version: "v2"}}
		require.NoError(t, NewPrinter(&buf, Options{Format: TableFormat, NoStyle: true}).Report(accounts))
		require.Contains(t, buf.String(), "bucket")
		require.Contains(t, buf.String(), "3.0 MB")
	})

	t.Run("hidden header", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewPrinter(&buf, Options{Format: TableFormat, NoStyle: true, HideHeader: true}).Report([]string{"a.txt"}))
		require.NotContains(t, buf.String(), "FILE")
		require.Contains(t, buf.String(), "a.txt")
	})

	t.Run("styled", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewPrinter(&buf, Options{Format: TableFormat}).Report([]string{"a.txt"}))
		require.Contains(t, buf.String(), "\x1b[")
	})

	t.Run("other results fall back to json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewPrinter(&buf, Options{Format: TableFormat}).Report(&models.TransactionResponse{TxID: "tx"}))
		require.JSONEq(t, `{"txid":"tx"}`, buf.String())
	})
}

func TestIsTerminal(t *testing.T) {
	require.False(t, IsTerminal(&bytes.Buffer{}))

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	require.False(t, IsTerminal(f))
}
