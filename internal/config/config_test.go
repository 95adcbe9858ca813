//go:build unit || !integration

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeCLIConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestParseAuthMode(t *testing.T) {
	require.Equal(t, AuthMode{Kind: AuthNone}, ParseAuthMode(""))
	require.Equal(t, AuthMode{Kind: AuthAutoSignIn}, ParseAuthMode("genesysgo"))
	require.Equal(t, AuthMode{Kind: AuthLiteral, Token: "abc"}, ParseAuthMode("abc"))
	require.Equal(t, AuthMode{Kind: AuthLiteral, Token: "GenesysGo"}, ParseAuthMode("GenesysGo"))
}

func TestAuthModeHidesToken(t *testing.T) {
	data, err := json.Marshal(ParseAuthMode("super-secret"))
	require.NoError(t, err)
	require.JSONEq(t, `"literal"`, string(data))
}

func TestLoadSolanaCLIConfig(t *testing.T) {
	path := writeCLIConfig(t, `---
json_rpc_url: "https://us-west-1.genesysgo.net/ACC123"
websocket_url: ""
keypair_path: /keys/id.json
commitment: confirmed
`)

	cfg, err := LoadSolanaCLIConfig(path)
	require.NoError(t, err)
	require.Equal(t, "https://us-west-1.genesysgo.net/ACC123", cfg.JSONRPCURL)
	require.Equal(t, "/keys/id.json", cfg.KeypairPath)
}

func TestLoadSolanaCLIConfigMissing(t *testing.T) {
	cfg, err := LoadSolanaCLIConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	require.Equal(t, DefaultRPCURL, cfg.JSONRPCURL)
	require.Equal(t, DefaultKeypairPath, cfg.KeypairPath)
}

func TestLoadSolanaCLIConfigMalformed(t *testing.T) {
	_, err := LoadSolanaCLIConfig(writeCLIConfig(t, "json_rpc_url: [unterminated"))
	require.Error(t, err)
}

func TestLoadEndpoints(t *testing.T) {
	require.Equal(t, DefaultEndpoints(), LoadEndpoints())

	t.Setenv("SHDW_SIGNIN_URL", "http://localhost:8080/api/signin/")
	t.Setenv("SHDW_DOMAIN_MARKER", "localhost")
	endpoints := LoadEndpoints()
	require.Equal(t, "http://localhost:8080/api/signin", endpoints.SignInURL)
	require.Equal(t, "localhost", endpoints.DomainMarker)
	require.Equal(t, DefaultDriveURL, endpoints.DriveURL)
}

func TestResolve(t *testing.T) {
	path := writeCLIConfig(t, "json_rpc_url: https://ssc-dao.genesysgo.net/ACC\nkeypair_path: /keys/id.json\n")

	t.Run("config file values", func(t *testing.T) {
		settings, err := Resolve(Overrides{ConfigPath: path})
		require.NoError(t, err)
		require.Equal(t, "/keys/id.json", settings.KeypairPath)
		require.Equal(t, "https://ssc-dao.genesysgo.net/ACC", settings.RPCURL)
		require.Equal(t, AuthNone, settings.Auth.Kind)
		require.False(t, settings.SkipConfirm)
	})

	t.Run("flags win", func(t *testing.T) {
		settings, err := Resolve(Overrides{
			ConfigPath:  path,
			KeypairPath: "ASK",
			URL:         "https://example.com",
			Auth:        "genesysgo",
			SkipConfirm: true,
		})
		require.NoError(t, err)
		require.Equal(t, "ASK", settings.KeypairPath)
		require.Equal(t, "https://example.com", settings.RPCURL)
		require.Equal(t, AuthAutoSignIn, settings.Auth.Kind)
		require.True(t, settings.SkipConfirm)
	})
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expanded, err := ExpandHome("~/keys/id.json")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "keys", "id.json"), expanded)

	expanded, err = ExpandHome("~")
	require.NoError(t, err)
	require.Equal(t, home, expanded)

	expanded, err = ExpandHome("~other/id.json")
	require.NoError(t, err)
	require.Equal(t, "~other/id.json", expanded)
}
