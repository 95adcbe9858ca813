package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Service endpoints and markers
const (
	DefaultSignInURL       = "https://portal.genesysgo.net/api/signin"
	DefaultPremiumTokenURL = "https://portal.genesysgo.net/api/premium/token"
	DefaultDriveURL        = "https://shdw-drive.genesysgo.net"
	DefaultDomainMarker    = "genesysgo"

	// AutoSignInKeyword in the auth slot asks for a sign-in handshake instead
	// of a literal token.
	AutoSignInKeyword = "genesysgo"
)

// Solana CLI defaults, used when no CLI config file exists
const (
	DefaultRPCURL      = "https://api.mainnet-beta.solana.com"
	DefaultKeypairPath = "~/.config/solana/id.json"
	DefaultCLIConfig   = "~/.config/solana/cli/config.yml"
)

// Environment overrides for the endpoints record
const (
	EnvPrefix          = "SHDW"
	SignInURLKey       = "signin_url"
	PremiumTokenURLKey = "premium_token_url"
	DriveURLKey        = "drive_url"
	DomainMarkerKey    = "domain_marker"
)

// Endpoints is the set of remote locations the CLI talks to. It is passed
// explicitly to the handshake and URL helpers so tests can point them at
// local servers.
type Endpoints struct {
	SignInURL       string `json:"signin_url"`
	PremiumTokenURL string `json:"premium_token_url"`
	DriveURL        string `json:"drive_url"`
	DomainMarker    string `json:"domain_marker"`
}

// DefaultEndpoints returns the production GenesysGo endpoints.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		SignInURL:       DefaultSignInURL,
		PremiumTokenURL: DefaultPremiumTokenURL,
		DriveURL:        DefaultDriveURL,
		DomainMarker:    DefaultDomainMarker,
	}
}

// LoadEndpoints reads SHDW_* overrides from the environment on top of the
// defaults.
func LoadEndpoints() Endpoints {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	defaults := DefaultEndpoints()
	v.SetDefault(SignInURLKey, defaults.SignInURL)
	v.SetDefault(PremiumTokenURLKey, defaults.PremiumTokenURL)
	v.SetDefault(DriveURLKey, defaults.DriveURL)
	v.SetDefault(DomainMarkerKey, defaults.DomainMarker)

	return Endpoints{
		SignInURL:       strings.TrimRight(v.GetString(SignInURLKey), "/"),
		PremiumTokenURL: strings.TrimRight(v.GetString(PremiumTokenURLKey), "/"),
		DriveURL:        strings.TrimRight(v.GetString(DriveURLKey), "/"),
		DomainMarker:    v.GetString(DomainMarkerKey),
	}
}

// SolanaCLIConfig is the subset of the Solana CLI config file the tool uses.
type SolanaCLIConfig struct {
	JSONRPCURL  string `json:"json_rpc_url"`
	KeypairPath string `json:"keypair_path"`
}

// LoadSolanaCLIConfig reads the Solana CLI YAML config at path. A missing
// file yields the Solana defaults.
func LoadSolanaCLIConfig(path string) (*SolanaCLIConfig, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(expanded)
	v.SetConfigType("yaml")
	v.SetDefault("json_rpc_url", DefaultRPCURL)
	v.SetDefault("keypair_path", DefaultKeypairPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read solana cli config %s: %w", expanded, err)
		}
		log.Debug().Str("path", expanded).Msg("solana cli config not found, using defaults")
	}

	return &SolanaCLIConfig{
		JSONRPCURL:  v.GetString("json_rpc_url"),
		KeypairPath: v.GetString("keypair_path"),
	}, nil
}

// GetConfigDir returns the user's config directory for this tool.
func GetConfigDir() (string, error) {
	confDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(confDir, "shdw-drive"), nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
