package config

import (
	"encoding/json"
	"fmt"
)

// AuthKind discriminates AuthMode.
type AuthKind int

const (
	// AuthNone sends no bearer token.
	AuthNone AuthKind = iota
	// AuthLiteral sends a pre-supplied token as is.
	AuthLiteral
	// AuthAutoSignIn obtains a token through the sign-in handshake.
	AuthAutoSignIn
)

func (k AuthKind) String() string {
	switch k {
	case AuthLiteral:
		return "literal"
	case AuthAutoSignIn:
		return "auto-sign-in"
	default:
		return "none"
	}
}

// AuthMode is the parsed form of the --auth setting, resolved once so the
// sentinel keyword is only compared here.
type AuthMode struct {
	Kind  AuthKind
	Token string
}

// ParseAuthMode interprets the raw --auth value.
func ParseAuthMode(raw string) AuthMode {
	switch raw {
	case "":
		return AuthMode{Kind: AuthNone}
	case AutoSignInKeyword:
		return AuthMode{Kind: AuthAutoSignIn}
	default:
		return AuthMode{Kind: AuthLiteral, Token: raw}
	}
}

func (m AuthMode) String() string {
	return m.Kind.String()
}

// MarshalJSON never exposes a literal token.
func (m AuthMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Kind.String())
}

// Overrides carries the values given on the command line. Empty fields fall
// back to the Solana CLI config.
type Overrides struct {
	ConfigPath  string
	KeypairPath string
	URL         string
	Auth        string
	SkipConfirm bool
}

// Settings is the fully resolved configuration of one invocation.
type Settings struct {
	KeypairPath string    `json:"keypair_path"`
	RPCURL      string    `json:"rpc_url"`
	Auth        AuthMode  `json:"auth"`
	SkipConfirm bool      `json:"skip_confirm"`
	Endpoints   Endpoints `json:"endpoints"`
}

// Resolve merges command line overrides, the Solana CLI config and the
// environment into Settings.
func Resolve(o Overrides) (*Settings, error) {
	cfgPath := o.ConfigPath
	if cfgPath == "" {
		cfgPath = DefaultCLIConfig
	}
	cliConfig, err := LoadSolanaCLIConfig(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	settings := &Settings{
		KeypairPath: cliConfig.KeypairPath,
		RPCURL:      cliConfig.JSONRPCURL,
		Auth:        ParseAuthMode(o.Auth),
		SkipConfirm: o.SkipConfirm,
		Endpoints:   LoadEndpoints(),
	}
	if o.KeypairPath != "" {
		settings.KeypairPath = o.KeypairPath
	}
	if o.URL != "" {
		settings.RPCURL = o.URL
	}
	return settings, nil
}
