package auth

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/shdw-drive/shdw-cli/internal/config"
	"github.com/shdw-drive/shdw-cli/internal/signer"
)

// Resolve turns the configured auth mode into the bearer token for this
// invocation. An empty string means no Authorization header.
func (c *Client) Resolve(ctx context.Context, mode config.AuthMode, rpcURL string, s signer.Signer) (string, error) {
	switch mode.Kind {
	case config.AuthLiteral:
		return mode.Token, nil
	case config.AuthAutoSignIn:
		accountID, err := ParseAccountID(rpcURL, c.endpoints.DomainMarker)
		if err != nil {
			return "", err
		}
		log.Ctx(ctx).Debug().Str("account_id", accountID).Msg("signing in")
		return c.SignIn(ctx, s, accountID)
	default:
		return "", nil
	}
}
