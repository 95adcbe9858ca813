//go:build unit || !integration

package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shdw-drive/shdw-cli/internal/config"
	"github.com/shdw-drive/shdw-cli/internal/crypto"
	"github.com/shdw-drive/shdw-cli/internal/signer"
)

const testAccountID = "ACC123"

func testSigner(t *testing.T) signer.Signer {
	t.Helper()
	kp, err := crypto.KeypairFromSeed(bytes.Repeat([]byte{7}, 32))
	require.NoError(t, err)
	return signer.NewKeypairSigner(kp, false)
}

// portal fakes the two sign-in endpoints and records what it received.
type portal struct {
	step1Calls  int
	step2Calls  int
	step1Body   SignInRequest
	step2Bearer string
	step2Path   string

	step1Status int
	step1Reply  string
	step2Status int
	step2Reply  string
}

func newPortal() *portal {
	return &portal{
		step1Status: http.StatusOK,
		step1Reply:  `{"token":"intermediate","user":{"id":42,"publicKey":"pk","createdAt":"c","updatedAt":"u"}}`,
		step2Status: http.StatusOK,
		step2Reply:  `{"token":"final"}`,
	}
}

func (p *portal) start(t *testing.T) config.Endpoints {
	t.Helper()
	r := mux.NewRouter()
	r.HandleFunc("/api/signin", func(w http.ResponseWriter, req *http.Request) {
		p.step1Calls++
		_ = json.NewDecoder(req.Body).Decode(&p.step1Body)
		w.WriteHeader(p.step1Status)
		_, _ = w.Write([]byte(p.step1Reply))
	}).Methods(http.MethodPost)
	r.HandleFunc("/api/premium/token/{account}", func(w http.ResponseWriter, req *http.Request) {
		p.step2Calls++
		p.step2Bearer = req.Header.Get("Authorization")
		p.step2Path = mux.Vars(req)["account"]
		w.WriteHeader(p.step2Status)
		_, _ = w.Write([]byte(p.step2Reply))
	}).Methods(http.MethodPost)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return config.Endpoints{
		SignInURL:       server.URL + "/api/signin",
		PremiumTokenURL: server.URL + "/api/premium/token",
		DriveURL:        server.URL,
		DomainMarker:    config.DefaultDomainMarker,
	}
}

func TestSignIn(t *testing.T) {
	p := newPortal()
	client := NewClient(p.start(t))
	s := testSigner(t)

	token, err := client.SignIn(context.Background(), s, testAccountID)
	require.NoError(t, err)
	require.Equal(t, "final", token)

	t.Run("step 1 carries a verifiable signature", func(t *testing.T) {
		require.Equal(t, s.PublicKey().String(), p.step1Body.Signer)
		expected := s.Sign([]byte(SignInMessage))
		require.Equal(t, expected.String(), p.step1Body.Message)
		require.True(t, expected.Verify(s.PublicKey(), []byte(SignInMessage)))
	})

	t.Run("step 2 uses the intermediate token and account ID", func(t *testing.T) {
		require.Equal(t, "Bearer intermediate", p.step2Bearer)
		require.Equal(t, testAccountID, p.step2Path)
	})
}

func TestSignInStep1Failure(t *testing.T) {
	for _, tc := range []struct {
		name   string
		status int
		reply  string
	}{
		{name: "server error", status: http.StatusInternalServerError, reply: "boom"},
		{name: "malformed json", status: http.StatusOK, reply: "not json"},
		{name: "missing token", status: http.StatusOK, reply: `{"user":{"id":1}}`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := newPortal()
			p.step1Status = tc.status
			p.step1Reply = tc.reply
			client := NewClient(p.start(t))

			token, err := client.SignIn(context.Background(), testSigner(t), testAccountID)
			require.Error(t, err)
			require.Empty(t, token)
			require.Equal(t, 0, p.step2Calls, "step 2 must not run when step 1 fails")

			var handshakeErr *HandshakeError
			require.True(t, errors.As(err, &handshakeErr))
			require.Equal(t, 1, handshakeErr.Step)
		})
	}
}

func TestSignInStep2Failure(t *testing.T) {
	p := newPortal()
	p.step2Status = http.StatusUnauthorized
	p.step2Reply = `{"error":"invalid token"}`
	client := NewClient(p.start(t))

	_, err := client.SignIn(context.Background(), testSigner(t), testAccountID)
	require.Error(t, err)
	require.Equal(t, 1, p.step1Calls)

	var handshakeErr *HandshakeError
	require.True(t, errors.As(err, &handshakeErr))
	assert.Equal(t, 2, handshakeErr.Step)
	assert.Equal(t, http.StatusUnauthorized, handshakeErr.StatusCode)
}

func TestSignInUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	endpoints := config.Endpoints{SignInURL: server.URL + "/api/signin", PremiumTokenURL: server.URL}
	server.Close()

	_, err := NewClient(endpoints).SignIn(context.Background(), testSigner(t), testAccountID)
	var handshakeErr *HandshakeError
	require.True(t, errors.As(err, &handshakeErr))
	require.Equal(t, 1, handshakeErr.Step)
	require.Zero(t, handshakeErr.StatusCode)
}

func TestResolve(t *testing.T) {
	t.Run("none sends no token", func(t *testing.T) {
		p := newPortal()
		client := NewClient(p.start(t))
		token, err := client.Resolve(context.Background(), config.ParseAuthMode(""), "https://api.mainnet-beta.solana.com", testSigner(t))
		require.NoError(t, err)
		require.Empty(t, token)
		require.Zero(t, p.step1Calls)
	})

	t.Run("literal token is used as is", func(t *testing.T) {
		p := newPortal()
		client := NewClient(p.start(t))
		token, err := client.Resolve(context.Background(), config.ParseAuthMode("abc"), "https://example.com", testSigner(t))
		require.NoError(t, err)
		require.Equal(t, "abc", token)
		require.Zero(t, p.step1Calls)
	})

	t.Run("auto sign-in derives the account from the rpc url", func(t *testing.T) {
		p := newPortal()
		client := NewClient(p.start(t))
		token, err := client.Resolve(context.Background(), config.ParseAuthMode(config.AutoSignInKeyword),
			"https://us-west-1.genesysgo.net/"+testAccountID, testSigner(t))
		require.NoError(t, err)
		require.Equal(t, "final", token)
		require.Equal(t, testAccountID, p.step2Path)
	})

	t.Run("auto sign-in rejects foreign rpc urls before any request", func(t *testing.T) {
		p := newPortal()
		client := NewClient(p.start(t))
		_, err := client.Resolve(context.Background(), config.ParseAuthMode(config.AutoSignInKeyword),
			"https://api.mainnet-beta.solana.com", testSigner(t))
		var idErr *AccountIDError
		require.True(t, errors.As(err, &idErr))
		require.Zero(t, p.step1Calls)
	})
}
