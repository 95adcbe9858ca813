//go:build unit || !integration

package drive

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func TestIsTextResponse(t *testing.T) {
	for _, tc := range []struct {
		contentType string
		expected    bool
	}{
		{contentType: "text/plain", expected: true},
		{contentType: "text/plain; charset=utf-8", expected: false},
		{contentType: "application/json", expected: false},
		{contentType: "", expected: false},
	} {
		h := http.Header{}
		if tc.contentType != "" {
			h.Set("Content-Type", tc.contentType)
		}
		require.Equal(t, tc.expected, IsTextResponse(h), tc.contentType)
	}
}

func TestURL(t *testing.T) {
	account := testAccount(t)
	require.Equal(t, "https://shdw-drive.genesysgo.net/"+account.String()+"/a.txt",
		URL("https://shdw-drive.genesysgo.net/", account, "a.txt"))
}

// objectServer serves one object at /{account}/{file} and counts requests by method.
func objectServer(t *testing.T, contentType, lastModified, body string) (string, map[string]int) {
	t.Helper()
	calls := map[string]int{}
	r := mux.NewRouter()
	r.HandleFunc("/{account}/{file}", func(w http.ResponseWriter, req *http.Request) {
		calls[req.Method]++
		w.Header().Set("Content-Type", contentType)
		if lastModified != "" {
			w.Header().Set("Last-Modified", lastModified)
		}
		if req.Method == http.MethodGet {
			_, _ = w.Write([]byte(body))
		}
	}).Methods(http.MethodHead, http.MethodGet)
	return newServer(t, r), calls
}

func TestGetText(t *testing.T) {
	const lastModified = "Wed, 21 Oct 2015 07:28:00 GMT"
	base, calls := objectServer(t, "text/plain", lastModified, "hello world")
	client := NewHTTPClient(base, testSigner(t))
	location := URL(base, testAccount(t), "hello.txt")

	text, err := client.GetText(context.Background(), location)
	require.NoError(t, err)
	require.Equal(t, location, text.Location)
	require.Equal(t, lastModified, text.LastModified)
	require.Equal(t, "hello world", text.Body)
	require.Equal(t, map[string]int{http.MethodHead: 1, http.MethodGet: 1}, calls)
}

func TestGetTextRejectsNonText(t *testing.T) {
	base, calls := objectServer(t, "text/plain; charset=utf-8", "x", "hello")
	client := NewHTTPClient(base, testSigner(t))
	location := URL(base, testAccount(t), "hello.txt")

	_, err := client.GetText(context.Background(), location)
	var notText *NotTextError
	require.True(t, errors.As(err, &notText))
	require.Equal(t, location, notText.Location)
	require.Contains(t, err.Error(), location)
	require.Zero(t, calls[http.MethodGet], "body must not be fetched")
}

func TestGetTextWithoutLastModified(t *testing.T) {
	base, _ := objectServer(t, "text/plain", "", "hello")
	client := NewHTTPClient(base, testSigner(t))

	_, err := client.GetText(context.Background(), URL(base, testAccount(t), "hello.txt"))
	require.ErrorIs(t, err, ErrNoLastModified)
}

func TestGetTextMissingObject(t *testing.T) {
	r := mux.NewRouter()
	base := newServer(t, r)
	client := NewHTTPClient(base, testSigner(t))

	_, err := client.GetText(context.Background(), URL(base, testAccount(t), "missing.txt"))
	require.Error(t, err)
}
