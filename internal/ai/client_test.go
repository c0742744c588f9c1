package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Generate_EscapesPromptIntoPath(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte("===EXECUTIVE_SUMMARY===\nHello"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL + "/")
	out, err := client.Generate(context.Background(), "Client: Acme / Co?\nTone: concise")

	require.NoError(t, err)
	assert.Equal(t, "===EXECUTIVE_SUMMARY===\nHello", out)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/Client%3A%20Acme%20%2F%20Co%3F%0ATone%3A%20concise", gotPath)
}

func TestClient_Generate_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Generate(context.Background(), "hi")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestClient_Generate_ClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Generate(context.Background(), "hi")
	assert.Error(t, err)
}

func TestClient_Generate_RespectsContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewClient(srv.URL).Generate(ctx, "slow")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_Generate_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).Generate(context.Background(), "hi")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "ai:"))
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	assert.Equal(t, DefaultBaseURL, NewClient("").baseURL)
}

func TestClient_Generate_EscapesReservedCharacters(t *testing.T) {
	var gotURI string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURI = r.RequestURI
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Generate(context.Background(), "Client: A&B ===X=== $5+tax #1 (draft)! ~*'")

	require.NoError(t, err)
	assert.Equal(t, "/Client%3A%20A%26B%20%3D%3D%3DX%3D%3D%3D%20%245%2Btax%20%231%20(draft)!%20~*'", gotURI)
}

func TestEncodeURIComponent(t *testing.T) {
	tests := map[string]string{
		"":          "",
		"abcXYZ019": "abcXYZ019",
		"-_.!~*'()": "-_.!~*'()",
		"a b":       "a%20b",
		"1+1=2":     "1%2B1%3D2",
		"/?#[]@":    "%2F%3F%23%5B%5D%40",
		"привет":    "%D0%BF%D1%80%D0%B8%D0%B2%D0%B5%D1%82",
		"\n":        "%0A",
	}
	for in, want := range tests {
		assert.Equal(t, want, encodeURIComponent(in), in)
	}
}
