package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/polyrabbit/coin-chat/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte(r.URL.RawQuery))
		case "/agent":
			w.Write([]byte(r.Header.Get("User-Agent")))
		default:
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(strings.Repeat("x", 300)))
		}
	}))
	defer server.Close()

	client := New(&config.Config{Timeout: 5})

	t.Run("query params are encoded", func(t *testing.T) {
		body, err := client.Get(server.URL+"/ok", map[string]string{"ids": "matic-network", "vs_currencies": "usd"})
		require.NoError(t, err)
		assert.Equal(t, "ids=matic-network&vs_currencies=usd", string(body))
	})

	t.Run("user agent is set", func(t *testing.T) {
		body, err := client.Get(server.URL+"/agent", nil)
		require.NoError(t, err)
		assert.Contains(t, string(body), "coin-chat")
	})

	t.Run("non-200 returns ResponseError", func(t *testing.T) {
		body, err := client.Get(server.URL+"/limited", nil)
		require.Error(t, err)
		respErr, ok := errors.Cause(err).(*ResponseError)
		require.True(t, ok, "expecting *ResponseError, got %T", err)
		assert.Equal(t, http.StatusTooManyRequests, respErr.StatusCode)
		assert.Len(t, body, 300)
		assert.True(t, len(respErr.Error()) < 300, "error message should truncate the body")
	})

	t.Run("connection refused", func(t *testing.T) {
		_, err := client.Get("http://127.0.0.1:1/nowhere", nil)
		require.Error(t, err)
		_, isRespErr := err.(*ResponseError)
		assert.False(t, isRespErr)
	})
}

func TestNew(t *testing.T) {
	t.Run("timeout", func(t *testing.T) {
		client := New(&config.Config{Timeout: 7})
		assert.Equal(t, "7s", client.StdClient.Timeout.String())
	})

	t.Run("bad proxy falls back to system proxy", func(t *testing.T) {
		client := New(&config.Config{Proxy: "://bad"})
		assert.Nil(t, client.StdClient.Transport)
	})

	t.Run("proxy", func(t *testing.T) {
		client := New(&config.Config{Proxy: "socks5://localhost:1080"})
		assert.NotNil(t, client.StdClient.Transport)
	})
}
