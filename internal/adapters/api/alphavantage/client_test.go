package alphavantage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miroslawsteblik/selene/internal/core/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthenticatedClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, "test-api-key", testLogger())
	require.NoError(t, c.Authenticate(context.Background()))
	return c
}

func TestAuthenticate(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"function": r.URL.Query().Get("function"),
			"symbol":   r.URL.Query().Get("symbol"),
			"apikey":   r.URL.Query().Get("apikey"),
		}
		w.Write([]byte(`{"Global Quote": {"05. price": "189.30"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-api-key", testLogger())
	assert.False(t, c.IsAuthenticated())

	require.NoError(t, c.Authenticate(context.Background()))
	assert.True(t, c.IsAuthenticated())
	assert.Equal(t, "GLOBAL_QUOTE", gotQuery["function"])
	assert.Equal(t, "AAPL", gotQuery["symbol"])
	assert.Equal(t, "test-api-key", gotQuery["apikey"])
}

func TestAuthenticateRejectedKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"Error Message": "the apikey is invalid"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bad-key", testLogger())
	err := c.Authenticate(context.Background())

	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	assert.False(t, c.IsAuthenticated())
}

func TestAuthenticateNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-api-key", testLogger())
	assert.ErrorIs(t, c.Authenticate(context.Background()), domain.ErrNotAuthenticated)
}

func TestGetMarketDataRequiresAuthentication(t *testing.T) {
	c := NewClient("http://localhost:1", "test-api-key", testLogger())

	resp, err := c.GetMarketData(context.Background(), "AAPL")
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestGetMarketData(t *testing.T) {
	c := newAuthenticatedClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Global Quote": {"05. price": "189.30", "06. volume": "1000"}}`))
	})

	resp, err := c.GetMarketData(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.True(t, resp.IsSuccessful())
	assert.True(t, resp.HasData())
	assert.Contains(t, resp.Data, "Global Quote")
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.GreaterOrEqual(t, resp.ExecutionTimeMS, int64(0))
}

func TestGetMarketDataNon200(t *testing.T) {
	c := newAuthenticatedClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("symbol") == "AAPL" {
			w.Write([]byte(`{}`))
			return
		}
		http.Error(w, "not found", http.StatusNotFound)
	})

	resp, err := c.GetMarketData(context.Background(), "NOPE")
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, resp.IsSuccessful())
	assert.False(t, resp.HasData())
}

type failingHTTPClient struct{ err error }

func (f *failingHTTPClient) Do(*http.Request) (*http.Response, error) {
	return nil, f.err
}

func TestGetMarketDataTransportFailure(t *testing.T) {
	c := newAuthenticatedClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`))
	})
	// Swap in a transport that fails after authentication succeeded.
	c.httpClient = &failingHTTPClient{err: errors.New("connection refused")}

	resp, err := c.GetMarketData(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, resp.Data["error"], "connection refused")
}

func TestGetMarketDataMalformedBody(t *testing.T) {
	c := newAuthenticatedClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("symbol") == "AAPL" {
			w.Write([]byte(`{}`))
			return
		}
		w.Write([]byte(`not json`))
	})

	resp, err := c.GetMarketData(context.Background(), "MSFT")
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, resp.Data["error"], "decoding response")
}

func TestGetBulkMarketData(t *testing.T) {
	c := NewClient("http://localhost:1", "test-api-key", testLogger())

	resp, err := c.GetBulkMarketData(context.Background(), []string{"AAPL", "MSFT"})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrNotSupported)
}
