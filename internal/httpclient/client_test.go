package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/flexprice/dpp-gateway/internal/config"
	ierr "github.com/flexprice/dpp-gateway/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendPostWithBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "abc", r.Header.Get("PartnerToken"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"amount":10}`, string(body))

		w.Header().Set("X-Trace", "t-1")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"p_1"}`))
	}))
	defer srv.Close()

	c := NewDefaultClient(config.GetDefaultConfig())
	resp, err := c.Send(context.Background(), &Request{
		Method:  "post",
		URL:     srv.URL + "/payments",
		Headers: map[string]string{"PartnerToken": "abc"},
		Body:    []byte(`{"amount":10}`),
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, `{"id":"p_1"}`, string(resp.Body))
	assert.Equal(t, "t-1", resp.Headers["X-Trace"])
}

func TestSendNon2xxReturnsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"bad amount"}`))
	}))
	defer srv.Close()

	c := NewClientWithHTTP(srv.Client())
	resp, err := c.Send(context.Background(), &Request{Method: http.MethodGet, URL: srv.URL})
	require.Error(t, err)
	assert.Nil(t, resp)

	httpErr, ok := IsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.StatusCode)
	assert.JSONEq(t, `{"error":"bad amount"}`, string(httpErr.Response))
	assert.True(t, ierr.IsHTTPClient(err))
	assert.Contains(t, err.Error(), "status 422")
}

func TestSendUnsupportedMethod(t *testing.T) {
	c := NewClientWithHTTP(nil)
	_, err := c.Send(context.Background(), &Request{Method: http.MethodDelete, URL: "http://127.0.0.1:1"})
	require.Error(t, err)
	assert.True(t, ierr.IsInvalidOperation(err))
}

func TestSendNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClientWithHTTP(&http.Client{Timeout: time.Second})
	_, err := c.Send(context.Background(), &Request{Method: http.MethodGet, URL: url})
	require.Error(t, err)
	assert.True(t, ierr.IsHTTPClient(err))

	_, isStatus := IsHTTPError(err)
	assert.False(t, isStatus)
}
