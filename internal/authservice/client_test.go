package authservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/censudex/gateway/internal/config"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.AuthConfig{
		ServiceBaseURL:        baseURL,
		ServiceTimeoutSeconds: 5,
	}, zap.NewNop())
}

func TestValidateForwardsAuthorizationHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/auth/validate", r.URL.Path)
		_ = json.NewEncoder(w).Encode(ValidationResult{IsValid: true})
	}))
	defer srv.Close()

	result, err := newTestClient(srv.URL).Validate(context.Background(), "Bearer abc")
	require.NoError(t, err)
	assert.True(t, result.IsValid)
	assert.Equal(t, "Bearer abc", gotAuth)
}

func TestValidateInvalidVerdict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(ValidationResult{IsValid: false, Message: "token expired"})
	}))
	defer srv.Close()

	result, err := newTestClient(srv.URL).Validate(context.Background(), "Bearer abc")
	require.NoError(t, err)
	assert.False(t, result.IsValid)
	assert.Equal(t, "token expired", result.Message)
}

func TestValidateNon2xxMeansInvalidNotError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(ValidationResult{IsValid: true, Message: "revoked"})
	}))
	defer srv.Close()

	result, err := newTestClient(srv.URL).Validate(context.Background(), "Bearer abc")
	require.NoError(t, err, "a rejection is a verdict, not a transport failure")
	assert.False(t, result.IsValid)
	assert.Equal(t, "revoked", result.Message)
}

func TestValidateTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := newTestClient(srv.URL).Validate(context.Background(), "Bearer abc")
	require.Error(t, err)
}

func TestLoginPassesThroughStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"token":"xyz"}`))
	}))
	defer srv.Close()

	status, body, err := newTestClient(srv.URL).Login(context.Background(), []byte(`{"username":"u","password":"p"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"token":"xyz"}`, string(body))
}

func TestLogoutForwardsBearerHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/auth/logout", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	status, _, err := newTestClient(srv.URL).Logout(context.Background(), "Bearer abc")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, status)
	assert.Equal(t, "Bearer abc", gotAuth)
}
