package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTokenRoundTrip(t *testing.T) {
	token, err := SignToken("secret", Identity{
		SubjectID: "user-1",
		Role:      RoleAdmin,
		Email:     "admin@example.com",
	}, time.Minute)
	require.NoError(t, err)

	claims, err := NewTokenManager("secret").ParseToken(token)
	require.NoError(t, err)

	identity := claims.Identity()
	assert.Equal(t, "user-1", identity.SubjectID)
	assert.Equal(t, RoleAdmin, identity.Role)
	assert.Equal(t, "admin@example.com", identity.Email)
	assert.True(t, identity.IsAdmin())
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := SignToken("secret", Identity{SubjectID: "user-1"}, time.Minute)
	require.NoError(t, err)

	_, err = NewTokenManager("other-secret").ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, err := SignToken("secret", Identity{SubjectID: "user-1"}, -time.Minute)
	require.NoError(t, err)

	_, err = NewTokenManager("secret").ParseToken(token)
	assert.Error(t, err)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{name: "bearer", header: "Bearer abc", want: "abc", ok: true},
		{name: "case insensitive scheme", header: "bearer abc", want: "abc", ok: true},
		{name: "empty", header: "", ok: false},
		{name: "wrong scheme", header: "Basic abc", ok: false},
		{name: "no token", header: "Bearer", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BearerToken(tt.header)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
