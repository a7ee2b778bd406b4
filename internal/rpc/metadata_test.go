package rpc

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/censudex/gateway/internal/auth"
)

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		name string
		role auth.Role
		want string
	}{
		{name: "admin", role: auth.RoleAdmin, want: "admin"},
		{name: "user becomes client", role: auth.RoleUser, want: "client"},
		{name: "unknown passes through", role: auth.Role("Auditor"), want: "Auditor"},
		{name: "empty stays empty", role: auth.Role(""), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRole(tt.role))
		})
	}
}

func TestCallMetaAppliesOnlyNonEmptyFields(t *testing.T) {
	header := http.Header{}
	meta := NewCallMeta(auth.Identity{
		SubjectID: "u-1",
		Role:      auth.RoleUser,
	}, "Bearer raw-token")
	meta.apply(header)

	assert.Equal(t, "u-1", header.Get("x-user-id"))
	assert.Equal(t, "client", header.Get("x-user-role"))
	assert.Empty(t, header.Get("x-user-email"), "empty email must be omitted")
	assert.Equal(t, "Bearer raw-token", header.Get("authorization"))
}

func TestCallMetaFullIdentity(t *testing.T) {
	header := http.Header{}
	meta := NewCallMeta(auth.Identity{
		SubjectID: "admin-7",
		Role:      auth.RoleAdmin,
		Email:     "admin@example.com",
	}, "Bearer t")
	meta.apply(header)

	assert.Equal(t, "admin-7", header.Get("x-user-id"))
	assert.Equal(t, "admin", header.Get("x-user-role"))
	assert.Equal(t, "admin@example.com", header.Get("x-user-email"))
}

func TestNilCallMetaIsNoop(t *testing.T) {
	header := http.Header{}
	var meta *CallMeta
	meta.apply(header)
	assert.Empty(t, header)
}
