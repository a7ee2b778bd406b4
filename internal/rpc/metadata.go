package rpc

import (
	"net/http"

	"github.com/censudex/gateway/internal/auth"
)

// Metadata keys understood by the backend services.
const (
	headerUserID        = "x-user-id"
	headerUserRole      = "x-user-role"
	headerUserEmail     = "x-user-email"
	headerAuthorization = "authorization"
)

// CallMeta carries the caller identity forwarded to backend calls.
type CallMeta struct {
	Identity   auth.Identity
	AuthHeader string
}

// NewCallMeta bundles the verified identity with the raw bearer header
// so a backend can independently re-derive the caller if needed.
func NewCallMeta(identity auth.Identity, authHeader string) *CallMeta {
	return &CallMeta{Identity: identity, AuthHeader: authHeader}
}

// NormalizeRole maps the inbound role names to the vocabulary the
// backend services expect. Unknown roles pass through unchanged.
func NormalizeRole(role auth.Role) string {
	switch role {
	case auth.RoleAdmin:
		return "admin"
	case auth.RoleUser:
		return "client"
	default:
		return string(role)
	}
}

// apply writes the outbound metadata headers. Only non-empty fields are
// included.
func (m *CallMeta) apply(header http.Header) {
	if m == nil {
		return
	}
	if m.Identity.SubjectID != "" {
		header.Set(headerUserID, m.Identity.SubjectID)
	}
	if role := NormalizeRole(m.Identity.Role); role != "" {
		header.Set(headerUserRole, role)
	}
	if m.Identity.Email != "" {
		header.Set(headerUserEmail, m.Identity.Email)
	}
	if m.AuthHeader != "" {
		header.Set(headerAuthorization, m.AuthHeader)
	}
}
