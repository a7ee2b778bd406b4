package auth

// Role is the inbound role vocabulary carried in token claims.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// Identity is the authenticated caller, derived once per request from
// verified token claims and read-only afterwards.
type Identity struct {
	SubjectID string
	Role      Role
	Email     string
}

// IsAdmin reports whether the caller holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
