package gate

import "strings"

// Endpoints that never require token validation.
var defaultPublicPrefixes = []string{
	"/auth/login",
	"/auth/logout",
	"/auth/validate",
	"/health",
	"/swagger",
	"/openapi",
}

// PublicRule decides whether a path and method pair bypasses the gate.
type PublicRule struct {
	prefixes []string
}

// NewPublicRule builds the default allowlist.
func NewPublicRule() PublicRule {
	return PublicRule{prefixes: defaultPublicPrefixes}
}

// Matches reports whether the request is public. Client registration
// (POST /clients) and anonymous lookup by id (GET /clients/...) are
// public regardless of the prefix list.
func (r PublicRule) Matches(path, method string) bool {
	path = strings.ToLower(path)
	method = strings.ToUpper(method)

	if strings.HasPrefix(path, "/clients") && method == "POST" {
		return true
	}
	if strings.HasPrefix(path, "/clients/") && method == "GET" {
		return true
	}

	for _, prefix := range r.prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
