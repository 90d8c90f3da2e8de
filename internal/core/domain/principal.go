package domain

// Principal is the already-authenticated caller supplied to every core
// operation. The core never verifies credentials; the auth layer builds a
// Principal from validated token claims.
type Principal struct {
	ID   int64
	Role string
}

// IsAdmin reports whether the principal holds the global admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
