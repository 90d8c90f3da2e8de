package domain

// Global user roles.
const (
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleProgrammer = "programmer"
	RoleDesigner   = "designer"
)

// UserRoles lists every valid global role.
var UserRoles = []string{RoleAdmin, RoleManager, RoleProgrammer, RoleDesigner}

// User models an account in the studio. PasswordHash is opaque to the core
// and is stripped from every value that leaves a service.
type User struct {
	ID           int64   `json:"id" bson:"_id"`
	Username     string  `json:"username" bson:"username"`
	PasswordHash string  `json:"-" bson:"password_hash"`
	Name         string  `json:"name" bson:"name"`
	Email        string  `json:"email" bson:"email"`
	Role         string  `json:"role" bson:"role"`
	Avatar       *string `json:"avatar,omitempty" bson:"avatar,omitempty"`
}

// UserProfile is the public snapshot of a user embedded in joined records
// (members, comments). It never carries credentials.
type UserProfile struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Email    string  `json:"email,omitempty"`
	Role     string  `json:"role,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}

// Profile returns the public snapshot of u.
func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		Avatar:   u.Avatar,
	}
}

// AuthorProfile returns the reduced snapshot used on comment joins: no email
// or role, matching what the dashboard renders next to a comment.
func (u *User) AuthorProfile() UserProfile {
	return UserProfile{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Avatar:   u.Avatar,
	}
}

// ValidUserRole reports whether role is one of the global user roles.
func ValidUserRole(role string) bool {
	for _, r := range UserRoles {
		if r == role {
			return true
		}
	}
	return false
}
