package domain

import "strings"

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// NormalizeRole maps a backend role name to its canonical lower-case form,
// so "Admin" and "admin" are the same role.
func NormalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}

// Identity is the logged-in principal as reported by the backend.
type Identity struct {
	Username string `json:"username"`
	FullName string `json:"fullName,omitempty"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar,omitempty"`
}

// DisplayName returns the full name, falling back to the username.
func (i Identity) DisplayName() string {
	if i.FullName != "" {
		return i.FullName
	}
	return i.Username
}

// Credentials is the canonical result of a successful login round-trip.
type Credentials struct {
	Token    string
	Identity Identity
}

// Session is the in-memory pairing of the current identity with the startup
// loading flag. A nil Identity means anonymous.
type Session struct {
	Identity  *Identity
	IsLoading bool
}

func (s Session) IsAuthenticated() bool {
	return s.Identity != nil
}
