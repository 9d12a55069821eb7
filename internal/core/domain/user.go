package domain

import "strings"

var roleLabels = map[string]string{
	RoleAdmin: "Quản trị viên",
	RoleStaff: "Nhân viên",
}

// User is a warehouse account shown in the user-management table.
type User struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	Username    string `json:"username"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role"`
	RoleLabel   string `json:"roleLabel"`
	IsActive    bool   `json:"isActive"`
}

// UserInput carries the editable fields for create and update calls.
type UserInput struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Username    string `json:"userName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Password    string `json:"password,omitempty"`
	Role        string `json:"role"`
}

// RoleLabel returns the display label for a role identifier, ignoring case.
func RoleLabel(role string) string {
	if label, ok := roleLabels[NormalizeRole(role)]; ok {
		return label
	}
	return roleLabels[RoleStaff]
}

// MatchesSearch reports whether query is a case-insensitive substring of the
// full name, username, email or phone number. An empty query matches.
func (u User) MatchesSearch(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, field := range []string{u.FullName, u.Username, u.Email, u.PhoneNumber} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// FilterUsers returns the users matching query, preserving order.
func FilterUsers(users []User, query string) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		if u.MatchesSearch(query) {
			out = append(out, u)
		}
	}
	return out
}
