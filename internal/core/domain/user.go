package domain

import "time"

// UserRole distinguishes the chartered accountant (privileged) role from
// regular employees. All role literals live here; route declarations and
// services go through CheckRole rather than comparing strings.
type UserRole string

const (
	RoleCA       UserRole = "CA"
	RoleEmployee UserRole = "EMPLOYEE"
)

// IsValid reports whether the role is one of the known roles.
func (r UserRole) IsValid() bool {
	return r == RoleCA || r == RoleEmployee
}

// CheckRole reports whether a user holding userRole may perform an action
// that requires the given role. CA satisfies every requirement.
func CheckRole(userRole, required UserRole) bool {
	if userRole == RoleCA {
		return true
	}
	return userRole == required
}

// User represents an application user.
type User struct {
	UserID       string     `json:"userID"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FullName     string     `json:"fullName"`
	Phone        string     `json:"phone"`
	Role         UserRole   `json:"role"`
	IsActive     bool       `json:"isActive"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	AuditFields
}

// GoogleUserInfo holds the subset of the Google userinfo payload we consume.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
