package session

import "time"

// RoleType is the user's global role as reported by the API.
type RoleType string

const (
	RoleAdmin   RoleType = "admin"
	RoleManager RoleType = "manager"
	RoleMember  RoleType = "member"
	RoleGuest   RoleType = "guest"
)

// User is the authenticated user's profile, persisted alongside the token.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      RoleType  `json:"role"`
	IsActive  bool      `json:"is_active"`
	Bio       string    `json:"bio,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u User) GetID() int64 {
	return u.ID
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// IsManager is true for managers and admins.
func (u *User) IsManager() bool {
	return u != nil && (u.Role == RoleManager || u.Role == RoleAdmin)
}
