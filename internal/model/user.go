package model

import (
	"strings"
	"time"
)

// User is an account holder. At most one User is the current session user at
// any time (single-session model).
type User struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// UpdateLastLogin stamps the last login time with now.
func (u *User) UpdateLastLogin() {
	now := time.Now()
	u.LastLogin = &now
}

func (u *User) Activate() {
	u.IsActive = true
}

func (u *User) Deactivate() {
	u.IsActive = false
}

// DisplayName returns the user's name, falling back to the email local part.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	local, _, _ := strings.Cut(u.Email, "@")
	return local
}

// IsRecentlyActive reports whether the user logged in within the last 7 days.
func (u *User) IsRecentlyActive() bool {
	if u.LastLogin == nil {
		return false
	}
	return time.Since(*u.LastLogin) <= 7*24*time.Hour
}
