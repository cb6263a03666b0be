package models

import "time"

// User is a member of an organization. Emails are unique within the
// organization. LastSeen is set for active users only.
type User struct {
	UserID         string     `json:"user_id"`
	OrganizationID string     `json:"organization_id"`
	Email          string     `json:"email"`
	Name           string     `json:"name"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	AvatarURL      string     `json:"avatar_url"`
	CreatedAt      time.Time  `json:"created_at"`
	IsActive       bool       `json:"is_active"`
	LastSeen       *time.Time `json:"last_seen"`
}
