package models

import "time"

// Organization is the workspace tenant that owns every other record in a
// generated dataset. Its CreatedAt anchors the simulation window: every
// descendant entity is created at or after this instant.
type Organization struct {
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Domain         string    `json:"domain"`
	Industry       string    `json:"industry"`
	EmployeeCount  int       `json:"employee_count"`
	CreatedAt      time.Time `json:"created_at"`
	IsVerified     bool      `json:"is_verified"`
}
