package models

import "time"

// Project types drive section layout, task naming, completion rates, and
// estimation behavior downstream.
const (
	ProjectTypeSprint            = "sprint"
	ProjectTypeProductRoadmap    = "product_roadmap"
	ProjectTypeMarketingCampaign = "marketing_campaign"
	ProjectTypeBugTracking       = "bug_tracking"
	ProjectTypeOperational       = "operational"
	ProjectTypeOngoing           = "ongoing"
)

// Project statuses.
const (
	ProjectStatusActive   = "active"
	ProjectStatusArchived = "archived"
)

// Project is a body of work owned by an organization, optionally attached to
// a team. TeamID is nil for org-wide projects.
type Project struct {
	ProjectID      string    `json:"project_id"`
	OrganizationID string    `json:"organization_id"`
	TeamID         *string   `json:"team_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	OwnerID        string    `json:"owner_id"`
	Status         string    `json:"status"`
	ProjectType    string    `json:"project_type"`
	IsArchived     bool      `json:"is_archived"`
}

// Section is a column within a project board. DisplayOrder starts at zero
// and increases without gaps inside a project.
type Section struct {
	SectionID    string    `json:"section_id"`
	ProjectID    string    `json:"project_id"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}
