package models

import "time"

// Membership roles.
const (
	RoleLead   = "lead"
	RoleMember = "member"
)

// Team groups users within an organization. LeadUserID is nil only when a
// team ended up with no members; otherwise it references the first member
// enrolled into the team.
type Team struct {
	TeamID         string    `json:"team_id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	LeadUserID     *string   `json:"lead_user_id"`
}

// TeamMembership links a user to a team. JoinedAt never precedes either the
// team's or the user's creation time, and IsActive mirrors the user's flag.
type TeamMembership struct {
	TeamMembershipID string    `json:"team_membership_id"`
	TeamID           string    `json:"team_id"`
	UserID           string    `json:"user_id"`
	JoinedAt         time.Time `json:"joined_at"`
	Role             string    `json:"role"`
	IsActive         bool      `json:"is_active"`
}
