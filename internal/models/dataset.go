package models

import "time"

// Table names in dependency order. Sinks publish tables in this order so
// foreign keys always land after the rows they reference.
var TableOrder = []string{
	"organizations",
	"users",
	"teams",
	"team_memberships",
	"projects",
	"sections",
	"tasks",
	"subtasks",
	"comments",
	"custom_field_definitions",
	"custom_field_values",
	"tags",
	"task_tags",
	"attachments",
}

// Dataset is the complete output of one generation run, held in memory until
// a sink publishes it. Slices are ordered by creation within their stage.
type Dataset struct {
	Seed        uint64    `json:"seed"`
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
	GeneratedAt time.Time `json:"generated_at"`

	Organizations    []Organization          `json:"organizations"`
	Teams            []Team                  `json:"teams"`
	Users            []User                  `json:"users"`
	TeamMemberships  []TeamMembership        `json:"team_memberships"`
	Projects         []Project               `json:"projects"`
	Sections         []Section               `json:"sections"`
	Tasks            []Task                  `json:"tasks"`
	Subtasks         []Subtask               `json:"subtasks"`
	Comments         []Comment               `json:"comments"`
	FieldDefinitions []CustomFieldDefinition `json:"custom_field_definitions"`
	FieldValues      []CustomFieldValue      `json:"custom_field_values"`
	Tags             []Tag                   `json:"tags"`
	TaskTags         []TaskTag               `json:"task_tags"`
	Attachments      []Attachment            `json:"attachments"`
}

// Counts returns per-table row counts keyed by table name.
func (d *Dataset) Counts() map[string]int {
	return map[string]int{
		"organizations":            len(d.Organizations),
		"teams":                    len(d.Teams),
		"users":                    len(d.Users),
		"team_memberships":         len(d.TeamMemberships),
		"projects":                 len(d.Projects),
		"sections":                 len(d.Sections),
		"tasks":                    len(d.Tasks),
		"subtasks":                 len(d.Subtasks),
		"comments":                 len(d.Comments),
		"custom_field_definitions": len(d.FieldDefinitions),
		"custom_field_values":      len(d.FieldValues),
		"tags":                     len(d.Tags),
		"task_tags":                len(d.TaskTags),
		"attachments":              len(d.Attachments),
	}
}

// TotalRows returns the number of rows across all tables.
func (d *Dataset) TotalRows() int {
	total := 0
	for _, n := range d.Counts() {
		total += n
	}
	return total
}
