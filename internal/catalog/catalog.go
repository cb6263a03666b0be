// Package catalog holds the fixed vocabularies the factories draw from:
// company and team names, project boards, task and comment templates, tag
// palettes, and custom field definitions. Keeping them in one place makes
// the generated workspace read consistently across entity types.
package catalog

// Companies seeds organization names. Runs needing more organizations than
// entries get numeric suffixes.
var Companies = []string{
	"TechFlow Solutions", "Vertex Analytics", "Nexus Platform",
	"Stellar Systems", "CloudVerse AI", "DataSync Pro", "Quantum Labs",
	"Aurora Cloud", "Prism Analytics", "Fusion Dynamics", "Zenith Tech",
	"Velocity Solutions", "Harmony Systems", "Nexar Global", "Cipher Labs",
}

// Industries organizations operate in.
var Industries = []string{
	"Software/SaaS", "FinTech", "E-commerce", "Media/Publishing",
	"Healthcare Tech", "EdTech", "Logistics", "Real Estate",
	"Enterprise Software", "Cloud Infrastructure",
}

// EmployeeCounts are the workforce sizes organizations report.
var EmployeeCounts = []int{200, 500, 1000, 2000, 5000, 10000}

// TeamNames seeds team names within an organization, suffixed numerically
// past the catalog.
var TeamNames = []string{
	"Product Development", "Engineering", "Marketing", "Sales",
	"Operations", "Customer Success", "DevOps", "QA & Testing",
	"Data Science", "Design", "Security", "Finance",
}

// ProjectNames seeds project names, unique per organization.
var ProjectNames = []string{
	"Product Roadmap Q4", "Mobile App Redesign", "API v2 Migration",
	"Dashboard Optimization", "Customer Portal Launch",
	"Infrastructure Modernization", "AI Integration", "Website Redesign",
}

// SectionsByType maps each project type to its board columns, in display
// order.
var SectionsByType = map[string][]string{
	"sprint":             {"Backlog", "Ready", "In Progress", "Review", "Done"},
	"product_roadmap":    {"Q4 2024", "Q1 2025", "Future", "On Hold"},
	"bug_tracking":       {"New", "Assigned", "In Progress", "Testing", "Resolved"},
	"marketing_campaign": {"Ideation", "Planning", "Execution", "Review", "Complete"},
	"operational":        {"To Do", "In Progress", "Complete"},
	"ongoing":            {"Backlog", "Active", "Complete"},
}

// FallbackSections covers project types missing from SectionsByType.
var FallbackSections = []string{"To Do", "Doing", "Done"}

// Sections returns the board columns for a project type.
func Sections(projectType string) []string {
	if s, ok := SectionsByType[projectType]; ok {
		return s
	}
	return FallbackSections
}
