package catalog

// Task template families. Each project type maps onto one family, which
// selects both the name templates and the placeholder vocabulary below.
const (
	FamilyEngineering = "engineering"
	FamilyMarketing   = "marketing"
	FamilyOperations  = "operations"
)

// TaskFamily maps a project type to its template family.
func TaskFamily(projectType string) string {
	switch projectType {
	case "marketing_campaign":
		return FamilyMarketing
	case "operational", "ongoing":
		return FamilyOperations
	default:
		return FamilyEngineering
	}
}

// TaskTemplates are the name patterns per family. Bracketed placeholders
// are filled from Substitutions.
var TaskTemplates = map[string][]string{
	FamilyEngineering: {
		"Implement [feature]",
		"Fix [bug] in [component]",
		"Refactor [module] for [goal]",
		"Optimize [system] - [improvement]",
		"Add [capability] to [component]",
		"Update [component] to [spec]",
		"Research [topic] for [goal]",
		"Write tests for [component]",
		"Document [feature]",
		"Review PR for [feature]",
	},
	FamilyMarketing: {
		"[Campaign] - Create [asset]",
		"[Campaign] - Write [content]",
		"[Campaign] - Design [deliverable]",
		"[Campaign] - Review [document]",
		"[Campaign] - Schedule [post]",
		"[Campaign] - Analyze [metric]",
		"[Campaign] - Plan [phase]",
		"[Campaign] - Launch [initiative]",
	},
	FamilyOperations: {
		"Renew [service] credentials",
		"Update [system] configuration",
		"Schedule [meeting]",
		"Process [request] for [team]",
		"Review [policy] compliance",
		"Coordinate [initiative]",
		"Plan [event]",
		"Update documentation for [process]",
	},
}

// Substitutions fill template placeholders per family.
var Substitutions = map[string]map[string][]string{
	FamilyEngineering: {
		"[feature]":     {"user authentication", "mobile support", "caching layer", "API endpoints"},
		"[bug]":         {"race condition", "memory leak", "null pointer exception", "API timeout"},
		"[component]":   {"database", "API client", "UI component", "service layer"},
		"[module]":      {"authentication", "payment processing", "data models", "utilities"},
		"[goal]":        {"performance", "maintainability", "scalability", "readability"},
		"[system]":      {"database queries", "API responses", "image processing", "cache"},
		"[improvement]": {"indexing", "lazy loading", "batching", "compression"},
		"[capability]":  {"error handling", "logging", "metrics", "notifications"},
		"[spec]":        {"new requirements", "design specs", "API contract", "interface"},
		"[topic]":       {"scaling strategies", "architecture patterns", "framework options", "tools"},
	},
	FamilyMarketing: {
		"[Campaign]":    {"Q4 Product Launch", "Black Friday", "Brand Refresh", "Partner Program"},
		"[asset]":       {"email template", "social media post", "landing page", "promotional banner"},
		"[content]":     {"blog post", "whitepaper", "case study", "newsletter"},
		"[deliverable]": {"presentation deck", "video script", "infographic", "campaign plan"},
		"[document]":    {"campaign brief", "content calendar", "brand guidelines", "strategy doc"},
		"[post]":        {"tweets", "LinkedIn updates", "Instagram posts", "email campaign"},
		"[metric]":      {"CTR", "conversion rate", "engagement", "impressions"},
		"[phase]":       {"phase 1", "phase 2", "final push", "launch"},
		"[initiative]":  {"webinar", "campaign", "partnership", "promotion"},
	},
	FamilyOperations: {
		"[service]":    {"AWS", "Datadog", "PagerDuty", "Stripe"},
		"[system]":     {"CI pipeline", "staging environment", "VPN", "billing system"},
		"[meeting]":    {"quarterly review", "all-hands", "sprint retro", "vendor call"},
		"[request]":    {"access request", "procurement request", "travel request", "onboarding request"},
		"[team]":       {"engineering", "finance", "support", "people ops"},
		"[policy]":     {"security", "data retention", "expense", "incident response"},
		"[initiative]": {"office move", "tooling migration", "audit prep", "hiring push"},
		"[event]":      {"offsite", "launch party", "team onboarding", "brown bag"},
		"[process]":    {"deploy process", "on-call rotation", "incident review", "expense reporting"},
	},
}
