package catalog

// CommentTemplates seed comment text when no language model is wired in.
// Bracketed placeholders are filled from CommentSubstitutions.
var CommentTemplates = []string{
	"Looks good! \U0001F44D",
	"Ready for review",
	"Making progress on this",
	"Blocked by [blocker], will resume next week",
	"Updated based on feedback",
	"This is ready to merge",
	"Added [component] as requested",
	"Discussed with [person], we're aligned on approach",
	"Testing in progress",
	"Documentation updated",
}

// CommentSubstitutions fill comment template placeholders.
var CommentSubstitutions = map[string][]string{
	"[blocker]":   {"the API migration", "design review", "the vendor", "upstream changes"},
	"[component]": {"the retry logic", "pagination", "the loading state", "input validation"},
	"[person]":    {"Sam", "the team", "Priya", "the PM"},
}
