package catalog

// Tags are the default labels every organization starts with.
var Tags = []string{
	"urgent", "documentation", "refactor", "bug-fix", "feature",
	"backend", "frontend", "database", "security", "performance",
	"testing", "ui/ux", "api", "infrastructure", "devops",
	"ai/ml", "analytics", "mobile", "web", "deployment",
}

// TagColors is the palette tags are colored from.
var TagColors = []string{
	"#FF5A5F", "#FF9671", "#FFD93D", "#6BCB77",
	"#4D96FF", "#9D84B7", "#FF8AAE", "#00D9FF",
}

// AttachmentStems and AttachmentExtensions combine into attachment
// filenames, e.g. "launch-plan-v2.pdf".
var AttachmentStems = []string{
	"launch-plan", "design-mockup", "meeting-notes", "budget",
	"requirements", "wireframe", "screenshot", "demo-recording",
	"roadmap", "metrics-export", "retro-notes", "brief",
}

// AttachmentExtensions are the file types attachments come in.
var AttachmentExtensions = []string{
	"pdf", "png", "docx", "xlsx", "fig", "mov", "zip", "csv",
}
