// Package content produces task names, task descriptions, and comment text.
// A Provider may call a language model; every provider is wrapped so that
// failures and invalid responses fall back to deterministic templates, and
// the factories above this package never see an error.
package content

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// Kind selects what sort of text a request is for.
type Kind string

// Request kinds.
const (
	KindTaskName    Kind = "task_name"
	KindDescription Kind = "description"
	KindComment     Kind = "comment"
)

// Well-known context keys. Factories populate these; providers read the
// ones their prompts need.
const (
	CtxEntityID    = "entity_id"
	CtxFamily      = "family"
	CtxProjectType = "project_type"
	CtxProjectName = "project_name"
	CtxTaskName    = "task_name"
	CtxLength      = "length"
	CtxCommentKind = "comment_kind"
	CtxStatus      = "status"
	CtxBlocker     = "blocker"
)

// Description length classes carried in CtxLength.
const (
	LengthMinimal  = "minimal"
	LengthMedium   = "medium"
	LengthDetailed = "detailed"
)

// Comment variants carried in CtxCommentKind.
const (
	CommentStatusUpdate = "status_update"
	CommentQuestion     = "question"
	CommentBlocked      = "blocked"
)

// Request asks a provider for one piece of text.
type Request struct {
	Kind    Kind
	Context map[string]string
	MaxLen  int
}

// Provider generates text for a request. Implementations may block on
// network I/O; callers bound them with a context deadline.
type Provider interface {
	Generate(ctx context.Context, req Request) (string, error)
	Name() string
}

// Validate checks a provider response. Task names must be 10 to 120
// characters; other kinds 1 to req.MaxLen. Names and comments must be a
// single line; descriptions may span several. All responses must contain at
// least one letter and not start with whitespace.
func Validate(req Request, text string) error {
	n := len(text)
	if req.Kind == KindTaskName {
		if n < 10 || n > 120 {
			return fmt.Errorf("task name length %d outside [10, 120]", n)
		}
	} else {
		if n < 1 {
			return fmt.Errorf("empty response")
		}
		if req.MaxLen > 0 && n > req.MaxLen {
			return fmt.Errorf("response length %d exceeds %d", n, req.MaxLen)
		}
	}

	if req.Kind != KindDescription && strings.ContainsAny(text, "\n\r") {
		return fmt.Errorf("response contains line breaks")
	}

	first, _ := firstRune(text)
	if unicode.IsSpace(first) {
		return fmt.Errorf("response starts with whitespace")
	}

	for _, r := range text {
		if unicode.IsLetter(r) {
			return nil
		}
	}
	return fmt.Errorf("response has no letters")
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}
