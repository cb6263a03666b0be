package content

import "strings"

// Prompts sent to language model providers. Placeholders in braces are
// filled from the request context.

var taskNamePrompts = map[string]string{
	"engineering": `Generate a realistic software engineering task name for a project management tool.
Examples:
- "API Client - Add retry logic - Exponential backoff implementation"
- "Database - Optimize query - Index on user_id foreign key"
- "Auth Service - Fix bug - JWT token validation on refresh"
Project type: {project_type}
Generate ONE task name only, no explanation.`,

	"marketing": `Generate a realistic marketing task name for the {project_name} campaign.
The task should follow the pattern: [Campaign] - [Deliverable].
Examples:
- "Q4 Product Launch - Design email template"
- "Black Friday Campaign - Write social media copy"
- "Partner Program - Create partnership deck"
Generate ONE task name only, no explanation.`,

	"operations": `Generate a realistic operations/admin task name.
Examples:
- "Renew SSL certificates for production domains"
- "Update disaster recovery runbook procedures"
- "Schedule Q1 budget planning sessions"
Generate ONE task name only, no explanation.`,
}

var descriptionPrompts = map[string]string{
	LengthDetailed: `Create a detailed single-paragraph task description with 2-4 sentences of
context and clear acceptance criteria.
Task name: {task_name}
Project: {project_name}
Generate ONLY the description on one line, no task name.`,

	LengthMinimal: `Create a brief 1-sentence task description for:
{task_name}
Keep it under 100 characters.`,

	LengthMedium: `Create a task description with a 1 sentence overview and the acceptance
criteria inline.
Task: {task_name}
Generate ONLY the description on one line.`,
}

var commentPrompts = map[string]string{
	CommentStatusUpdate: `Write a realistic status update comment for a task:
Task: {task_name}
Status: {status}
Keep it under 200 characters on one line. Be professional but casual.`,

	CommentQuestion: `Write a realistic question/clarification comment on this task:
Task: {task_name}
Keep it under 150 characters on one line. Be specific and actionable.`,

	CommentBlocked: `Write a realistic comment indicating this task is blocked:
Task: {task_name}
Blocking issue: {blocker}
Keep it under 200 characters on one line.`,
}

// renderPrompt builds the model prompt for a request.
func renderPrompt(req Request) string {
	var prompt string
	switch req.Kind {
	case KindTaskName:
		prompt = taskNamePrompts[req.Context[CtxFamily]]
		if prompt == "" {
			prompt = taskNamePrompts["engineering"]
		}
	case KindDescription:
		prompt = descriptionPrompts[req.Context[CtxLength]]
		if prompt == "" {
			prompt = descriptionPrompts[LengthMedium]
		}
	case KindComment:
		prompt = commentPrompts[req.Context[CtxCommentKind]]
		if prompt == "" {
			prompt = commentPrompts[CommentStatusUpdate]
		}
	}

	replacements := make([]string, 0, len(req.Context)*2)
	for key, value := range req.Context {
		replacements = append(replacements, "{"+key+"}", value)
	}
	return strings.NewReplacer(replacements...).Replace(prompt)
}

// maxTokensFor bounds the completion size per request kind.
func maxTokensFor(kind Kind) int64 {
	if kind == KindTaskName {
		return 100
	}
	return 300
}
