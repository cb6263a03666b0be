package factory

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/wolfeidau/taskseed/internal/catalog"
	"github.com/wolfeidau/taskseed/internal/content"
	"github.com/wolfeidau/taskseed/internal/dist"
	"github.com/wolfeidau/taskseed/internal/ids"
	"github.com/wolfeidau/taskseed/internal/models"
)

var commentCounts = dist.MustWeighted(
	[]int{1, 2, 3, 4, 5},
	[]float64{0.35, 0.30, 0.20, 0.10, 0.05},
)

var commentKinds = dist.MustWeighted(
	[]string{content.CommentStatusUpdate, content.CommentQuestion, content.CommentBlocked},
	[]float64{0.5, 0.3, 0.2},
)

// CommentsForTask builds the discussion on one task: nothing for most
// tasks, otherwise one to five entries placed between the task's creation
// and its completion or the window end, whichever applies. A tenth of
// comments carry a later edit timestamp. AttachmentCount stays zero here;
// the attachment stage fills it in.
func CommentsForTask(ctx context.Context, rng *rand.Rand, src *ids.Source, provider content.Provider, task models.Task, users []models.User, probability float64, windowEnd time.Time) ([]models.Comment, error) {
	if !dist.Bernoulli(rng, probability) {
		return nil, nil
	}

	lower := task.CreatedAt.Add(5 * time.Minute)
	upper := windowEnd
	if task.CompletedAt != nil {
		upper = *task.CompletedAt
	}

	status := "in progress"
	if task.Completed {
		status = "completed"
	}

	count := commentCounts.Sample(rng)
	comments := make([]models.Comment, 0, count)
	for i := 0; i < count; i++ {
		created := lower
		if upper.After(lower) {
			created = lower.Add(dist.UniformDuration(rng, 0, upper.Sub(lower)))
		}

		id := src.New(ids.PrefixComment)

		text, err := provider.Generate(ctx, content.Request{
			Kind: content.KindComment,
			Context: map[string]string{
				content.CtxEntityID:    id,
				content.CtxTaskName:    task.Name,
				content.CtxCommentKind: commentKinds.Sample(rng),
				content.CtxStatus:      status,
				content.CtxBlocker:     dist.Pick(rng, catalog.CommentSubstitutions["[blocker]"]),
			},
			MaxLen: 200,
		})
		if err != nil {
			return nil, fmt.Errorf("comment text: %w", err)
		}

		comment := models.Comment{
			CommentID: id,
			TaskID:    ptr(task.TaskID),
			UserID:    dist.Pick(rng, users).UserID,
			Text:      text,
			CreatedAt: created,
		}
		if dist.Bernoulli(rng, 0.10) {
			comment.UpdatedAt = ptr(created.Add(dist.UniformDuration(rng, 5*time.Minute, 48*time.Hour)))
		}

		comments = append(comments, comment)
	}

	return comments, nil
}

// FinalizeComments applies per-comment attachment counts once the
// attachment stage has run, completing the comment rows. The input slice
// is left untouched.
func FinalizeComments(comments []models.Comment, counts map[string]int) []models.Comment {
	out := make([]models.Comment, len(comments))
	copy(out, comments)
	for i := range out {
		out[i].AttachmentCount = counts[out[i].CommentID]
	}

	return out
}
