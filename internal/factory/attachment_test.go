package factory

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wolfeidau/taskseed/internal/models"
)

func TestAttachments(t *testing.T) {
	windowEnd := testWindow().End.Time
	created := time.Date(2023, time.November, 1, 10, 0, 0, 0, time.UTC)

	tasks := make([]models.Task, 200)
	for i := range tasks {
		tasks[i] = models.Task{TaskID: "task_" + strconv.Itoa(i), CreatedAt: created, CreatedBy: "user_t"}
	}
	subtasks := make([]models.Subtask, 200)
	for i := range subtasks {
		subtasks[i] = models.Subtask{SubtaskID: "subtask_" + strconv.Itoa(i), CreatedAt: created, CreatedBy: "user_s"}
	}
	comments := make([]models.Comment, 200)
	for i := range comments {
		comments[i] = models.Comment{CommentID: "comment_" + strconv.Itoa(i), CreatedAt: created, UserID: "user_c"}
	}

	t.Run("each attachment references exactly one host", func(t *testing.T) {
		rng := newTestRand()
		attachments, _ := Attachments(rng, newTestSource(rng), tasks, subtasks, comments, windowEnd)
		require.NotEmpty(t, attachments)

		for _, a := range attachments {
			hosts := 0
			if a.TaskID != nil {
				hosts++
				require.Equal(t, "user_t", a.UploadedBy)
			}
			if a.SubtaskID != nil {
				hosts++
				require.Equal(t, "user_s", a.UploadedBy)
			}
			if a.CommentID != nil {
				hosts++
				require.Equal(t, "user_c", a.UploadedBy)
			}
			require.Equal(t, 1, hosts)
		}
	})

	t.Run("files carry url, name, and plausible size", func(t *testing.T) {
		rng := newTestRand()
		attachments, _ := Attachments(rng, newTestSource(rng), tasks, subtasks, comments, windowEnd)

		for _, a := range attachments {
			require.Contains(t, a.Filename, ".")
			require.NotNil(t, a.FileURL)
			require.Equal(t, "https://files.taskseed.dev/"+a.AttachmentID+"/"+a.Filename, *a.FileURL)
			require.True(t, strings.HasPrefix(a.AttachmentID, "attach_"))

			require.NotNil(t, a.FileSize)
			require.GreaterOrEqual(t, *a.FileSize, int64(10<<10))
			require.LessOrEqual(t, *a.FileSize, int64(25<<20))
		}
	})

	t.Run("uploads trail their host by minutes", func(t *testing.T) {
		rng := newTestRand()
		attachments, _ := Attachments(rng, newTestSource(rng), tasks, subtasks, comments, windowEnd)

		for _, a := range attachments {
			delta := a.CreatedAt.Sub(created)
			require.GreaterOrEqual(t, delta, time.Minute)
			require.LessOrEqual(t, delta, 240*time.Minute)
		}
	})

	t.Run("comment counts match the rows", func(t *testing.T) {
		rng := newTestRand()
		attachments, perComment := Attachments(rng, newTestSource(rng), tasks, subtasks, comments, windowEnd)

		counted := map[string]int{}
		for _, a := range attachments {
			if a.CommentID != nil {
				counted[*a.CommentID]++
			}
		}
		require.Equal(t, counted, perComment)
	})

	t.Run("coverage tracks the per-host rates", func(t *testing.T) {
		rng := newTestRand()
		attachments, _ := Attachments(rng, newTestSource(rng), tasks, subtasks, comments, windowEnd)

		taskHosts := map[string]bool{}
		subtaskHosts := map[string]bool{}
		for _, a := range attachments {
			if a.TaskID != nil {
				taskHosts[*a.TaskID] = true
			}
			if a.SubtaskID != nil {
				subtaskHosts[*a.SubtaskID] = true
			}
		}

		require.InDelta(t, 0.25, float64(len(taskHosts))/200, 0.10)
		require.InDelta(t, 0.10, float64(len(subtaskHosts))/200, 0.08)
	})
}
