package factory

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/wolfeidau/taskseed/internal/dist"
	"github.com/wolfeidau/taskseed/internal/ids"
	"github.com/wolfeidau/taskseed/internal/models"
)

var subtaskCounts = dist.MustWeighted(
	[]int{1, 2, 3, 4, 5},
	[]float64{0.40, 0.30, 0.20, 0.07, 0.03},
)

const (
	subtaskCompletedRateDone = 0.85
	subtaskCompletedRateBase = 0.45
)

var subtaskCompletionDelay = dist.LognormalDuration{
	Median: 48 * time.Hour,
	Shape:  1.2,
	Max:    14 * 24 * time.Hour,
}

// Subtasks expands a share of tasks into child items. Subtasks share the
// parent's project and due date, appear minutes after it, and complete far
// more often under completed parents.
func Subtasks(rng *rand.Rand, src *ids.Source, tasks []models.Task, users []models.User, probability float64) []models.Subtask {
	subtasks := make([]models.Subtask, 0, len(tasks)/2)

	for _, task := range tasks {
		if !dist.Bernoulli(rng, probability) {
			continue
		}

		count := subtaskCounts.Sample(rng)
		for n := 1; n <= count; n++ {
			created := task.CreatedAt.Add(dist.UniformDuration(rng, 5*time.Minute, 60*time.Minute))

			rate := subtaskCompletedRateBase
			if task.Completed {
				rate = subtaskCompletedRateDone
			}
			completed := dist.Bernoulli(rng, rate)

			var completedAt *time.Time
			if completed {
				completedAt = ptr(created.Add(subtaskCompletionDelay.Sample(rng)))
			}

			var assigneeID *string
			if dist.Bernoulli(rng, 0.80) {
				assigneeID = ptr(dist.Pick(rng, users).UserID)
			}

			var due *time.Time
			if task.DueDate != nil {
				due = ptr(*task.DueDate)
			}

			subtasks = append(subtasks, models.Subtask{
				SubtaskID:    src.New(ids.PrefixSubtask),
				ParentTaskID: task.TaskID,
				ProjectID:    task.ProjectID,
				Name:         fmt.Sprintf("%s - Subtask %d", task.Name, n),
				Description:  ptr("Subtask for completing " + task.Name),
				CreatedAt:    created,
				CreatedBy:    task.CreatedBy,
				AssigneeID:   assigneeID,
				DueDate:      due,
				Completed:    completed,
				CompletedAt:  completedAt,
				DisplayOrder: n - 1,
			})
		}
	}

	return subtasks
}
