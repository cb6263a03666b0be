package factory

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wolfeidau/taskseed/internal/models"
)

func TestSubtasks(t *testing.T) {
	parent := func(completed bool) models.Task {
		due := time.Date(2023, time.October, 20, 0, 0, 0, 0, time.UTC)
		task := models.Task{
			TaskID:    "task_parent",
			ProjectID: "proj_x",
			Name:      "Implement caching layer",
			CreatedAt: time.Date(2023, time.October, 2, 10, 15, 0, 0, time.UTC),
			CreatedBy: "user_creator",
			DueDate:   &due,
			Completed: completed,
		}
		if completed {
			done := task.CreatedAt.Add(72 * time.Hour)
			task.CompletedAt = &done
		}
		return task
	}

	t.Run("children inherit project, creator, and due date", func(t *testing.T) {
		rng := newTestRand()
		users := testUsers(rng, 30)
		task := parent(false)

		subtasks := Subtasks(rng, newTestSource(rng), []models.Task{task}, users, 1.0)
		require.NotEmpty(t, subtasks)

		for i, sub := range subtasks {
			require.Equal(t, task.TaskID, sub.ParentTaskID)
			require.Equal(t, task.ProjectID, sub.ProjectID)
			require.Equal(t, task.CreatedBy, sub.CreatedBy)
			require.Equal(t, *task.DueDate, *sub.DueDate)
			require.Equal(t, i, sub.DisplayOrder)
			require.Equal(t, fmt.Sprintf("%s - Subtask %d", task.Name, i+1), sub.Name)
			require.Equal(t, "Subtask for completing "+task.Name, *sub.Description)
		}
	})

	t.Run("children appear five to sixty minutes after the parent", func(t *testing.T) {
		rng := newTestRand()
		users := testUsers(rng, 30)
		task := parent(false)

		tasks := make([]models.Task, 200)
		for i := range tasks {
			tasks[i] = task
		}

		for _, sub := range Subtasks(rng, newTestSource(rng), tasks, users, 1.0) {
			delta := sub.CreatedAt.Sub(task.CreatedAt)
			require.GreaterOrEqual(t, delta, 5*time.Minute)
			require.LessOrEqual(t, delta, 60*time.Minute)
		}
	})

	t.Run("completed parents complete most children", func(t *testing.T) {
		rng := newTestRand()
		users := testUsers(rng, 30)

		tasks := make([]models.Task, 400)
		for i := range tasks {
			tasks[i] = parent(true)
		}

		subtasks := Subtasks(rng, newTestSource(rng), tasks, users, 1.0)
		done := 0
		for _, sub := range subtasks {
			if sub.Completed {
				done++
				require.NotNil(t, sub.CompletedAt)
				require.True(t, sub.CompletedAt.After(sub.CreatedAt))
				require.LessOrEqual(t, sub.CompletedAt.Sub(sub.CreatedAt), 14*24*time.Hour)
			} else {
				require.Nil(t, sub.CompletedAt)
			}
		}

		require.InDelta(t, 0.85, float64(done)/float64(len(subtasks)), 0.05)
	})

	t.Run("open parents still complete some children", func(t *testing.T) {
		rng := newTestRand()
		users := testUsers(rng, 30)

		tasks := make([]models.Task, 400)
		for i := range tasks {
			tasks[i] = parent(false)
		}

		subtasks := Subtasks(rng, newTestSource(rng), tasks, users, 1.0)
		done := 0
		for _, sub := range subtasks {
			if sub.Completed {
				done++
			}
		}

		require.InDelta(t, 0.45, float64(done)/float64(len(subtasks)), 0.05)
	})

	t.Run("probability zero yields nothing", func(t *testing.T) {
		rng := newTestRand()
		users := testUsers(rng, 10)

		subtasks := Subtasks(rng, newTestSource(rng), []models.Task{parent(false)}, users, 0)
		require.Empty(t, subtasks)
	})
}
