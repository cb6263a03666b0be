package factory

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wolfeidau/taskseed/internal/catalog"
	"github.com/wolfeidau/taskseed/internal/models"
)

func TestTags(t *testing.T) {
	org := testOrg()

	t.Run("the full default set with palette colors", func(t *testing.T) {
		rng := newTestRand()
		users := testUsers(rng, 20)
		tags := Tags(rng, newTestSource(rng), org, users)
		require.Len(t, tags, len(catalog.Tags))

		userIDs := map[string]bool{}
		for _, u := range users {
			userIDs[u.UserID] = true
		}

		limit := org.CreatedAt.Add(7 * 24 * time.Hour)
		for i, tag := range tags {
			require.Equal(t, catalog.Tags[i], tag.Name)
			require.Contains(t, catalog.TagColors, tag.Color)
			require.True(t, userIDs[tag.CreatedBy])
			require.False(t, tag.CreatedAt.Before(org.CreatedAt))
			require.False(t, tag.CreatedAt.After(limit))
		}
	})
}

func TestTaskTags(t *testing.T) {
	tasks := make([]models.Task, 400)
	for i := range tasks {
		tasks[i] = models.Task{
			TaskID:    "task_" + strconv.Itoa(i),
			CreatedAt: time.Date(2023, time.October, 3, 14, 0, 0, 0, time.UTC),
		}
	}

	t.Run("half the tasks carry one to three distinct tags", func(t *testing.T) {
		rng := newTestRand()
		src := newTestSource(rng)
		users := testUsers(rng, 20)
		tags := Tags(rng, src, testOrg(), users)

		taskTags := TaskTags(rng, src, tasks, tags)
		require.NotEmpty(t, taskTags)

		perTask := map[string]map[string]bool{}
		for _, tt := range taskTags {
			set := perTask[tt.TaskID]
			if set == nil {
				set = map[string]bool{}
				perTask[tt.TaskID] = set
			}
			require.False(t, set[tt.TagID], "task %s tagged twice with %s", tt.TaskID, tt.TagID)
			set[tt.TagID] = true

			delta := tt.AddedAt.Sub(tasks[0].CreatedAt)
			require.GreaterOrEqual(t, delta, time.Duration(0))
			require.LessOrEqual(t, delta, 2*time.Hour)
		}

		for _, set := range perTask {
			require.LessOrEqual(t, len(set), 3)
		}

		require.InDelta(t, 0.50, float64(len(perTask))/float64(len(tasks)), 0.08)
	})

	t.Run("no tags yields nothing", func(t *testing.T) {
		rng := newTestRand()
		require.Empty(t, TaskTags(rng, newTestSource(rng), tasks, nil))
	})
}
