package factory

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wolfeidau/taskseed/internal/catalog"
	"github.com/wolfeidau/taskseed/internal/models"
)

func TestFieldDefinitions(t *testing.T) {
	org := testOrg()

	t.Run("eight to thirteen distinct fields in the first week", func(t *testing.T) {
		rng := newTestRand()

		for i := 0; i < 20; i++ {
			defs := FieldDefinitions(rng, newTestSource(rng), org)
			require.GreaterOrEqual(t, len(defs), 8)
			require.LessOrEqual(t, len(defs), 13)

			names := map[string]bool{}
			limit := org.CreatedAt.Add(7 * 24 * time.Hour)
			for _, def := range defs {
				require.False(t, names[def.Name], "duplicate field %q", def.Name)
				names[def.Name] = true
				require.Equal(t, catalog.FieldTypeOf(def.Name), def.FieldType)
				require.Equal(t, "Custom field: "+def.Name, def.Description)
				require.True(t, def.IsActive)
				require.False(t, def.CreatedAt.Before(org.CreatedAt))
				require.False(t, def.CreatedAt.After(limit))
			}
		}
	})
}

func TestFieldValues(t *testing.T) {
	org := testOrg()

	tasks := make([]models.Task, 300)
	for i := range tasks {
		tasks[i] = models.Task{
			TaskID:    "task_" + strconv.Itoa(i),
			CreatedAt: time.Date(2023, time.September, 1, 10, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Hour),
		}
	}

	t.Run("values reference distinct fields and inherit the task time", func(t *testing.T) {
		rng := newTestRand()
		src := newTestSource(rng)
		defs := FieldDefinitions(rng, src, org)
		values := FieldValues(rng, src, tasks, defs)
		require.NotEmpty(t, values)

		taskTimes := map[string]time.Time{}
		for _, task := range tasks {
			taskTimes[task.TaskID] = task.CreatedAt
		}

		perTask := map[string]map[string]bool{}
		for _, v := range values {
			require.NotNil(t, v.TaskID)
			require.Equal(t, taskTimes[*v.TaskID], v.CreatedAt)

			fields := perTask[*v.TaskID]
			if fields == nil {
				fields = map[string]bool{}
				perTask[*v.TaskID] = fields
			}
			require.False(t, fields[v.CustomFieldID], "task %s has duplicate field %s", *v.TaskID, v.CustomFieldID)
			fields[v.CustomFieldID] = true
		}

		for _, fields := range perTask {
			require.LessOrEqual(t, len(fields), 3)
		}

		// about three in five tasks carry values
		require.InDelta(t, 0.60, float64(len(perTask))/float64(len(tasks)), 0.10)
	})

	t.Run("values follow the field's value space", func(t *testing.T) {
		rng := newTestRand()
		src := newTestSource(rng)
		defs := FieldDefinitions(rng, src, org)

		byID := map[string]models.CustomFieldDefinition{}
		for _, def := range defs {
			byID[def.CustomFieldID] = def
		}

		for _, v := range FieldValues(rng, src, tasks, defs) {
			def := byID[v.CustomFieldID]

			if choices, ok := catalog.FieldValues[def.Name]; ok {
				require.Contains(t, choices, v.Value)
				continue
			}
			if def.FieldType == models.FieldTypeNumber {
				n, err := strconv.Atoi(v.Value)
				require.NoError(t, err)
				require.GreaterOrEqual(t, n, 1)
				require.LessOrEqual(t, n, 50)
				continue
			}
			require.Equal(t, def.Name, v.Value)
		}
	})

	t.Run("early tasks only use fields that already exist", func(t *testing.T) {
		rng := newTestRand()
		src := newTestSource(rng)
		defs := FieldDefinitions(rng, src, org)

		byID := map[string]models.CustomFieldDefinition{}
		for _, def := range defs {
			byID[def.CustomFieldID] = def
		}

		early := make([]models.Task, 200)
		for i := range early {
			early[i] = models.Task{
				TaskID:    "early_" + strconv.Itoa(i),
				CreatedAt: org.CreatedAt.Add(time.Duration(i) * time.Hour),
			}
		}

		for _, v := range FieldValues(rng, src, early, defs) {
			def := byID[v.CustomFieldID]
			require.False(t, def.CreatedAt.After(v.CreatedAt),
				"field %s defined after the task it values", def.Name)
		}
	})

	t.Run("no definitions yields nothing", func(t *testing.T) {
		rng := newTestRand()
		require.Empty(t, FieldValues(rng, newTestSource(rng), tasks, nil))
	})
}
