package factory

import (
	"math/rand/v2"
	"time"

	"github.com/wolfeidau/taskseed/internal/catalog"
	"github.com/wolfeidau/taskseed/internal/dist"
	"github.com/wolfeidau/taskseed/internal/ids"
	"github.com/wolfeidau/taskseed/internal/models"
)

// Tags stamps out the default tag set for an organization, colored from
// the fixed palette and created in the window's first week.
func Tags(rng *rand.Rand, src *ids.Source, org models.Organization, users []models.User) []models.Tag {
	tags := make([]models.Tag, 0, len(catalog.Tags))
	for _, name := range catalog.Tags {
		tags = append(tags, models.Tag{
			TagID:          src.New(ids.PrefixTag),
			OrganizationID: org.OrganizationID,
			Name:           name,
			Color:          dist.Pick(rng, catalog.TagColors),
			CreatedAt:      org.CreatedAt.Add(dist.UniformDuration(rng, 0, 7*24*time.Hour)),
			CreatedBy:      dist.Pick(rng, users).UserID,
		})
	}

	return tags
}

// TaskTags labels half the tasks with one to three distinct tags, added
// within two hours of the task or the tag, whichever came later.
func TaskTags(rng *rand.Rand, src *ids.Source, tasks []models.Task, tags []models.Tag) []models.TaskTag {
	if len(tags) == 0 {
		return nil
	}

	taskTags := make([]models.TaskTag, 0, len(tasks))
	for _, task := range tasks {
		if !dist.Bernoulli(rng, 0.50) {
			continue
		}

		for _, tag := range dist.Sample(rng, tags, dist.UniformInt(rng, 1, 3)) {
			added := task.CreatedAt
			if tag.CreatedAt.After(added) {
				added = tag.CreatedAt
			}

			taskTags = append(taskTags, models.TaskTag{
				TaskTagID: src.New(ids.PrefixTaskTag),
				TaskID:    task.TaskID,
				TagID:     tag.TagID,
				AddedAt:   added.Add(dist.UniformDuration(rng, 0, 120*time.Minute)),
			})
		}
	}

	return taskTags
}
