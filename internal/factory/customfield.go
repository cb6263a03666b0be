package factory

import (
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/wolfeidau/taskseed/internal/catalog"
	"github.com/wolfeidau/taskseed/internal/dist"
	"github.com/wolfeidau/taskseed/internal/ids"
	"github.com/wolfeidau/taskseed/internal/models"
)

// FieldDefinitions declares an organization's custom fields, eight to
// thirteen drawn from the catalog without replacement, rolled out across
// the window's first week.
func FieldDefinitions(rng *rand.Rand, src *ids.Source, org models.Organization) []models.CustomFieldDefinition {
	names := dist.Sample(rng, catalog.FieldNames(), dist.UniformInt(rng, 8, 13))

	defs := make([]models.CustomFieldDefinition, 0, len(names))
	for _, name := range names {
		defs = append(defs, models.CustomFieldDefinition{
			CustomFieldID:  src.New(ids.PrefixField),
			OrganizationID: org.OrganizationID,
			Name:           name,
			Description:    "Custom field: " + name,
			FieldType:      catalog.FieldTypeOf(name),
			CreatedAt:      org.CreatedAt.Add(dist.UniformDuration(rng, 0, 7*24*time.Hour)),
			IsActive:       true,
		})
	}

	return defs
}

// FieldValues attaches one to three values of distinct fields to sixty
// percent of tasks. Each value is stamped with the task's creation time,
// and only fields that already exist at that time are eligible.
func FieldValues(rng *rand.Rand, src *ids.Source, tasks []models.Task, defs []models.CustomFieldDefinition) []models.CustomFieldValue {
	if len(defs) == 0 {
		return nil
	}

	latest := defs[0].CreatedAt
	for _, def := range defs[1:] {
		if def.CreatedAt.After(latest) {
			latest = def.CreatedAt
		}
	}

	values := make([]models.CustomFieldValue, 0, len(tasks))
	for _, task := range tasks {
		if !dist.Bernoulli(rng, 0.60) {
			continue
		}

		eligible := defs
		if task.CreatedAt.Before(latest) {
			eligible = nil
			for _, def := range defs {
				if !def.CreatedAt.After(task.CreatedAt) {
					eligible = append(eligible, def)
				}
			}
			if len(eligible) == 0 {
				continue
			}
		}

		for _, def := range dist.Sample(rng, eligible, dist.UniformInt(rng, 1, 3)) {
			values = append(values, models.CustomFieldValue{
				CustomFieldValueID: src.New(ids.PrefixFieldValue),
				CustomFieldID:      def.CustomFieldID,
				TaskID:             ptr(task.TaskID),
				Value:              fieldValue(rng, def),
				CreatedAt:          task.CreatedAt,
			})
		}
	}

	return values
}

// fieldValue draws from the field's value list when it has one, a small
// integer for number fields, and echoes the field name otherwise.
func fieldValue(rng *rand.Rand, def models.CustomFieldDefinition) string {
	if choices, ok := catalog.FieldValues[def.Name]; ok {
		return dist.Pick(rng, choices)
	}
	if def.FieldType == models.FieldTypeNumber {
		return strconv.Itoa(dist.UniformInt(rng, 1, 50))
	}

	return def.Name
}
