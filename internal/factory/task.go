package factory

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/wolfeidau/taskseed/internal/catalog"
	"github.com/wolfeidau/taskseed/internal/config"
	"github.com/wolfeidau/taskseed/internal/content"
	"github.com/wolfeidau/taskseed/internal/dist"
	"github.com/wolfeidau/taskseed/internal/ids"
	"github.com/wolfeidau/taskseed/internal/models"
)

// Task volume ramps up over the window, so recent days are busiest.
const taskRecencyExponent = 0.6

// How often work actually gets finished, by project type.
var completionRates = map[string]float64{
	models.ProjectTypeSprint:            0.75,
	models.ProjectTypeBugTracking:       0.65,
	models.ProjectTypeProductRoadmap:    0.55,
	models.ProjectTypeMarketingCampaign: 0.65,
	models.ProjectTypeOperational:       0.50,
	models.ProjectTypeOngoing:           0.45,
}

const defaultCompletionRate = 0.50

// Sprints and bug fixes turn around faster than open-ended work.
var completionCaps = map[string]time.Duration{
	models.ProjectTypeSprint:      14 * 24 * time.Hour,
	models.ProjectTypeBugTracking: 21 * 24 * time.Hour,
}

const defaultCompletionCap = 30 * 24 * time.Hour

var priorities = dist.MustWeighted(
	[]int{models.PriorityUrgent, models.PriorityHigh, models.PriorityNormal, models.PriorityLow},
	[]float64{0.10, 0.25, 0.50, 0.15},
)

var descriptionLengths = dist.MustWeighted(
	[]string{content.LengthMinimal, content.LengthMedium, content.LengthDetailed},
	[]float64{0.35, 0.40, 0.25},
)

var estimatedHours = []float64{1, 2, 4, 5, 8, 13}

var dueOffsets = dist.MustBucketedOffset([]dist.OffsetBucket{
	{MinDays: 1, MaxDays: 7, Weight: 0.25},
	{MinDays: 8, MaxDays: 30, Weight: 0.40},
	{MinDays: 31, MaxDays: 90, Weight: 0.20},
})

// Share of due dates sampled inside the window rather than as an offset from
// creation, so a slice of open tasks reads as overdue at load time. Five
// percent of all tasks, against the ninety percent that carry a due date.
const overdueDueShare = 0.05 / 0.90

// TaskInputs is the immutable parent state the task factory samples from.
// MembersByTeam drives creator and assignee locality for teamed projects.
type TaskInputs struct {
	Projects      []models.Project
	Sections      map[string][]models.Section
	Users         []models.User
	MembersByTeam map[string][]models.User
	Window        config.Window
	Probabilities config.Probabilities
}

// NewTask builds one task: pick a project and one of its sections, place
// creation late-skewed in the project's lifetime, derive a due date as an
// offset from creation, roll completion by project type, pick the creator
// and assignee from the project team when there is one, and fetch name and
// description text from the provider.
func NewTask(ctx context.Context, rng *rand.Rand, src *ids.Source, provider content.Provider, in TaskInputs) (models.Task, error) {
	id := src.New(ids.PrefixTask)

	project := dist.Pick(rng, in.Projects)

	var sectionID *string
	if sections := in.Sections[project.ProjectID]; len(sections) > 0 {
		sectionID = ptr(dist.Pick(rng, sections).SectionID)
	}

	created := dist.BusinessTimestamp(rng, project.CreatedAt, in.Window.End.Time, taskRecencyExponent)

	creator := dist.Pick(rng, in.Users)
	var teamPool []models.User
	if project.TeamID != nil {
		if members := in.MembersByTeam[*project.TeamID]; len(members) > 0 {
			teamPool = members
			creator = dist.Pick(rng, members)
		}
	}

	var assigneeID *string
	if !dist.Bernoulli(rng, in.Probabilities.Unassigned) {
		pool := in.Users
		if len(teamPool) > 0 && dist.Bernoulli(rng, 0.80) {
			pool = teamPool
		}
		assigneeID = ptr(dist.Pick(rng, pool).UserID)
	}

	var due *time.Time
	if dist.Bernoulli(rng, in.Probabilities.DueDate) {
		due = ptr(dueDate(rng, created, in.Window.End.Time, project.ProjectType))
	}

	var start *time.Time
	if due != nil && dist.Bernoulli(rng, 0.30) {
		day := dist.Day(created).AddDate(0, 0, dist.UniformInt(rng, 0, 3))
		if day.After(*due) {
			day = *due
		}
		start = ptr(day)
	}

	rate, ok := completionRates[project.ProjectType]
	if !ok {
		rate = defaultCompletionRate
	}
	completed := dist.Bernoulli(rng, rate)

	var completedAt *time.Time
	if completed {
		limit, ok := completionCaps[project.ProjectType]
		if !ok {
			limit = defaultCompletionCap
		}
		delay := dist.LognormalDuration{Median: 48 * time.Hour, Shape: 1.2, Max: limit}
		completedAt = ptr(created.Add(delay.Sample(rng)))
	}

	var estimated *float64
	if project.ProjectType == models.ProjectTypeSprint {
		estimated = ptr(dist.Pick(rng, estimatedHours))
	}

	family := catalog.TaskFamily(project.ProjectType)

	name, err := provider.Generate(ctx, content.Request{
		Kind: content.KindTaskName,
		Context: map[string]string{
			content.CtxEntityID:    id,
			content.CtxFamily:      family,
			content.CtxProjectType: project.ProjectType,
			content.CtxProjectName: project.Name,
		},
		MaxLen: 120,
	})
	if err != nil {
		return models.Task{}, fmt.Errorf("task name: %w", err)
	}

	var description *string
	if !dist.Bernoulli(rng, 0.20) {
		text, err := provider.Generate(ctx, content.Request{
			Kind: content.KindDescription,
			Context: map[string]string{
				content.CtxEntityID:    id,
				content.CtxFamily:      family,
				content.CtxProjectType: project.ProjectType,
				content.CtxProjectName: project.Name,
				content.CtxTaskName:    name,
				content.CtxLength:      descriptionLengths.Sample(rng),
			},
			MaxLen: 600,
		})
		if err != nil {
			return models.Task{}, fmt.Errorf("task description: %w", err)
		}
		description = ptr(text)
	}

	return models.Task{
		TaskID:         id,
		ProjectID:      project.ProjectID,
		SectionID:      sectionID,
		Name:           name,
		Description:    description,
		CreatedAt:      created,
		CreatedBy:      creator.UserID,
		AssigneeID:     assigneeID,
		DueDate:        due,
		StartDate:      start,
		Completed:      completed,
		CompletedAt:    completedAt,
		Priority:       priorities.Sample(rng),
		EstimatedHours: estimated,
	}, nil
}

// dueDate samples a date offset from created. Most land one to ninety days
// out, a small band lands between creation and the window end, weekends
// shift to Monday 85% of the time, and sprint work snaps to the next
// Friday 40% of the time. The result never precedes the creation date and
// never trails the window end.
func dueDate(rng *rand.Rand, created, windowEnd time.Time, projectType string) time.Time {
	createdDay := dist.Day(created)
	endDay := dist.Day(windowEnd)

	var due time.Time
	if dist.Bernoulli(rng, overdueDueShare) {
		lo := createdDay.AddDate(0, 0, 1)
		hi := endDay.AddDate(0, 0, -1)
		if hi.Before(lo) {
			hi = lo
		}
		due = dist.UniformDate(rng, lo, hi)
	} else {
		due = createdDay.AddDate(0, 0, dueOffsets.SampleDays(rng))
	}

	if dist.Bernoulli(rng, 0.85) {
		due = dist.AvoidWeekend(due)
	}
	if projectType == models.ProjectTypeSprint && dist.Bernoulli(rng, 0.40) {
		due = dist.SnapToFriday(due)
	}

	if due.After(endDay) {
		due = endDay.AddDate(0, 0, -dist.UniformInt(rng, 1, 30))
	}
	if floor := createdDay.AddDate(0, 0, 1); due.Before(floor) {
		due = floor
	}
	if due.After(endDay) {
		due = endDay
	}

	return due
}
