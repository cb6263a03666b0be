// Package generate orchestrates the staged construction of a dataset. Each
// stage materializes one entity type completely before the next starts, so
// every factory samples only from finished, immutable parent pools. That
// ordering is what makes the referential and temporal invariants hold by
// construction rather than by repair.
package generate

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wolfeidau/taskseed/internal/config"
	"github.com/wolfeidau/taskseed/internal/content"
	"github.com/wolfeidau/taskseed/internal/factory"
	"github.com/wolfeidau/taskseed/internal/ids"
	"github.com/wolfeidau/taskseed/internal/models"
	"github.com/wolfeidau/taskseed/internal/telemetry"
)

// Generator produces complete datasets from a validated configuration and
// a content provider.
type Generator struct {
	cfg      config.Config
	provider content.Provider
}

// New returns a generator. The provider supplies task and comment text;
// hand in a content.Fallback so generation never stalls on provider
// trouble.
func New(cfg config.Config, provider content.Provider) *Generator {
	return &Generator{cfg: cfg, provider: provider}
}

// Run executes every stage in order and returns the finished dataset. Runs
// with a pinned seed reproduce identical datasets; unpinned runs draw a
// seed from the OS and log it so they can be replayed.
func (g *Generator) Run(ctx context.Context) (*models.Dataset, error) {
	seed := uint64(0)
	if g.cfg.Seed != nil {
		seed = *g.cfg.Seed
	} else {
		drawn, err := randomSeed()
		if err != nil {
			return nil, err
		}
		seed = drawn
	}

	log.Info().
		Uint64("seed", seed).
		Int("organizations", g.cfg.Counts.Organizations).
		Int("tasks", g.cfg.Counts.Tasks).
		Str("provider", g.provider.Name()).
		Msg("Starting generation run")

	r := &run{
		cfg:      g.cfg,
		provider: g.provider,
		seed:     seed,
		metrics:  telemetry.GetMetrics(),
		ds: &models.Dataset{
			Seed:        seed,
			WindowStart: g.cfg.Window.Start.Time,
			WindowEnd:   g.cfg.Window.End.Time,
			GeneratedAt: time.Now().UTC(),
		},
	}

	if err := r.execute(ctx); err != nil {
		return nil, err
	}

	log.Info().Int("total_rows", r.ds.TotalRows()).Msg("Generation run complete")

	return r.ds, nil
}

// orgState carries one organization's finished pools between stages.
type orgState struct {
	org           models.Organization
	shells        []factory.TeamShell
	users         []models.User
	teams         []models.Team
	membersByTeam map[string][]models.User
	projects      []models.Project
	sections      map[string][]models.Section
	tasks         []models.Task
	subtasks      []models.Subtask
	comments      []models.Comment
	defs          []models.CustomFieldDefinition
	tags          []models.Tag
}

type run struct {
	cfg      config.Config
	provider content.Provider
	seed     uint64
	metrics  *telemetry.Metrics
	ds       *models.Dataset
	states   []*orgState
}

// stage is one pipeline step, named for the table it fills. The function
// returns the number of rows it produced.
type stage struct {
	name string
	fn   func(context.Context) (int, error)
}

func (r *run) execute(ctx context.Context) error {
	stages := []stage{
		{"organizations", r.organizations},
		{"teams", r.teams},
		{"users", r.users},
		{"team_memberships", r.memberships},
		{"projects", r.projects},
		{"sections", r.sections},
		{"tasks", r.tasks},
		{"subtasks", r.subtasks},
		{"comments", r.comments},
		{"custom_field_definitions", r.fieldDefinitions},
		{"custom_field_values", r.fieldValues},
		{"tags", r.tags},
		{"task_tags", r.taskTags},
		{"attachments", r.attachments},
	}

	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			return err
		}

		started := time.Now()
		rows, err := s.fn(ctx)
		if err != nil {
			return fmt.Errorf("%s stage failed: %w", s.name, err)
		}
		took := time.Since(started)

		r.metrics.RecordEntities(ctx, s.name, rows)
		r.metrics.RecordStage(ctx, s.name, took)
		log.Info().Str("stage", s.name).Int("rows", rows).Dur("took", took).Msg("Stage complete")
	}

	return nil
}

// contentWorkers sizes the pool for the stages that call the content
// provider. Template-only runs stay serial; there is nothing to overlap.
func (r *run) contentWorkers() int {
	if r.cfg.Provider.Name == config.ProviderNone {
		return 1
	}

	return r.cfg.Workers
}

func (r *run) organizations(_ context.Context) (int, error) {
	rng := subRand(r.seed, "organizations", 0)
	orgs := factory.Organizations(rng, ids.SeededSource(rng), r.cfg.Counts.Organizations, r.cfg.Window.Start.Time)

	r.ds.Organizations = orgs
	r.states = make([]*orgState, len(orgs))
	for i, org := range orgs {
		r.states[i] = &orgState{org: org}
	}

	return len(orgs), nil
}

func (r *run) teams(_ context.Context) (int, error) {
	total := 0
	for i, st := range r.states {
		rng := subRand(r.seed, "teams", i)
		st.shells = factory.TeamShells(rng, ids.SeededSource(rng), st.org, r.cfg.Counts.Teams)
		total += len(st.shells)
	}

	return total, nil
}

func (r *run) users(_ context.Context) (int, error) {
	total := 0
	for i, st := range r.states {
		rng := subRand(r.seed, "users", i)
		st.users = factory.Users(rng, ids.SeededSource(rng), st.org, r.cfg.Counts.Users, r.cfg.Window)
		r.ds.Users = append(r.ds.Users, st.users...)
		total += len(st.users)
	}

	return total, nil
}

func (r *run) memberships(_ context.Context) (int, error) {
	total := 0
	for i, st := range r.states {
		rng := subRand(r.seed, "team_memberships", i)
		memberships, teams := factory.Memberships(rng, ids.SeededSource(rng), st.shells, st.users, r.cfg.Window.End.Time)

		byID := make(map[string]models.User, len(st.users))
		for _, u := range st.users {
			byID[u.UserID] = u
		}
		st.membersByTeam = make(map[string][]models.User, len(teams))
		for _, m := range memberships {
			st.membersByTeam[m.TeamID] = append(st.membersByTeam[m.TeamID], byID[m.UserID])
		}

		st.teams = teams
		st.shells = nil
		r.ds.Teams = append(r.ds.Teams, teams...)
		r.ds.TeamMemberships = append(r.ds.TeamMemberships, memberships...)
		total += len(memberships)
	}

	return total, nil
}

func (r *run) projects(_ context.Context) (int, error) {
	total := 0
	for i, st := range r.states {
		rng := subRand(r.seed, "projects", i)
		st.projects = factory.Projects(rng, ids.SeededSource(rng), st.org, st.teams, st.membersByTeam, st.users, r.cfg.Counts.Projects, r.cfg.Window)
		r.ds.Projects = append(r.ds.Projects, st.projects...)
		total += len(st.projects)
	}

	return total, nil
}

func (r *run) sections(_ context.Context) (int, error) {
	total := 0
	for i, st := range r.states {
		rng := subRand(r.seed, "sections", i)
		sections := factory.Sections(ids.SeededSource(rng), st.projects)

		st.sections = make(map[string][]models.Section, len(st.projects))
		for _, s := range sections {
			st.sections[s.ProjectID] = append(st.sections[s.ProjectID], s)
		}

		r.ds.Sections = append(r.ds.Sections, sections...)
		total += len(sections)
	}

	return total, nil
}

func (r *run) tasks(ctx context.Context) (int, error) {
	workers := r.contentWorkers()

	total := 0
	for i, st := range r.states {
		in := factory.TaskInputs{
			Projects:      st.projects,
			Sections:      st.sections,
			Users:         st.users,
			MembersByTeam: st.membersByTeam,
			Window:        r.cfg.Window,
			Probabilities: r.cfg.Probabilities,
		}

		base := i * r.cfg.Counts.Tasks
		tasks, err := mapIndexed(ctx, workers, r.cfg.Counts.Tasks, func(ctx context.Context, n int) (models.Task, error) {
			rng := subRand(r.seed, "tasks", base+n)
			return factory.NewTask(ctx, rng, ids.SeededSource(rng), r.provider, in)
		})
		if err != nil {
			return 0, err
		}

		st.tasks = tasks
		r.ds.Tasks = append(r.ds.Tasks, tasks...)
		total += len(tasks)
	}

	return total, nil
}

func (r *run) subtasks(_ context.Context) (int, error) {
	total := 0
	for i, st := range r.states {
		rng := subRand(r.seed, "subtasks", i)
		st.subtasks = factory.Subtasks(rng, ids.SeededSource(rng), st.tasks, st.users, r.cfg.Probabilities.Subtask)
		r.ds.Subtasks = append(r.ds.Subtasks, st.subtasks...)
		total += len(st.subtasks)
	}

	return total, nil
}

func (r *run) comments(ctx context.Context) (int, error) {
	workers := r.contentWorkers()

	total := 0
	for i, st := range r.states {
		base := i * r.cfg.Counts.Tasks
		tasks := st.tasks
		users := st.users

		perTask, err := mapIndexed(ctx, workers, len(tasks), func(ctx context.Context, n int) ([]models.Comment, error) {
			rng := subRand(r.seed, "comments", base+n)
			return factory.CommentsForTask(ctx, rng, ids.SeededSource(rng), r.provider, tasks[n], users, r.cfg.Probabilities.Comment, r.cfg.Window.End.Time)
		})
		if err != nil {
			return 0, err
		}

		for _, comments := range perTask {
			st.comments = append(st.comments, comments...)
		}
		total += len(st.comments)
	}

	// rows reach the dataset in the attachments stage, once each comment's
	// attachment count is known
	return total, nil
}

func (r *run) fieldDefinitions(_ context.Context) (int, error) {
	total := 0
	for i, st := range r.states {
		rng := subRand(r.seed, "custom_field_definitions", i)
		st.defs = factory.FieldDefinitions(rng, ids.SeededSource(rng), st.org)
		r.ds.FieldDefinitions = append(r.ds.FieldDefinitions, st.defs...)
		total += len(st.defs)
	}

	return total, nil
}

func (r *run) fieldValues(_ context.Context) (int, error) {
	total := 0
	for i, st := range r.states {
		rng := subRand(r.seed, "custom_field_values", i)
		values := factory.FieldValues(rng, ids.SeededSource(rng), st.tasks, st.defs)
		r.ds.FieldValues = append(r.ds.FieldValues, values...)
		total += len(values)
	}

	return total, nil
}

func (r *run) tags(_ context.Context) (int, error) {
	total := 0
	for i, st := range r.states {
		rng := subRand(r.seed, "tags", i)
		st.tags = factory.Tags(rng, ids.SeededSource(rng), st.org, st.users)
		r.ds.Tags = append(r.ds.Tags, st.tags...)
		total += len(st.tags)
	}

	return total, nil
}

func (r *run) taskTags(_ context.Context) (int, error) {
	total := 0
	for i, st := range r.states {
		rng := subRand(r.seed, "task_tags", i)
		taskTags := factory.TaskTags(rng, ids.SeededSource(rng), st.tasks, st.tags)
		r.ds.TaskTags = append(r.ds.TaskTags, taskTags...)
		total += len(taskTags)
	}

	return total, nil
}

func (r *run) attachments(_ context.Context) (int, error) {
	total := 0
	for i, st := range r.states {
		rng := subRand(r.seed, "attachments", i)
		attachments, perComment := factory.Attachments(rng, ids.SeededSource(rng), st.tasks, st.subtasks, st.comments, r.cfg.Window.End.Time)

		st.comments = factory.FinalizeComments(st.comments, perComment)
		r.ds.Comments = append(r.ds.Comments, st.comments...)
		r.ds.Attachments = append(r.ds.Attachments, attachments...)
		total += len(attachments)
	}

	return total, nil
}
