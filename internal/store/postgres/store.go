package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/wolfeidau/taskseed/internal/models"
	"github.com/wolfeidau/taskseed/internal/store"
	"github.com/wolfeidau/taskseed/internal/telemetry"
)

// Store publishes datasets to PostgreSQL and loads them back. Publish runs
// in a single transaction, so a reseed either fully replaces the previous
// dataset or leaves it untouched.
type Store struct {
	pool    *pgxpool.Pool
	cfg     *Config
	metrics *telemetry.Metrics
}

// New creates a PostgreSQL-backed dataset store. It establishes a
// connection pool and, when AutoMigrate is set, brings the schema up to
// date.
func New(ctx context.Context, cfg *Config) (*Store, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	pool, err := NewPool(ctx, &cfg.Pool)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := runMigrations(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	return &Store{pool: pool, cfg: cfg, metrics: telemetry.GetMetrics()}, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// Publish replaces the database contents with the dataset. All tables are
// truncated and refilled inside one transaction; the commit is the publish
// point.
func (s *Store) Publish(ctx context.Context, ds *models.Dataset) error {
	started := time.Now()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback is safe to call after commit

	// One statement covers every table, so ordering constraints between
	// the foreign keys don't apply.
	if _, err := tx.Exec(ctx, `
		TRUNCATE dataset_runs, attachments, task_tags, tags, custom_field_values,
			custom_field_definitions, comments, subtasks, tasks, sections,
			projects, team_memberships, teams, users, organizations
	`); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", mapPostgresError(err))
	}

	for _, table := range models.TableOrder {
		rows, err := s.publishTable(ctx, tx, table, ds)
		if err != nil {
			return fmt.Errorf("failed to publish %s: %w", table, mapPostgresError(err))
		}

		s.metrics.RecordPublish(ctx, "postgres", table, rows)
		log.Debug().Str("table", table).Int("rows", rows).Msg("Table published")
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO dataset_runs (id, seed, window_start, window_end, generated_at)
		VALUES (1, $1, $2, $3, $4)
	`, strconv.FormatUint(ds.Seed, 10), ds.WindowStart, ds.WindowEnd, ds.GeneratedAt); err != nil {
		return fmt.Errorf("failed to record dataset run: %w", mapPostgresError(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit publish: %w", mapPostgresError(err))
	}

	s.metrics.RecordPublishDuration(ctx, "postgres", time.Since(started))

	log.Info().
		Int("total_rows", ds.TotalRows()).
		Dur("took", time.Since(started)).
		Msg("Dataset published to PostgreSQL")

	return nil
}

// batcher queues inserts and flushes them to the transaction in fixed-size
// batches.
type batcher struct {
	tx    pgx.Tx
	size  int
	batch *pgx.Batch
}

func newBatcher(tx pgx.Tx, size int) *batcher {
	return &batcher{tx: tx, size: size, batch: &pgx.Batch{}}
}

func (b *batcher) queue(ctx context.Context, query string, args ...any) error {
	b.batch.Queue(query, args...)
	if b.batch.Len() >= b.size {
		return b.flush(ctx)
	}
	return nil
}

func (b *batcher) flush(ctx context.Context) error {
	if b.batch.Len() == 0 {
		return nil
	}

	results := b.tx.SendBatch(ctx, b.batch)

	var err error
	for i := 0; i < b.batch.Len(); i++ {
		if _, execErr := results.Exec(); execErr != nil && err == nil {
			err = execErr
		}
	}
	if closeErr := results.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	b.batch = &pgx.Batch{}
	return err
}

func (s *Store) publishTable(ctx context.Context, tx pgx.Tx, table string, ds *models.Dataset) (int, error) {
	b := newBatcher(tx, s.cfg.BatchSize)

	var err error
	switch table {
	case "organizations":
		for _, o := range ds.Organizations {
			if err = b.queue(ctx, `
				INSERT INTO organizations (organization_id, name, domain, industry, employee_count, created_at, is_verified)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`, o.OrganizationID, o.Name, o.Domain, o.Industry, o.EmployeeCount, o.CreatedAt, o.IsVerified); err != nil {
				return 0, err
			}
		}
	case "users":
		for _, u := range ds.Users {
			if err = b.queue(ctx, `
				INSERT INTO users (user_id, organization_id, email, name, first_name, last_name, avatar_url, created_at, is_active, last_seen)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			`, u.UserID, u.OrganizationID, u.Email, u.Name, u.FirstName, u.LastName, u.AvatarURL, u.CreatedAt, u.IsActive, u.LastSeen); err != nil {
				return 0, err
			}
		}
	case "teams":
		for _, t := range ds.Teams {
			if err = b.queue(ctx, `
				INSERT INTO teams (team_id, organization_id, name, description, created_at, lead_user_id)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, t.TeamID, t.OrganizationID, t.Name, t.Description, t.CreatedAt, t.LeadUserID); err != nil {
				return 0, err
			}
		}
	case "team_memberships":
		for _, m := range ds.TeamMemberships {
			if err = b.queue(ctx, `
				INSERT INTO team_memberships (team_membership_id, team_id, user_id, joined_at, role, is_active)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, m.TeamMembershipID, m.TeamID, m.UserID, m.JoinedAt, m.Role, m.IsActive); err != nil {
				return 0, err
			}
		}
	case "projects":
		for _, p := range ds.Projects {
			if err = b.queue(ctx, `
				INSERT INTO projects (project_id, organization_id, team_id, name, description, created_at, owner_id, status, project_type, is_archived)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			`, p.ProjectID, p.OrganizationID, p.TeamID, p.Name, p.Description, p.CreatedAt, p.OwnerID, p.Status, p.ProjectType, p.IsArchived); err != nil {
				return 0, err
			}
		}
	case "sections":
		for _, sec := range ds.Sections {
			if err = b.queue(ctx, `
				INSERT INTO sections (section_id, project_id, name, display_order, created_at)
				VALUES ($1, $2, $3, $4, $5)
			`, sec.SectionID, sec.ProjectID, sec.Name, sec.DisplayOrder, sec.CreatedAt); err != nil {
				return 0, err
			}
		}
	case "tasks":
		for _, t := range ds.Tasks {
			if err = b.queue(ctx, `
				INSERT INTO tasks (task_id, project_id, section_id, name, description, created_at, created_by, assignee_id, due_date, start_date, completed, completed_at, priority, estimated_hours)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			`, t.TaskID, t.ProjectID, t.SectionID, t.Name, t.Description, t.CreatedAt, t.CreatedBy, t.AssigneeID, t.DueDate, t.StartDate, t.Completed, t.CompletedAt, t.Priority, t.EstimatedHours); err != nil {
				return 0, err
			}
		}
	case "subtasks":
		for _, st := range ds.Subtasks {
			if err = b.queue(ctx, `
				INSERT INTO subtasks (subtask_id, parent_task_id, project_id, name, description, created_at, created_by, assignee_id, due_date, completed, completed_at, display_order)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			`, st.SubtaskID, st.ParentTaskID, st.ProjectID, st.Name, st.Description, st.CreatedAt, st.CreatedBy, st.AssigneeID, st.DueDate, st.Completed, st.CompletedAt, st.DisplayOrder); err != nil {
				return 0, err
			}
		}
	case "comments":
		for _, c := range ds.Comments {
			if err = b.queue(ctx, `
				INSERT INTO comments (comment_id, task_id, subtask_id, user_id, text, created_at, updated_at, attachment_count)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			`, c.CommentID, c.TaskID, c.SubtaskID, c.UserID, c.Text, c.CreatedAt, c.UpdatedAt, c.AttachmentCount); err != nil {
				return 0, err
			}
		}
	case "custom_field_definitions":
		for _, d := range ds.FieldDefinitions {
			if err = b.queue(ctx, `
				INSERT INTO custom_field_definitions (custom_field_id, organization_id, name, description, field_type, created_at, is_active)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`, d.CustomFieldID, d.OrganizationID, d.Name, d.Description, d.FieldType, d.CreatedAt, d.IsActive); err != nil {
				return 0, err
			}
		}
	case "custom_field_values":
		for _, v := range ds.FieldValues {
			if err = b.queue(ctx, `
				INSERT INTO custom_field_values (custom_field_value_id, custom_field_id, task_id, subtask_id, value, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, v.CustomFieldValueID, v.CustomFieldID, v.TaskID, v.SubtaskID, v.Value, v.CreatedAt); err != nil {
				return 0, err
			}
		}
	case "tags":
		for _, t := range ds.Tags {
			if err = b.queue(ctx, `
				INSERT INTO tags (tag_id, organization_id, name, color, created_at, created_by)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, t.TagID, t.OrganizationID, t.Name, t.Color, t.CreatedAt, t.CreatedBy); err != nil {
				return 0, err
			}
		}
	case "task_tags":
		for _, tt := range ds.TaskTags {
			if err = b.queue(ctx, `
				INSERT INTO task_tags (task_tag_id, task_id, tag_id, added_at)
				VALUES ($1, $2, $3, $4)
			`, tt.TaskTagID, tt.TaskID, tt.TagID, tt.AddedAt); err != nil {
				return 0, err
			}
		}
	case "attachments":
		for _, a := range ds.Attachments {
			if err = b.queue(ctx, `
				INSERT INTO attachments (attachment_id, filename, created_at, uploaded_by, task_id, subtask_id, comment_id, file_url, file_size)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			`, a.AttachmentID, a.Filename, a.CreatedAt, a.UploadedBy, a.TaskID, a.SubtaskID, a.CommentID, a.FileURL, a.FileSize); err != nil {
				return 0, err
			}
		}
	default:
		return 0, fmt.Errorf("unknown table %q", table)
	}

	if err := b.flush(ctx); err != nil {
		return 0, err
	}

	return ds.Counts()[table], nil
}

// Load reads the published dataset back, with rows ordered by primary key.
// Returns store.ErrNotSeeded when no run has been published.
func (s *Store) Load(ctx context.Context) (*models.Dataset, error) {
	ds := &models.Dataset{}

	var seed string
	err := s.pool.QueryRow(ctx, `
		SELECT seed, window_start, window_end, generated_at
		FROM dataset_runs WHERE id = 1
	`).Scan(&seed, &ds.WindowStart, &ds.WindowEnd, &ds.GeneratedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotSeeded
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset run: %w", mapPostgresError(err))
	}

	ds.Seed, err = strconv.ParseUint(seed, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse recorded seed %q: %w", seed, err)
	}

	loaders := []func(context.Context, *models.Dataset) error{
		s.loadOrganizations,
		s.loadUsers,
		s.loadTeams,
		s.loadMemberships,
		s.loadProjects,
		s.loadSections,
		s.loadTasks,
		s.loadSubtasks,
		s.loadComments,
		s.loadFieldDefinitions,
		s.loadFieldValues,
		s.loadTags,
		s.loadTaskTags,
		s.loadAttachments,
	}
	for _, load := range loaders {
		if err := load(ctx, ds); err != nil {
			return nil, err
		}
	}

	log.Debug().Int("total_rows", ds.TotalRows()).Msg("Dataset loaded from PostgreSQL")

	return ds, nil
}

func (s *Store) loadOrganizations(ctx context.Context, ds *models.Dataset) error {
	rows, err := s.pool.Query(ctx, `
		SELECT organization_id, name, domain, industry, employee_count, created_at, is_verified
		FROM organizations ORDER BY organization_id
	`)
	if err != nil {
		return fmt.Errorf("failed to query organizations: %w", mapPostgresError(err))
	}
	defer rows.Close()

	for rows.Next() {
		var o models.Organization
		if err := rows.Scan(&o.OrganizationID, &o.Name, &o.Domain, &o.Industry, &o.EmployeeCount, &o.CreatedAt, &o.IsVerified); err != nil {
			return fmt.Errorf("failed to scan organization: %w", err)
		}
		ds.Organizations = append(ds.Organizations, o)
	}
	return rows.Err()
}

func (s *Store) loadUsers(ctx context.Context, ds *models.Dataset) error {
	rows, err := s.pool.Query(ctx, `
		SELECT user_id, organization_id, email, name, first_name, last_name, avatar_url, created_at, is_active, last_seen
		FROM users ORDER BY user_id
	`)
	if err != nil {
		return fmt.Errorf("failed to query users: %w", mapPostgresError(err))
	}
	defer rows.Close()

	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.UserID, &u.OrganizationID, &u.Email, &u.Name, &u.FirstName, &u.LastName, &u.AvatarURL, &u.CreatedAt, &u.IsActive, &u.LastSeen); err != nil {
			return fmt.Errorf("failed to scan user: %w", err)
		}
		ds.Users = append(ds.Users, u)
	}
	return rows.Err()
}

func (s *Store) loadTeams(ctx context.Context, ds *models.Dataset) error {
	rows, err := s.pool.Query(ctx, `
		SELECT team_id, organization_id, name, description, created_at, lead_user_id
		FROM teams ORDER BY team_id
	`)
	if err != nil {
		return fmt.Errorf("failed to query teams: %w", mapPostgresError(err))
	}
	defer rows.Close()

	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.TeamID, &t.OrganizationID, &t.Name, &t.Description, &t.CreatedAt, &t.LeadUserID); err != nil {
			return fmt.Errorf("failed to scan team: %w", err)
		}
		ds.Teams = append(ds.Teams, t)
	}
	return rows.Err()
}

func (s *Store) loadMemberships(ctx context.Context, ds *models.Dataset) error {
	rows, err := s.pool.Query(ctx, `
		SELECT team_membership_id, team_id, user_id, joined_at, role, is_active
		FROM team_memberships ORDER BY team_membership_id
	`)
	if err != nil {
		return fmt.Errorf("failed to query team memberships: %w", mapPostgresError(err))
	}
	defer rows.Close()

	for rows.Next() {
		var m models.TeamMembership
		if err := rows.Scan(&m.TeamMembershipID, &m.TeamID, &m.UserID, &m.JoinedAt, &m.Role, &m.IsActive); err != nil {
			return fmt.Errorf("failed to scan team membership: %w", err)
		}
		ds.TeamMemberships = append(ds.TeamMemberships, m)
	}
	return rows.Err()
}

func (s *Store) loadProjects(ctx context.Context, ds *models.Dataset) error {
	rows, err := s.pool.Query(ctx, `
		SELECT project_id, organization_id, team_id, name, description, created_at, owner_id, status, project_type, is_archived
		FROM projects ORDER BY project_id
	`)
	if err != nil {
		return fmt.Errorf("failed to query projects: %w", mapPostgresError(err))
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ProjectID, &p.OrganizationID, &p.TeamID, &p.Name, &p.Description, &p.CreatedAt, &p.OwnerID, &p.Status, &p.ProjectType, &p.IsArchived); err != nil {
			return fmt.Errorf("failed to scan project: %w", err)
		}
		ds.Projects = append(ds.Projects, p)
	}
	return rows.Err()
}

func (s *Store) loadSections(ctx context.Context, ds *models.Dataset) error {
	rows, err := s.pool.Query(ctx, `
		SELECT section_id, project_id, name, display_order, created_at
		FROM sections ORDER BY section_id
	`)
	if err != nil {
		return fmt.Errorf("failed to query sections: %w", mapPostgresError(err))
	}
	defer rows.Close()

	for rows.Next() {
		var sec models.Section
		if err := rows.Scan(&sec.SectionID, &sec.ProjectID, &sec.Name, &sec.DisplayOrder, &sec.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan section: %w", err)
		}
		ds.Sections = append(ds.Sections, sec)
	}
	return rows.Err()
}

func (s *Store) loadTasks(ctx context.Context, ds *models.Dataset) error {
	rows, err := s.pool.Query(ctx, `
		SELECT task_id, project_id, section_id, name, description, created_at, created_by, assignee_id, due_date, start_date, completed, completed_at, priority, estimated_hours
		FROM tasks ORDER BY task_id
	`)
	if err != nil {
		return fmt.Errorf("failed to query tasks: %w", mapPostgresError(err))
	}
	defer rows.Close()

	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.TaskID, &t.ProjectID, &t.SectionID, &t.Name, &t.Description, &t.CreatedAt, &t.CreatedBy, &t.AssigneeID, &t.DueDate, &t.StartDate, &t.Completed, &t.CompletedAt, &t.Priority, &t.EstimatedHours); err != nil {
			return fmt.Errorf("failed to scan task: %w", err)
		}
		ds.Tasks = append(ds.Tasks, t)
	}
	return rows.Err()
}

func (s *Store) loadSubtasks(ctx context.Context, ds *models.Dataset) error {
	rows, err := s.pool.Query(ctx, `
		SELECT subtask_id, parent_task_id, project_id, name, description, created_at, created_by, assignee_id, due_date, completed, completed_at, display_order
		FROM subtasks ORDER BY subtask_id
	`)
	if err != nil {
		return fmt.Errorf("failed to query subtasks: %w", mapPostgresError(err))
	}
	defer rows.Close()

	for rows.Next() {
		var st models.Subtask
		if err := rows.Scan(&st.SubtaskID, &st.ParentTaskID, &st.ProjectID, &st.Name, &st.Description, &st.CreatedAt, &st.CreatedBy, &st.AssigneeID, &st.DueDate, &st.Completed, &st.CompletedAt, &st.DisplayOrder); err != nil {
			return fmt.Errorf("failed to scan subtask: %w", err)
		}
		ds.Subtasks = append(ds.Subtasks, st)
	}
	return rows.Err()
}

func (s *Store) loadComments(ctx context.Context, ds *models.Dataset) error {
	rows, err := s.pool.Query(ctx, `
		SELECT comment_id, task_id, subtask_id, user_id, text, created_at, updated_at, attachment_count
		FROM comments ORDER BY comment_id
	`)
	if err != nil {
		return fmt.Errorf("failed to query comments: %w", mapPostgresError(err))
	}
	defer rows.Close()

	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.CommentID, &c.TaskID, &c.SubtaskID, &c.UserID, &c.Text, &c.CreatedAt, &c.UpdatedAt, &c.AttachmentCount); err != nil {
			return fmt.Errorf("failed to scan comment: %w", err)
		}
		ds.Comments = append(ds.Comments, c)
	}
	return rows.Err()
}

func (s *Store) loadFieldDefinitions(ctx context.Context, ds *models.Dataset) error {
	rows, err := s.pool.Query(ctx, `
		SELECT custom_field_id, organization_id, name, description, field_type, created_at, is_active
		FROM custom_field_definitions ORDER BY custom_field_id
	`)
	if err != nil {
		return fmt.Errorf("failed to query custom field definitions: %w", mapPostgresError(err))
	}
	defer rows.Close()

	for rows.Next() {
		var d models.CustomFieldDefinition
		if err := rows.Scan(&d.CustomFieldID, &d.OrganizationID, &d.Name, &d.Description, &d.FieldType, &d.CreatedAt, &d.IsActive); err != nil {
			return fmt.Errorf("failed to scan custom field definition: %w", err)
		}
		ds.FieldDefinitions = append(ds.FieldDefinitions, d)
	}
	return rows.Err()
}

func (s *Store) loadFieldValues(ctx context.Context, ds *models.Dataset) error {
	rows, err := s.pool.Query(ctx, `
		SELECT custom_field_value_id, custom_field_id, task_id, subtask_id, value, created_at
		FROM custom_field_values ORDER BY custom_field_value_id
	`)
	if err != nil {
		return fmt.Errorf("failed to query custom field values: %w", mapPostgresError(err))
	}
	defer rows.Close()

	for rows.Next() {
		var v models.CustomFieldValue
		if err := rows.Scan(&v.CustomFieldValueID, &v.CustomFieldID, &v.TaskID, &v.SubtaskID, &v.Value, &v.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan custom field value: %w", err)
		}
		ds.FieldValues = append(ds.FieldValues, v)
	}
	return rows.Err()
}

func (s *Store) loadTags(ctx context.Context, ds *models.Dataset) error {
	rows, err := s.pool.Query(ctx, `
		SELECT tag_id, organization_id, name, color, created_at, created_by
		FROM tags ORDER BY tag_id
	`)
	if err != nil {
		return fmt.Errorf("failed to query tags: %w", mapPostgresError(err))
	}
	defer rows.Close()

	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.TagID, &t.OrganizationID, &t.Name, &t.Color, &t.CreatedAt, &t.CreatedBy); err != nil {
			return fmt.Errorf("failed to scan tag: %w", err)
		}
		ds.Tags = append(ds.Tags, t)
	}
	return rows.Err()
}

func (s *Store) loadTaskTags(ctx context.Context, ds *models.Dataset) error {
	rows, err := s.pool.Query(ctx, `
		SELECT task_tag_id, task_id, tag_id, added_at
		FROM task_tags ORDER BY task_tag_id
	`)
	if err != nil {
		return fmt.Errorf("failed to query task tags: %w", mapPostgresError(err))
	}
	defer rows.Close()

	for rows.Next() {
		var tt models.TaskTag
		if err := rows.Scan(&tt.TaskTagID, &tt.TaskID, &tt.TagID, &tt.AddedAt); err != nil {
			return fmt.Errorf("failed to scan task tag: %w", err)
		}
		ds.TaskTags = append(ds.TaskTags, tt)
	}
	return rows.Err()
}

func (s *Store) loadAttachments(ctx context.Context, ds *models.Dataset) error {
	rows, err := s.pool.Query(ctx, `
		SELECT attachment_id, filename, created_at, uploaded_by, task_id, subtask_id, comment_id, file_url, file_size
		FROM attachments ORDER BY attachment_id
	`)
	if err != nil {
		return fmt.Errorf("failed to query attachments: %w", mapPostgresError(err))
	}
	defer rows.Close()

	for rows.Next() {
		var a models.Attachment
		if err := rows.Scan(&a.AttachmentID, &a.Filename, &a.CreatedAt, &a.UploadedBy, &a.TaskID, &a.SubtaskID, &a.CommentID, &a.FileURL, &a.FileSize); err != nil {
			return fmt.Errorf("failed to scan attachment: %w", err)
		}
		ds.Attachments = append(ds.Attachments, a)
	}
	return rows.Err()
}
