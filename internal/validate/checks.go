package validate

import (
	"sort"
	"time"

	"github.com/wolfeidau/taskseed/internal/models"
)

type checker struct {
	ds     *models.Dataset
	report *Report

	orgs     map[string]models.Organization
	users    map[string]models.User
	teams    map[string]models.Team
	projects map[string]models.Project
	sections map[string]models.Section
	tasks    map[string]models.Task
	subtasks map[string]models.Subtask
	comments map[string]models.Comment
	defs     map[string]models.CustomFieldDefinition
	tags     map[string]models.Tag
}

func newChecker(ds *models.Dataset) *checker {
	c := &checker{
		ds:       ds,
		report:   &Report{Tasks: len(ds.Tasks)},
		orgs:     make(map[string]models.Organization, len(ds.Organizations)),
		users:    make(map[string]models.User, len(ds.Users)),
		teams:    make(map[string]models.Team, len(ds.Teams)),
		projects: make(map[string]models.Project, len(ds.Projects)),
		sections: make(map[string]models.Section, len(ds.Sections)),
		tasks:    make(map[string]models.Task, len(ds.Tasks)),
		subtasks: make(map[string]models.Subtask, len(ds.Subtasks)),
		comments: make(map[string]models.Comment, len(ds.Comments)),
		defs:     make(map[string]models.CustomFieldDefinition, len(ds.FieldDefinitions)),
		tags:     make(map[string]models.Tag, len(ds.Tags)),
	}

	for _, o := range ds.Organizations {
		c.orgs[o.OrganizationID] = o
	}
	for _, u := range ds.Users {
		c.users[u.UserID] = u
	}
	for _, t := range ds.Teams {
		c.teams[t.TeamID] = t
	}
	for _, p := range ds.Projects {
		c.projects[p.ProjectID] = p
	}
	for _, s := range ds.Sections {
		c.sections[s.SectionID] = s
	}
	for _, t := range ds.Tasks {
		c.tasks[t.TaskID] = t
	}
	for _, s := range ds.Subtasks {
		c.subtasks[s.SubtaskID] = s
	}
	for _, cm := range ds.Comments {
		c.comments[cm.CommentID] = cm
	}
	for _, d := range ds.FieldDefinitions {
		c.defs[d.CustomFieldID] = d
	}
	for _, t := range ds.Tags {
		c.tags[t.TagID] = t
	}

	return c
}

func (c *checker) checkReferential() {
	add := func(format string, args ...any) {
		c.report.add(CategoryReferential, format, args...)
	}

	for _, u := range c.ds.Users {
		if _, ok := c.orgs[u.OrganizationID]; !ok {
			add("user %s references missing organization %s", u.UserID, u.OrganizationID)
		}
	}

	for _, t := range c.ds.Teams {
		if _, ok := c.orgs[t.OrganizationID]; !ok {
			add("team %s references missing organization %s", t.TeamID, t.OrganizationID)
		}
		if t.LeadUserID != nil {
			if _, ok := c.users[*t.LeadUserID]; !ok {
				add("team %s lead %s is not a known user", t.TeamID, *t.LeadUserID)
			}
		}
	}

	for _, m := range c.ds.TeamMemberships {
		if _, ok := c.teams[m.TeamID]; !ok {
			add("membership %s references missing team %s", m.TeamMembershipID, m.TeamID)
		}
		if _, ok := c.users[m.UserID]; !ok {
			add("membership %s references missing user %s", m.TeamMembershipID, m.UserID)
		}
	}

	for _, p := range c.ds.Projects {
		if _, ok := c.orgs[p.OrganizationID]; !ok {
			add("project %s references missing organization %s", p.ProjectID, p.OrganizationID)
		}
		if _, ok := c.users[p.OwnerID]; !ok {
			add("project %s owner %s is not a known user", p.ProjectID, p.OwnerID)
		}
		if p.TeamID != nil {
			if _, ok := c.teams[*p.TeamID]; !ok {
				add("project %s references missing team %s", p.ProjectID, *p.TeamID)
			}
		}
	}

	for _, s := range c.ds.Sections {
		if _, ok := c.projects[s.ProjectID]; !ok {
			add("section %s references missing project %s", s.SectionID, s.ProjectID)
		}
	}

	for _, t := range c.ds.Tasks {
		if _, ok := c.projects[t.ProjectID]; !ok {
			add("task %s references missing project %s", t.TaskID, t.ProjectID)
		}
		if _, ok := c.users[t.CreatedBy]; !ok {
			add("task %s creator %s is not a known user", t.TaskID, t.CreatedBy)
		}
		if t.AssigneeID != nil {
			if _, ok := c.users[*t.AssigneeID]; !ok {
				add("task %s assignee %s is not a known user", t.TaskID, *t.AssigneeID)
			}
		}
		if t.SectionID != nil {
			section, ok := c.sections[*t.SectionID]
			if !ok {
				add("task %s references missing section %s", t.TaskID, *t.SectionID)
			} else if section.ProjectID != t.ProjectID {
				add("task %s uses section %s from another project", t.TaskID, *t.SectionID)
			}
		}
	}

	for _, s := range c.ds.Subtasks {
		parent, ok := c.tasks[s.ParentTaskID]
		if !ok {
			add("subtask %s references missing task %s", s.SubtaskID, s.ParentTaskID)
		} else if parent.ProjectID != s.ProjectID {
			add("subtask %s project differs from its parent's", s.SubtaskID)
		}
		if _, ok := c.users[s.CreatedBy]; !ok {
			add("subtask %s creator %s is not a known user", s.SubtaskID, s.CreatedBy)
		}
		if s.AssigneeID != nil {
			if _, ok := c.users[*s.AssigneeID]; !ok {
				add("subtask %s assignee %s is not a known user", s.SubtaskID, *s.AssigneeID)
			}
		}
	}

	for _, cm := range c.ds.Comments {
		if cm.TaskID != nil {
			if _, ok := c.tasks[*cm.TaskID]; !ok {
				add("comment %s references missing task %s", cm.CommentID, *cm.TaskID)
			}
		}
		if cm.SubtaskID != nil {
			if _, ok := c.subtasks[*cm.SubtaskID]; !ok {
				add("comment %s references missing subtask %s", cm.CommentID, *cm.SubtaskID)
			}
		}
		if _, ok := c.users[cm.UserID]; !ok {
			add("comment %s author %s is not a known user", cm.CommentID, cm.UserID)
		}
	}

	for _, d := range c.ds.FieldDefinitions {
		if _, ok := c.orgs[d.OrganizationID]; !ok {
			add("field %s references missing organization %s", d.CustomFieldID, d.OrganizationID)
		}
	}

	for _, v := range c.ds.FieldValues {
		if _, ok := c.defs[v.CustomFieldID]; !ok {
			add("field value %s references missing field %s", v.CustomFieldValueID, v.CustomFieldID)
		}
		if v.TaskID != nil {
			if _, ok := c.tasks[*v.TaskID]; !ok {
				add("field value %s references missing task %s", v.CustomFieldValueID, *v.TaskID)
			}
		}
		if v.SubtaskID != nil {
			if _, ok := c.subtasks[*v.SubtaskID]; !ok {
				add("field value %s references missing subtask %s", v.CustomFieldValueID, *v.SubtaskID)
			}
		}
	}

	for _, tg := range c.ds.Tags {
		if _, ok := c.orgs[tg.OrganizationID]; !ok {
			add("tag %s references missing organization %s", tg.TagID, tg.OrganizationID)
		}
		if _, ok := c.users[tg.CreatedBy]; !ok {
			add("tag %s creator %s is not a known user", tg.TagID, tg.CreatedBy)
		}
	}

	for _, tt := range c.ds.TaskTags {
		if _, ok := c.tasks[tt.TaskID]; !ok {
			add("task tag %s references missing task %s", tt.TaskTagID, tt.TaskID)
		}
		if _, ok := c.tags[tt.TagID]; !ok {
			add("task tag %s references missing tag %s", tt.TaskTagID, tt.TagID)
		}
	}

	for _, a := range c.ds.Attachments {
		if _, ok := c.users[a.UploadedBy]; !ok {
			add("attachment %s uploader %s is not a known user", a.AttachmentID, a.UploadedBy)
		}
		if a.TaskID != nil {
			if _, ok := c.tasks[*a.TaskID]; !ok {
				add("attachment %s references missing task %s", a.AttachmentID, *a.TaskID)
			}
		}
		if a.SubtaskID != nil {
			if _, ok := c.subtasks[*a.SubtaskID]; !ok {
				add("attachment %s references missing subtask %s", a.AttachmentID, *a.SubtaskID)
			}
		}
		if a.CommentID != nil {
			if _, ok := c.comments[*a.CommentID]; !ok {
				add("attachment %s references missing comment %s", a.AttachmentID, *a.CommentID)
			}
		}
	}
}

func (c *checker) checkUniqueness() {
	add := func(format string, args ...any) {
		c.report.add(CategoryReferential, format, args...)
	}

	domains := map[string]string{}
	for _, o := range c.ds.Organizations {
		if other, ok := domains[o.Domain]; ok {
			add("organizations %s and %s share domain %s", other, o.OrganizationID, o.Domain)
		}
		domains[o.Domain] = o.OrganizationID
	}

	emails := map[string]bool{}
	for _, u := range c.ds.Users {
		key := u.OrganizationID + "/" + u.Email
		if emails[key] {
			add("duplicate email %s in organization %s", u.Email, u.OrganizationID)
		}
		emails[key] = true
	}

	members := map[string]bool{}
	for _, m := range c.ds.TeamMemberships {
		key := m.TeamID + "/" + m.UserID
		if members[key] {
			add("user %s enrolled twice in team %s", m.UserID, m.TeamID)
		}
		members[key] = true
	}

	tagNames := map[string]bool{}
	for _, tg := range c.ds.Tags {
		key := tg.OrganizationID + "/" + tg.Name
		if tagNames[key] {
			add("duplicate tag %q in organization %s", tg.Name, tg.OrganizationID)
		}
		tagNames[key] = true
	}

	fieldNames := map[string]bool{}
	for _, d := range c.ds.FieldDefinitions {
		key := d.OrganizationID + "/" + d.Name
		if fieldNames[key] {
			add("duplicate field %q in organization %s", d.Name, d.OrganizationID)
		}
		fieldNames[key] = true
	}

	taskTags := map[string]bool{}
	for _, tt := range c.ds.TaskTags {
		key := tt.TaskID + "/" + tt.TagID
		if taskTags[key] {
			add("task %s carries tag %s twice", tt.TaskID, tt.TagID)
		}
		taskTags[key] = true
	}
}

func (c *checker) checkTemporal() {
	add := func(format string, args ...any) {
		c.report.add(CategoryTemporal, format, args...)
	}

	windowCeiling := c.ds.WindowEnd.AddDate(0, 0, 1)
	trailingCeiling := c.ds.WindowEnd.AddDate(0, 0, 31)

	inWindow := func(ts time.Time) bool {
		return !ts.Before(c.ds.WindowStart) && ts.Before(windowCeiling)
	}

	for _, u := range c.ds.Users {
		if !inWindow(u.CreatedAt) {
			add("user %s created outside the window", u.UserID)
		}
		if u.LastSeen != nil && u.LastSeen.Before(u.CreatedAt) {
			add("user %s last seen before creation", u.UserID)
		}
	}

	for _, t := range c.ds.Teams {
		if !inWindow(t.CreatedAt) {
			add("team %s created outside the window", t.TeamID)
		}
	}

	for _, m := range c.ds.TeamMemberships {
		if user, ok := c.users[m.UserID]; ok && m.JoinedAt.Before(user.CreatedAt) {
			add("membership %s joined before user %s existed", m.TeamMembershipID, m.UserID)
		}
		if team, ok := c.teams[m.TeamID]; ok && m.JoinedAt.Before(team.CreatedAt) {
			add("membership %s joined before team %s existed", m.TeamMembershipID, m.TeamID)
		}
	}

	for _, p := range c.ds.Projects {
		if !inWindow(p.CreatedAt) {
			add("project %s created outside the window", p.ProjectID)
		}
	}

	for _, t := range c.ds.Tasks {
		if !inWindow(t.CreatedAt) {
			add("task %s created outside the window", t.TaskID)
		}
		if project, ok := c.projects[t.ProjectID]; ok && t.CreatedAt.Before(project.CreatedAt) {
			add("task %s created before its project", t.TaskID)
		}
		if t.DueDate != nil {
			created := t.CreatedAt.UTC()
			createdDay := time.Date(created.Year(), created.Month(), created.Day(), 0, 0, 0, 0, time.UTC)
			if t.DueDate.Before(createdDay) {
				add("task %s due before its creation date", t.TaskID)
			}
		}
		if t.StartDate != nil && t.DueDate != nil && t.StartDate.After(*t.DueDate) {
			add("task %s starts after its due date", t.TaskID)
		}
		if t.CompletedAt != nil {
			if !t.CompletedAt.After(t.CreatedAt) {
				add("task %s completed at or before creation", t.TaskID)
			}
			if !t.CompletedAt.Before(trailingCeiling) {
				add("task %s completed too far past the window", t.TaskID)
			}
		}
	}

	for _, s := range c.ds.Subtasks {
		parent, ok := c.tasks[s.ParentTaskID]
		if ok && !s.CreatedAt.After(parent.CreatedAt) {
			add("subtask %s created at or before its parent", s.SubtaskID)
		}
		if s.CompletedAt != nil && !s.CompletedAt.After(s.CreatedAt) {
			add("subtask %s completed at or before creation", s.SubtaskID)
		}
	}

	for _, cm := range c.ds.Comments {
		if cm.TaskID == nil {
			continue
		}
		task, ok := c.tasks[*cm.TaskID]
		if !ok {
			continue
		}

		floor := task.CreatedAt.Add(5 * time.Minute)
		if cm.CreatedAt.Before(floor) {
			add("comment %s posted under five minutes after task creation", cm.CommentID)
		}

		upper := windowCeiling
		if task.CompletedAt != nil {
			upper = *task.CompletedAt
			if upper.Before(floor) {
				upper = floor
			}
		}
		if cm.CreatedAt.After(upper) {
			add("comment %s posted after the task's discussion closed", cm.CommentID)
		}

		if cm.UpdatedAt != nil && !cm.UpdatedAt.After(cm.CreatedAt) {
			add("comment %s updated at or before creation", cm.CommentID)
		}
	}

	for _, v := range c.ds.FieldValues {
		if def, ok := c.defs[v.CustomFieldID]; ok && v.CreatedAt.Before(def.CreatedAt) {
			add("field value %s predates its definition", v.CustomFieldValueID)
		}
		if v.TaskID != nil {
			if task, ok := c.tasks[*v.TaskID]; ok && !v.CreatedAt.Equal(task.CreatedAt) {
				add("field value %s does not carry its task's creation time", v.CustomFieldValueID)
			}
		}
	}

	for _, tt := range c.ds.TaskTags {
		if tag, ok := c.tags[tt.TagID]; ok && tt.AddedAt.Before(tag.CreatedAt) {
			add("task tag %s added before the tag existed", tt.TaskTagID)
		}
		if task, ok := c.tasks[tt.TaskID]; ok && tt.AddedAt.Before(task.CreatedAt) {
			add("task tag %s added before the task existed", tt.TaskTagID)
		}
	}

	for _, a := range c.ds.Attachments {
		host, ok := c.attachmentHostTime(a)
		if ok && !a.CreatedAt.After(host) {
			add("attachment %s uploaded at or before its host", a.AttachmentID)
		}
		if a.CreatedAt.After(trailingCeiling) {
			add("attachment %s uploaded too far past the window", a.AttachmentID)
		}
	}
}

func (c *checker) attachmentHostTime(a models.Attachment) (time.Time, bool) {
	switch {
	case a.TaskID != nil:
		if t, ok := c.tasks[*a.TaskID]; ok {
			return t.CreatedAt, true
		}
	case a.SubtaskID != nil:
		if s, ok := c.subtasks[*a.SubtaskID]; ok {
			return s.CreatedAt, true
		}
	case a.CommentID != nil:
		if cm, ok := c.comments[*a.CommentID]; ok {
			return cm.CreatedAt, true
		}
	}
	return time.Time{}, false
}

func (c *checker) checkBusiness() {
	add := func(format string, args ...any) {
		c.report.add(CategoryBusiness, format, args...)
	}

	sectionsByProject := map[string][]models.Section{}
	for _, s := range c.ds.Sections {
		sectionsByProject[s.ProjectID] = append(sectionsByProject[s.ProjectID], s)
	}
	for _, p := range c.ds.Projects {
		sections := sectionsByProject[p.ProjectID]
		if len(sections) == 0 {
			add("project %s has no sections", p.ProjectID)
			continue
		}

		sort.Slice(sections, func(i, j int) bool { return sections[i].DisplayOrder < sections[j].DisplayOrder })
		for i, s := range sections {
			if s.DisplayOrder != i {
				add("project %s section order has gaps", p.ProjectID)
				break
			}
		}
	}

	membersByTeam := map[string]map[string]bool{}
	for _, m := range c.ds.TeamMemberships {
		if membersByTeam[m.TeamID] == nil {
			membersByTeam[m.TeamID] = map[string]bool{}
		}
		membersByTeam[m.TeamID][m.UserID] = true
	}
	for _, t := range c.ds.Teams {
		members := membersByTeam[t.TeamID]
		switch {
		case len(members) == 0:
			if t.LeadUserID != nil {
				add("team %s has a lead but no members", t.TeamID)
			}
		case t.LeadUserID == nil:
			add("team %s has members but no lead", t.TeamID)
		case !members[*t.LeadUserID]:
			add("team %s lead %s is not a member", t.TeamID, *t.LeadUserID)
		}
	}

	for _, m := range c.ds.TeamMemberships {
		if user, ok := c.users[m.UserID]; ok && m.IsActive != user.IsActive {
			add("membership %s active flag disagrees with user %s", m.TeamMembershipID, m.UserID)
		}
	}

	for _, t := range c.ds.Tasks {
		if t.Completed != (t.CompletedAt != nil) {
			add("task %s completed flag disagrees with its timestamp", t.TaskID)
		}

		project, ok := c.projects[t.ProjectID]
		if !ok {
			continue
		}
		isSprint := project.ProjectType == models.ProjectTypeSprint
		if isSprint && t.EstimatedHours == nil {
			add("sprint task %s has no estimate", t.TaskID)
		}
		if !isSprint && t.EstimatedHours != nil {
			add("task %s carries an estimate outside a sprint project", t.TaskID)
		}
	}

	ordersByParent := map[string][]int{}
	for _, s := range c.ds.Subtasks {
		if s.Completed != (s.CompletedAt != nil) {
			add("subtask %s completed flag disagrees with its timestamp", s.SubtaskID)
		}
		ordersByParent[s.ParentTaskID] = append(ordersByParent[s.ParentTaskID], s.DisplayOrder)
	}
	for parent, orders := range ordersByParent {
		sort.Ints(orders)
		for i, order := range orders {
			if order != i {
				add("task %s subtask order has gaps", parent)
				break
			}
		}
	}

	attachmentsByComment := map[string]int{}
	for _, a := range c.ds.Attachments {
		hosts := 0
		if a.TaskID != nil {
			hosts++
		}
		if a.SubtaskID != nil {
			hosts++
		}
		if a.CommentID != nil {
			hosts++
			attachmentsByComment[*a.CommentID]++
		}
		if hosts != 1 {
			add("attachment %s references %d hosts, want exactly one", a.AttachmentID, hosts)
		}
	}

	for _, cm := range c.ds.Comments {
		hosts := 0
		if cm.TaskID != nil {
			hosts++
		}
		if cm.SubtaskID != nil {
			hosts++
		}
		if hosts != 1 {
			add("comment %s references %d hosts, want exactly one", cm.CommentID, hosts)
		}
		if cm.AttachmentCount != attachmentsByComment[cm.CommentID] {
			add("comment %s counts %d attachments but %d rows reference it", cm.CommentID, cm.AttachmentCount, attachmentsByComment[cm.CommentID])
		}
	}

	for _, v := range c.ds.FieldValues {
		hosts := 0
		if v.TaskID != nil {
			hosts++
		}
		if v.SubtaskID != nil {
			hosts++
		}
		if hosts != 1 {
			add("field value %s references %d hosts, want exactly one", v.CustomFieldValueID, hosts)
		}
	}
}

func (c *checker) checkDistributions() {
	tasks := float64(len(c.ds.Tasks))
	if tasks == 0 {
		return
	}

	unassigned, due, done := 0, 0, 0
	for _, t := range c.ds.Tasks {
		if t.AssigneeID == nil {
			unassigned++
		}
		if t.DueDate != nil {
			due++
		}
		if t.Completed {
			done++
		}
	}
	c.report.observe("unassigned_rate", float64(unassigned)/tasks, 0.12, 0.18)
	c.report.observe("due_date_rate", float64(due)/tasks, 0.87, 0.93)
	c.report.observe("completion_rate", float64(done)/tasks, 0.50, 0.70)

	withSubtasks := map[string]bool{}
	for _, s := range c.ds.Subtasks {
		withSubtasks[s.ParentTaskID] = true
	}
	c.report.observe("subtask_coverage", float64(len(withSubtasks))/tasks, 0.30, 0.40)

	withComments := map[string]bool{}
	for _, cm := range c.ds.Comments {
		if cm.TaskID != nil {
			withComments[*cm.TaskID] = true
		}
	}
	c.report.observe("comment_coverage", float64(len(withComments))/tasks, 0.50, 0.70)

	if len(c.ds.Teams) > 0 {
		c.report.observe("avg_team_size",
			float64(len(c.ds.TeamMemberships))/float64(len(c.ds.Teams)), 8, 25)
	}

	if users := float64(len(c.ds.Users)); users > 0 {
		active := 0
		for _, u := range c.ds.Users {
			if u.IsActive {
				active++
			}
		}
		c.report.observe("active_user_rate", float64(active)/users, 0.88, 1.0)
	}
}
