package factory

import (
	"fmt"
	"math/rand/v2"

	"github.com/wolfeidau/taskseed/internal/catalog"
	"github.com/wolfeidau/taskseed/internal/config"
	"github.com/wolfeidau/taskseed/internal/dist"
	"github.com/wolfeidau/taskseed/internal/ids"
	"github.com/wolfeidau/taskseed/internal/models"
)

var projectTypes = dist.MustWeighted(
	[]string{
		models.ProjectTypeSprint,
		models.ProjectTypeProductRoadmap,
		models.ProjectTypeMarketingCampaign,
		models.ProjectTypeBugTracking,
		models.ProjectTypeOperational,
		models.ProjectTypeOngoing,
	},
	[]float64{0.30, 0.15, 0.15, 0.15, 0.15, 0.10},
)

var projectStatuses = dist.MustWeighted(
	[]string{models.ProjectStatusActive, models.ProjectStatusArchived},
	[]float64{3, 1},
)

// Projects builds count projects for an organization. Four in five attach
// to a team round-robin, the rest are org-wide. Owners come from the
// attached team's members when there is one. Creation lands at least a week
// into the window, leaving room for teams and field definitions to predate
// any project's work, and at least thirty days before the end so every
// project accumulates history.
func Projects(rng *rand.Rand, src *ids.Source, org models.Organization, teams []models.Team, membersByTeam map[string][]models.User, users []models.User, count int, window config.Window) []models.Project {
	dealer := newNameDealer(rng, catalog.ProjectNames)

	start := org.CreatedAt.AddDate(0, 0, 7)
	end := window.End.Time.AddDate(0, 0, -30)
	if end.Before(start) {
		end = start
	}

	projects := make([]models.Project, 0, count)
	for i := 0; i < count; i++ {
		name := dealer.deal()
		projectType := projectTypes.Sample(rng)

		owner := dist.Pick(rng, users)
		var teamID *string
		if len(teams) > 0 && !dist.Bernoulli(rng, 0.20) {
			team := teams[i%len(teams)]
			teamID = ptr(team.TeamID)
			if members := membersByTeam[team.TeamID]; len(members) > 0 {
				owner = dist.Pick(rng, members)
			}
		}

		projects = append(projects, models.Project{
			ProjectID:      src.New(ids.PrefixProject),
			OrganizationID: org.OrganizationID,
			TeamID:         teamID,
			Name:           name,
			Description:    fmt.Sprintf("Project for %s. Type: %s", name, projectType),
			CreatedAt:      dist.BusinessTimestamp(rng, start, end, 1),
			OwnerID:        owner.UserID,
			Status:         projectStatuses.Sample(rng),
			ProjectType:    projectType,
			IsArchived:     dist.Bernoulli(rng, 0.15),
		})
	}

	return projects
}

// Sections lays out each project's board columns for its type. Display
// order follows the catalog and creation matches the project.
func Sections(src *ids.Source, projects []models.Project) []models.Section {
	sections := make([]models.Section, 0, len(projects)*5)
	for _, project := range projects {
		for i, name := range catalog.Sections(project.ProjectType) {
			sections = append(sections, models.Section{
				SectionID:    src.New(ids.PrefixSection),
				ProjectID:    project.ProjectID,
				Name:         name,
				DisplayOrder: i,
				CreatedAt:    project.CreatedAt,
			})
		}
	}

	return sections
}
