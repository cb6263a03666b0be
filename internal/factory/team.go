package factory

import (
	"fmt"
	"math/rand/v2"

	"github.com/wolfeidau/taskseed/internal/catalog"
	"github.com/wolfeidau/taskseed/internal/dist"
	"github.com/wolfeidau/taskseed/internal/ids"
	"github.com/wolfeidau/taskseed/internal/models"
)

// TeamShell is a team whose lead is not yet known. Memberships are created
// against shells, then Finalize produces the immutable Team once the first
// member exists. This keeps the lead reference a construction step rather
// than a mutation of a published record.
type TeamShell struct {
	models.Team
}

// Finalize completes the team. A nil lead is kept for teams that ended up
// with no members.
func (s TeamShell) Finalize(leadUserID *string) models.Team {
	team := s.Team
	team.LeadUserID = leadUserID

	return team
}

// TeamShells builds count team shells for an organization, created within
// the first thirty days of the window.
func TeamShells(rng *rand.Rand, src *ids.Source, org models.Organization, count int) []TeamShell {
	dealer := newNameDealer(rng, catalog.TeamNames)

	shells := make([]TeamShell, 0, count)
	for i := 0; i < count; i++ {
		name := dealer.deal()
		date := dist.UniformDate(rng, org.CreatedAt, org.CreatedAt.AddDate(0, 0, 30))

		shells = append(shells, TeamShell{Team: models.Team{
			TeamID:         src.New(ids.PrefixTeam),
			OrganizationID: org.OrganizationID,
			Name:           name,
			Description:    fmt.Sprintf("%s team for %s", name, org.Name),
			CreatedAt:      dist.BusinessClock(rng, date),
		}})
	}

	return shells
}
