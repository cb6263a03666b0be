package factory

import (
	"math/rand/v2"
	"time"

	"github.com/wolfeidau/taskseed/internal/dist"
	"github.com/wolfeidau/taskseed/internal/ids"
	"github.com/wolfeidau/taskseed/internal/models"
)

var teamSizes = dist.MustWeighted(
	[]int{8, 12, 15, 20, 25},
	[]float64{0.10, 0.25, 0.35, 0.20, 0.10},
)

// Memberships enrolls users into team shells and finalizes each team with
// its lead, the first member enrolled. Members are drawn without
// replacement with the size target capped by the org's user pool, and
// joined_at never precedes either the team or the user.
func Memberships(rng *rand.Rand, src *ids.Source, shells []TeamShell, users []models.User, windowEnd time.Time) ([]models.TeamMembership, []models.Team) {
	memberships := make([]models.TeamMembership, 0, len(shells)*15)
	teams := make([]models.Team, 0, len(shells))

	for _, shell := range shells {
		members := dist.Sample(rng, users, teamSizes.Sample(rng))

		var lead *string
		for i, user := range members {
			role := models.RoleMember
			if i == 0 {
				role = models.RoleLead
				lead = ptr(user.UserID)
			}

			joined := shell.CreatedAt
			if user.CreatedAt.After(joined) {
				joined = user.CreatedAt
			}
			joined = joined.Add(dist.UniformDuration(rng, 0, windowEnd.Sub(joined)))

			memberships = append(memberships, models.TeamMembership{
				TeamMembershipID: src.New(ids.PrefixMembership),
				TeamID:           shell.TeamID,
				UserID:           user.UserID,
				JoinedAt:         joined,
				Role:             role,
				IsActive:         user.IsActive,
			})
		}

		teams = append(teams, shell.Finalize(lead))
	}

	return memberships, teams
}
