package factory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wolfeidau/taskseed/internal/models"
)

func TestMemberships(t *testing.T) {
	window := testWindow()

	build := func(t *testing.T, teamCount, userCount int) ([]models.TeamMembership, []models.Team, []models.User) {
		t.Helper()
		rng := newTestRand()
		src := newTestSource(rng)
		users := testUsers(rng, userCount)
		shells := TeamShells(rng, src, testOrg(), teamCount)
		memberships, teams := Memberships(rng, src, shells, users, window.End.Time)
		return memberships, teams, users
	}

	t.Run("every team gets a lead and it is the first member", func(t *testing.T) {
		memberships, teams, _ := build(t, 10, 100)
		require.Len(t, teams, 10)

		firstByTeam := map[string]models.TeamMembership{}
		for _, m := range memberships {
			if _, ok := firstByTeam[m.TeamID]; !ok {
				firstByTeam[m.TeamID] = m
			}
		}

		for _, team := range teams {
			first, ok := firstByTeam[team.TeamID]
			require.True(t, ok, "team %s has no memberships", team.TeamID)
			require.NotNil(t, team.LeadUserID)
			require.Equal(t, first.UserID, *team.LeadUserID)
			require.Equal(t, models.RoleLead, first.Role)
		}
	})

	t.Run("team sizes follow the catalog capped by the pool", func(t *testing.T) {
		memberships, teams, _ := build(t, 20, 200)

		sizes := map[string]int{}
		for _, m := range memberships {
			sizes[m.TeamID]++
		}

		for _, team := range teams {
			size := sizes[team.TeamID]
			require.GreaterOrEqual(t, size, 8)
			require.LessOrEqual(t, size, 25)
		}
	})

	t.Run("a small pool caps team size", func(t *testing.T) {
		memberships, teams, users := build(t, 3, 5)

		sizes := map[string]int{}
		for _, m := range memberships {
			sizes[m.TeamID]++
		}
		for _, team := range teams {
			require.Equal(t, len(users), sizes[team.TeamID])
		}
	})

	t.Run("no user joins the same team twice", func(t *testing.T) {
		memberships, _, _ := build(t, 15, 150)

		seen := map[string]bool{}
		for _, m := range memberships {
			key := m.TeamID + "/" + m.UserID
			require.False(t, seen[key], "duplicate membership %s", key)
			seen[key] = true
		}
	})

	t.Run("joins never precede the team or the user", func(t *testing.T) {
		rng := newTestRand()
		src := newTestSource(rng)
		users := testUsers(rng, 120)
		byID := map[string]models.User{}
		for _, u := range users {
			byID[u.UserID] = u
		}

		shells := TeamShells(rng, src, testOrg(), 12)
		byTeam := map[string]TeamShell{}
		for _, s := range shells {
			byTeam[s.TeamID] = s
		}

		memberships, _ := Memberships(rng, src, shells, users, window.End.Time)
		for _, m := range memberships {
			user := byID[m.UserID]
			require.False(t, m.JoinedAt.Before(user.CreatedAt))
			require.False(t, m.JoinedAt.Before(byTeam[m.TeamID].CreatedAt))
			require.Equal(t, user.IsActive, m.IsActive)
		}
	})
}
