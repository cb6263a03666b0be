package factory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTeamShells(t *testing.T) {
	org := testOrg()

	t.Run("shells carry no lead until finalized", func(t *testing.T) {
		rng := newTestRand()
		shells := TeamShells(rng, newTestSource(rng), org, 15)
		require.Len(t, shells, 15)

		for _, shell := range shells {
			require.Nil(t, shell.LeadUserID)
			require.Equal(t, org.OrganizationID, shell.OrganizationID)
			require.Equal(t, fmt.Sprintf("%s team for %s", shell.Name, org.Name), shell.Description)
		}
	})

	t.Run("names are unique past the catalog size", func(t *testing.T) {
		rng := newTestRand()
		shells := TeamShells(rng, newTestSource(rng), org, 30)

		names := map[string]bool{}
		for _, shell := range shells {
			require.False(t, names[shell.Name], "duplicate name %q", shell.Name)
			names[shell.Name] = true
		}
	})

	t.Run("creation lands in the first thirty days", func(t *testing.T) {
		rng := newTestRand()
		shells := TeamShells(rng, newTestSource(rng), org, 50)

		limit := org.CreatedAt.AddDate(0, 0, 31)
		for _, shell := range shells {
			require.False(t, shell.CreatedAt.Before(org.CreatedAt))
			require.True(t, shell.CreatedAt.Before(limit))
		}
	})
}

func TestTeamShellFinalize(t *testing.T) {
	rng := newTestRand()
	shells := TeamShells(rng, newTestSource(rng), testOrg(), 1)

	lead := "user_lead"
	team := shells[0].Finalize(&lead)
	require.NotNil(t, team.LeadUserID)
	require.Equal(t, "user_lead", *team.LeadUserID)

	// the shell itself stays untouched
	require.Nil(t, shells[0].LeadUserID)
}
