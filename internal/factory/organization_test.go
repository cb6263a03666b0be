package factory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wolfeidau/taskseed/internal/catalog"
)

func TestOrganizations(t *testing.T) {
	window := testWindow()

	t.Run("builds the requested count with unique names and domains", func(t *testing.T) {
		rng := newTestRand()
		orgs := Organizations(rng, newTestSource(rng), 40, window.Start.Time)
		require.Len(t, orgs, 40)

		names := map[string]bool{}
		domains := map[string]bool{}
		for _, org := range orgs {
			require.False(t, names[org.Name], "duplicate name %q", org.Name)
			require.False(t, domains[org.Domain], "duplicate domain %q", org.Domain)
			names[org.Name] = true
			domains[org.Domain] = true
		}
	})

	t.Run("fields come from the catalogs", func(t *testing.T) {
		rng := newTestRand()
		orgs := Organizations(rng, newTestSource(rng), 10, window.Start.Time)

		for _, org := range orgs {
			require.True(t, strings.HasPrefix(org.OrganizationID, "org_"))
			require.Contains(t, catalog.Industries, org.Industry)
			require.Contains(t, catalog.EmployeeCounts, org.EmployeeCount)
			require.True(t, org.IsVerified)
			require.Equal(t, window.Start.Time, org.CreatedAt)
		}
	})

	t.Run("domain strips spaces and lowercases", func(t *testing.T) {
		require.Equal(t, "acmecorp.com", Domain("Acme Corp"))
		require.Equal(t, "quantumdynamics2.com", Domain("Quantum Dynamics 2"))
	})
}
