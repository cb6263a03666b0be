package factory

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/wolfeidau/taskseed/internal/catalog"
	"github.com/wolfeidau/taskseed/internal/dist"
	"github.com/wolfeidau/taskseed/internal/ids"
	"github.com/wolfeidau/taskseed/internal/models"
)

// Organizations builds the tenant roots. Each organization is created at
// the window start so the entire simulated history falls inside its
// lifetime.
func Organizations(rng *rand.Rand, src *ids.Source, count int, start time.Time) []models.Organization {
	dealer := newNameDealer(rng, catalog.Companies)

	orgs := make([]models.Organization, 0, count)
	for i := 0; i < count; i++ {
		name := dealer.deal()

		orgs = append(orgs, models.Organization{
			OrganizationID: src.New(ids.PrefixOrganization),
			Name:           name,
			Domain:         Domain(name),
			Industry:       dist.Pick(rng, catalog.Industries),
			EmployeeCount:  dist.Pick(rng, catalog.EmployeeCounts),
			CreatedAt:      start,
			IsVerified:     true,
		})
	}

	return orgs
}

// Domain derives an organization's mail domain from its name, lowercased
// with spaces stripped.
func Domain(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "")) + ".com"
}
