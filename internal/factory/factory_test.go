package factory

import (
	"math/rand/v2"
	"time"

	"github.com/wolfeidau/taskseed/internal/config"
	"github.com/wolfeidau/taskseed/internal/ids"
	"github.com/wolfeidau/taskseed/internal/models"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 1))
}

func newTestSource(rng *rand.Rand) *ids.Source {
	return ids.SeededSource(rng)
}

func testWindow() config.Window {
	return config.Window{
		Start: config.NewDate(2023, time.July, 1),
		End:   config.NewDate(2024, time.January, 7),
	}
}

func testOrg() models.Organization {
	return models.Organization{
		OrganizationID: "org_test",
		Name:           "Acme Corp",
		Domain:         "acmecorp.com",
		Industry:       "Technology",
		EmployeeCount:  500,
		CreatedAt:      testWindow().Start.Time,
		IsVerified:     true,
	}
}

func testUsers(rng *rand.Rand, count int) []models.User {
	src := newTestSource(rng)
	return Users(rng, src, testOrg(), count, testWindow())
}
