package factory

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/wolfeidau/taskseed/internal/catalog"
	"github.com/wolfeidau/taskseed/internal/config"
	"github.com/wolfeidau/taskseed/internal/dist"
	"github.com/wolfeidau/taskseed/internal/ids"
	"github.com/wolfeidau/taskseed/internal/models"
)

// Signups front-load the window, modelling a growth phase that tails off.
const userGrowthExponent = 1.6

// Users builds an organization's member pool. Emails are deduplicated with
// a numeric counter inside the org, 95% of users are active, and only
// active users carry a last_seen.
func Users(rng *rand.Rand, src *ids.Source, org models.Organization, count int, window config.Window) []models.User {
	seen := make(map[string]int, count)

	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		first := dist.Pick(rng, catalog.FirstNames)
		last := dist.Pick(rng, catalog.LastNames)
		email := uniqueEmail(seen, first, last, org.Domain)

		created := dist.BusinessTimestamp(rng, window.Start.Time, window.End.Time, userGrowthExponent)

		user := models.User{
			UserID:         src.New(ids.PrefixUser),
			OrganizationID: org.OrganizationID,
			Email:          email,
			Name:           first + " " + last,
			FirstName:      first,
			LastName:       last,
			AvatarURL:      "https://i.pravatar.cc/150?u=" + email,
			CreatedAt:      created,
			IsActive:       dist.Bernoulli(rng, 0.95),
		}

		if user.IsActive {
			lastSeen := window.End.Time.Add(-dist.UniformDuration(rng, 0, 30*24*time.Hour))
			if lastSeen.Before(created) {
				lastSeen = created
			}
			user.LastSeen = ptr(lastSeen)
		}

		users = append(users, user)
	}

	return users
}

func uniqueEmail(seen map[string]int, first, last, domain string) string {
	base := strings.ToLower(first + "." + last)

	n := seen[base]
	seen[base] = n + 1
	if n == 0 {
		return base + "@" + domain
	}

	return fmt.Sprintf("%s%d@%s", base, n, domain)
}
