package factory

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUsers(t *testing.T) {
	org := testOrg()
	window := testWindow()

	t.Run("emails are unique and use the org domain", func(t *testing.T) {
		rng := newTestRand()
		users := Users(rng, newTestSource(rng), org, 500, window)
		require.Len(t, users, 500)

		emails := map[string]bool{}
		for _, user := range users {
			require.False(t, emails[user.Email], "duplicate email %q", user.Email)
			emails[user.Email] = true
			require.True(t, strings.HasSuffix(user.Email, "@"+org.Domain))
			require.Equal(t, strings.ToLower(user.Email), user.Email)
		}
	})

	t.Run("name parts agree and avatars embed the email", func(t *testing.T) {
		rng := newTestRand()
		users := Users(rng, newTestSource(rng), org, 50, window)

		for _, user := range users {
			require.Equal(t, user.FirstName+" "+user.LastName, user.Name)
			require.Equal(t, "https://i.pravatar.cc/150?u="+user.Email, user.AvatarURL)
		}
	})

	t.Run("only active users carry a last seen", func(t *testing.T) {
		rng := newTestRand()
		users := Users(rng, newTestSource(rng), org, 400, window)

		active := 0
		for _, user := range users {
			if user.IsActive {
				active++
				require.NotNil(t, user.LastSeen)
				require.False(t, user.LastSeen.Before(user.CreatedAt))
				require.False(t, user.LastSeen.After(window.End.Time.AddDate(0, 0, 1)))
				require.False(t, user.LastSeen.Before(window.End.Time.Add(-30*24*time.Hour)))
			} else {
				require.Nil(t, user.LastSeen)
			}
		}

		require.InDelta(t, 0.95, float64(active)/400, 0.05)
	})

	t.Run("signups skew toward the window start", func(t *testing.T) {
		rng := newTestRand()
		users := Users(rng, newTestSource(rng), org, 1000, window)

		firstHalf := 0
		mid := window.Start.Time.Add(window.Span() / 2)
		for _, user := range users {
			require.False(t, user.CreatedAt.Before(window.Start.Time))
			require.True(t, user.CreatedAt.Before(window.End.Time.AddDate(0, 0, 1)))
			if user.CreatedAt.Before(mid) {
				firstHalf++
			}
		}

		require.Greater(t, firstHalf, 580, "expected early skew, got %d/1000 in the first half", firstHalf)
	})
}

func TestUniqueEmail(t *testing.T) {
	seen := map[string]int{}

	require.Equal(t, "ana.flores@acmecorp.com", uniqueEmail(seen, "Ana", "Flores", "acmecorp.com"))
	require.Equal(t, "ana.flores1@acmecorp.com", uniqueEmail(seen, "Ana", "Flores", "acmecorp.com"))
	require.Equal(t, "ana.flores2@acmecorp.com", uniqueEmail(seen, "Ana", "Flores", "acmecorp.com"))
}
