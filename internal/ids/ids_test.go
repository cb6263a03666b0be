package ids

import (
	crand "crypto/rand"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSourceNew(t *testing.T) {
	t.Run("carries the prefix", func(t *testing.T) {
		src := NewSource(crand.Reader)
		id := src.New(PrefixTask)
		require.True(t, strings.HasPrefix(id, "task_"))
		require.Greater(t, len(id), len("task_")+16)
	})

	t.Run("ids are unique", func(t *testing.T) {
		src := NewSource(crand.Reader)
		seen := map[string]bool{}
		for i := 0; i < 10000; i++ {
			id := src.New(PrefixUser)
			require.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true
		}
	})
}

func TestSeededSource(t *testing.T) {
	t.Run("same seed produces same ids", func(t *testing.T) {
		a := SeededSource(newPCG(7))
		b := SeededSource(newPCG(7))
		for i := 0; i < 100; i++ {
			require.Equal(t, a.New(PrefixComment), b.New(PrefixComment))
		}
	})

	t.Run("different seeds diverge", func(t *testing.T) {
		a := SeededSource(newPCG(7))
		b := SeededSource(newPCG(8))
		require.NotEqual(t, a.New(PrefixComment), b.New(PrefixComment))
	})
}

func newPCG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}
