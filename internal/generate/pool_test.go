package generate

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMapIndexed(t *testing.T) {
	t.Run("results come back in index order", func(t *testing.T) {
		out, err := mapIndexed(context.Background(), 8, 100, func(_ context.Context, i int) (string, error) {
			return strconv.Itoa(i), nil
		})
		require.NoError(t, err)
		require.Len(t, out, 100)

		for i, v := range out {
			require.Equal(t, strconv.Itoa(i), v)
		}
	})

	t.Run("zero items yields an empty slice", func(t *testing.T) {
		out, err := mapIndexed(context.Background(), 4, 0, func(_ context.Context, i int) (int, error) {
			t.Fatal("should not be called")
			return 0, nil
		})
		require.NoError(t, err)
		require.Empty(t, out)
	})

	t.Run("the first error stops the work", func(t *testing.T) {
		boom := errors.New("boom")

		_, err := mapIndexed(context.Background(), 4, 1000, func(_ context.Context, i int) (int, error) {
			if i == 10 {
				return 0, boom
			}
			return i, nil
		})
		require.ErrorIs(t, err, boom)
	})

	t.Run("a canceled context surfaces", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := mapIndexed(ctx, 4, 1000, func(ctx context.Context, i int) (int, error) {
			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			case <-time.After(10 * time.Millisecond):
				return i, nil
			}
		})
		require.Error(t, err)
	})

	t.Run("a single worker runs everything", func(t *testing.T) {
		out, err := mapIndexed(context.Background(), 1, 25, func(_ context.Context, i int) (int, error) {
			return i * 2, nil
		})
		require.NoError(t, err)
		require.Len(t, out, 25)
		require.Equal(t, 48, out[24])
	})
}
