package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wolfeidau/taskseed/internal/models"
	"github.com/wolfeidau/taskseed/internal/store"
)

func TestStorePublishAndLoad(t *testing.T) {
	assert := require.New(t)

	st := New()
	ctx := context.Background()

	_, err := st.Load(ctx)
	assert.ErrorIs(err, store.ErrNotSeeded)

	ds := &models.Dataset{
		Seed:        42,
		WindowStart: time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC),
		WindowEnd:   time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
		GeneratedAt: time.Now().UTC(),
	}
	assert.NoError(st.Publish(ctx, ds))

	loaded, err := st.Load(ctx)
	assert.NoError(err)
	assert.Same(ds, loaded)

	replacement := &models.Dataset{Seed: 7}
	assert.NoError(st.Publish(ctx, replacement))

	loaded, err = st.Load(ctx)
	assert.NoError(err)
	assert.Equal(uint64(7), loaded.Seed)
}
