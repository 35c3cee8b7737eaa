package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestLikesToggleRoundTrip(t *testing.T) {
	ctx := context.Background()
	likes := NewLikesStore(testClient(t))

	liked, err := likes.Toggle(ctx, 1, 42)
	require.NoError(t, err)
	assert.True(t, liked)

	has, err := likes.Contains(ctx, 1, 42)
	require.NoError(t, err)
	assert.True(t, has)

	liked, err = likes.Toggle(ctx, 1, 42)
	require.NoError(t, err)
	assert.False(t, liked)

	has, err = likes.Contains(ctx, 1, 42)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestLikesAllPerUser(t *testing.T) {
	ctx := context.Background()
	likes := NewLikesStore(testClient(t))

	for _, id := range []uint{3, 7, 11} {
		_, err := likes.Toggle(ctx, 5, id)
		require.NoError(t, err)
	}

	ids, err := likes.All(ctx, 5)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{3, 7, 11}, ids)

	ids, err = likes.All(ctx, 6)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestLikesSubscribe(t *testing.T) {
	ctx := context.Background()
	likes := NewLikesStore(testClient(t))

	var events []LikeEvent
	unsubscribe := likes.Subscribe(func(ev LikeEvent) {
		events = append(events, ev)
	})

	_, err := likes.Toggle(ctx, 1, 42)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, LikeEvent{UserID: 1, VehicleID: 42, Liked: true}, events[0])

	unsubscribe()
	_, err = likes.Toggle(ctx, 1, 42)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}
