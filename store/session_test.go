package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLoadMissingReturnsZeroValue(t *testing.T) {
	sessions := NewSessionStore(testClient(t))

	sc, err := sessions.Load(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, &SessionContext{UserID: 9}, sc)
}

func TestSessionSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	sessions := NewSessionStore(testClient(t))

	in := &SessionContext{UserID: 9, City: "Lahore", CompanyID: 4}
	require.NoError(t, sessions.Save(ctx, in))

	out, err := sessions.Load(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSessionSaveSetsTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	sessions := NewSessionStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	require.NoError(t, sessions.Save(context.Background(), &SessionContext{UserID: 2}))
	assert.Greater(t, mr.TTL("session:2"), time.Duration(0))
}
