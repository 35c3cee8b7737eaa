package store

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/redis/go-redis/v9"
)

// LikeEvent is published to subscribers whenever a user toggles a vehicle.
type LikeEvent struct {
	UserID    uint
	VehicleID uint
	Liked     bool
}

// LikesStore keeps each user's liked-vehicle set in redis and fans out
// change events to in-process subscribers. It replaces ad-hoc per-screen
// liked state: one store keyed by user id with Toggle/Contains semantics.
type LikesStore struct {
	client *redis.Client

	mu   sync.Mutex
	subs map[int]func(LikeEvent)
	next int
}

func NewLikesStore(client *redis.Client) *LikesStore {
	return &LikesStore{client: client, subs: make(map[int]func(LikeEvent))}
}

func likesKey(userID uint) string {
	return fmt.Sprintf("likes:%d", userID)
}

// Toggle flips the liked state of a vehicle for a user and returns the new
// state.
func (s *LikesStore) Toggle(ctx context.Context, userID, vehicleID uint) (bool, error) {
	member := strconv.FormatUint(uint64(vehicleID), 10)
	liked, err := s.client.SIsMember(ctx, likesKey(userID), member).Result()
	if err != nil {
		return false, err
	}
	if liked {
		err = s.client.SRem(ctx, likesKey(userID), member).Err()
	} else {
		err = s.client.SAdd(ctx, likesKey(userID), member).Err()
	}
	if err != nil {
		return liked, err
	}
	s.notify(LikeEvent{UserID: userID, VehicleID: vehicleID, Liked: !liked})
	return !liked, nil
}

// Contains reports whether the user has liked the vehicle.
func (s *LikesStore) Contains(ctx context.Context, userID, vehicleID uint) (bool, error) {
	member := strconv.FormatUint(uint64(vehicleID), 10)
	return s.client.SIsMember(ctx, likesKey(userID), member).Result()
}

// All returns every vehicle id the user has liked.
func (s *LikesStore) All(ctx context.Context, userID uint) ([]uint, error) {
	members, err := s.client.SMembers(ctx, likesKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseUint(m, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

// Subscribe registers a callback for like events and returns an
// unsubscribe func. Callbacks run synchronously on the toggling goroutine.
func (s *LikesStore) Subscribe(fn func(LikeEvent)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *LikesStore) notify(ev LikeEvent) {
	s.mu.Lock()
	fns := make([]func(LikeEvent), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(ev)
	}
}
