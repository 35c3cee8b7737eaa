package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionContext is the per-user context the mobile client needs on every
// screen: selected city and, for company accounts, the company id. It is
// loaded once and saved explicitly instead of being read piecemeal.
type SessionContext struct {
	UserID    uint   `json:"user_id"`
	City      string `json:"city"`
	CompanyID uint   `json:"company_id,omitempty"`
}

// SessionStore persists session contexts in redis with a sliding TTL.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client, ttl: 30 * 24 * time.Hour}
}

func sessionKey(userID uint) string {
	return fmt.Sprintf("session:%d", userID)
}

// Load fetches the user's session context. A user with no stored context
// gets a zero-valued one, never an error.
func (s *SessionStore) Load(ctx context.Context, userID uint) (*SessionContext, error) {
	raw, err := s.client.Get(ctx, sessionKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return &SessionContext{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	var sc SessionContext
	if err := json.Unmarshal([]byte(raw), &sc); err != nil {
		return nil, err
	}
	sc.UserID = userID
	return &sc, nil
}

// Save overwrites the user's session context and refreshes its TTL.
func (s *SessionStore) Save(ctx context.Context, sc *SessionContext) error {
	raw, err := json.Marshal(sc)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(sc.UserID), raw, s.ttl).Err()
}
