package store

import (
	"github.com/redis/go-redis/v9"
)

var (
	Likes    *LikesStore
	Sessions *SessionStore
)

// Init wires the package-level stores to a redis client. Called once from
// main after redis.InitRedis.
func Init(client *redis.Client) {
	Likes = NewLikesStore(client)
	Sessions = NewSessionStore(client)
}
