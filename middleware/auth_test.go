package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJWTSecretFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	assert.Equal(t, []byte("test-secret"), JWTSecret())
}
