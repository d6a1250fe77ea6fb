package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDenylist(t *testing.T) {
	AddToDenylist("jti-active", time.Now().Add(time.Hour))
	assert.True(t, IsTokenDenylisted("jti-active"))

	assert.False(t, IsTokenDenylisted("jti-unknown"))

	// expired entries no longer block; the token itself is already invalid
	AddToDenylist("jti-expired", time.Now().Add(-time.Minute))
	assert.False(t, IsTokenDenylisted("jti-expired"))
}
