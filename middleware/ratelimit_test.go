package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientLimiterBlocksAfterBurst(t *testing.T) {
	l := NewClientLimiter(1, 3)
	defer l.Stop()

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("10.0.0.1"), "request %d should pass", i)
	}
	assert.False(t, l.Allow("10.0.0.1"))
}

func TestClientLimiterIsPerIP(t *testing.T) {
	l := NewClientLimiter(1, 1)
	defer l.Stop()

	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"))
}
