package limiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientLimiterErrors(t *testing.T) {
	_, err := NewClientLimiter(0, time.Minute, 1, 10)
	assert.Error(t, err)

	_, err = NewClientLimiter(30, 0, 1, 10)
	assert.Error(t, err)

	_, err = NewClientLimiter(30, time.Minute, 30, 0)
	assert.Error(t, err)
}

func TestClientLimiterAllow(t *testing.T) {
	l, err := NewClientLimiter(3, time.Hour, 0, 10)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.Truef(t, l.Allow("10.0.0.1"), "request %d", i)
	}
	assert.False(t, l.Allow("10.0.0.1"), "limit exceeded")

	// Other clients have their own budget.
	assert.True(t, l.Allow("10.0.0.2"))
}

func TestClientLimiterEviction(t *testing.T) {
	l, err := NewClientLimiter(1, time.Hour, 1, 1)
	require.NoError(t, err)

	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))

	// Second client evicts the first one, so it starts with a fresh limiter.
	assert.True(t, l.Allow("10.0.0.2"))
	assert.True(t, l.Allow("10.0.0.1"))
}
