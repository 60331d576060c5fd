package idgen

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ReturnsUniqueUUIDs(t *testing.T) {
	a := New()
	b := New()

	_, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestFallback_Format(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	id := fallback(now)

	assert.True(t, strings.HasPrefix(id, "1700000000000-"), id)
	assert.Greater(t, len(id), len("1700000000000-"))
}
