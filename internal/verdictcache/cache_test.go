package verdictcache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frontforge/frontforge/internal/evaluation"
)

func TestMemoryGetPut(t *testing.T) {
	c := NewMemory(time.Minute)
	ctx := context.Background()

	got, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got, "miss should return nil verdict")

	v := &evaluation.Verdict{Type: "HTML+CSS", TotalScore: 80, Grade: evaluation.GradeVeryGood}
	require.NoError(t, c.Put(ctx, "sub-1", v))

	got, err = c.Get(ctx, "sub-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 80, got.TotalScore)
	assert.Equal(t, evaluation.GradeVeryGood, got.Grade)

	// The cache hands back a copy; mutating it must not poison the entry.
	got.TotalScore = 5
	again, err := c.Get(ctx, "sub-1")
	require.NoError(t, err)
	assert.Equal(t, 80, again.TotalScore)
}

func TestMemoryExpiry(t *testing.T) {
	c := NewMemory(time.Millisecond)
	ctx := context.Background()

	v := &evaluation.Verdict{Type: "HTML", TotalScore: 65, Grade: evaluation.GradeGood}
	require.NoError(t, c.Put(ctx, "sub-2", v))

	time.Sleep(5 * time.Millisecond)

	got, err := c.Get(ctx, "sub-2")
	require.NoError(t, err)
	assert.Nil(t, got, "expired entry should be a miss")
}

func TestMemoryDefaultTTL(t *testing.T) {
	c := NewMemory(0)
	assert.Equal(t, DefaultTTL, c.ttl)
}

func TestMemoryOverwrite(t *testing.T) {
	c := NewMemory(time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "sub-3", &evaluation.Verdict{Type: "HTML", TotalScore: 50, Grade: evaluation.GradeFair}))
	require.NoError(t, c.Put(ctx, "sub-3", &evaluation.Verdict{Type: "HTML", TotalScore: 70, Grade: evaluation.GradeGood}))

	got, err := c.Get(ctx, "sub-3")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 70, got.TotalScore)
}
