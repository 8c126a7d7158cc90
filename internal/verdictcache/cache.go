// Package verdictcache stores parsed evaluation verdicts keyed by
// submission, so that a submission whose verdict was obtained but whose
// accounting failed can be retried without paying for a second grading
// call.
package verdictcache

import (
	"context"
	"sync"
	"time"

	"github.com/frontforge/frontforge/internal/evaluation"
)

// DefaultTTL bounds how long a cached verdict stays retryable.
const DefaultTTL = 24 * time.Hour

// Cache stores verdicts by submission key. Get returns (nil, nil) on a
// miss; an error means the backing store itself failed.
type Cache interface {
	Get(ctx context.Context, key string) (*evaluation.Verdict, error)
	Put(ctx context.Context, key string, v *evaluation.Verdict) error
}

type memoryEntry struct {
	verdict evaluation.Verdict
	expires time.Time
}

// Memory is an in-process Cache with per-entry expiry. It is the
// fallback when no Redis address is configured.
type Memory struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
}

// NewMemory creates a Memory cache. A non-positive ttl falls back to
// DefaultTTL.
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
	}
}

func (m *Memory) Get(_ context.Context, key string) (*evaluation.Verdict, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, nil
	}
	if time.Now().After(e.expires) {
		delete(m.entries, key)
		return nil, nil
	}
	v := e.verdict
	return &v, nil
}

func (m *Memory) Put(_ context.Context, key string, v *evaluation.Verdict) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = memoryEntry{
		verdict: *v,
		expires: time.Now().Add(m.ttl),
	}
	return nil
}
