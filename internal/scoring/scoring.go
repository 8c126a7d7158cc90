// Package scoring implements the completion accounting protocol: it
// decides whether a submission is a first attempt or a resubmission and
// keeps the learner's score ledger consistent with their progress
// records, without ever double-crediting.
package scoring

import (
	"context"
	"errors"
)

// PassingScore is the threshold separating a passing submission from a
// failing one, on the grader's 0-100 scale.
const PassingScore = 60

// ErrInvalidTarget is returned when the learner or task of a first
// submission does not exist.
var ErrInvalidTarget = errors.New("submission target does not exist")

// ErrConflict is returned when the accounting transaction lost a
// concurrent update race. The whole accounting step is retryable from a
// fresh read.
var ErrConflict = errors.New("concurrent progress update conflict")

// Record is the accounting view of one progress row.
type Record struct {
	LearnerID int
	TaskID    int
	Score     int
	Status    bool
}

// Tx is the transactional storage surface the accountant mutates.
// All methods run inside a single transaction; any error rolls the whole
// transaction back.
type Tx interface {
	LearnerExists(ctx context.Context, learnerID int) (bool, error)
	TaskExists(ctx context.Context, taskID int) (bool, error)

	// ProgressFor returns the record for a pair, or nil if none exists.
	ProgressFor(ctx context.Context, learnerID, taskID int) (*Record, error)

	CreateProgress(ctx context.Context, learnerID, taskID, score int, status bool) error
	UpdateProgress(ctx context.Context, learnerID, taskID, score int, status bool) error

	// ProgressByTask returns all records for a task.
	ProgressByTask(ctx context.Context, taskID int) ([]Record, error)

	DeleteProgressByTask(ctx context.Context, taskID int) error

	// DeleteTask removes the task row itself. Missing task is a no-op.
	DeleteTask(ctx context.Context, taskID int) error

	// AdjustLedger applies deltas to a learner's TotalScore and
	// CompletedTaskCount.
	AdjustLedger(ctx context.Context, learnerID, scoreDelta, completedDelta int) error
}

// Store runs accounting work inside one transaction.
type Store interface {
	InTx(ctx context.Context, fn func(tx Tx) error) error
}
