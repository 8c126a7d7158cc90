package scoring

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// txRetries bounds how often a conflicted accounting transaction is
// rerun from a fresh read.
const txRetries = 3

// Accountant applies the score-accounting protocol. Concurrent
// submissions for the same (learner, task) pair are serialized so the
// delta computation never runs against a stale read.
type Accountant struct {
	store  Store
	locks  pairLocks
	logger *zap.Logger
}

// NewAccountant creates an Accountant over the given store.
func NewAccountant(store Store, logger *zap.Logger) *Accountant {
	return &Accountant{store: store, logger: logger}
}

// RecordSubmission accounts one graded submission and reports whether
// the pair is now passing.
//
// First submission: the progress record is created and, if passing, the
// full score is credited and the completed count incremented. A
// resubmission with a score no higher than the previous best mutates
// nothing. A higher resubmission replaces the best score and credits
// only the difference when the previous score already counted, or the
// full new score when it did not.
func (a *Accountant) RecordSubmission(ctx context.Context, learnerID, taskID, score int) (bool, error) {
	unlock := a.locks.lock(learnerID, taskID)
	defer unlock()

	var passed bool
	err := a.retryTx(ctx, func(tx Tx) error {
		rec, err := tx.ProgressFor(ctx, learnerID, taskID)
		if err != nil {
			return err
		}

		if rec == nil {
			var txErr error
			passed, txErr = a.firstSubmission(ctx, tx, learnerID, taskID, score)
			return txErr
		}

		var txErr error
		passed, txErr = a.resubmission(ctx, tx, rec, score)
		return txErr
	})
	if err != nil {
		return false, err
	}
	return passed, nil
}

func (a *Accountant) firstSubmission(ctx context.Context, tx Tx, learnerID, taskID, score int) (bool, error) {
	if ok, err := tx.LearnerExists(ctx, learnerID); err != nil {
		return false, err
	} else if !ok {
		return false, fmt.Errorf("learner %d: %w", learnerID, ErrInvalidTarget)
	}
	if ok, err := tx.TaskExists(ctx, taskID); err != nil {
		return false, err
	} else if !ok {
		return false, fmt.Errorf("task %d: %w", taskID, ErrInvalidTarget)
	}

	status := score >= PassingScore
	if err := tx.CreateProgress(ctx, learnerID, taskID, score, status); err != nil {
		return false, err
	}
	if status {
		if err := tx.AdjustLedger(ctx, learnerID, score, 1); err != nil {
			return false, err
		}
	}
	return status, nil
}

func (a *Accountant) resubmission(ctx context.Context, tx Tx, rec *Record, score int) (bool, error) {
	// A score no better than the previous best changes nothing; the
	// previous status stands.
	if score <= rec.Score {
		return rec.Status, nil
	}

	// The previous score only contributed to the ledger if it passed;
	// otherwise the new score is credited in full.
	delta := score
	if rec.Score >= PassingScore {
		delta = score - rec.Score
	}

	status := score >= PassingScore
	if err := tx.UpdateProgress(ctx, rec.LearnerID, rec.TaskID, score, status); err != nil {
		return false, err
	}

	scoreDelta, completedDelta := 0, 0
	switch {
	case status:
		scoreDelta = delta
		if !rec.Status {
			completedDelta = 1
		}
	case rec.Status:
		// Passing → not passing with a higher score cannot happen while
		// the threshold is fixed, but the replacement policy still
		// applies the delta if it ever does.
		scoreDelta = delta
	}

	if scoreDelta != 0 || completedDelta != 0 {
		if err := tx.AdjustLedger(ctx, rec.LearnerID, scoreDelta, completedDelta); err != nil {
			return false, err
		}
	}
	return status, nil
}

// DeleteTask reverses the score and count contributions of every
// progress row belonging to the task, then removes the rows and the
// task. Running it again finds nothing and is a no-op.
func (a *Accountant) DeleteTask(ctx context.Context, taskID int) error {
	return a.retryTx(ctx, func(tx Tx) error {
		rows, err := tx.ProgressByTask(ctx, taskID)
		if err != nil {
			return err
		}

		for _, row := range rows {
			if !row.Status {
				continue
			}
			if err := tx.AdjustLedger(ctx, row.LearnerID, -row.Score, -1); err != nil {
				return err
			}
		}

		if err := tx.DeleteProgressByTask(ctx, taskID); err != nil {
			return err
		}
		return tx.DeleteTask(ctx, taskID)
	})
}

// retryTx reruns the transaction on ErrConflict so each retry starts
// from a fresh read.
func (a *Accountant) retryTx(ctx context.Context, fn func(tx Tx) error) error {
	var lastErr error
	for attempt := 0; attempt < txRetries; attempt++ {
		lastErr = a.store.InTx(ctx, fn)
		if lastErr == nil || !errors.Is(lastErr, ErrConflict) {
			return lastErr
		}
		a.logger.Warn("accounting transaction conflict, retrying",
			zap.Int("attempt", attempt+1))
	}
	return lastErr
}
