package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/frontforge/frontforge/ent"
	"github.com/frontforge/frontforge/ent/learner"
	"github.com/frontforge/frontforge/ent/progress"
	"github.com/frontforge/frontforge/ent/task"
	"github.com/frontforge/frontforge/internal/scoring"
)

// Accounting returns a scoring.Store that runs the completion
// accounting protocol inside a single database transaction.
func (s *Store) Accounting() scoring.Store {
	return &accountingStore{client: s.client}
}

type accountingStore struct {
	client *ent.Client
}

func (a *accountingStore) InTx(ctx context.Context, fn func(tx scoring.Tx) error) error {
	tx, err := a.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin accounting tx: %w", err)
	}

	if err := fn(&accountingTx{tx: tx}); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rerr)
		}
		return mapTxError(err)
	}

	if err := tx.Commit(); err != nil {
		return mapTxError(fmt.Errorf("commit accounting tx: %w", err))
	}
	return nil
}

// mapTxError converts lost-update races (unique constraint hit on a
// concurrent create, or a busy writer) into scoring.ErrConflict so the
// accountant can retry from a fresh read.
func mapTxError(err error) error {
	if ent.IsConstraintError(err) {
		return fmt.Errorf("%v: %w", err, scoring.ErrConflict)
	}
	msg := err.Error()
	if strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked") {
		return fmt.Errorf("%v: %w", err, scoring.ErrConflict)
	}
	return err
}

type accountingTx struct {
	tx *ent.Tx
}

func (t *accountingTx) LearnerExists(ctx context.Context, learnerID int) (bool, error) {
	return t.tx.Learner.Query().
		Where(learner.IDEQ(learnerID)).
		Exist(ctx)
}

func (t *accountingTx) TaskExists(ctx context.Context, taskID int) (bool, error) {
	return t.tx.Task.Query().
		Where(task.IDEQ(taskID)).
		Exist(ctx)
}

func (t *accountingTx) ProgressFor(ctx context.Context, learnerID, taskID int) (*scoring.Record, error) {
	p, err := t.tx.Progress.Query().
		Where(
			progress.LearnerIDEQ(learnerID),
			progress.TaskIDEQ(taskID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress: %w", err)
	}
	return entProgressToRecord(p), nil
}

func (t *accountingTx) CreateProgress(ctx context.Context, learnerID, taskID, score int, status bool) error {
	_, err := t.tx.Progress.Create().
		SetLearnerID(learnerID).
		SetTaskID(taskID).
		SetScore(score).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create progress: %w", err)
	}
	return nil
}

func (t *accountingTx) UpdateProgress(ctx context.Context, learnerID, taskID, score int, status bool) error {
	n, err := t.tx.Progress.Update().
		Where(
			progress.LearnerIDEQ(learnerID),
			progress.TaskIDEQ(taskID),
		).
		SetScore(score).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	if n == 0 {
		// The row was read earlier in this accounting step; if it is
		// gone now, a concurrent deletion won the race.
		return fmt.Errorf("progress (%d, %d) vanished: %w", learnerID, taskID, scoring.ErrConflict)
	}
	return nil
}

func (t *accountingTx) ProgressByTask(ctx context.Context, taskID int) ([]scoring.Record, error) {
	rows, err := t.tx.Progress.Query().
		Where(progress.TaskIDEQ(taskID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("progress by task: %w", err)
	}
	out := make([]scoring.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, *entProgressToRecord(row))
	}
	return out, nil
}

func (t *accountingTx) DeleteProgressByTask(ctx context.Context, taskID int) error {
	_, err := t.tx.Progress.Delete().
		Where(progress.TaskIDEQ(taskID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete progress by task: %w", err)
	}
	return nil
}

func (t *accountingTx) DeleteTask(ctx context.Context, taskID int) error {
	_, err := t.tx.Task.Delete().
		Where(task.IDEQ(taskID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

func (t *accountingTx) AdjustLedger(ctx context.Context, learnerID, scoreDelta, completedDelta int) error {
	upd := t.tx.Learner.UpdateOneID(learnerID)
	if scoreDelta != 0 {
		upd.AddTotalScore(scoreDelta)
	}
	if completedDelta != 0 {
		upd.AddCompletedTaskCount(completedDelta)
	}
	if _, err := upd.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("learner %d: %w", learnerID, scoring.ErrInvalidTarget)
		}
		return fmt.Errorf("adjust ledger: %w", err)
	}
	return nil
}

func entProgressToRecord(p *ent.Progress) *scoring.Record {
	rec := &scoring.Record{
		LearnerID: p.LearnerID,
		TaskID:    p.TaskID,
		Status:    p.Status,
	}
	if p.Score != nil {
		rec.Score = *p.Score
	}
	return rec
}
