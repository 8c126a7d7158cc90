package store

import (
	"context"
	"fmt"

	"github.com/frontforge/frontforge/ent"
	"github.com/frontforge/frontforge/ent/progress"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Get(ctx context.Context, learnerID, taskID int) (*Progress, error) {
	p, err := r.client.Progress.Query().
		Where(
			progress.LearnerIDEQ(learnerID),
			progress.TaskIDEQ(taskID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("progress (%d, %d): %w", learnerID, taskID, ErrNotFound)
		}
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return entProgressToProgress(p), nil
}

func (r *progressRepo) ForLearner(ctx context.Context, learnerID int) (map[int]*Progress, error) {
	rows, err := r.client.Progress.Query().
		Where(progress.LearnerIDEQ(learnerID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("progress for learner %d: %w", learnerID, err)
	}
	out := make(map[int]*Progress, len(rows))
	for _, row := range rows {
		out[row.TaskID] = entProgressToProgress(row)
	}
	return out, nil
}

func entProgressToProgress(p *ent.Progress) *Progress {
	out := &Progress{
		ID:        p.ID,
		LearnerID: p.LearnerID,
		TaskID:    p.TaskID,
		Status:    p.Status,
	}
	if p.Score != nil {
		out.Score = *p.Score
		out.HasScore = true
	}
	return out
}
