package store

import (
	"context"
	"fmt"

	"github.com/frontforge/frontforge/ent"
)

// learnerRepo implements LearnerRepo using the ent client.
type learnerRepo struct {
	client *ent.Client
}

func (r *learnerRepo) Create(ctx context.Context, name, email string) (*Learner, error) {
	l, err := r.client.Learner.Create().
		SetName(name).
		SetEmail(email).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create learner: %w", err)
	}
	return entLearnerToLearner(l), nil
}

func (r *learnerRepo) Get(ctx context.Context, id int) (*Learner, error) {
	l, err := r.client.Learner.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("learner %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get learner: %w", err)
	}
	return entLearnerToLearner(l), nil
}

func entLearnerToLearner(l *ent.Learner) *Learner {
	return &Learner{
		ID:                 l.ID,
		Name:               l.Name,
		Email:              l.Email,
		TotalScore:         l.TotalScore,
		CompletedTaskCount: l.CompletedTaskCount,
	}
}
