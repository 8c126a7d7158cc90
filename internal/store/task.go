package store

import (
	"context"
	"fmt"

	"github.com/frontforge/frontforge/ent"
	"github.com/frontforge/frontforge/internal/lang"
)

// taskRepo implements TaskRepo using the ent client.
type taskRepo struct {
	client *ent.Client
}

func (r *taskRepo) Create(ctx context.Context, t NewTask) (*Task, error) {
	if err := lang.Validate(t.Languages); err != nil {
		return nil, fmt.Errorf("task languages: %w", err)
	}

	created, err := r.client.Task.Create().
		SetTitle(t.Title).
		SetDescription(t.Description).
		SetLanguages(t.Languages.Strings()).
		SetOptimalSolution(solutionToMap(t.OptimalSolution)).
		SetReferenceImageURL(t.ReferenceImageURL).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return entTaskToTask(created)
}

func (r *taskRepo) Get(ctx context.Context, id int) (*Task, error) {
	t, err := r.client.Task.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("task %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return entTaskToTask(t)
}

func (r *taskRepo) List(ctx context.Context) ([]*Task, error) {
	rows, err := r.client.Task.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	out := make([]*Task, 0, len(rows))
	for _, row := range rows {
		t, err := entTaskToTask(row)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func entTaskToTask(t *ent.Task) (*Task, error) {
	set, err := lang.ParseSet(t.Languages)
	if err != nil {
		return nil, fmt.Errorf("task %d languages: %w", t.ID, err)
	}
	return &Task{
		ID:                t.ID,
		Title:             t.Title,
		Description:       t.Description,
		Languages:         set,
		OptimalSolution:   solutionFromMap(t.OptimalSolution),
		ReferenceImageURL: t.ReferenceImageURL,
	}, nil
}

func solutionToMap(s map[lang.Language]string) map[string]string {
	out := make(map[string]string, len(s))
	for l, src := range s {
		out[string(l)] = src
	}
	return out
}

func solutionFromMap(s map[string]string) map[lang.Language]string {
	out := make(map[lang.Language]string, len(s))
	for name, src := range s {
		l, err := lang.Parse(name)
		if err != nil {
			// Unknown keys written by older versions are skipped rather
			// than failing the whole read.
			continue
		}
		out[l] = src
	}
	return out
}
