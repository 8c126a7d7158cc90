package store

import (
	"context"
	"fmt"

	"github.com/frontforge/frontforge/ent"
	"github.com/frontforge/frontforge/ent/roadmaptask"
	"github.com/frontforge/frontforge/internal/lang"
)

// roadmapRepo implements RoadmapRepo using the ent client.
type roadmapRepo struct {
	client *ent.Client
}

func (r *roadmapRepo) Create(ctx context.Context, title string) (*Roadmap, error) {
	rm, err := r.client.Roadmap.Create().
		SetTitle(title).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create roadmap: %w", err)
	}
	return &Roadmap{ID: rm.ID, Title: rm.Title}, nil
}

func (r *roadmapRepo) Get(ctx context.Context, id int) (*Roadmap, error) {
	rm, err := r.client.Roadmap.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("roadmap %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get roadmap: %w", err)
	}
	return &Roadmap{ID: rm.ID, Title: rm.Title}, nil
}

func (r *roadmapRepo) AddTask(ctx context.Context, roadmapID, taskID int) error {
	// Next ordinal = current link count. Ordinals are append-only.
	count, err := r.client.RoadmapTask.Query().
		Where(roadmaptask.RoadmapIDEQ(roadmapID)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("count roadmap tasks: %w", err)
	}

	_, err = r.client.RoadmapTask.Create().
		SetRoadmapID(roadmapID).
		SetTaskID(taskID).
		SetOrdinal(count).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("add task %d to roadmap %d: %w", taskID, roadmapID, err)
		}
		return fmt.Errorf("add roadmap task: %w", err)
	}
	return nil
}

func (r *roadmapRepo) Entries(ctx context.Context, roadmapID int) ([]RoadmapEntry, error) {
	links, err := r.client.RoadmapTask.Query().
		Where(roadmaptask.RoadmapIDEQ(roadmapID)).
		Order(ent.Asc(roadmaptask.FieldOrdinal)).
		WithTask().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("roadmap %d entries: %w", roadmapID, err)
	}

	out := make([]RoadmapEntry, 0, len(links))
	for _, link := range links {
		entry := RoadmapEntry{
			TaskID:  link.TaskID,
			Ordinal: link.Ordinal,
		}
		if t := link.Edges.Task; t != nil {
			entry.Title = t.Title
			set, err := lang.ParseSet(t.Languages)
			if err != nil {
				return nil, fmt.Errorf("task %d languages: %w", t.ID, err)
			}
			entry.Languages = set
		}
		out = append(out, entry)
	}
	return out, nil
}
