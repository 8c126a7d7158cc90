package roadmap

import (
	"context"
	"fmt"

	"github.com/frontforge/frontforge/internal/store"
)

// TaskView is one roadmap task annotated for a specific learner.
type TaskView struct {
	TaskID    int    `json:"taskId"`
	Title     string `json:"title"`
	Ordinal   int    `json:"ordinal"`
	Locked    bool   `json:"locked"`
	Completed bool   `json:"completed"`

	// BestScore is the learner's recorded score, present only when a
	// submission exists.
	BestScore *int `json:"bestScore,omitempty"`
}

// View is a roadmap rendered for one learner.
type View struct {
	RoadmapID int        `json:"roadmapId"`
	Title     string     `json:"title"`
	Tasks     []TaskView `json:"tasks"`
}

// Service joins roadmap structure with a learner's progress into gated
// views.
type Service struct {
	roadmaps store.RoadmapRepo
	progress store.ProgressRepo
}

// NewService creates a roadmap Service.
func NewService(roadmaps store.RoadmapRepo, progress store.ProgressRepo) *Service {
	return &Service{roadmaps: roadmaps, progress: progress}
}

// ViewFor returns the roadmap's tasks in order, each annotated with the
// learner's lock and completion state.
func (s *Service) ViewFor(ctx context.Context, roadmapID, learnerID int) (*View, error) {
	rm, err := s.roadmaps.Get(ctx, roadmapID)
	if err != nil {
		return nil, fmt.Errorf("load roadmap %d: %w", roadmapID, err)
	}

	entries, err := s.roadmaps.Entries(ctx, roadmapID)
	if err != nil {
		return nil, fmt.Errorf("load roadmap %d entries: %w", roadmapID, err)
	}

	records, err := s.progress.ForLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load progress for learner %d: %w", learnerID, err)
	}

	taskIDs := make([]int, len(entries))
	passing := make(map[int]bool, len(records))
	for i, e := range entries {
		taskIDs[i] = e.TaskID
	}
	for id, p := range records {
		passing[id] = p.Status
	}

	gates := ComputeLocks(taskIDs, passing)

	view := &View{
		RoadmapID: rm.ID,
		Title:     rm.Title,
		Tasks:     make([]TaskView, len(entries)),
	}
	for i, e := range entries {
		tv := TaskView{
			TaskID:  e.TaskID,
			Title:   e.Title,
			Ordinal: e.Ordinal,
			Locked:  gates[i].Locked,
		}
		if p, ok := records[e.TaskID]; ok {
			tv.Completed = p.Status
			if p.HasScore {
				score := p.Score
				tv.BestScore = &score
			}
		}
		view.Tasks[i] = tv
	}
	return view, nil
}
