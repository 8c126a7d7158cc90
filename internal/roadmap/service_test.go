package roadmap

import (
	"context"
	"errors"
	"testing"

	"github.com/frontforge/frontforge/internal/store"
)

type fakeRoadmapRepo struct {
	roadmap *store.Roadmap
	entries []store.RoadmapEntry
}

func (f *fakeRoadmapRepo) Create(context.Context, string) (*store.Roadmap, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRoadmapRepo) Get(_ context.Context, id int) (*store.Roadmap, error) {
	if f.roadmap == nil || f.roadmap.ID != id {
		return nil, store.ErrNotFound
	}
	return f.roadmap, nil
}

func (f *fakeRoadmapRepo) AddTask(context.Context, int, int) error {
	return errors.New("not implemented")
}

func (f *fakeRoadmapRepo) Entries(context.Context, int) ([]store.RoadmapEntry, error) {
	return f.entries, nil
}

type fakeProgressRepo struct {
	records map[int]*store.Progress
}

func (f *fakeProgressRepo) Get(_ context.Context, learnerID, taskID int) (*store.Progress, error) {
	if p, ok := f.records[taskID]; ok {
		return p, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeProgressRepo) ForLearner(context.Context, int) (map[int]*store.Progress, error) {
	return f.records, nil
}

func fourTaskRoadmap() *fakeRoadmapRepo {
	return &fakeRoadmapRepo{
		roadmap: &store.Roadmap{ID: 1, Title: "Foundations"},
		entries: []store.RoadmapEntry{
			{TaskID: 1, Ordinal: 1, Title: "Headings"},
			{TaskID: 2, Ordinal: 2, Title: "Profile card"},
			{TaskID: 3, Ordinal: 3, Title: "Navbar"},
			{TaskID: 4, Ordinal: 4, Title: "Login form"},
		},
	}
}

func scoreOf(n int) *store.Progress {
	return &store.Progress{Score: n, HasScore: true, Status: n >= 60}
}

func TestServiceViewFor(t *testing.T) {
	progress := &fakeProgressRepo{records: map[int]*store.Progress{
		1: scoreOf(85),
		3: scoreOf(70),
	}}
	svc := NewService(fourTaskRoadmap(), progress)

	view, err := svc.ViewFor(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("ViewFor: %v", err)
	}
	if view.Title != "Foundations" {
		t.Errorf("Title = %q", view.Title)
	}
	if len(view.Tasks) != 4 {
		t.Fatalf("got %d tasks, want 4", len(view.Tasks))
	}

	for i, tv := range view.Tasks {
		if tv.Locked {
			t.Errorf("task %d locked, want all unlocked", tv.TaskID)
		}
		if tv.Ordinal != i+1 {
			t.Errorf("task %d ordinal = %d, want %d", tv.TaskID, tv.Ordinal, i+1)
		}
	}

	if !view.Tasks[0].Completed || !view.Tasks[2].Completed {
		t.Error("passed tasks not marked completed")
	}
	if view.Tasks[1].Completed || view.Tasks[3].Completed {
		t.Error("unattempted tasks marked completed")
	}
	if view.Tasks[0].BestScore == nil || *view.Tasks[0].BestScore != 85 {
		t.Errorf("task 1 BestScore = %v, want 85", view.Tasks[0].BestScore)
	}
	if view.Tasks[1].BestScore != nil {
		t.Errorf("task 2 BestScore = %v, want nil", view.Tasks[1].BestScore)
	}
}

func TestServiceViewForNoProgress(t *testing.T) {
	svc := NewService(fourTaskRoadmap(), &fakeProgressRepo{records: map[int]*store.Progress{}})

	view, err := svc.ViewFor(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("ViewFor: %v", err)
	}

	wantLocked := []bool{false, true, true, true}
	for i, tv := range view.Tasks {
		if tv.Locked != wantLocked[i] {
			t.Errorf("task %d: locked = %v, want %v", tv.TaskID, tv.Locked, wantLocked[i])
		}
		if tv.Completed {
			t.Errorf("task %d marked completed with no progress", tv.TaskID)
		}
	}
}

func TestServiceViewForFailingScoreDoesNotComplete(t *testing.T) {
	progress := &fakeProgressRepo{records: map[int]*store.Progress{
		1: scoreOf(45),
	}}
	svc := NewService(fourTaskRoadmap(), progress)

	view, err := svc.ViewFor(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("ViewFor: %v", err)
	}
	first := view.Tasks[0]
	if first.Completed {
		t.Error("failing score marked completed")
	}
	if first.BestScore == nil || *first.BestScore != 45 {
		t.Errorf("BestScore = %v, want 45", first.BestScore)
	}
	if view.Tasks[1].Locked != true {
		t.Error("task 2 unlocked by a failing attempt")
	}
}

func TestServiceViewForMissingRoadmap(t *testing.T) {
	svc := NewService(&fakeRoadmapRepo{}, &fakeProgressRepo{})

	_, err := svc.ViewFor(context.Background(), 404, 10)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
