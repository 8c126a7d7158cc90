package store

import (
	"context"
	"errors"
	"testing"

	"github.com/frontforge/frontforge/internal/lang"
	"github.com/frontforge/frontforge/internal/scoring"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestLearnerCreateGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.LearnerRepo()
	ctx := context.Background()

	l, err := repo.Create(ctx, "Ada", "ada@example.com")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if l.ID == 0 {
		t.Fatal("expected assigned ID")
	}
	if l.TotalScore != 0 || l.CompletedTaskCount != 0 {
		t.Errorf("new learner ledger = %d/%d, want 0/0", l.TotalScore, l.CompletedTaskCount)
	}

	got, err := repo.Get(ctx, l.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Email != "ada@example.com" {
		t.Errorf("Email = %q", got.Email)
	}

	if _, err := repo.Get(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing learner: expected ErrNotFound, got %v", err)
	}
}

func TestTaskCreateValidatesLanguages(t *testing.T) {
	s := openTestStore(t)
	repo := s.TaskRepo()
	ctx := context.Background()

	task, err := repo.Create(ctx, NewTask{
		Title:             "Profile card",
		Description:       "Centered card",
		Languages:         lang.NewSet(lang.HTML, lang.CSS),
		OptimalSolution:   map[lang.Language]string{lang.HTML: "<div></div>", lang.CSS: "div{}"},
		ReferenceImageURL: "https://assets.example.com/card.png",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, task.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Languages.Has(lang.CSS) {
		t.Errorf("Languages = %s, want html+css", got.Languages)
	}
	if got.OptimalSolution[lang.HTML] != "<div></div>" {
		t.Errorf("OptimalSolution = %v", got.OptimalSolution)
	}

	// JSX with HTML is an invalid combination.
	_, err = repo.Create(ctx, NewTask{
		Title:             "Broken",
		Languages:         lang.NewSet(lang.JSX, lang.HTML),
		ReferenceImageURL: "https://assets.example.com/broken.png",
	})
	if err == nil {
		t.Error("expected error for jsx+html")
	}
}

func TestTaskCreateRequiresReferenceImage(t *testing.T) {
	s := openTestStore(t)

	_, err := s.TaskRepo().Create(context.Background(), NewTask{
		Title:     "No image",
		Languages: lang.NewSet(lang.HTML),
	})
	if err == nil {
		t.Error("expected error for empty reference image URL")
	}
}

func TestRoadmapOrdering(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	tasks := s.TaskRepo()
	var taskIDs []int
	for _, title := range []string{"One", "Two", "Three"} {
		task, err := tasks.Create(ctx, NewTask{
			Title:             title,
			Languages:         lang.NewSet(lang.HTML),
			ReferenceImageURL: "https://assets.example.com/" + title + ".png",
		})
		if err != nil {
			t.Fatalf("create task: %v", err)
		}
		taskIDs = append(taskIDs, task.ID)
	}

	roadmaps := s.RoadmapRepo()
	rm, err := roadmaps.Create(ctx, "Foundations")
	if err != nil {
		t.Fatalf("create roadmap: %v", err)
	}

	for _, id := range taskIDs {
		if err := roadmaps.AddTask(ctx, rm.ID, id); err != nil {
			t.Fatalf("add task %d: %v", id, err)
		}
	}

	entries, err := roadmaps.Entries(ctx, rm.ID)
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	for i, e := range entries {
		if e.Ordinal != i+1 {
			t.Errorf("entries[%d].Ordinal = %d, want %d", i, e.Ordinal, i+1)
		}
		if e.TaskID != taskIDs[i] {
			t.Errorf("entries[%d].TaskID = %d, want %d", i, e.TaskID, taskIDs[i])
		}
		if e.Title == "" {
			t.Errorf("entries[%d] missing task title", i)
		}
	}
}

func TestAccountingRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	learner, err := s.LearnerRepo().Create(ctx, "Ada", "ada@example.com")
	if err != nil {
		t.Fatalf("create learner: %v", err)
	}
	task, err := s.TaskRepo().Create(ctx, NewTask{
		Title:             "One",
		Languages:         lang.NewSet(lang.HTML),
		ReferenceImageURL: "https://assets.example.com/one.png",
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	acc := s.Accounting()
	err = acc.InTx(ctx, func(tx scoring.Tx) error {
		if err := tx.CreateProgress(ctx, learner.ID, task.ID, 75, true); err != nil {
			return err
		}
		return tx.AdjustLedger(ctx, learner.ID, 75, 1)
	})
	if err != nil {
		t.Fatalf("accounting tx: %v", err)
	}

	progress, err := s.ProgressRepo().Get(ctx, learner.ID, task.ID)
	if err != nil {
		t.Fatalf("get progress: %v", err)
	}
	if progress.Score != 75 || !progress.Status {
		t.Errorf("progress = %+v, want score 75 passing", progress)
	}

	got, err := s.LearnerRepo().Get(ctx, learner.ID)
	if err != nil {
		t.Fatalf("get learner: %v", err)
	}
	if got.TotalScore != 75 || got.CompletedTaskCount != 1 {
		t.Errorf("ledger = %d/%d, want 75/1", got.TotalScore, got.CompletedTaskCount)
	}
}

func TestAccountingRollback(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	learner, err := s.LearnerRepo().Create(ctx, "Ada", "rollback@example.com")
	if err != nil {
		t.Fatalf("create learner: %v", err)
	}
	task, err := s.TaskRepo().Create(ctx, NewTask{
		Title:             "One",
		Languages:         lang.NewSet(lang.HTML),
		ReferenceImageURL: "https://assets.example.com/one.png",
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	boom := errors.New("boom")
	err = s.Accounting().InTx(ctx, func(tx scoring.Tx) error {
		if err := tx.CreateProgress(ctx, learner.ID, task.ID, 90, true); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	if _, err := s.ProgressRepo().Get(ctx, learner.ID, task.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("progress survived rollback: %v", err)
	}
}
