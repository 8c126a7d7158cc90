package evaluation

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/frontforge/frontforge/internal/grader"
	"github.com/frontforge/frontforge/internal/lang"
	"github.com/frontforge/frontforge/internal/store"
)

type fakeTaskSource struct {
	tasks map[int]*store.Task
}

func (f *fakeTaskSource) Get(_ context.Context, id int) (*store.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return t, nil
}

type fakeFetcher struct {
	data []byte
	mime string
	err  error
}

func (f *fakeFetcher) Fetch(context.Context, string) ([]byte, string, error) {
	return f.data, f.mime, f.err
}

func cardTask() *store.Task {
	return &store.Task{
		ID:          7,
		Title:       "Profile card",
		Description: "Build a centered profile card with an avatar.",
		Languages:   lang.NewSet(lang.HTML, lang.CSS),
		OptimalSolution: map[lang.Language]string{
			lang.HTML: "<div class=\"card\"></div>",
			lang.CSS:  ".card { margin: auto; }",
		},
		ReferenceImageURL: "https://assets.example.com/card.png",
	}
}

func newTestOrchestrator(task *store.Task, fetcher ImageFetcher, provider grader.Provider) *Orchestrator {
	src := &fakeTaskSource{tasks: map[int]*store.Task{}}
	if task != nil {
		src.tasks[task.ID] = task
	}
	return NewOrchestrator(src, fetcher, provider, zap.NewNop())
}

func sampleSubmission() Submission {
	return Submission{
		Source: map[lang.Language]string{
			lang.HTML: "<div>mine</div>",
			lang.CSS:  "div { color: red; }",
		},
		Screenshot:     []byte{0xff, 0xd8, 0xff},
		ScreenshotMIME: "image/jpeg",
	}
}

func TestOrchestratorEvaluate(t *testing.T) {
	provider := grader.NewMockProvider(grader.MockResponse{
		Content: json.RawMessage(`{"type":"HTML+CSS","totalScore":78,"grade":"Good"}`),
	})
	fetcher := &fakeFetcher{data: []byte{1, 2, 3}, mime: "image/png"}
	o := newTestOrchestrator(cardTask(), fetcher, provider)

	v, err := o.Evaluate(context.Background(), 7, sampleSubmission())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if v.TotalScore != 78 {
		t.Errorf("TotalScore = %d, want 78", v.TotalScore)
	}
	if v.Grade != GradeGood {
		t.Errorf("Grade = %q, want %q", v.Grade, GradeGood)
	}

	if provider.CallCount() != 1 {
		t.Fatalf("CallCount = %d, want 1", provider.CallCount())
	}
	req := provider.Calls[0]
	if len(req.Images) != 2 {
		t.Fatalf("Images = %d, want 2 (reference then screenshot)", len(req.Images))
	}
	if req.Images[0].MIMEType != "image/png" {
		t.Errorf("Images[0].MIMEType = %q, want reference image first", req.Images[0].MIMEType)
	}
	if req.Images[1].MIMEType != "image/jpeg" {
		t.Errorf("Images[1].MIMEType = %q, want screenshot second", req.Images[1].MIMEType)
	}
	if req.Schema != VerdictSchema {
		t.Error("request did not carry the verdict schema")
	}
	if !strings.Contains(req.Instruction, "Profile card") {
		t.Error("instruction missing task title")
	}
	if !strings.Contains(req.Instruction, "<div>mine</div>") {
		t.Error("instruction missing learner source")
	}
}

func TestOrchestratorTaskNotFound(t *testing.T) {
	o := newTestOrchestrator(nil, &fakeFetcher{}, grader.NewMockProvider())

	_, err := o.Evaluate(context.Background(), 99, sampleSubmission())
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestOrchestratorNoReferenceSolution(t *testing.T) {
	task := cardTask()
	task.OptimalSolution = nil
	o := newTestOrchestrator(task, &fakeFetcher{}, grader.NewMockProvider())

	_, err := o.Evaluate(context.Background(), task.ID, sampleSubmission())
	if !errors.Is(err, ErrNoReferenceSolution) {
		t.Errorf("expected ErrNoReferenceSolution, got %v", err)
	}
}

func TestOrchestratorUnsupportedLanguages(t *testing.T) {
	task := cardTask()
	task.Languages = lang.NewSet(lang.CSS)
	o := newTestOrchestrator(task, &fakeFetcher{}, grader.NewMockProvider())

	_, err := o.Evaluate(context.Background(), task.ID, sampleSubmission())
	if !errors.Is(err, ErrUnsupportedLanguages) {
		t.Errorf("expected ErrUnsupportedLanguages, got %v", err)
	}
}

func TestOrchestratorImageUnavailable(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("boom")}
	provider := grader.NewMockProvider()
	o := newTestOrchestrator(cardTask(), fetcher, provider)

	_, err := o.Evaluate(context.Background(), 7, sampleSubmission())
	if err == nil {
		t.Fatal("expected error")
	}
	if provider.CallCount() != 0 {
		t.Errorf("provider called %d times despite fetch failure", provider.CallCount())
	}
}

func TestOrchestratorProviderUnavailable(t *testing.T) {
	provider := grader.NewMockProvider(grader.MockResponse{
		Err: &grader.ErrProviderUnavailable{Err: errors.New("connection reset")},
	})
	o := newTestOrchestrator(cardTask(), &fakeFetcher{data: []byte{1}, mime: "image/png"}, provider)

	_, err := o.Evaluate(context.Background(), 7, sampleSubmission())
	if !errors.Is(err, ErrGraderUnavailable) {
		t.Errorf("expected ErrGraderUnavailable, got %v", err)
	}
}

func TestOrchestratorMalformedVerdict(t *testing.T) {
	tests := []struct {
		name string
		resp grader.MockResponse
	}{
		{
			"prose instead of json",
			grader.MockResponse{Content: json.RawMessage(`Nice work, about 80 points.`)},
		},
		{
			"schema rejection",
			grader.MockResponse{Err: &grader.ErrInvalidResponse{
				Content: json.RawMessage(`{"score": "high"}`),
				Err:     errors.New("missing required property totalScore"),
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := grader.NewMockProvider(tt.resp)
			o := newTestOrchestrator(cardTask(), &fakeFetcher{data: []byte{1}, mime: "image/png"}, provider)

			_, err := o.Evaluate(context.Background(), 7, sampleSubmission())
			if !errors.Is(err, ErrMalformedVerdict) {
				t.Errorf("expected ErrMalformedVerdict, got %v", err)
			}
		})
	}
}

func TestOrchestratorOutOfRangeScorePassesThrough(t *testing.T) {
	provider := grader.NewMockProvider(grader.MockResponse{
		Content: json.RawMessage(`{"type":"HTML+CSS","totalScore":140,"grade":"Excellent"}`),
	})
	o := newTestOrchestrator(cardTask(), &fakeFetcher{data: []byte{1}, mime: "image/png"}, provider)

	v, err := o.Evaluate(context.Background(), 7, sampleSubmission())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if v.TotalScore != 140 {
		t.Errorf("TotalScore = %d, want the raw 140 passed through", v.TotalScore)
	}
}
