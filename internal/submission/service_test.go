package submission

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/frontforge/frontforge/internal/evaluation"
	"github.com/frontforge/frontforge/internal/lang"
	"github.com/frontforge/frontforge/internal/verdictcache"
)

type fakeEvaluator struct {
	verdict *evaluation.Verdict
	err     error
	calls   int
}

func (f *fakeEvaluator) Evaluate(context.Context, int, evaluation.Submission) (*evaluation.Verdict, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	v := *f.verdict
	return &v, nil
}

type fakeRecorder struct {
	err    error
	calls  int
	scores []int
}

func (f *fakeRecorder) RecordSubmission(_ context.Context, _, _, score int) (bool, error) {
	f.calls++
	f.scores = append(f.scores, score)
	if f.err != nil {
		return false, f.err
	}
	return score >= 60, nil
}

func goodVerdict() *evaluation.Verdict {
	return &evaluation.Verdict{Type: "HTML+CSS", TotalScore: 75, Grade: evaluation.GradeGood}
}

func validRequest() Request {
	return Request{
		LearnerID: 1,
		TaskID:    2,
		Source: map[lang.Language]string{
			lang.HTML: "<p>hi</p>",
			lang.CSS:  "p { color: blue; }",
		},
		Screenshot:     []byte{0xff, 0xd8},
		ScreenshotMIME: "image/jpeg",
	}
}

func newTestService(ev Evaluator, rec Recorder) *Service {
	return NewService(ev, rec, verdictcache.NewMemory(time.Minute), zap.NewNop())
}

func TestSubmit(t *testing.T) {
	ev := &fakeEvaluator{verdict: goodVerdict()}
	rec := &fakeRecorder{}
	svc := newTestService(ev, rec)

	res, err := svc.Submit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !res.Passed {
		t.Error("Passed = false, want true for score 75")
	}
	if res.Verdict.TotalScore != 75 {
		t.Errorf("Verdict.TotalScore = %d, want 75", res.Verdict.TotalScore)
	}
	if res.SubmissionKey == "" {
		t.Error("SubmissionKey not assigned")
	}
	if rec.calls != 1 || rec.scores[0] != 75 {
		t.Errorf("recorder calls = %d scores = %v, want one call with 75", rec.calls, rec.scores)
	}
}

func TestSubmitValidation(t *testing.T) {
	ev := &fakeEvaluator{verdict: goodVerdict()}
	rec := &fakeRecorder{}
	svc := newTestService(ev, rec)

	mutations := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero learner", func(r *Request) { r.LearnerID = 0 }},
		{"zero task", func(r *Request) { r.TaskID = 0 }},
		{"no source", func(r *Request) { r.Source = nil }},
		{"no screenshot", func(r *Request) { r.Screenshot = nil }},
		{"no mime", func(r *Request) { r.ScreenshotMIME = "" }},
	}

	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			_, err := svc.Submit(context.Background(), req)
			if !errors.Is(err, ErrInvalidSubmission) {
				t.Errorf("expected ErrInvalidSubmission, got %v", err)
			}
		})
	}

	if ev.calls != 0 {
		t.Errorf("evaluator called %d times for invalid requests", ev.calls)
	}
	if rec.calls != 0 {
		t.Errorf("recorder called %d times for invalid requests", rec.calls)
	}
}

func TestSubmitEvaluationFailureSkipsAccounting(t *testing.T) {
	ev := &fakeEvaluator{err: evaluation.ErrMalformedVerdict}
	rec := &fakeRecorder{}
	svc := newTestService(ev, rec)

	_, err := svc.Submit(context.Background(), validRequest())
	if !errors.Is(err, evaluation.ErrMalformedVerdict) {
		t.Fatalf("expected ErrMalformedVerdict, got %v", err)
	}
	if rec.calls != 0 {
		t.Errorf("recorder called %d times after failed evaluation", rec.calls)
	}
}

func TestSubmitRetryReusesCachedVerdict(t *testing.T) {
	ev := &fakeEvaluator{verdict: goodVerdict()}
	rec := &fakeRecorder{err: errors.New("database is locked")}
	cache := verdictcache.NewMemory(time.Minute)
	svc := NewService(ev, rec, cache, zap.NewNop())

	req := validRequest()
	req.SubmissionKey = "attempt-7"

	_, err := svc.Submit(context.Background(), req)
	if err == nil {
		t.Fatal("expected accounting failure")
	}
	if ev.calls != 1 {
		t.Fatalf("evaluator calls = %d, want 1", ev.calls)
	}

	// Retry with the same key: accounting now succeeds and the grader
	// is not called again.
	rec.err = nil
	res, err := svc.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("retry Submit: %v", err)
	}
	if ev.calls != 1 {
		t.Errorf("evaluator calls = %d after retry, want still 1", ev.calls)
	}
	if !res.Passed {
		t.Error("retry lost the passing verdict")
	}
	if res.SubmissionKey != "attempt-7" {
		t.Errorf("SubmissionKey = %q, want attempt-7", res.SubmissionKey)
	}
}

func TestSubmitFailingScore(t *testing.T) {
	ev := &fakeEvaluator{verdict: &evaluation.Verdict{Type: "HTML", TotalScore: 40, Grade: evaluation.GradePoor}}
	rec := &fakeRecorder{}
	svc := newTestService(ev, rec)

	res, err := svc.Submit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Passed {
		t.Error("Passed = true for score 40")
	}
	if rec.calls != 1 {
		t.Errorf("recorder calls = %d, want 1 (failing scores are still recorded)", rec.calls)
	}
}
