// Package evaluation builds grading requests for submitted design
// solutions and parses the grader's verdicts. It has no persistent side
// effects; persisting a verdict's consequences is the caller's job.
package evaluation

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/frontforge/frontforge/internal/grader"
	"github.com/frontforge/frontforge/internal/lang"
	"github.com/frontforge/frontforge/internal/store"
)

// maxVerdictTokens caps the grader's response size; verdicts are small.
const maxVerdictTokens = 2048

// TaskSource loads tasks for evaluation.
type TaskSource interface {
	Get(ctx context.Context, id int) (*store.Task, error)
}

// Submission carries a learner's attempt: source text per language and a
// screenshot of the rendered result.
type Submission struct {
	Source         map[lang.Language]string
	Screenshot     []byte
	ScreenshotMIME string
}

// Orchestrator assembles one composite grading request per submission:
// filled template, reference image, and submission screenshot.
type Orchestrator struct {
	tasks    TaskSource
	fetcher  ImageFetcher
	provider grader.Provider
	logger   *zap.Logger
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(tasks TaskSource, fetcher ImageFetcher, provider grader.Provider, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		tasks:    tasks,
		fetcher:  fetcher,
		provider: provider,
		logger:   logger,
	}
}

// Evaluate grades one submission against the task's reference solution
// and design image.
func (o *Orchestrator) Evaluate(ctx context.Context, taskID int, sub Submission) (*Verdict, error) {
	task, err := o.tasks.Get(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("task %d: %w", taskID, ErrTaskNotFound)
		}
		return nil, fmt.Errorf("load task %d: %w", taskID, err)
	}
	if len(task.OptimalSolution) == 0 {
		return nil, fmt.Errorf("task %d: %w", taskID, ErrNoReferenceSolution)
	}

	tmpl, err := SelectTemplate(task.Languages)
	if err != nil {
		return nil, err
	}

	refData, refMIME, err := o.fetcher.Fetch(ctx, task.ReferenceImageURL)
	if err != nil {
		return nil, err
	}

	req := grader.Request{
		System:      systemPrompt,
		Instruction: buildInstruction(tmpl, task, sub.Source),
		Images: []grader.Image{
			{MIMEType: refMIME, Data: refData},
			{MIMEType: sub.ScreenshotMIME, Data: sub.Screenshot},
		},
		Schema:    VerdictSchema,
		MaxTokens: maxVerdictTokens,
	}

	resp, err := o.provider.Grade(ctx, req)
	if err != nil {
		return nil, mapGraderError(err)
	}

	verdict, err := ParseVerdict(resp.Content)
	if err != nil {
		return nil, err
	}

	// The grader's contract clamps the score to [0,100]; a value outside
	// that range is an anomaly worth seeing, not a crash.
	if verdict.TotalScore < 0 || verdict.TotalScore > 100 {
		o.logger.Warn("grader returned out-of-range score",
			zap.Int("task_id", taskID),
			zap.Int("total_score", verdict.TotalScore),
			zap.String("model", o.provider.ModelID()))
	}

	return verdict, nil
}

// mapGraderError converts provider transport errors into the
// orchestrator's taxonomy. Schema-invalid content is a malformed
// verdict, not an availability problem.
func mapGraderError(err error) error {
	var invalid *grader.ErrInvalidResponse
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %v", ErrMalformedVerdict, err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrGraderUnavailable, err)
}
