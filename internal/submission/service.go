// Package submission ties a learner's attempt to its consequences: it
// runs the evaluation, caches the verdict, and records the score. The
// grading call is the expensive step, so a retry after an accounting
// failure replays the cached verdict instead of grading again.
package submission

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/frontforge/frontforge/internal/evaluation"
	"github.com/frontforge/frontforge/internal/lang"
	"github.com/frontforge/frontforge/internal/verdictcache"
)

// ErrInvalidSubmission rejects a request before any network call.
var ErrInvalidSubmission = errors.New("invalid submission")

// Evaluator grades one submission against a task.
type Evaluator interface {
	Evaluate(ctx context.Context, taskID int, sub evaluation.Submission) (*evaluation.Verdict, error)
}

// Recorder applies a verdict's score to the learner's ledger.
type Recorder interface {
	RecordSubmission(ctx context.Context, learnerID, taskID, score int) (bool, error)
}

// Request is one learner attempt at a task.
type Request struct {
	LearnerID int
	TaskID    int

	// SubmissionKey identifies the attempt for verdict-cache lookups.
	// Empty means a fresh attempt; the service assigns a key.
	SubmissionKey string

	Source         map[lang.Language]string
	Screenshot     []byte
	ScreenshotMIME string
}

// Result is the outcome handed back to the caller.
type Result struct {
	Passed  bool                `json:"passed"`
	Verdict *evaluation.Verdict `json:"verdict"`

	// SubmissionKey lets the caller retry accounting for this exact
	// attempt without re-grading.
	SubmissionKey string `json:"submissionKey"`
}

// Service orchestrates one submission end to end.
type Service struct {
	evaluator Evaluator
	recorder  Recorder
	cache     verdictcache.Cache
	logger    *zap.Logger
}

// NewService creates a submission Service.
func NewService(evaluator Evaluator, recorder Recorder, cache verdictcache.Cache, logger *zap.Logger) *Service {
	return &Service{
		evaluator: evaluator,
		recorder:  recorder,
		cache:     cache,
		logger:    logger,
	}
}

// Submit grades the attempt and records the result. Accounting runs
// only after a verdict is fully parsed, so a cancelled or failed
// grading call leaves the ledger untouched.
func (s *Service) Submit(ctx context.Context, req Request) (*Result, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	key := req.SubmissionKey
	if key == "" {
		key = uuid.NewString()
	}

	verdict, err := s.cachedVerdict(ctx, key)
	if err != nil {
		return nil, err
	}
	if verdict == nil {
		verdict, err = s.evaluator.Evaluate(ctx, req.TaskID, evaluation.Submission{
			Source:         req.Source,
			Screenshot:     req.Screenshot,
			ScreenshotMIME: req.ScreenshotMIME,
		})
		if err != nil {
			return nil, err
		}

		// Cache before accounting: if the write below fails, the retry
		// path finds the verdict and skips the grading call.
		if err := s.cache.Put(ctx, key, verdict); err != nil {
			s.logger.Warn("verdict cache write failed",
				zap.String("submission_key", key),
				zap.Error(err))
		}
	}

	passed, err := s.recorder.RecordSubmission(ctx, req.LearnerID, req.TaskID, verdict.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("record submission: %w", err)
	}

	return &Result{
		Passed:        passed,
		Verdict:       verdict,
		SubmissionKey: key,
	}, nil
}

func (s *Service) cachedVerdict(ctx context.Context, key string) (*evaluation.Verdict, error) {
	verdict, err := s.cache.Get(ctx, key)
	if err != nil {
		// A broken cache must not block submissions; grade afresh.
		s.logger.Warn("verdict cache read failed",
			zap.String("submission_key", key),
			zap.Error(err))
		return nil, nil
	}
	if verdict != nil {
		s.logger.Info("reusing cached verdict",
			zap.String("submission_key", key),
			zap.Int("total_score", verdict.TotalScore))
	}
	return verdict, nil
}

func validate(req Request) error {
	switch {
	case req.LearnerID <= 0:
		return fmt.Errorf("%w: learner id required", ErrInvalidSubmission)
	case req.TaskID <= 0:
		return fmt.Errorf("%w: task id required", ErrInvalidSubmission)
	case len(req.Source) == 0:
		return fmt.Errorf("%w: source is empty", ErrInvalidSubmission)
	case len(req.Screenshot) == 0:
		return fmt.Errorf("%w: screenshot is empty", ErrInvalidSubmission)
	case req.ScreenshotMIME == "":
		return fmt.Errorf("%w: screenshot mime type required", ErrInvalidSubmission)
	}
	return nil
}
