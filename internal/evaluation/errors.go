package evaluation

import "errors"

var (
	// ErrTaskNotFound indicates the submission targets a task that does
	// not exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrNoReferenceSolution indicates the task has no stored optimal
	// solution to grade against.
	ErrNoReferenceSolution = errors.New("task has no reference solution")

	// ErrReferenceImageUnavailable indicates the task's reference image
	// could not be fetched. Retryable.
	ErrReferenceImageUnavailable = errors.New("reference image unavailable")

	// ErrUnsupportedLanguages indicates the task's language set maps to
	// no grading template.
	ErrUnsupportedLanguages = errors.New("unsupported language combination")

	// ErrGraderUnavailable indicates the grading service was unreachable
	// or timed out. Retryable; no accounting has happened.
	ErrGraderUnavailable = errors.New("grading service unavailable")

	// ErrMalformedVerdict indicates the grader's response could not be
	// parsed into a verdict. Distinct from a legitimate low score and
	// never mapped to a zero score.
	ErrMalformedVerdict = errors.New("malformed grader response")
)
