package evaluation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/frontforge/frontforge/internal/grader"
)

// Grade is the grader's qualitative band for a verdict.
type Grade string

const (
	GradeFail      Grade = "Fail"
	GradePoor      Grade = "Poor"
	GradeFair      Grade = "Fair"
	GradeGood      Grade = "Good"
	GradeVeryGood  Grade = "Very Good"
	GradeExcellent Grade = "Excellent"
)

// Verdict is the parsed result of one evaluation call. It is transient:
// the caller persists its effects through the completion accountant.
type Verdict struct {
	// Type names which languages were graded, e.g. "HTML+CSS".
	Type string `json:"type"`

	// TotalScore is the grader's 0-100 score.
	TotalScore int `json:"totalScore"`

	// Grade is the qualitative band.
	Grade Grade `json:"grade"`

	// Breakdown is the grader's per-criterion detail, kept only for
	// human display.
	Breakdown map[string]any `json:"breakdown,omitempty"`
}

// VerdictSchema is the JSON schema the grader's structured output must
// conform to.
var VerdictSchema = &grader.Schema{
	Name:        "design-verdict",
	Description: "Grading verdict for a submitted design task solution",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"type": map[string]any{
				"type":        "string",
				"description": "Which languages were graded, e.g. HTML+CSS",
			},
			"totalScore": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Overall score from 0 to 100",
			},
			"grade": map[string]any{
				"type": "string",
				"enum": []any{
					"Fail", "Poor", "Fair", "Good", "Very Good", "Excellent",
				},
				"description": "Qualitative band for the score",
			},
			"breakdown": map[string]any{
				"type":        "object",
				"description": "Per-criterion scores and remarks, display only",
			},
		},
		"required": []any{"type", "totalScore", "grade"},
	},
}

// rawVerdict uses pointers so absent required fields are detectable
// after unmarshaling.
type rawVerdict struct {
	Type       *string        `json:"type"`
	TotalScore *int           `json:"totalScore"`
	Grade      *string        `json:"grade"`
	Breakdown  map[string]any `json:"breakdown"`
}

// ParseVerdict extracts a Verdict from the grader's textual response.
// A response wrapped in a fenced code block is unwrapped first. Any
// parse failure or missing required field is ErrMalformedVerdict; a
// malformed response is never treated as a zero score.
func ParseVerdict(raw json.RawMessage) (*Verdict, error) {
	text := stripCodeFence(string(raw))

	var rv rawVerdict
	if err := json.Unmarshal([]byte(text), &rv); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedVerdict, err)
	}
	if rv.TotalScore == nil {
		return nil, fmt.Errorf("%w: missing totalScore", ErrMalformedVerdict)
	}
	if rv.Type == nil {
		return nil, fmt.Errorf("%w: missing type", ErrMalformedVerdict)
	}
	if rv.Grade == nil {
		return nil, fmt.Errorf("%w: missing grade", ErrMalformedVerdict)
	}

	return &Verdict{
		Type:       *rv.Type,
		TotalScore: *rv.TotalScore,
		Grade:      Grade(*rv.Grade),
		Breakdown:  rv.Breakdown,
	}, nil
}

// stripCodeFence removes a surrounding markdown fence (``` or ```json)
// if present, returning the inner text.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	// Drop an info string like "json" on the opening fence line.
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		first := strings.TrimSpace(s[:i])
		if first == "" || !strings.ContainsAny(first, "{[") {
			s = s[i+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
