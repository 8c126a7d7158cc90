package evaluation

import (
	"errors"
	"testing"
)

func TestParseVerdict(t *testing.T) {
	raw := `{"type":"HTML+CSS","totalScore":82,"grade":"Very Good","breakdown":{"layout":40,"styling":42}}`

	v, err := ParseVerdict([]byte(raw))
	if err != nil {
		t.Fatalf("ParseVerdict: %v", err)
	}
	if v.Type != "HTML+CSS" {
		t.Errorf("Type = %q, want %q", v.Type, "HTML+CSS")
	}
	if v.TotalScore != 82 {
		t.Errorf("TotalScore = %d, want 82", v.TotalScore)
	}
	if v.Grade != GradeVeryGood {
		t.Errorf("Grade = %q, want %q", v.Grade, GradeVeryGood)
	}
	if got, ok := v.Breakdown["styling"].(float64); !ok || got != 42 {
		t.Errorf("Breakdown[styling] = %v, want 42", v.Breakdown["styling"])
	}
}

func TestParseVerdictFenced(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"json fence", "```json\n{\"type\":\"HTML\",\"totalScore\":55,\"grade\":\"Fair\"}\n```"},
		{"bare fence", "```\n{\"type\":\"HTML\",\"totalScore\":55,\"grade\":\"Fair\"}\n```"},
		{"leading whitespace", "  \n```json\n{\"type\":\"HTML\",\"totalScore\":55,\"grade\":\"Fair\"}\n```  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseVerdict([]byte(tt.raw))
			if err != nil {
				t.Fatalf("ParseVerdict: %v", err)
			}
			if v.TotalScore != 55 {
				t.Errorf("TotalScore = %d, want 55", v.TotalScore)
			}
		})
	}
}

func TestParseVerdictMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "the submission looks great, 90/100"},
		{"missing type", `{"totalScore":70,"grade":"Good"}`},
		{"missing totalScore", `{"type":"HTML","grade":"Good"}`},
		{"missing grade", `{"type":"HTML","totalScore":70}`},
		{"empty", ""},
		{"empty fence", "```json\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVerdict([]byte(tt.raw))
			if !errors.Is(err, ErrMalformedVerdict) {
				t.Errorf("expected ErrMalformedVerdict, got %v", err)
			}
		})
	}
}

func TestParseVerdictZeroScore(t *testing.T) {
	// A zero score is a real verdict, not a missing field.
	v, err := ParseVerdict([]byte(`{"type":"HTML","totalScore":0,"grade":"Fail"}`))
	if err != nil {
		t.Fatalf("ParseVerdict: %v", err)
	}
	if v.TotalScore != 0 {
		t.Errorf("TotalScore = %d, want 0", v.TotalScore)
	}
	if v.Grade != GradeFail {
		t.Errorf("Grade = %q, want %q", v.Grade, GradeFail)
	}
}
