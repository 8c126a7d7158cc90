package evaluation

import (
	"strings"
	"testing"

	"github.com/frontforge/frontforge/internal/lang"
)

func TestBuildInstruction(t *testing.T) {
	tmpl, err := SelectTemplate(lang.NewSet(lang.HTML, lang.CSS))
	if err != nil {
		t.Fatal(err)
	}
	task := cardTask()

	got := buildInstruction(tmpl, task, map[lang.Language]string{
		lang.HTML: "<div>mine</div>",
		lang.CSS:  "div { margin: 0; }",
	})

	for _, want := range []string{
		"Profile card",
		"Build a centered profile card",
		"<div>mine</div>",
		"div { margin: 0; }",
		task.OptimalSolution[lang.HTML],
		task.OptimalSolution[lang.CSS],
		`"HTML+CSS"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("instruction missing %q", want)
		}
	}

	// Submission comes before the reference solution.
	subIdx := strings.Index(got, "Learner's submission")
	refIdx := strings.Index(got, "Reference solution")
	if subIdx < 0 || refIdx < 0 || subIdx > refIdx {
		t.Errorf("section order wrong: submission at %d, reference at %d", subIdx, refIdx)
	}
}

func TestBuildInstructionMissingSection(t *testing.T) {
	tmpl, err := SelectTemplate(lang.NewSet(lang.HTML, lang.CSS))
	if err != nil {
		t.Fatal(err)
	}

	got := buildInstruction(tmpl, cardTask(), map[lang.Language]string{
		lang.HTML: "<div></div>",
		// CSS deliberately absent
	})

	if !strings.Contains(got, "CSS: (not provided)") {
		t.Error("missing CSS section not marked")
	}
}

func TestBuildInstructionSectionOrderFollowsTemplate(t *testing.T) {
	tmpl, err := SelectTemplate(lang.NewSet(lang.HTML, lang.CSS, lang.JS))
	if err != nil {
		t.Fatal(err)
	}
	task := cardTask()
	task.Languages = lang.NewSet(lang.HTML, lang.CSS, lang.JS)

	got := buildInstruction(tmpl, task, map[lang.Language]string{
		lang.JS:   "console.log(1)",
		lang.HTML: "<div></div>",
		lang.CSS:  "div {}",
	})

	htmlIdx := strings.Index(got, "\nHTML:")
	cssIdx := strings.Index(got, "\nCSS:")
	jsIdx := strings.Index(got, "\nJavaScript:")
	if !(htmlIdx < cssIdx && cssIdx < jsIdx) {
		t.Errorf("sections out of order: html %d css %d js %d", htmlIdx, cssIdx, jsIdx)
	}
}
