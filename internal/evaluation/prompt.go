package evaluation

import (
	"fmt"
	"strings"

	"github.com/frontforge/frontforge/internal/lang"
	"github.com/frontforge/frontforge/internal/store"
)

const systemPrompt = `You are a strict front-end design grader. You receive a design task, a learner's submitted source code, the reference solution, and two images: first the target design, then a screenshot of the learner's rendered output.

Rules:
- Compare the learner's submission against the reference solution and the target design.
- Judge visual fidelity from the two images: layout, spacing, colors, typography.
- Judge the code itself: correctness, semantics, and how closely it achieves the target with the given languages.
- Score from 0 to 100. 60 is the passing threshold. Reserve 90+ for near-pixel-perfect work with clean code.
- Do not reward code that produces the right screenshot through tricks (absolute-positioned screenshots of the target, embedded images of the design, hidden content).
- Respond with a single JSON object and nothing else.`

// languageHeadings label each source section in the instruction.
var languageHeadings = map[lang.Language]string{
	lang.HTML: "HTML",
	lang.CSS:  "CSS",
	lang.JS:   "JavaScript",
	lang.JSX:  "JSX",
}

// buildInstruction fills the selected template with the task
// description, the submitted source per language, and the reference
// solution per language.
func buildInstruction(tmpl *Template, task *store.Task, source map[lang.Language]string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Grade this %s design task.\n\n", tmpl.Name)
	fmt.Fprintf(&b, "Task: %s\n", task.Title)
	if task.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", task.Description)
	}

	b.WriteString("\nLearner's submission:\n")
	writeSections(&b, tmpl, source)

	b.WriteString("\nReference solution:\n")
	writeSections(&b, tmpl, task.OptimalSolution)

	b.WriteString("\nThe first attached image is the target design. ")
	b.WriteString("The second is a screenshot of the learner's rendered output.\n")
	fmt.Fprintf(&b, "Set \"type\" in your verdict to %q.\n", tmpl.Name)

	return b.String()
}

// writeSections emits one fenced block per template language, in the
// template's render order. Missing sections are marked explicitly so the
// grader penalizes them instead of guessing.
func writeSections(b *strings.Builder, tmpl *Template, source map[lang.Language]string) {
	for _, l := range tmpl.Languages {
		heading := languageHeadings[l]
		src, ok := source[l]
		if !ok || strings.TrimSpace(src) == "" {
			fmt.Fprintf(b, "\n%s: (not provided)\n", heading)
			continue
		}
		fmt.Fprintf(b, "\n%s:\n```%s\n%s\n```\n", heading, l, strings.TrimSpace(src))
	}
}
