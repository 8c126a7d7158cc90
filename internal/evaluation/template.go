package evaluation

import (
	"fmt"

	"github.com/frontforge/frontforge/internal/lang"
)

// Template identifies one grading-prompt variant and the source sections
// it grades. The six variants share one renderer; only the name and the
// section list differ.
type Template struct {
	// Name labels which languages are graded, e.g. "HTML+CSS+JS".
	Name string

	// Languages are the source sections included in the instruction, in
	// render order.
	Languages []lang.Language
}

// selections is the ordered rule table mapping a task's language set to
// a template. The first rule whose languages are all present wins; order
// matters because combinations overlap.
var selections = []struct {
	require lang.Set
	tmpl    Template
}{
	{lang.NewSet(lang.JSX, lang.CSS), Template{"JSX+CSS", []lang.Language{lang.JSX, lang.CSS}}},
	{lang.NewSet(lang.JSX), Template{"JSX", []lang.Language{lang.JSX}}},
	{lang.NewSet(lang.HTML, lang.CSS, lang.JS), Template{"HTML+CSS+JS", []lang.Language{lang.HTML, lang.CSS, lang.JS}}},
	{lang.NewSet(lang.HTML, lang.JS), Template{"HTML+JS", []lang.Language{lang.HTML, lang.JS}}},
	{lang.NewSet(lang.HTML, lang.CSS), Template{"HTML+CSS", []lang.Language{lang.HTML, lang.CSS}}},
	{lang.NewSet(lang.HTML), Template{"HTML", []lang.Language{lang.HTML}}},
}

// SelectTemplate picks the grading template for a task's language set.
func SelectTemplate(set lang.Set) (*Template, error) {
	for _, sel := range selections {
		if set.Contains(sel.require) {
			tmpl := sel.tmpl
			return &tmpl, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguages, set)
}
