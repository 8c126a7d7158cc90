package evaluation

import (
	"errors"
	"testing"

	"github.com/frontforge/frontforge/internal/lang"
)

func TestSelectTemplate(t *testing.T) {
	tests := []struct {
		name string
		set  lang.Set
		want string
	}{
		{"html only", lang.NewSet(lang.HTML), "HTML"},
		{"html+css", lang.NewSet(lang.HTML, lang.CSS), "HTML+CSS"},
		{"html+css+js", lang.NewSet(lang.HTML, lang.CSS, lang.JS), "HTML+CSS+JS"},
		{"html+js", lang.NewSet(lang.HTML, lang.JS), "HTML+JS"},
		{"jsx only", lang.NewSet(lang.JSX), "JSX"},
		{"jsx+css", lang.NewSet(lang.JSX, lang.CSS), "JSX+CSS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := SelectTemplate(tt.set)
			if err != nil {
				t.Fatalf("SelectTemplate(%s): %v", tt.set, err)
			}
			if tmpl.Name != tt.want {
				t.Errorf("SelectTemplate(%s) = %q, want %q", tt.set, tmpl.Name, tt.want)
			}
		})
	}
}

func TestSelectTemplateUnsupported(t *testing.T) {
	for _, set := range []lang.Set{
		0,
		lang.NewSet(lang.CSS),
		lang.NewSet(lang.JS),
		lang.NewSet(lang.CSS, lang.JS),
	} {
		_, err := SelectTemplate(set)
		if !errors.Is(err, ErrUnsupportedLanguages) {
			t.Errorf("SelectTemplate(%s): expected ErrUnsupportedLanguages, got %v", set, err)
		}
	}
}

func TestTemplateSectionOrder(t *testing.T) {
	tmpl, err := SelectTemplate(lang.NewSet(lang.HTML, lang.CSS, lang.JS))
	if err != nil {
		t.Fatal(err)
	}
	want := []lang.Language{lang.HTML, lang.CSS, lang.JS}
	if len(tmpl.Languages) != len(want) {
		t.Fatalf("Languages = %v, want %v", tmpl.Languages, want)
	}
	for i, l := range want {
		if tmpl.Languages[i] != l {
			t.Errorf("Languages[%d] = %q, want %q", i, tmpl.Languages[i], l)
		}
	}
}
