// Package lang defines the target languages a design task can be built in
// and the combination rules a task's language set must satisfy.
package lang

import (
	"fmt"
	"strings"
)

// Language identifies one submission language.
type Language string

const (
	HTML Language = "html"
	CSS  Language = "css"
	JS   Language = "js"
	JSX  Language = "jsx"
)

// All lists the supported languages in canonical order.
var All = []Language{HTML, CSS, JS, JSX}

// Parse normalizes a language name. It accepts common aliases
// ("javascript" for js) case-insensitively.
func Parse(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "html":
		return HTML, nil
	case "css":
		return CSS, nil
	case "js", "javascript":
		return JS, nil
	case "jsx":
		return JSX, nil
	}
	return "", fmt.Errorf("unknown language: %q", s)
}

// Set is a bitmask of languages.
type Set uint8

const (
	SetHTML Set = 1 << iota
	SetCSS
	SetJS
	SetJSX
)

var setBits = map[Language]Set{
	HTML: SetHTML,
	CSS:  SetCSS,
	JS:   SetJS,
	JSX:  SetJSX,
}

// NewSet builds a Set from individual languages.
func NewSet(langs ...Language) Set {
	var s Set
	for _, l := range langs {
		s |= setBits[l]
	}
	return s
}

// ParseSet parses language names into a Set.
func ParseSet(names []string) (Set, error) {
	var s Set
	for _, n := range names {
		l, err := Parse(n)
		if err != nil {
			return 0, err
		}
		s |= setBits[l]
	}
	return s, nil
}

// Has reports whether l is in the set.
func (s Set) Has(l Language) bool {
	return s&setBits[l] != 0
}

// Contains reports whether every language of other is in s.
func (s Set) Contains(other Set) bool {
	return s&other == other
}

// Languages returns the set's members in canonical order.
func (s Set) Languages() []Language {
	var out []Language
	for _, l := range All {
		if s.Has(l) {
			out = append(out, l)
		}
	}
	return out
}

// Strings returns the set's members as strings in canonical order.
func (s Set) Strings() []string {
	langs := s.Languages()
	out := make([]string, len(langs))
	for i, l := range langs {
		out[i] = string(l)
	}
	return out
}

func (s Set) String() string {
	return strings.Join(s.Strings(), "+")
}

// Validate checks the combination rules a task's language set must obey:
// the set must be non-empty, JSX excludes HTML and JS, and CSS requires
// either HTML or JSX as a host language.
func Validate(s Set) error {
	if s == 0 {
		return fmt.Errorf("language set is empty")
	}
	if s.Has(JSX) && (s.Has(HTML) || s.Has(JS)) {
		return fmt.Errorf("jsx cannot be combined with html or js")
	}
	if s.Has(CSS) && !s.Has(HTML) && !s.Has(JSX) {
		return fmt.Errorf("css requires html or jsx")
	}
	return nil
}
