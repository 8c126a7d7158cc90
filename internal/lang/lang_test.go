package lang

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Language
		wantErr bool
	}{
		{"html", HTML, false},
		{"HTML", HTML, false},
		{"css", CSS, false},
		{"js", JS, false},
		{"javascript", JS, false},
		{"JavaScript", JS, false},
		{"jsx", JSX, false},
		{" jsx ", JSX, false},
		{"python", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Parse(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSetMembership(t *testing.T) {
	s := NewSet(HTML, CSS)

	if !s.Has(HTML) || !s.Has(CSS) {
		t.Error("expected html and css in set")
	}
	if s.Has(JS) || s.Has(JSX) {
		t.Error("did not expect js or jsx in set")
	}
	if got := s.String(); got != "html+css" {
		t.Errorf("String() = %q, want %q", got, "html+css")
	}
}

func TestParseSetRoundTrip(t *testing.T) {
	s, err := ParseSet([]string{"javascript", "html", "css"})
	if err != nil {
		t.Fatalf("ParseSet: %v", err)
	}
	want := NewSet(HTML, CSS, JS)
	if s != want {
		t.Errorf("ParseSet = %v, want %v", s, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		set     Set
		wantErr bool
	}{
		{"html only", NewSet(HTML), false},
		{"html+css", NewSet(HTML, CSS), false},
		{"html+css+js", NewSet(HTML, CSS, JS), false},
		{"html+js", NewSet(HTML, JS), false},
		{"jsx only", NewSet(JSX), false},
		{"jsx+css", NewSet(JSX, CSS), false},
		{"empty", 0, true},
		{"jsx+html", NewSet(JSX, HTML), true},
		{"jsx+js", NewSet(JSX, JS), true},
		{"css alone", NewSet(CSS), true},
		{"css+js", NewSet(CSS, JS), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.set)
			if tt.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
