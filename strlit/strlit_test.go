package strlit

import "testing"

func TestParseBasicEscapes(t *testing.T) {
	cases := []struct {
		raw, want string
	}{
		{`a\nb`, "a\nb"},
		{`a\\b`, `a\b`},
		{`a\"b`, `a"b`},
		{`a\tb`, "a    b"},
		{`a\qb`, "aqb"},
	}
	for _, c := range cases {
		if got := Parse(c.raw, false); got != c.want {
			t.Errorf("Parse(%q, false) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestParseTruncatedEscapeStopsAtInput(t *testing.T) {
	got := Parse(`abc\`, false)
	if got != "abc" {
		t.Errorf("Parse(%q) = %q, want %q", `abc\`, got, "abc")
	}
}

func TestParseLPrefixedPrependsQuote(t *testing.T) {
	got := Parse("abc", true)
	if got != `"abc` {
		t.Errorf("Parse(_, true) = %q, want %q", got, `"abc`)
	}
}

func TestEscapeRoundTripsQuotesAndBackslashes(t *testing.T) {
	got := Escape(`a"b\c`)
	want := `a\"b\\c`
	if got != want {
		t.Errorf("Escape = %q, want %q", got, want)
	}
}

func TestEscapeTabAsymmetry(t *testing.T) {
	// A literal tab byte passes through Escape unchanged rather than being
	// written as \t, while Parse expands a \t escape to four spaces — so
	// escaping a parsed \t does not give back \t. This is documented,
	// intentional behavior, not a bug.
	escaped := Escape("a\tb")
	if escaped != "a\tb" {
		t.Fatalf("Escape(tab) = %q, want unchanged", escaped)
	}
	if got := Escape(Parse(`a\tb`, false)); got != "a    b" {
		t.Errorf("Escape(Parse(`a\\tb`)) = %q, want %q", got, "a    b")
	}
}
