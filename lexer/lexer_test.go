package lexer

import (
	"testing"

	"github.com/kasl-lang/kasl/token"
)

func TestNextTokenCoversOperatorsAndDelimiters(t *testing.T) {
	input := `integer N = 2 + 3 * 4; @L; jump L; rotation Q; vector V;`

	tests := []struct {
		typ     token.Type
		literal string
	}{
		{token.TypeInteger, "integer"},
		{token.Ident, "N"},
		{token.Assign, "="},
		{token.Int, "2"},
		{token.Plus, "+"},
		{token.Int, "3"},
		{token.Asterisk, "*"},
		{token.Int, "4"},
		{token.Semicolon, ";"},
		{token.At, "@"},
		{token.Ident, "L"},
		{token.Semicolon, ";"},
		{token.Jump, "jump"},
		{token.Ident, "L"},
		{token.Semicolon, ";"},
		{token.TypeQuaternion, "rotation"},
		{token.Ident, "Q"},
		{token.Semicolon, ";"},
		{token.TypeVector, "vector"},
		{token.Ident, "V"},
		{token.Semicolon, ";"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, want := range tests {
		got := l.NextToken()
		if got.Type != want.typ || got.Literal != want.literal {
			t.Fatalf("token %d = {%q %q}, want {%q %q}", i, got.Type, got.Literal, want.typ, want.literal)
		}
	}
}

func TestNextTokenReadsHexInteger(t *testing.T) {
	l := New("0xFF")
	tok := l.NextToken()
	if tok.Type != token.Int || tok.Literal != "0xFF" {
		t.Errorf("token = %+v, want {INT 0xFF}", tok)
	}
}

func TestNextTokenReadsFloatForms(t *testing.T) {
	cases := []string{"1.5", ".5", "1e10", "1.5e-3", "2f"}
	for _, src := range cases {
		l := New(src)
		tok := l.NextToken()
		if tok.Type != token.Float {
			t.Errorf("NextToken(%q) = %+v, want FLOAT", src, tok)
		}
	}
}

func TestNextTokenReadsQuotedString(t *testing.T) {
	l := New(`"a\"b"`)
	tok := l.NextToken()
	if tok.Type != token.String {
		t.Fatalf("Type = %q, want STRING", tok.Type)
	}
	if tok.Literal != `a\"b` {
		t.Errorf("Literal = %q, want the raw escaped contents", tok.Literal)
	}
}

func TestNextTokenMarksLPrefixedString(t *testing.T) {
	l := New(`L"x"`)
	tok := l.NextToken()
	if !tok.LPrefixed {
		t.Errorf("LPrefixed = false, want true for an L\"...\" literal")
	}
}

func TestNextTokenSkipsLineAndBlockComments(t *testing.T) {
	l := New("// comment\ninteger /* inline */ N;")
	first := l.NextToken()
	if first.Type != token.TypeInteger {
		t.Fatalf("Type = %q, want integer keyword", first.Type)
	}
	second := l.NextToken()
	if second.Type != token.Ident || second.Literal != "N" {
		t.Errorf("second token = %+v, want ident N", second)
	}
}

func TestNextTokenReportsLineAndColumn(t *testing.T) {
	l := New("integer\nN;")
	l.NextToken() // integer
	tok := l.NextToken()
	if tok.Line != 2 {
		t.Errorf("Line = %d, want 2", tok.Line)
	}
}

func TestNextTokenUnterminatedStringIsIllegal(t *testing.T) {
	l := New(`"unterminated`)
	tok := l.NextToken()
	if tok.Type != token.Illegal {
		t.Errorf("Type = %q, want ILLEGAL", tok.Type)
	}
}
