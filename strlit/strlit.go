// Package strlit implements the scripting language's string-literal escape
// rules: turning the raw text between quotes into the runtime byte value,
// and the inverse for pretty-printing and diagnostics.
package strlit

import "strings"

// Parse translates the raw, still-escaped text captured between a literal's
// quotes into its runtime value.
//
// lPrefixed marks a literal written with the historical `L"..."` opener,
// whose leading quote is itself the first character of the value — a
// parser quirk preserved here for source fidelity rather than "fixed".
//
// Escape handling inside the literal: \n is a newline, \t expands to four
// spaces (not a tab — the runtime has never treated tab as a single byte
// here), \\ is a backslash, \" is a quote, and any other \x drops the
// backslash and emits x verbatim. An escape sequence truncated at
// end-of-input stops the string where the input stops.
func Parse(raw string, lPrefixed bool) string {
	var b strings.Builder
	if lPrefixed {
		b.WriteByte('"')
	}
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(raw) {
			break
		}
		switch raw[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteString("    ")
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		default:
			b.WriteByte(raw[i])
		}
	}
	return b.String()
}

// Escape produces the inverse of Parse for diagnostics and pretty-printing:
// backslash, quote, and newline are escaped; every other byte — including
// tab — passes through unmodified.
//
// This is not a perfect inverse of Parse: Escape never writes a \t escape,
// and Parse turns a \t escape into four spaces, so Escape(Parse(`a\tb`))
// is "a    b" rather than `a\tb`. A literal tab byte passes through both
// Escape and Parse unchanged. This asymmetry matches the runtime's
// long-standing behavior and is intentionally not "fixed" here.
func Escape(data string) string {
	var b strings.Builder
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteByte(data[i])
		}
	}
	return b.String()
}
