// Package diagnostics implements the error/warning/fatal taxonomy used
// throughout the analyzer: a stable short code, a source span, a message,
// and a severity, collected into a Log the caller enumerates once
// compilation (or loading) finishes.
package diagnostics

import (
	"fmt"

	"github.com/kasl-lang/kasl/source"
)

// Severity classifies a Diagnostic.
type Severity int

const (
	// Warning is advisory: compilation continues and emits bytecode.
	Warning Severity = iota
	// Error marks the compilation as unsound; bytecode generation is
	// still attempted so the caller sees every error in one pass.
	Error
	// Fatal conditions abort the process — a malformed builtin manifest,
	// an unreadable user-supplied manifest, or an internal invariant
	// violation. Fatal diagnostics are reported via Abort, not Log.Add.
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	default:
		return "?"
	}
}

// Code identifies a diagnostic kind by a short stable string, e.g.
// "E_GLOBAL_INITIALIZER_NOT_CONSTANT".
type Code string

// Known stable diagnostic codes. Codes not in this list may still appear
// (e.g. parser-reported codes outside this module's scope) — this list
// only enumerates the ones the passes in this module emit.
const (
	CodeGlobalInitializerNotConstant Code = "E_GLOBAL_INITIALIZER_NOT_CONSTANT"
	CodeUnusedLocal                  Code = "W_UNUSED_LOCAL"
	CodeUnusedGlobal                 Code = "W_UNUSED_GLOBAL"
	CodeUnusedFunction               Code = "W_UNUSED_FUNCTION"
	CodeUnreachableJumpTarget        Code = "E_UNREACHABLE_JUMP_TARGET"
	CodeSyntaxError                  Code = "E_SYNTAX"
	CodeUndefinedSymbol              Code = "E_UNDEFINED_SYMBOL"
	CodeRedefinition                 Code = "E_REDEFINITION"
)

// Diagnostic is one reported finding, attached to a source span.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Span     source.Span
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s [%s]", d.Span, d.Severity, d.Message, d.Code)
}

// Log accumulates diagnostics across one compilation. The zero value is
// ready to use.
type Log struct {
	entries []Diagnostic
}

// Add appends a diagnostic to the log.
func (l *Log) Add(severity Severity, code Code, span source.Span, format string, args ...any) {
	l.entries = append(l.entries, Diagnostic{
		Severity: severity,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Span:     span,
	})
}

// Errorf is shorthand for Add(Error, code, span, ...).
func (l *Log) Errorf(code Code, span source.Span, format string, args ...any) {
	l.Add(Error, code, span, format, args...)
}

// Warnf is shorthand for Add(Warning, code, span, ...).
func (l *Log) Warnf(code Code, span source.Span, format string, args ...any) {
	l.Add(Warning, code, span, format, args...)
}

// Entries returns every diagnostic logged so far, in report order.
func (l *Log) Entries() []Diagnostic { return l.entries }

// HasErrors reports whether any logged diagnostic is Error severity or
// worse.
func (l *Log) HasErrors() bool {
	for _, d := range l.entries {
		if d.Severity >= Error {
			return true
		}
	}
	return false
}

// Sane mirrors the source model's `ast_sane` boolean: true iff nothing at
// Error severity or worse has been logged.
func (l *Log) Sane() bool { return !l.HasErrors() }
