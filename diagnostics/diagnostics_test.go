package diagnostics

import (
	"testing"

	"github.com/kasl-lang/kasl/source"
)

func TestLogSaneUntilAnErrorIsAdded(t *testing.T) {
	var log Log
	if !log.Sane() {
		t.Fatalf("empty log should be Sane")
	}
	log.Warnf(CodeUnusedLocal, source.Span{}, "local %q is never read", "u")
	if !log.Sane() {
		t.Errorf("a warning-only log should still be Sane")
	}
	log.Errorf(CodeGlobalInitializerNotConstant, source.Span{}, "initializer for %q is not constant", "N")
	if log.Sane() {
		t.Errorf("log with an Error entry should not be Sane")
	}
}

func TestEntriesPreservesReportOrder(t *testing.T) {
	var log Log
	log.Warnf(CodeUnusedGlobal, source.Span{}, "first")
	log.Errorf(CodeUnusedFunction, source.Span{}, "second")
	entries := log.Entries()
	if len(entries) != 2 || entries[0].Message != "first" || entries[1].Message != "second" {
		t.Errorf("Entries() = %v, want [first, second] in order", entries)
	}
}
