// Package session implements the driver surface external callers use to
// run one compilation end to end: parse, validate, simplify, and compile,
// in the pipeline order the rest of the module's passes depend on.
package session

import (
	"github.com/kasl-lang/kasl/arena"
	"github.com/kasl-lang/kasl/ast"
	"github.com/kasl-lang/kasl/builtins"
	"github.com/kasl-lang/kasl/compiler"
	"github.com/kasl-lang/kasl/diagnostics"
	"github.com/kasl-lang/kasl/globalvalidator"
	"github.com/kasl-lang/kasl/parser"
	"github.com/kasl-lang/kasl/propagator"
	"github.com/kasl-lang/kasl/simplify"
)

// Options configures what a Session does beyond parsing: whether to run
// the simplifier, and with which flags.
type Options struct {
	Catalog     *builtins.Catalog // nil means builtins.LoadDefault()
	Simplify    simplify.Options
	RunSimplify bool
}

// Result is everything one call to Run produced.
type Result struct {
	Script      *ast.Script
	Log         *diagnostics.Log
	FoldedTotal int
	Program     *compiler.Program
}

// Session owns one compilation's arena and context. It is consumable
// exactly once: calling Run twice on the same Session panics, matching
// the source model's script_parser_session, which is not reentrant.
type Session struct {
	file   string
	src    string
	opts   Options
	arena  *arena.Arena
	handle *arena.Handle
	done   bool
}

// processArena is the process-wide arena builtins.LoadDefault's Catalog
// is conceptually attributed to — populated once, never freed.
var processArena = arena.New("builtins")

// New creates a Session over src. file names the source for diagnostic
// spans. Pass a zero Options to get default builtins and no simplify
// pass; set opts.RunSimplify to run the simplifier before compiling.
func New(file, src string, opts Options) *Session {
	if opts.Catalog == nil {
		opts.Catalog = builtins.LoadDefault()
	}
	return &Session{
		file:   file,
		src:    src,
		opts:   opts,
		arena:  arena.New("compilation:" + file),
		handle: arena.NewHandle(processArena),
	}
}

// Run executes the full pipeline: parse, propagate constants, validate
// global initializers, optionally simplify, then compile to bytecode.
// Bytecode is produced even when the log carries errors, so a caller can
// inspect partial results (IDE-style); Result.Log.Sane reports whether
// the run was clean.
func (s *Session) Run() *Result {
	if s.done {
		panic("session: Run called more than once")
	}
	s.done = true

	restore := s.handle.Acquire(s.arena)
	defer restore()

	log := &diagnostics.Log{}
	p := parser.New(s.file, s.src, s.opts.Catalog, log)
	script := p.ParseScript()

	propagator.Propagate(script)
	globalvalidator.Validate(script, log)

	foldedTotal := 0
	if s.opts.RunSimplify {
		simp := simplify.New(s.opts.Simplify)
		simp.Run(script)
		foldedTotal = simp.FoldedTotal
	}

	program := compiler.Compile(script)

	return &Result{
		Script:      script,
		Log:         log,
		FoldedTotal: foldedTotal,
		Program:     program,
	}
}
