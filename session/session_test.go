package session

import (
	"testing"

	"github.com/kasl-lang/kasl/ast"
)

func TestRunCompilesCleanScript(t *testing.T) {
	src := `
integer square(integer n) {
    return n * n;
}

default {
    state_entry() {
        integer x = square(3);
    }
}
`
	result := New("<test>", src, Options{}).Run()

	if !result.Log.Sane() {
		for _, d := range result.Log.Entries() {
			t.Errorf("unexpected diagnostic: %s", d.String())
		}
	}
	if result.Program == nil {
		t.Fatal("expected a compiled program")
	}

	names := map[string]bool{}
	for _, fn := range result.Program.Functions {
		names[fn.Name] = true
	}
	if !names["square"] {
		t.Errorf("expected a compiled function named %q, got %v", "square", names)
	}
	if !names["default.state_entry"] {
		t.Errorf("expected a compiled function named %q, got %v", "default.state_entry", names)
	}
}

func TestRunReportsGlobalInitializerError(t *testing.T) {
	src := `
integer counter;
integer bad = counter + 1;

default {
    state_entry() {
    }
}
`
	result := New("<test>", src, Options{}).Run()

	if result.Log.Sane() {
		t.Fatal("expected the non-constant global initializer to be reported")
	}
}

func TestRunSimplifyFoldsConstants(t *testing.T) {
	src := `
default {
    state_entry() {
        integer x = 2 + 3;
    }
}
`
	withoutFold := New("<test>", src, Options{}).Run()
	if withoutFold.FoldedTotal != 0 {
		t.Errorf("expected no folding when RunSimplify is unset, got %d", withoutFold.FoldedTotal)
	}

	withFold := New("<test>", src, Options{RunSimplify: true}).Run()
	if withFold.FoldedTotal == 0 {
		t.Error("expected at least one fold with RunSimplify set")
	}
}

func TestRunPanicsOnSecondCall(t *testing.T) {
	sess := New("<test>", "default { state_entry() { } }", Options{})
	sess.Run()

	defer func() {
		if recover() == nil {
			t.Fatal("expected a second Run call to panic")
		}
	}()
	sess.Run()
}

func TestReassignedVariableIsNotFoldedAsConstant(t *testing.T) {
	// x is reassigned after its initializer, so its "constant" must stop
	// being usable: y may not be folded to 5 from a stale read of x.
	src := `
integer f() {
    integer x = 5;
    x = 10;
    integer y = x;
    return y;
}

default {
    state_entry() {
    }
}
`
	result := New("<test>", src, Options{RunSimplify: true}).Run()
	if !result.Log.Sane() {
		for _, d := range result.Log.Entries() {
			t.Errorf("unexpected diagnostic: %s", d.String())
		}
	}

	fn := result.Script.Items[0].(*ast.GlobalStorage).Function
	xDecl := fn.Body.Statements[0].(*ast.Declaration)
	if xDecl.Symbol.Assignments == 0 {
		t.Fatalf("x.Assignments = 0, want > 0 after `x = 10;`")
	}

	yDecl := fn.Body.Statements[2].(*ast.Declaration)
	if yDecl.Init.ConstantValue() != nil {
		t.Errorf("y's initializer folded to %v, want non-constant since x was reassigned", yDecl.Init.ConstantValue())
	}
	if _, folded := yDecl.Init.(*ast.ConstantExpression); folded {
		t.Errorf("y's initializer was simplified away to a constant literal, want it left as a read of x")
	}
}

func TestRunProducesBytecodeEvenWithErrors(t *testing.T) {
	src := `
integer counter;
integer bad = counter + 1;

default {
    state_entry() {
    }
}
`
	result := New("<test>", src, Options{}).Run()

	if result.Log.Sane() {
		t.Fatal("expected this script to be unsound")
	}
	if result.Program == nil {
		t.Error("expected bytecode to still be produced alongside the errors")
	}
}
