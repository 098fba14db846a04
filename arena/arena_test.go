package arena

import "testing"

func TestHandleAcquireRestoresPreviousArena(t *testing.T) {
	process := New("process")
	handle := NewHandle(process)

	compilation := New("compilation")
	restore := handle.Acquire(compilation)
	if handle.Current() != compilation {
		t.Fatalf("Current() = %v, want compilation arena", handle.Current())
	}

	restore()
	if handle.Current() != process {
		t.Errorf("Current() after restore = %v, want process arena", handle.Current())
	}
}

func TestHandleAcquireNestsCorrectly(t *testing.T) {
	a := New("a")
	handle := NewHandle(a)

	b := New("b")
	restoreB := handle.Acquire(b)

	c := New("c")
	restoreC := handle.Acquire(c)
	if handle.Current() != c {
		t.Fatalf("Current() = %v, want c", handle.Current())
	}

	restoreC()
	if handle.Current() != b {
		t.Fatalf("Current() after inner restore = %v, want b", handle.Current())
	}

	restoreB()
	if handle.Current() != a {
		t.Errorf("Current() after outer restore = %v, want a", handle.Current())
	}
}

func TestTrackIncrementsLen(t *testing.T) {
	a := New("a")
	if a.Len() != 0 {
		t.Fatalf("fresh arena Len() = %d, want 0", a.Len())
	}
	a.Track()
	a.Track()
	if a.Len() != 2 {
		t.Errorf("Len() = %d, want 2", a.Len())
	}
}
