package linebuffer

import "testing"

func TestNewLine(t *testing.T) {
	l := NewLine("hello")

	if l.Len() != 5 {
		t.Errorf("expected length 5, got %d", l.Len())
	}
	if l.String() != "hello" {
		t.Errorf("expected %q, got %q", "hello", l.String())
	}
	if l.Cap() < minLineCapacity {
		t.Errorf("expected capacity >= %d, got %d", minLineCapacity, l.Cap())
	}
}

func TestZeroLine(t *testing.T) {
	var l Line
	if l.Len() != 0 || l.String() != "" {
		t.Errorf("zero line should be empty, got %q", l.String())
	}
}

func TestLineGrowDoubles(t *testing.T) {
	var l Line
	caps := []int{}
	last := -1
	for i := 0; i < 100; i++ {
		l.insert(l.Len(), 'a')
		if l.Cap() != last {
			last = l.Cap()
			caps = append(caps, last)
		}
	}

	want := []int{8, 16, 32, 64, 128}
	if len(caps) != len(want) {
		t.Fatalf("expected capacities %v, got %v", want, caps)
	}
	for i := range want {
		if caps[i] != want[i] {
			t.Errorf("expected capacities %v, got %v", want, caps)
			break
		}
	}
}

func TestLineSplitAt(t *testing.T) {
	l := NewLine("abcdef")
	right := l.splitAt(2)

	if l.String() != "ab" {
		t.Errorf("left: expected %q, got %q", "ab", l.String())
	}
	if right.String() != "cdef" {
		t.Errorf("right: expected %q, got %q", "cdef", right.String())
	}

	// The halves must not share storage.
	l.insert(2, 'Z')
	if right.String() != "cdef" {
		t.Errorf("right changed after left insert: %q", right.String())
	}
}

func TestLineAppend(t *testing.T) {
	l := NewLine("ab")
	other := NewLine("cd")
	l.appendLine(&other)

	if l.String() != "abcd" {
		t.Errorf("expected %q, got %q", "abcd", l.String())
	}
	if other.String() != "cd" {
		t.Errorf("source changed: %q", other.String())
	}
}
