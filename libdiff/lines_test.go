package libdiff

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLinesEqual(t *testing.T) {
	diffs := Lines("a\nb\n", "a\nb\n")
	if !Equal(diffs) {
		t.Errorf("identical texts differ: %v", diffs)
	}
}

func TestLines(t *testing.T) {
	from := "0 13 3,4 3 2\n1 6 6,7 0 -1\n2 3 0,0 1\n"
	to := "0 13 3,4 3 2\n1 6 6,7 0 4\n2 3 0,0 1\n"
	diffs := Lines(from, to)
	if Equal(diffs) {
		t.Fatal("expected a difference")
	}
	del, ins := Stats(diffs)
	if del != 1 || ins != 1 {
		t.Errorf("Stats() = %d, %d", del, ins)
	}
	var buf bytes.Buffer
	if err := Write(&buf, diffs, -1, false); err != nil {
		t.Fatal(err)
	}
	want := " 0 13 3,4 3 2\n-1 6 6,7 0 -1\n+1 6 6,7 0 4\n 2 3 0,0 1\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Write (-want +got):\n%s", diff)
	}
}

func TestWriteContext(t *testing.T) {
	from := "a\nb\nc\nd\ne\nf\n"
	to := "a\nb\nc\nd\ne\nF\n"
	var buf bytes.Buffer
	if err := Write(&buf, Lines(from, to), 1, false); err != nil {
		t.Fatal(err)
	}
	want := "...\n e\n-f\n+F\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Write (-want +got):\n%s", diff)
	}
}

func TestKeep(t *testing.T) {
	if diff := cmp.Diff([]int{0, 1, 2}, keep(3, -1, true, true)); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff([]int{0, -1, 4}, keep(5, 1, true, true)); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff([]int{-1, 3, 4}, keep(5, 2, false, true)); diff != "" {
		t.Error(diff)
	}
}
