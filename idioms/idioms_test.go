package idioms

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEvenSquares(t *testing.T) {
	got := EvenSquares([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	want := []int{0, 4, 16, 36, 64}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("EvenSquares mismatch (-want +got):\n%s", diff)
	}
}

func TestInvert(t *testing.T) {
	got := Invert(map[string]int{"a": 1, "b": 2, "c": 3})
	want := map[int]string{1: "a", 2: "b", 3: "c"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Invert mismatch (-want +got):\n%s", diff)
	}
}

func TestDuplicateIndexes(t *testing.T) {
	got := DuplicateIndexes([]string{"a", "b", "c", "b", "a", "d", "a"})
	want := map[string][]int{
		"a": {0, 4, 6},
		"b": {1, 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DuplicateIndexes mismatch (-want +got):\n%s", diff)
	}
}

func TestTranspose(t *testing.T) {
	got := Transpose([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	want := [][]int{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Transpose mismatch (-want +got):\n%s", diff)
	}

	if Transpose[int](nil) != nil {
		t.Error("Transpose(nil) should be nil")
	}
}

func TestFib(t *testing.T) {
	tests := []struct {
		n    int
		want uint64
	}{
		{-1, 0}, {0, 0}, {1, 1}, {2, 1}, {10, 55}, {50, 12586269025},
	}
	for _, tt := range tests {
		if got := Fib(tt.n); got != tt.want {
			t.Errorf("Fib(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestHasFields(t *testing.T) {
	records := []map[string]any{
		{"id": 1, "name": "a", "email": "a@x"},
		{"id": 2, "name": "b", "email": "b@x"},
	}
	if !HasFields(records, "id", "name", "email") {
		t.Error("complete records failed validation")
	}

	records[1] = map[string]any{"id": 2, "name": "b"}
	if HasFields(records, "id", "name", "email") {
		t.Error("missing email passed validation")
	}

	if !HasFields(nil, "anything") {
		t.Error("empty record set should validate")
	}
}

func TestGroupBy(t *testing.T) {
	words := []string{"ant", "bee", "cow", "bat", "cat"}
	got := GroupBy(words, func(w string) byte { return w[0] })
	want := map[byte][]string{
		'a': {"ant"},
		'b': {"bee", "bat"},
		'c': {"cow", "cat"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GroupBy mismatch (-want +got):\n%s", diff)
	}
}

func TestTopWords(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog the fox"
	got := TopWords(text, 3)
	want := []WordCount{{"the", 3}, {"fox", 2}, {"brown", 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TopWords mismatch (-want +got):\n%s", diff)
	}

	if got := TopWords("a b", 10); len(got) != 2 {
		t.Errorf("TopWords over-asked returned %d entries, want 2", len(got))
	}
}

func TestPathTree(t *testing.T) {
	got := PathTree([]string{"a/b/c", "a/b/d", "a/e"})
	want := map[string]any{
		"a": map[string]any{
			"b": map[string]any{
				"c": map[string]any{},
				"d": map[string]any{},
			},
			"e": map[string]any{},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PathTree mismatch (-want +got):\n%s", diff)
	}
}

func TestReadLines(t *testing.T) {
	if got := ReadLines("does/not/exist.txt"); len(got) != 0 {
		t.Errorf("missing file returned %v", got)
	}

	path := filepath.Join(t.TempDir(), "lines.txt")
	if err := os.WriteFile(path, []byte("  one \ntwo\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := ReadLines(path)
	want := []string{"one", "two"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadLines mismatch (-want +got):\n%s", diff)
	}
}
