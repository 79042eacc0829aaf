package tree_test

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/Paintersrp/rnote/internal/tree"
)

func TestRenderConnectors(t *testing.T) {
	f := tree.Build([]tree.Record{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B"},
		{ID: "c", Name: "C", ParentID: "a"},
	})

	var buf bytes.Buffer
	if err := tree.Render(&buf, f, tree.Options{}); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	want := "A\n└───┬ C\nB\n"
	if buf.String() != want {
		t.Fatalf("unexpected rendering:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestRenderIndentation(t *testing.T) {
	f := tree.Build([]tree.Record{
		{ID: "r", Name: "root"},
		{ID: "x", Name: "x", ParentID: "r"},
		{ID: "x1", Name: "x1", ParentID: "x"},
		{ID: "x1a", Name: "x1a", ParentID: "x1"},
		{ID: "x2", Name: "x2", ParentID: "x"},
		{ID: "y", Name: "y", ParentID: "r"},
		{ID: "y1", Name: "y1", ParentID: "y"},
		{ID: "y1a", Name: "y1a", ParentID: "y1"},
	})

	want := []string{
		"root",
		"├───┬ x",
		"│   ├───┬ x1",
		"│   │   └───┬ x1a",
		"│   └───┬ x2",
		"└───┬ y",
		"    └───┬ y1",
		"        └───┬ y1a",
	}
	if got := tree.Lines(f, tree.Options{}); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected lines:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderDepthOne(t *testing.T) {
	f := tree.Build([]tree.Record{
		{ID: "a", Name: "A"},
		{ID: "c", Name: "C", ParentID: "a"},
		{ID: "d", Name: "D", ParentID: "c"},
		{ID: "b", Name: "B"},
	})

	got := tree.Lines(f, tree.Options{MaxDepth: 1})
	if !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Fatalf("expected only roots, got %q", got)
	}
}

func TestRenderDepthCutoffClosesBranch(t *testing.T) {
	f := tree.Build([]tree.Record{
		{ID: "a", Name: "A"},
		{ID: "c", Name: "C", ParentID: "a"},
		{ID: "d", Name: "D", ParentID: "c"},
		{ID: "e", Name: "E", ParentID: "d"},
		{ID: "f", Name: "F", ParentID: "a"},
	})

	want := []string{
		"A",
		"├───┬ C",
		"│   └──── D",
		"└───┬ F",
	}
	if got := tree.Lines(f, tree.Options{MaxDepth: 3}); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected lines:\n%q\nwant:\n%q", got, want)
	}

	want = []string{"A", "├──── C", "└──── F"}
	if got := tree.Lines(f, tree.Options{MaxDepth: 2}); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected lines at depth 2:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderCountLabel(t *testing.T) {
	f := tree.Build([]tree.Record{
		{ID: "a", Name: "work"},
		{ID: "b", Name: "meetings", ParentID: "a"},
	})

	got := tree.Lines(f, tree.Options{Label: tree.CountLabel(map[string]int{"a": 4})})
	want := []string{"work (4)", "└───┬ meetings (0)"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWalkStopsEarly(t *testing.T) {
	f := tree.Build([]tree.Record{
		{ID: "a", Name: "A"},
		{ID: "c", Name: "C", ParentID: "a"},
		{ID: "b", Name: "B"},
	})

	var seen []int
	tree.Walk(f, tree.Options{}, func(l tree.Line) bool {
		seen = append(seen, l.Depth)
		return len(seen) < 2
	})

	if !reflect.DeepEqual(seen, []int{1, 2}) {
		t.Fatalf("expected the walk to stop after two lines, got depths %v", seen)
	}
}

func TestRenderEmptyForest(t *testing.T) {
	if got := tree.Lines(tree.Build(nil), tree.Options{}); len(got) != 0 {
		t.Fatalf("expected no lines, got %q", got)
	}
}
