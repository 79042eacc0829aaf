package tree_test

import (
	"reflect"
	"testing"

	"github.com/Paintersrp/rnote/internal/tree"
)

func children(t *testing.T, f *tree.Forest, id string) []string {
	t.Helper()
	n, ok := f.Node(id)
	if !ok {
		t.Fatalf("expected node %q to exist", id)
	}
	return n.Children
}

func TestBuildSiblingOrder(t *testing.T) {
	f := tree.Build([]tree.Record{
		{ID: "p", Name: "Parent"},
		{ID: "c1", Name: "zeta", ParentID: "p"},
		{ID: "c2", Name: "alpha", ParentID: "p"},
		{ID: "c3", Name: "mid", ParentID: "p"},
	})

	if got := children(t, f, "p"); !reflect.DeepEqual(got, []string{"c1", "c2", "c3"}) {
		t.Fatalf("expected children in record order, got %v", got)
	}
	if got := children(t, f, tree.RootID); !reflect.DeepEqual(got, []string{"p"}) {
		t.Fatalf("expected p as the only root, got %v", got)
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	records := []tree.Record{
		{ID: "b", Name: "B", ParentID: "a"},
		{ID: "a", Name: "A"},
		{ID: "c", Name: "C", ParentID: "a"},
		{ID: "d", Name: "D", ParentID: "gone"},
	}

	first := tree.Build(records)
	second := tree.Build(records)

	if first.Len() != second.Len() {
		t.Fatalf("expected equal sizes, got %d and %d", first.Len(), second.Len())
	}
	for _, id := range []string{tree.RootID, "a", "b", "c", "d", "gone"} {
		x, _ := first.Node(id)
		y, _ := second.Node(id)
		if !reflect.DeepEqual(x, y) {
			t.Fatalf("node %q differs between builds: %+v vs %+v", id, x, y)
		}
	}
}

func TestBuildForwardReference(t *testing.T) {
	f := tree.Build([]tree.Record{
		{ID: "child", Name: "Child", ParentID: "parent"},
		{ID: "other", Name: "Other"},
		{ID: "parent", Name: "Parent", ParentID: "grand"},
		{ID: "grand", Name: "Grand"},
	})

	if got := children(t, f, tree.RootID); !reflect.DeepEqual(got, []string{"other", "grand"}) {
		t.Fatalf("expected placeholders to move under their real parents, got roots %v", got)
	}
	if got := children(t, f, "grand"); !reflect.DeepEqual(got, []string{"parent"}) {
		t.Fatalf("unexpected grand children %v", got)
	}
	if got := children(t, f, "parent"); !reflect.DeepEqual(got, []string{"child"}) {
		t.Fatalf("unexpected parent children %v", got)
	}

	parent, _ := f.Node("parent")
	if parent.Placeholder() || parent.Name != "Parent" {
		t.Fatalf("expected parent record to fill in the placeholder, got %+v", parent)
	}
	if len(f.Detached()) != 0 {
		t.Fatalf("expected every node reachable, got detached %v", f.Detached())
	}
}

func TestBuildDanglingParent(t *testing.T) {
	f := tree.Build([]tree.Record{{ID: "x", Name: "X", ParentID: "missing"}})

	missing, ok := f.Node("missing")
	if !ok {
		t.Fatal("expected a placeholder for the missing parent")
	}
	if !missing.Placeholder() || missing.Name != "" {
		t.Fatalf("expected an unnamed placeholder, got %+v", missing)
	}
	if got := children(t, f, tree.RootID); !reflect.DeepEqual(got, []string{"missing"}) {
		t.Fatalf("expected the placeholder as root, got %v", got)
	}
	if got := children(t, f, "missing"); !reflect.DeepEqual(got, []string{"x"}) {
		t.Fatalf("expected x under the placeholder, got %v", got)
	}

	got := tree.Lines(f, tree.Options{})
	want := []string{"", "└───┬ X"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestBuildCycleIsDetached(t *testing.T) {
	f := tree.Build([]tree.Record{
		{ID: "root", Name: "Root"},
		{ID: "a", Name: "A", ParentID: "b"},
		{ID: "b", Name: "B", ParentID: "a"},
		{ID: "self", Name: "Self", ParentID: "self"},
	})

	if got := f.Detached(); !reflect.DeepEqual(got, []string{"a", "b", "self"}) {
		t.Fatalf("expected the cycles to be detached, got %v", got)
	}

	if got := tree.Lines(f, tree.Options{}); !reflect.DeepEqual(got, []string{"Root"}) {
		t.Fatalf("expected cycles to be omitted from output, got %q", got)
	}
}

func TestBuildSkipsEmptyIDs(t *testing.T) {
	f := tree.Build([]tree.Record{{ID: "", Name: "nothing"}, {ID: "a", Name: "A"}})

	if f.Len() != 1 {
		t.Fatalf("expected one node, got %d", f.Len())
	}
}

func TestSortRecords(t *testing.T) {
	records := []tree.Record{
		{ID: "1", Name: "beta"},
		{ID: "2", Name: "Alpha"},
		{ID: "3", Name: "alpha"},
		{ID: "4", Name: "Gamma"},
	}

	tree.SortRecords(records)

	var ids []string
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	if !reflect.DeepEqual(ids, []string{"2", "3", "1", "4"}) {
		t.Fatalf("unexpected order %v", ids)
	}
}
