package fzf

import (
	"errors"
	"strings"
	"testing"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/Paintersrp/rnote/internal/remote"
)

func testNotes() []remote.NoteSummary {
	return []remote.NoteSummary{
		{GUID: "n1", Title: "Standup", TagGUIDs: []string{"t1", "t2"}, NotebookGUID: "nb"},
		{GUID: "n2", Title: ""},
	}
}

func TestDisplay(t *testing.T) {
	f := NewNoteFinder(testNotes(), "", map[string]string{"t1": "work"})

	if got := f.Display(testNotes()[0]); got != "Standup [Tags: work, t2] " {
		t.Fatalf("unexpected display %q", got)
	}
	if got := f.Display(testNotes()[1]); got != "n2 [No tags] " {
		t.Fatalf("unexpected display %q", got)
	}
}

func TestPreview(t *testing.T) {
	f := NewNoteFinder(testNotes(), "", map[string]string{"nb": "Journal"})

	got := f.preview(0, 80, 20)
	if !strings.Contains(got, "notebook: Journal") || !strings.Contains(got, "guid:     n1") {
		t.Fatalf("unexpected preview %q", got)
	}
	if f.preview(-1, 80, 20) != "" {
		t.Fatal("expected empty preview without a selection")
	}
}

func TestRunReturnsSelection(t *testing.T) {
	f := NewNoteFinder(testNotes(), "Pick", nil)
	f.find = func(items any, itemFunc func(int) string, opts ...fuzzyfinder.Option) (int, error) {
		if itemFunc(0) != "Standup [Tags: t1, t2] " {
			t.Fatalf("unexpected row %q", itemFunc(0))
		}
		return 1, nil
	}

	n, err := f.Run("stand")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if n.GUID != "n2" {
		t.Fatalf("expected n2, got %q", n.GUID)
	}
}

func TestRunAbort(t *testing.T) {
	f := NewNoteFinder(testNotes(), "", nil)
	f.find = func(any, func(int) string, ...fuzzyfinder.Option) (int, error) {
		return -1, fuzzyfinder.ErrAbort
	}

	if _, err := f.Run(""); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}

	if _, err := NewNoteFinder(nil, "", nil).Run(""); err == nil {
		t.Fatal("expected an empty list to fail")
	}
}
