package search

import (
	"fmt"
	"time"

	"github.com/Paintersrp/rnote/internal/remote"
)

// Request describes one paged metadata search.
type Request struct {
	// Filter selects the notes to match. An empty Order defaults to relevance.
	Filter remote.NoteFilter
	// Spec names the summary fields the server should populate.
	Spec remote.ResultSpec
	// Count is the number of notes wanted. Zero is valid and fetches nothing.
	Count int
}

func (r Request) Validate() error {
	if r.Count < 0 {
		return fmt.Errorf("count must be zero or greater, got %d", r.Count)
	}
	return nil
}

// FilterOptions are the user-facing search inputs NewFilter turns into a
// NoteFilter.
type FilterOptions struct {
	// Query is free text passed through as search words.
	Query string
	// NotebookGUID restricts matches to one notebook.
	NotebookGUID string
	// TagGUIDs lists tags that must all be present on a note.
	TagGUIDs []string
	// Since keeps notes created on or after this day. Zero means unbounded.
	Since time.Time
	// Before keeps notes created before this day. Zero means unbounded.
	Before time.Time
}
