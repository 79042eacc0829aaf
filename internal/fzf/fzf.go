package fzf

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/Paintersrp/rnote/internal/remote"
)

var ErrNoSelection = errors.New("no note selected")

// NoteFinder lets the user pick one note from search results.
type NoteFinder struct {
	Header string
	// Names resolves notebook and tag guids for display. Unknown guids are
	// shown as is.
	Names map[string]string

	notes []remote.NoteSummary
	find  func(items any, itemFunc func(int) string, opts ...fuzzyfinder.Option) (int, error)
}

func NewNoteFinder(notes []remote.NoteSummary, header string, names map[string]string) *NoteFinder {
	return &NoteFinder{
		Header: header,
		Names:  names,
		notes:  notes,
		find:   fuzzyfinder.Find,
	}
}

// Run opens the finder with an optional starting query and returns the
// chosen note.
func (f *NoteFinder) Run(query string) (*remote.NoteSummary, error) {
	if len(f.notes) == 0 {
		return nil, fmt.Errorf("no notes to choose from")
	}

	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.preview),
	}
	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}
	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	idx, err := f.find(f.notes, func(i int) string {
		return f.Display(f.notes[i])
	}, options...)
	if errors.Is(err, fuzzyfinder.ErrAbort) {
		return nil, ErrNoSelection
	}
	if err != nil {
		return nil, fmt.Errorf("fuzzy finder: %w", err)
	}
	if idx < 0 || idx >= len(f.notes) {
		return nil, ErrNoSelection
	}

	return &f.notes[idx], nil
}

// Display formats a note as one finder row.
func (f *NoteFinder) Display(n remote.NoteSummary) string {
	title := n.Title
	if title == "" {
		title = n.GUID
	}

	tags := f.names(n.TagGUIDs)
	if len(tags) == 0 {
		return fmt.Sprintf("%s [No tags] ", title)
	}
	return fmt.Sprintf("%s [Tags: %s] ", title, strings.Join(tags, ", "))
}

func (f *NoteFinder) preview(i, w, h int) string {
	if i < 0 || i >= len(f.notes) {
		return ""
	}
	n := f.notes[i]

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", n.Title)
	fmt.Fprintf(&b, "guid:     %s\n", n.GUID)
	fmt.Fprintf(&b, "created:  %s\n", n.Created.Local().Format(time.DateTime))
	fmt.Fprintf(&b, "updated:  %s\n", n.Updated.Local().Format(time.DateTime))
	if n.NotebookGUID != "" {
		fmt.Fprintf(&b, "notebook: %s\n", f.name(n.NotebookGUID))
	}
	if tags := f.names(n.TagGUIDs); len(tags) > 0 {
		fmt.Fprintf(&b, "tags:     %s\n", strings.Join(tags, ", "))
	}
	if len(n.Resources) > 0 {
		fmt.Fprintf(&b, "files:    %d\n", len(n.Resources))
	}
	return b.String()
}

func (f *NoteFinder) name(guid string) string {
	if name, ok := f.Names[guid]; ok && name != "" {
		return name
	}
	return guid
}

func (f *NoteFinder) names(guids []string) []string {
	out := make([]string, 0, len(guids))
	for _, g := range guids {
		out = append(out, f.name(g))
	}
	return out
}
