package search_test

import (
	"testing"
	"time"

	"github.com/Paintersrp/rnote/internal/remote"
	"github.com/Paintersrp/rnote/internal/search"
)

func TestNewFilter(t *testing.T) {
	since := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	before := time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)

	filter, err := search.NewFilter(search.FilterOptions{
		Query:        "  project   plan ",
		NotebookGUID: " nb-1 ",
		TagGUIDs:     []string{"tag-1", " ", "tag-2"},
		Since:        since,
		Before:       before,
	})
	if err != nil {
		t.Fatalf("NewFilter returned error: %v", err)
	}

	if filter.Words != "project plan created:20240301 -created:20240415" {
		t.Fatalf("unexpected words %q", filter.Words)
	}
	if filter.Order != remote.OrderRelevance {
		t.Fatalf("expected relevance order, got %q", filter.Order)
	}
	if filter.NotebookGUID != "nb-1" {
		t.Fatalf("expected trimmed notebook guid, got %q", filter.NotebookGUID)
	}
	if len(filter.TagGUIDs) != 2 || filter.TagGUIDs[1] != "tag-2" {
		t.Fatalf("unexpected tag guids %v", filter.TagGUIDs)
	}
}

func TestNewFilterRejectsInvertedRange(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := search.NewFilter(search.FilterOptions{Since: day, Before: day})
	if err == nil {
		t.Fatal("expected an empty date range to be rejected")
	}
}

func TestParseDate(t *testing.T) {
	now := time.Date(2024, 5, 20, 15, 30, 0, 0, time.UTC)

	tests := map[string]struct {
		input string
		want  time.Time
	}{
		"empty":     {input: "", want: time.Time{}},
		"today":     {input: "Today", want: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)},
		"yesterday": {input: "yesterday", want: time.Date(2024, 5, 19, 0, 0, 0, 0, time.UTC)},
		"offset":    {input: "7d", want: time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC)},
		"iso":       {input: "2024-01-02", want: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		"with time": {input: "2024-01-02 18:04:05", want: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := search.ParseDate(tc.input, now)
			if err != nil {
				t.Fatalf("ParseDate(%q) returned error: %v", tc.input, err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("ParseDate(%q) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}

	if _, err := search.ParseDate("not a date", now); err == nil {
		t.Fatal("expected garbage input to fail")
	}
}
