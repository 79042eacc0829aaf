package search

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/Paintersrp/rnote/internal/remote"
)

const createdLayout = "20060102"

// NewFilter builds the relevance-ordered filter for opts. Date bounds become
// created: and -created: terms appended to the query words.
func NewFilter(opts FilterOptions) (remote.NoteFilter, error) {
	if !opts.Since.IsZero() && !opts.Before.IsZero() && !opts.Since.Before(opts.Before) {
		return remote.NoteFilter{}, fmt.Errorf(
			"--since (%s) must be earlier than --before (%s)",
			opts.Since.Format(time.DateOnly),
			opts.Before.Format(time.DateOnly),
		)
	}

	terms := strings.Fields(opts.Query)
	if !opts.Since.IsZero() {
		terms = append(terms, "created:"+opts.Since.Format(createdLayout))
	}
	if !opts.Before.IsZero() {
		terms = append(terms, "-created:"+opts.Before.Format(createdLayout))
	}

	var tags []string
	for _, guid := range opts.TagGUIDs {
		if guid = strings.TrimSpace(guid); guid != "" {
			tags = append(tags, guid)
		}
	}

	return remote.NoteFilter{
		Words:        strings.Join(terms, " "),
		Order:        remote.OrderRelevance,
		NotebookGUID: strings.TrimSpace(opts.NotebookGUID),
		TagGUIDs:     tags,
	}, nil
}

// ParseDate accepts "today", "yesterday", a day offset such as "7d", or any
// layout dateparse understands. Times are truncated to the start of the day
// in now's location.
func ParseDate(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}

	today := startOfDay(now)
	switch strings.ToLower(value) {
	case "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if days, ok := strings.CutSuffix(value, "d"); ok {
		if n, err := strconv.Atoi(days); err == nil {
			if n < 0 {
				return time.Time{}, fmt.Errorf("day offset must be positive, got %q", value)
			}
			return today.AddDate(0, 0, -n), nil
		}
	}

	t, err := dateparse.ParseIn(value, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q: %w", value, err)
	}
	return startOfDay(t), nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
