package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Paintersrp/rnote/internal/logging"
	"github.com/Paintersrp/rnote/internal/remote"
)

// Finder is the one remote operation Fetch needs.
type Finder interface {
	FindNotesMetadata(
		ctx context.Context,
		filter remote.NoteFilter,
		offset, limit int,
		spec remote.ResultSpec,
	) (*remote.NotesPage, error)
}

// Fetch collects up to req.Count note summaries, calling finder as many times
// as the server's page cap requires. The result holds the notes of every page
// in fetch order and the last total the server reported.
//
// An empty page ends the loop. Errors are returned as is, without retries and
// without the partial result.
func Fetch(ctx context.Context, finder Finder, req Request) (*remote.NotesPage, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	logger := logging.FromContext(ctx)
	if req.Filter.Order == "" {
		req.Filter.Order = remote.OrderRelevance
	}

	agg := &remote.NotesPage{Notes: []remote.NoteSummary{}}

	page, err := fetchPage(ctx, logger, finder, req, 0, req.Count)
	if err != nil {
		return nil, err
	}
	agg.TotalNotes = page.TotalNotes
	agg.Notes = appendCapped(agg.Notes, page.Notes, req.Count)

	remaining := max(req.Count-len(agg.Notes), 0)
	if len(page.Notes) == 0 {
		remaining = 0
	}

	for agg.TotalNotes > len(agg.Notes) && remaining > 0 {
		page, err := fetchPage(ctx, logger, finder, req, len(agg.Notes), remaining)
		if err != nil {
			return nil, err
		}
		agg.TotalNotes = page.TotalNotes

		if len(page.Notes) == 0 {
			break
		}

		before := len(agg.Notes)
		agg.Notes = appendCapped(agg.Notes, page.Notes, req.Count)
		remaining = max(remaining-(len(agg.Notes)-before), 0)
	}

	return agg, nil
}

func fetchPage(
	ctx context.Context,
	logger *slog.Logger,
	finder Finder,
	req Request,
	offset, limit int,
) (*remote.NotesPage, error) {
	page, err := finder.FindNotesMetadata(ctx, req.Filter, offset, limit, req.Spec)
	if err != nil {
		return nil, fmt.Errorf("searching notes at offset %d: %w", offset, err)
	}
	if page == nil {
		page = &remote.NotesPage{}
	}

	logger.Debug("fetched notes page",
		slog.Int("offset", offset),
		slog.Int("limit", limit),
		slog.Int("returned", len(page.Notes)),
		slog.Int("total", page.TotalNotes),
	)

	return page, nil
}

// appendCapped appends src to dst without letting dst grow past limit.
func appendCapped(dst, src []remote.NoteSummary, limit int) []remote.NoteSummary {
	room := limit - len(dst)
	if room <= 0 {
		return dst
	}
	if len(src) > room {
		src = src[:room]
	}
	return append(dst, src...)
}
