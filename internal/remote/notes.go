package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// FindNotesMetadata returns one page of note summaries matching filter. The
// server may return fewer than limit notes even when more match.
func (c *Client) FindNotesMetadata(
	ctx context.Context,
	filter NoteFilter,
	offset, limit int,
	spec ResultSpec,
) (*NotesPage, error) {
	if offset < 0 || limit < 0 {
		return nil, fmt.Errorf("offset and limit must be non-negative, got %d and %d", offset, limit)
	}
	if filter.Order == "" {
		filter.Order = OrderRelevance
	}

	var page NotesPage
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/v1/notes/search",
		body: searchRequest{
			Filter:     filter,
			Offset:     offset,
			Limit:      limit,
			ResultSpec: spec,
		},
		out: &page,
	})
	if err != nil {
		return nil, err
	}

	return &page, nil
}

func (c *Client) GetNote(ctx context.Context, guid string, withContent bool) (*Note, error) {
	if guid == "" {
		return nil, fmt.Errorf("note guid is required")
	}

	query := url.Values{}
	if withContent {
		query.Set("with_content", "true")
	}

	var note Note
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/v1/notes/" + url.PathEscape(guid),
		query:  query,
		out:    &note,
	})
	if err != nil {
		return nil, err
	}

	return &note, nil
}

func (c *Client) CreateNote(ctx context.Context, n NewNote) (*Note, error) {
	if err := validate.Struct(n); err != nil {
		return nil, fmt.Errorf("invalid note: %w", err)
	}

	var note Note
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/v1/notes",
		body:   n,
		out:    &note,
		expect: http.StatusCreated,
	})
	if err != nil {
		return nil, err
	}

	return &note, nil
}

// FindNoteCounts returns per-tag and per-notebook note counts for the notes
// matching filter.
func (c *Client) FindNoteCounts(ctx context.Context, filter NoteFilter) (*NoteCounts, error) {
	query := url.Values{}
	if filter.Words != "" || filter.NotebookGUID != "" || len(filter.TagGUIDs) > 0 {
		raw, err := json.Marshal(filter)
		if err != nil {
			return nil, fmt.Errorf("failed to encode filter: %w", err)
		}
		query.Set("filter", string(raw))
	}

	var counts NoteCounts
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/v1/notes/counts",
		query:  query,
		out:    &counts,
	})
	if err != nil {
		return nil, err
	}

	if counts.ByTag == nil {
		counts.ByTag = map[string]int{}
	}
	if counts.ByNotebook == nil {
		counts.ByNotebook = map[string]int{}
	}

	return &counts, nil
}
