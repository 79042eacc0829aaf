package remote

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) ListTags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	if err := c.do(ctx, call{method: http.MethodGet, path: "/v1/tags", out: &tags}); err != nil {
		return nil, err
	}
	return tags, nil
}

func (c *Client) CreateTag(ctx context.Context, t NewTag) (*Tag, error) {
	if err := validate.Struct(t); err != nil {
		return nil, fmt.Errorf("invalid tag: %w", err)
	}

	var tag Tag
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/v1/tags",
		body:   t,
		out:    &tag,
		expect: http.StatusCreated,
	})
	if err != nil {
		return nil, err
	}

	return &tag, nil
}
