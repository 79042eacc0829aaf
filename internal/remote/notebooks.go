package remote

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) ListNotebooks(ctx context.Context) ([]Notebook, error) {
	var notebooks []Notebook
	if err := c.do(ctx, call{method: http.MethodGet, path: "/v1/notebooks", out: &notebooks}); err != nil {
		return nil, err
	}
	return notebooks, nil
}

func (c *Client) CreateNotebook(ctx context.Context, nb NewNotebook) (*Notebook, error) {
	if err := validate.Struct(nb); err != nil {
		return nil, fmt.Errorf("invalid notebook: %w", err)
	}

	var notebook Notebook
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/v1/notebooks",
		body:   nb,
		out:    &notebook,
		expect: http.StatusCreated,
	})
	if err != nil {
		return nil, err
	}

	return &notebook, nil
}
