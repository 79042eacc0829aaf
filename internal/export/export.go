// Package export writes search results to a local file or an S3 bucket.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Paintersrp/rnote/internal/remote"
)

// Document is the JSON shape of an export.
type Document struct {
	ExportedAt time.Time            `json:"exported_at"`
	Query      string               `json:"query,omitempty"`
	TotalNotes int                  `json:"total_notes"`
	Notes      []remote.NoteSummary `json:"notes"`
}

func NewDocument(query string, page *remote.NotesPage, now time.Time) Document {
	doc := Document{ExportedAt: now.UTC(), Query: query, Notes: []remote.NoteSummary{}}
	if page != nil {
		doc.TotalNotes = page.TotalNotes
		if page.Notes != nil {
			doc.Notes = page.Notes
		}
	}
	return doc
}

func Encode(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	return nil
}

func WriteFile(path string, doc Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}

	if err := Encode(f, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Uploader stores one object.
type Uploader interface {
	Upload(ctx context.Context, bucket, key, contentType string, body io.Reader) error
}

// Upload encodes doc and sends it to dest, an s3://bucket/key URL. A key
// that is empty or ends in "/" gets a generated file name. The final
// s3:// location is returned.
func Upload(ctx context.Context, u Uploader, dest string, doc Document) (string, error) {
	bucket, key, err := ParseS3URL(dest)
	if err != nil {
		return "", err
	}
	if key == "" || strings.HasSuffix(key, "/") {
		key += fmt.Sprintf("rnote-export-%s.json", uuid.NewString()[:8])
	}

	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return "", err
	}

	if err := u.Upload(ctx, bucket, key, "application/json", &buf); err != nil {
		return "", fmt.Errorf("failed to upload export to s3://%s/%s: %w", bucket, key, err)
	}

	return "s3://" + bucket + "/" + key, nil
}

// ParseS3URL splits s3://bucket/key into its parts.
func ParseS3URL(raw string) (bucket, key string, err error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", "", fmt.Errorf("invalid s3 url %q: %w", raw, err)
	}
	if u.Scheme != "s3" {
		return "", "", fmt.Errorf("invalid s3 url %q: scheme must be s3", raw)
	}
	if u.Host == "" {
		return "", "", fmt.Errorf("invalid s3 url %q: missing bucket", raw)
	}

	return u.Host, strings.TrimPrefix(u.Path, "/"), nil
}
