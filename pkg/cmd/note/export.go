package note

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/rnote/internal/config"
	"github.com/Paintersrp/rnote/internal/export"
	"github.com/Paintersrp/rnote/internal/state"
)

// newUploader is replaced in tests.
var newUploader = func(ctx context.Context, cfg config.ExportConfig) (export.Uploader, error) {
	u, err := export.NewS3Uploader(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func newCmdExport(s *state.State) *cobra.Command {
	var (
		opts searchOptions
		out  string
		dest string
	)

	c := &cobra.Command{
		Use:   "export [query]",
		Short: "Export search results as JSON",
		Long: heredoc.Doc(`
			Run a search and write the matching note summaries as JSON to a file,
			stdout, or an S3 bucket. S3 settings come from the profile's export.*
			keys and the usual AWS environment.
		`),
		Example: heredoc.Doc(`
			rnote note export --tag work --out work.json
			rnote note export --count 1000 --s3 s3://backups/notes/
		`),
		RunE: func(c *cobra.Command, args []string) error {
			if out != "" && dest != "" {
				return fmt.Errorf("--out and --s3 cannot be used together")
			}

			query := strings.Join(args, " ")
			page, err := fetch(c, s, query, opts)
			if err != nil {
				return err
			}
			doc := export.NewDocument(query, page, time.Now())

			switch {
			case dest != "":
				ctx := s.Context(c.Context())
				u, err := newUploader(ctx, s.Settings().Export)
				if err != nil {
					return err
				}
				location, err := export.Upload(ctx, u, dest, doc)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.OutOrStdout(), "Exported %d notes to %s\n", len(doc.Notes), location)
			case out != "" && out != "-":
				if err := export.WriteFile(out, doc); err != nil {
					return err
				}
				fmt.Fprintf(c.OutOrStdout(), "Exported %d notes to %s\n", len(doc.Notes), out)
			default:
				return export.Encode(c.OutOrStdout(), doc)
			}

			return nil
		},
	}

	addSearchFlags(c, &opts)
	c.Flags().StringVarP(&out, "out", "o", "", "write to this file (- for stdout)")
	c.Flags().StringVar(&dest, "s3", "", "upload to an s3://bucket/key location")

	return c
}
