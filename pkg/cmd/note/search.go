package note

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/rnote/internal/state"
	"github.com/Paintersrp/rnote/pkg/cmd"
)

func newCmdSearch(s *state.State) *cobra.Command {
	var opts searchOptions

	c := &cobra.Command{
		Use:     "search [query]",
		Aliases: []string{"s", "find"},
		Short:   "Search notes by relevance",
		Long: heredoc.Doc(`
			Search notes and print one line per match: guid, last update, title and tags.

			The service returns results a page at a time; search keeps asking until
			--count notes have been collected or no more match.
		`),
		Example: heredoc.Doc(`
			rnote note search standup --count 200
			rnote note search --tag work --since 7d
		`),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := s.Context(c.Context())

			page, err := fetch(c, s, strings.Join(args, " "), opts)
			if err != nil {
				return err
			}

			names, err := cmd.Names(ctx, s)
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			for _, n := range page.Notes {
				printSummary(out, n, names)
			}
			fmt.Fprintf(c.ErrOrStderr(), "%d of %d matching notes\n", len(page.Notes), page.TotalNotes)

			return nil
		},
	}

	addSearchFlags(c, &opts)

	return c
}
