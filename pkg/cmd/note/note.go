package note

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/rnote/internal/remote"
	"github.com/Paintersrp/rnote/internal/search"
	"github.com/Paintersrp/rnote/internal/state"
	"github.com/Paintersrp/rnote/pkg/cmd"
	"github.com/Paintersrp/rnote/pkg/flags"
)

func NewCmdNote(s *state.State) *cobra.Command {
	c := &cobra.Command{
		Use:     "note",
		Aliases: []string{"n", "notes"},
		Short:   "Create, search and inspect notes.",
	}

	c.AddCommand(
		newCmdCreate(s),
		newCmdSearch(s),
		newCmdShow(s),
		newCmdExport(s),
	)

	return c
}

// searchOptions are the filter flags shared by search, show and export.
type searchOptions struct {
	notebook string
	tags     []string
	since    string
	before   string
}

func addSearchFlags(c *cobra.Command, opts *searchOptions) {
	flags.AddCount(c, "Number of notes to fetch (defaults to the profile's default_count)")
	c.Flags().StringVar(&opts.notebook, "notebook", "", "restrict to a notebook (name or guid)")
	c.Flags().StringSliceVarP(&opts.tags, "tag", "t", nil, "require a tag (name or guid); repeatable")
	c.Flags().StringVar(&opts.since, "since", "", "only notes created on or after this date (e.g. 2024-01-31, 7d, yesterday)")
	c.Flags().StringVar(&opts.before, "before", "", "only notes created before this date")
}

// fetch resolves the filter flags and runs a paged search for query.
func fetch(c *cobra.Command, s *state.State, query string, opts searchOptions) (*remote.NotesPage, error) {
	ctx := s.Context(c.Context())

	count, err := flags.HandleCount(c, s.Settings().DefaultCount)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	fo := search.FilterOptions{Query: query}
	if fo.Since, err = search.ParseDate(opts.since, now); err != nil {
		return nil, fmt.Errorf("--since: %w", err)
	}
	if fo.Before, err = search.ParseDate(opts.before, now); err != nil {
		return nil, fmt.Errorf("--before: %w", err)
	}

	if opts.notebook != "" {
		nb, err := cmd.ResolveNotebook(ctx, s, opts.notebook)
		if err != nil {
			return nil, err
		}
		fo.NotebookGUID = nb.GUID
	}
	if len(opts.tags) > 0 {
		if fo.TagGUIDs, err = cmd.ResolveTagGUIDs(ctx, s, opts.tags); err != nil {
			return nil, err
		}
	}

	filter, err := search.NewFilter(fo)
	if err != nil {
		return nil, err
	}

	client, err := s.Client()
	if err != nil {
		return nil, err
	}

	return search.Fetch(ctx, client, search.Request{
		Filter: filter,
		Spec:   remote.FullSpec(),
		Count:  count,
	})
}

func printSummary(w io.Writer, n remote.NoteSummary, names map[string]string) {
	title := n.Title
	if title == "" {
		title = "(untitled)"
	}

	fmt.Fprintf(w, "%s  %s  %s", n.GUID, n.Updated.Local().Format(time.DateOnly), title)
	if len(n.TagGUIDs) > 0 {
		fmt.Fprintf(w, "  [%s]", strings.Join(lookup(names, n.TagGUIDs), ", "))
	}
	fmt.Fprintln(w)
}

func lookup(names map[string]string, guids []string) []string {
	out := make([]string, 0, len(guids))
	for _, g := range guids {
		if name, ok := names[g]; ok && name != "" {
			out = append(out, name)
		} else {
			out = append(out, g)
		}
	}
	return out
}
