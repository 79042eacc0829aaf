package note

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/rnote/internal/fzf"
	"github.com/Paintersrp/rnote/internal/remote"
	"github.com/Paintersrp/rnote/internal/state"
	"github.com/Paintersrp/rnote/pkg/cmd"
	"github.com/Paintersrp/rnote/utils"
)

var labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).Width(10)

// pickNote is replaced in tests.
var pickNote = func(notes []remote.NoteSummary, query string, names map[string]string) (*remote.NoteSummary, error) {
	return fzf.NewNoteFinder(notes, "Select a note", names).Run(query)
}

func newCmdShow(s *state.State) *cobra.Command {
	var (
		opts        searchOptions
		withContent bool
	)

	c := &cobra.Command{
		Use:     "show [guid]",
		Aliases: []string{"view", "get"},
		Short:   "Show a note's details",
		Long: heredoc.Doc(`
			Print a note's title, timestamps, notebook, tags and attachments.

			Without a guid, the search flags select candidates and a fuzzy finder
			lets you pick one.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := s.Context(c.Context())

			names, err := cmd.Names(ctx, s)
			if err != nil {
				return err
			}

			guid := ""
			if len(args) == 1 {
				guid = args[0]
			} else {
				if !utils.IsTerminal(c.InOrStdin()) {
					return fmt.Errorf("a note guid is required when not running in a terminal")
				}
				page, err := fetch(c, s, "", opts)
				if err != nil {
					return err
				}
				picked, err := pickNote(page.Notes, "", names)
				if errors.Is(err, fzf.ErrNoSelection) {
					return nil
				}
				if err != nil {
					return err
				}
				guid = picked.GUID
			}

			client, err := s.Client()
			if err != nil {
				return err
			}
			note, err := client.GetNote(ctx, guid, withContent)
			if errors.Is(err, remote.ErrNotFound) {
				return fmt.Errorf("note %q not found", guid)
			}
			if err != nil {
				return err
			}

			printNote(c.OutOrStdout(), note, names)
			return nil
		},
	}

	addSearchFlags(c, &opts)
	c.Flags().BoolVar(&withContent, "content", false, "also print the raw note content")

	return c
}

func printNote(w io.Writer, n *remote.Note, names map[string]string) {
	field := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render(label), value)
	}

	field("title", n.Title)
	field("guid", n.GUID)
	field("created", n.Created.Local().Format(time.DateTime))
	field("updated", n.Updated.Local().Format(time.DateTime))
	if n.NotebookGUID != "" {
		field("notebook", strings.Join(lookup(names, []string{n.NotebookGUID}), ""))
	}
	if len(n.TagGUIDs) > 0 {
		field("tags", strings.Join(lookup(names, n.TagGUIDs), ", "))
	}
	for _, r := range n.Resources {
		name := r.Filename
		if name == "" {
			name = r.GUID
		}
		field("file", fmt.Sprintf("%s (%s, %d bytes)", name, r.Mime, r.Size))
	}

	if n.Content != "" {
		fmt.Fprintf(w, "\n%s\n", n.Content)
	}
}
