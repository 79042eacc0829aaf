package note

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/selection"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/rnote/internal/remote"
	"github.com/Paintersrp/rnote/internal/state"
	"github.com/Paintersrp/rnote/pkg/arg"
	"github.com/Paintersrp/rnote/pkg/cmd"
	"github.com/Paintersrp/rnote/pkg/flags"
	"github.com/Paintersrp/rnote/utils"
)

type createOptions struct {
	content  string
	notebook string
	tags     string
}

// chooseNotebook is replaced in tests.
var chooseNotebook = promptNotebook

func newCmdCreate(s *state.State) *cobra.Command {
	var opts createOptions

	c := &cobra.Command{
		Use:     "create [title] [tags] [content]",
		Aliases: []string{"new", "c"},
		Short:   "Create a note",
		Long: heredoc.Doc(`
			Create a note with a title and optional space separated tags. Tags that do
			not exist yet are created by the service.

			Without --notebook you are asked to pick one when running in a terminal;
			otherwise the service's default notebook is used.
		`),
		Example: heredoc.Doc(`
			rnote note create "Robotics lecture" "robotics science study-notes"
			rnote note create standup --notebook Work --paste
		`),
		Args: cobra.RangeArgs(1, 3),
		RunE: func(c *cobra.Command, args []string) error {
			return runCreate(c, s, args, opts)
		},
	}

	c.Flags().StringVar(&opts.content, "content", "", "note content")
	c.Flags().StringVar(&opts.notebook, "notebook", "", "notebook name or guid")
	c.Flags().StringVar(&opts.tags, "tags", "", "space separated tags, added to the tags argument")
	flags.AddPaste(c)

	return c
}

func runCreate(c *cobra.Command, s *state.State, args []string, opts createOptions) error {
	ctx := s.Context(c.Context())

	title, err := arg.Title(args)
	if err != nil {
		return err
	}
	tags, err := arg.Tags(args)
	if err != nil {
		return err
	}
	extra, err := utils.ValidateInput(opts.tags)
	if err != nil {
		return fmt.Errorf("error processing --tags: %w", err)
	}
	for _, t := range extra {
		tags = utils.AppendIfNotExists(tags, t)
	}

	content := opts.content
	if content == "" {
		content = arg.Content(args)
	}
	pasted, ok, err := flags.HandlePaste(c)
	if err != nil {
		return err
	}
	if ok {
		content = pasted
	}

	var notebookGUID string
	switch {
	case opts.notebook != "":
		nb, err := cmd.ResolveNotebook(ctx, s, opts.notebook)
		if err != nil {
			return err
		}
		notebookGUID = nb.GUID
	case utils.IsTerminal(c.InOrStdin()):
		nb, err := chooseNotebook(ctx, s)
		if err != nil {
			return err
		}
		if nb != nil {
			notebookGUID = nb.GUID
		}
	}

	client, err := s.Client()
	if err != nil {
		return err
	}

	note, err := client.CreateNote(ctx, remote.NewNote{
		Title:        title,
		Content:      content,
		NotebookGUID: notebookGUID,
		TagNames:     tags,
	})
	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	s.Forget()

	fmt.Fprintf(c.OutOrStdout(), "Created note %q (%s)\n", note.Title, note.GUID)
	return nil
}

func promptNotebook(ctx context.Context, s *state.State) (*remote.Notebook, error) {
	notebooks, err := s.Notebooks(ctx)
	if err != nil {
		return nil, err
	}
	if len(notebooks) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(notebooks))
	for _, nb := range notebooks {
		names = append(names, nb.Name)
	}

	sel := selection.New("Which notebook should the note go in?", names)
	sel.PageSize = 10
	choice, err := sel.RunPrompt()
	if err != nil {
		return nil, err
	}

	for i := range notebooks {
		if notebooks[i].Name == choice {
			return &notebooks[i], nil
		}
	}
	return nil, nil
}
