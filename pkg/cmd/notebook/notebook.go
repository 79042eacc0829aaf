package notebook

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/rnote/internal/remote"
	"github.com/Paintersrp/rnote/internal/state"
)

func NewCmdNotebook(s *state.State) *cobra.Command {
	c := &cobra.Command{
		Use:     "notebook",
		Aliases: []string{"nb", "notebooks"},
		Short:   "List and create notebooks",
	}

	c.AddCommand(newCmdList(s), newCmdCreate(s))

	return c
}

func newCmdList(s *state.State) *cobra.Command {
	var withCounts bool

	c := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List notebooks",
		Example: heredoc.Doc(`
			rnote notebook list
			rnote notebook list --count
		`),
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := s.Context(c.Context())

			notebooks, err := s.Notebooks(ctx)
			if err != nil {
				return err
			}
			if len(notebooks) == 0 {
				fmt.Fprintln(c.OutOrStdout(), "No notebooks found")
				return nil
			}

			var counts map[string]int
			if withCounts {
				nc, err := s.NoteCounts(ctx)
				if err != nil {
					return err
				}
				counts = nc.ByNotebook
			}

			sorted := append([]remote.Notebook(nil), notebooks...)
			sort.SliceStable(sorted, func(i, j int) bool {
				if sorted[i].Stack != sorted[j].Stack {
					return strings.ToLower(sorted[i].Stack) < strings.ToLower(sorted[j].Stack)
				}
				return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
			})

			out := c.OutOrStdout()
			for _, nb := range sorted {
				marker := " "
				if nb.Default {
					marker = "*"
				}
				name := nb.Name
				if nb.Stack != "" {
					name = nb.Stack + "/" + nb.Name
				}
				if counts != nil {
					fmt.Fprintf(out, "%s %s  %s (%d)\n", marker, nb.GUID, name, counts[nb.GUID])
				} else {
					fmt.Fprintf(out, "%s %s  %s\n", marker, nb.GUID, name)
				}
			}

			return nil
		},
	}

	c.Flags().BoolVar(&withCounts, "count", false, "show the number of notes in each notebook")

	return c
}

func newCmdCreate(s *state.State) *cobra.Command {
	var stack string

	c := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a notebook",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := s.Context(c.Context())

			client, err := s.Client()
			if err != nil {
				return err
			}
			nb, err := client.CreateNotebook(ctx, remote.NewNotebook{
				Name:  strings.TrimSpace(args[0]),
				Stack: strings.TrimSpace(stack),
			})
			if err != nil {
				return fmt.Errorf("failed to create notebook: %w", err)
			}
			s.Forget()

			fmt.Fprintf(c.OutOrStdout(), "Created notebook %q (%s)\n", nb.Name, nb.GUID)
			return nil
		},
	}

	c.Flags().StringVar(&stack, "stack", "", "stack to file the notebook under")

	return c
}
