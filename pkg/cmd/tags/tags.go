/*
Copyright © 2024 Ryan Painter paintersrp@gmail.com

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package tags

import (
	"fmt"
	"log/slog"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/rnote/internal/logging"
	"github.com/Paintersrp/rnote/internal/remote"
	"github.com/Paintersrp/rnote/internal/state"
	"github.com/Paintersrp/rnote/internal/tree"
	"github.com/Paintersrp/rnote/pkg/cmd"
	"github.com/Paintersrp/rnote/pkg/flags"
)

func NewCmdTags(s *state.State) *cobra.Command {
	c := &cobra.Command{
		Use:     "tag",
		Aliases: []string{"tags", "t"},
		Short:   "List and create tags",
	}

	c.AddCommand(
		newCmdList(s),
		newCmdCreate(s),
	)

	return c
}

func newCmdList(s *state.State) *cobra.Command {
	var withCounts bool

	c := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "tree"},
		Short:   "Print the tag hierarchy",
		Long: heredoc.Doc(`
			Print every tag as a tree, children indented below their parent and
			siblings sorted by name.

			A tag whose parent is unknown is shown below an unnamed entry so it is
			never silently dropped.
		`),
		Example: heredoc.Doc(`
			rnote tag list
			rnote tag list --depth 2 --count
		`),
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := s.Context(c.Context())

			depth, err := flags.HandleDepth(c, s.Settings().DefaultDepth)
			if err != nil {
				return err
			}

			tags, err := s.Tags(ctx)
			if err != nil {
				return err
			}

			opts := tree.Options{MaxDepth: depth}
			if withCounts {
				counts, err := s.NoteCounts(ctx)
				if err != nil {
					return err
				}
				opts.Label = tree.CountLabel(counts.ByTag)
			}

			forest := tree.Build(Records(tags))
			if detached := forest.Detached(); len(detached) > 0 {
				logging.FromContext(ctx).Warn("tags in a parent cycle are not shown",
					slog.Any("guids", detached),
				)
			}

			return tree.Render(c.OutOrStdout(), forest, opts)
		},
	}

	flags.AddDepth(c)
	c.Flags().BoolVar(&withCounts, "count", false, "show the number of notes carrying each tag")

	return c
}

// Records converts tags into tree records sorted by name.
func Records(tags []remote.Tag) []tree.Record {
	records := make([]tree.Record, 0, len(tags))
	for _, t := range tags {
		records = append(records, tree.Record{ID: t.GUID, Name: t.Name, ParentID: t.ParentGUID})
	}
	tree.SortRecords(records)
	return records
}

func newCmdCreate(s *state.State) *cobra.Command {
	var parent string

	c := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a tag",
		Example: heredoc.Doc(`
			rnote tag create robotics
			rnote tag create kinematics --parent robotics
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := s.Context(c.Context())

			nt := remote.NewTag{Name: args[0]}
			if parent != "" {
				p, err := cmd.ResolveTag(ctx, s, parent)
				if err != nil {
					return err
				}
				nt.ParentGUID = p.GUID
			}

			client, err := s.Client()
			if err != nil {
				return err
			}
			tag, err := client.CreateTag(ctx, nt)
			if err != nil {
				return fmt.Errorf("failed to create tag: %w", err)
			}
			s.Forget()

			fmt.Fprintf(c.OutOrStdout(), "Created tag %q (%s)\n", tag.Name, tag.GUID)
			return nil
		},
	}

	c.Flags().StringVar(&parent, "parent", "", "parent tag name or guid")

	return c
}
