package settings

import (
	"fmt"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/rnote/internal/config"
	"github.com/Paintersrp/rnote/internal/constants"
	"github.com/Paintersrp/rnote/internal/state"
)

func NewCmdSettings(s *state.State) *cobra.Command {
	c := &cobra.Command{
		Use:     "config",
		Aliases: []string{"settings"},
		Short:   "Show or change profile settings",
		Long: heredoc.Docf(`
			Show or change the settings stored for the active profile.

			Valid keys: %s

			Environment variables such as RNOTE_ENDPOINT override stored values for a
			single run; show marks those values.
		`, strings.Join(config.Keys, ", ")),
		Example: heredoc.Doc(`
			rnote config show
			rnote config set default_count 200
			rnote config set export.s3_region eu-west-1
		`),
	}

	c.AddCommand(newCmdShow(s), newCmdSet(s))

	return c
}

func newCmdShow(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the active profile's settings",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			out := c.OutOrStdout()
			fmt.Fprintf(out, "profile: %s\n", s.ProfileName)
			fmt.Fprintf(out, "file:    %s\n", s.Config.GetConfigPath())

			for _, key := range config.Keys {
				value, _ := s.Profile.Get(key)
				if value == "" {
					value = "-"
				}
				fmt.Fprintf(out, "%-21s %s", key, value)
				if overridden(key) {
					fmt.Fprint(out, "  (overridden by environment)")
				}
				fmt.Fprintln(out)
			}

			return nil
		},
	}
}

// overridden reports whether an RNOTE_* variable replaces the stored value.
func overridden(key string) bool {
	env := constants.EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return os.Getenv(env) != ""
}

func newCmdSet(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Change a setting on the active profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			if err := s.Config.Set(args[0], args[1]); err != nil {
				return err
			}

			value, _ := s.Profile.Get(args[0])
			fmt.Fprintf(c.OutOrStdout(), "Set %s to %s on profile %q\n", args[0], value, s.ProfileName)
			return nil
		},
	}
}
