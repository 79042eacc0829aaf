package profile

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/rnote/internal/config"
	"github.com/Paintersrp/rnote/internal/state"
)

func NewCmdProfile(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profile",
		Aliases: []string{"profiles"},
		Short:   "Manage service profiles",
	}

	cmd.AddCommand(
		newCmdProfileList(s),
		newCmdProfileSwitch(s),
		newCmdProfileAdd(s),
		newCmdProfileRemove(s),
	)

	return cmd
}

func newCmdProfileList(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := s.Config.ProfileNames()
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No profiles configured")
				return nil
			}

			for _, name := range names {
				marker := " "
				if name == s.ProfileName {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\n", marker, name, s.Config.Profiles[name].Endpoint)
			}

			return nil
		},
	}
}

func newCmdProfileSwitch(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "switch [name]",
		Short: "Switch the active profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(args[0])
			if target == "" {
				return fmt.Errorf("profile name cannot be empty")
			}

			if err := s.Config.SwitchProfile(target); err != nil {
				return err
			}
			if err := s.UseProfile(target); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Switched to profile %q\n", target)
			return nil
		},
	}
	return cmd
}

func newCmdProfileAdd(s *state.State) *cobra.Command {
	var name string
	var endpoint string
	var makeCurrent bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new profile",
		Long: "Add a profile for another account or service. Search and export settings are " +
			"copied from the active profile; the new profile starts logged out.",
		Example: "rnote profile add --name work --endpoint https://notes.example.com --current",
		RunE: func(cmd *cobra.Command, _ []string) error {
			name = strings.TrimSpace(name)
			if name == "" {
				return fmt.Errorf("profile name is required")
			}
			endpoint = strings.TrimSpace(endpoint)
			if endpoint == "" {
				return fmt.Errorf("endpoint is required")
			}

			p := cloneProfileSettings(s.Profile)
			p.Endpoint = endpoint

			if err := s.Config.AddProfile(name, p, makeCurrent); err != nil {
				return err
			}
			if makeCurrent {
				if err := s.UseProfile(name); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added profile %q\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name of the new profile")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "Base URL of the note service")
	cmd.Flags().BoolVar(&makeCurrent, "current", false, "Switch to the new profile after creation")

	return cmd
}

func newCmdProfileRemove(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove [name]",
		Short: "Remove an existing profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return fmt.Errorf("profile name cannot be empty")
			}

			if err := s.Config.RemoveProfile(name); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed profile %q\n", name)
			return nil
		},
	}

	return cmd
}

// cloneProfileSettings copies everything but the token and endpoint.
func cloneProfileSettings(src *config.Profile) *config.Profile {
	if src == nil {
		return config.NewProfile()
	}

	return &config.Profile{
		DefaultCount:   src.DefaultCount,
		DefaultDepth:   src.DefaultDepth,
		RequestTimeout: src.RequestTimeout,
		RatePerSecond:  src.RatePerSecond,
		Export: config.ExportConfig{
			S3Region:   src.Export.S3Region,
			S3Endpoint: src.Export.S3Endpoint,
		},
	}
}
