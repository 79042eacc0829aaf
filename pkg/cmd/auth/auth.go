package auth

import (
	"github.com/spf13/cobra"

	"github.com/Paintersrp/rnote/internal/state"
	"github.com/Paintersrp/rnote/pkg/cmd/auth/login"
	"github.com/Paintersrp/rnote/pkg/cmd/auth/logout"
	"github.com/Paintersrp/rnote/pkg/cmd/auth/status"
)

func NewCmdAuth(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "auth",
		Aliases: []string{"a"},
		Short:   "Authenticate to the note service.",
	}

	cmd.AddCommand(login.NewCmdLogin(s))
	cmd.AddCommand(logout.NewCmdLogout(s))
	cmd.AddCommand(status.NewCmdStatus(s))

	return cmd
}
