package status

import (
	"errors"
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/rnote/internal/auth"
	"github.com/Paintersrp/rnote/internal/remote"
	"github.com/Paintersrp/rnote/internal/state"
)

func NewCmdStatus(s *state.State) *cobra.Command {
	var offline bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show who you are logged in as",
		Long: heredoc.Doc(`
			Decode the stored token and ask the service who it belongs to.
			Use --offline to skip the service call.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, offline, time.Now())
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "only decode the stored token")

	return cmd
}

func run(cmd *cobra.Command, s *state.State, offline bool, now time.Time) error {
	out := cmd.OutOrStdout()
	settings := s.Settings()

	fmt.Fprintf(out, "profile:  %s\n", s.ProfileName)
	fmt.Fprintf(out, "endpoint: %s\n", settings.Endpoint)

	if settings.Token == "" {
		fmt.Fprintln(out, "status:   logged out")
		return nil
	}

	if claims, err := auth.ParseUnverified(settings.Token); err != nil {
		s.Logger.Debug("token is not a JWT", "error", err)
	} else {
		if who := claims.Identity(); who != "" {
			fmt.Fprintf(out, "user:     %s\n", who)
		}
		if exp := claims.Expiry(); !exp.IsZero() {
			fmt.Fprintf(out, "expires:  %s\n", exp.Local().Format(time.DateTime))
		}
		if claims.Expired(now) {
			fmt.Fprintln(out, "status:   token expired")
			return nil
		}
	}

	if offline {
		fmt.Fprintln(out, "status:   token stored")
		return nil
	}

	client, err := s.Client()
	if err != nil {
		return err
	}
	user, err := client.GetUser(s.Context(cmd.Context()))
	if errors.Is(err, remote.ErrUnauthorized) {
		fmt.Fprintln(out, "status:   token rejected by the service")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "status:   logged in as %s <%s>\n", user.Username, user.Email)
	return nil
}
