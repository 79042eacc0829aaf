package login

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/rnote/internal/state"
	"github.com/Paintersrp/rnote/pkg/cmd/auth/tui"
	"github.com/Paintersrp/rnote/utils"
)

type options struct {
	email         string
	passwordStdin bool
	force         bool
}

// prompt is replaced in tests.
var prompt = tui.Login

func NewCmdLogin(s *state.State) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:     "login",
		Aliases: []string{"l"},
		Short:   "Log in to your account",
		Long: heredoc.Doc(`
			Log in to your account with your email and password.
			Upon successful login, your token is stored in the active profile of ~/.rnote/cfg.yaml.

			In a terminal an interactive form is shown. Otherwise pass --email and pipe the
			password on stdin with --password-stdin.
		`),
		Example: heredoc.Doc(`
			rnote auth login
			echo "$PASSWORD" | rnote auth login --email me@example.com --password-stdin
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, opts)
		},
	}

	cmd.Flags().StringVar(&opts.email, "email", "", "account email")
	cmd.Flags().BoolVar(&opts.passwordStdin, "password-stdin", false, "read the password from stdin")
	cmd.Flags().BoolVar(&opts.force, "force", false, "log in again even if a token is stored")

	return cmd
}

func run(cmd *cobra.Command, s *state.State, opts options) error {
	out := cmd.OutOrStdout()

	if s.Settings().Token != "" && !opts.force {
		fmt.Fprintln(
			out,
			"You are already authenticated. Please logout with the logout command if you'd like to change users.",
		)
		return nil
	}

	creds, err := credentials(cmd, s, opts)
	if err != nil {
		return err
	}

	client, err := s.Client()
	if err != nil {
		return err
	}

	token, err := client.Login(s.Context(cmd.Context()), creds.Email, creds.Password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := s.SetToken(token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	s.Logger.Debug("stored token", "profile", s.ProfileName)
	fmt.Fprintln(out, "Login successful!")
	return nil
}

func credentials(cmd *cobra.Command, s *state.State, opts options) (tui.Credentials, error) {
	in := cmd.InOrStdin()

	if opts.passwordStdin || opts.email != "" || !utils.IsTerminal(in) {
		if opts.email == "" {
			return tui.Credentials{}, fmt.Errorf("--email is required when not running in a terminal")
		}
		password, err := readPassword(in)
		if err != nil {
			return tui.Credentials{}, err
		}
		return tui.Credentials{Email: opts.email, Password: password}, nil
	}

	return prompt(s.Settings().Endpoint)
}

func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", fmt.Errorf("no password given on stdin")
	}
	return password, nil
}
