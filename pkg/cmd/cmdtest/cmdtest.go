// Package cmdtest wires commands to an in-memory note service for tests.
package cmdtest

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Paintersrp/rnote/internal/remote/remotetest"
	"github.com/Paintersrp/rnote/internal/state"
)

// NewState points a fresh home directory and the RNOTE_* environment at srv
// and returns the state built from them. An empty token leaves the profile
// logged out.
func NewState(t *testing.T, srv *remotetest.Server, token string) *state.State {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("RNOTE_ENDPOINT", srv.URL)
	t.Setenv("RNOTE_TOKEN", token)
	t.Setenv("RNOTE_RATE_PER_SECOND", "-1")

	s, err := state.NewState("")
	if err != nil {
		t.Fatalf("NewState returned error: %v", err)
	}
	return s
}

// Run executes cmd with args and returns what it printed to stdout.
func Run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}
