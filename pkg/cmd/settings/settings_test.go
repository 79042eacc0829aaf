package settings

import (
	"strings"
	"testing"

	"github.com/Paintersrp/rnote/internal/remote/remotetest"
	"github.com/Paintersrp/rnote/pkg/cmd/cmdtest"
)

func TestShow(t *testing.T) {
	srv := remotetest.NewServer(t)
	s := cmdtest.NewState(t, srv, remotetest.Token)

	out, err := cmdtest.Run(t, NewCmdSettings(s), "show")
	if err != nil {
		t.Fatalf("config show returned error: %v", err)
	}

	for _, want := range []string{
		"profile: default",
		"default_count         50",
		"request_timeout       30s",
		"export.s3_region      -",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "(overridden by environment)") {
		t.Fatalf("expected RNOTE_ENDPOINT to be marked, got:\n%s", out)
	}
}

func TestSet(t *testing.T) {
	srv := remotetest.NewServer(t)
	s := cmdtest.NewState(t, srv, remotetest.Token)

	out, err := cmdtest.Run(t, NewCmdSettings(s), "set", "default_depth", "3")
	if err != nil {
		t.Fatalf("config set returned error: %v", err)
	}
	if out != "Set default_depth to 3 on profile \"default\"\n" {
		t.Fatalf("unexpected output %q", out)
	}
	if s.Profile.DefaultDepth != 3 || s.Settings().DefaultDepth != 3 {
		t.Fatalf("expected depth 3, got %d", s.Profile.DefaultDepth)
	}

	tests := map[string][]string{
		"unknown key":  {"set", "vault", "/tmp"},
		"bad value":    {"set", "default_count", "many"},
		"missing args": {"set", "default_count"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := cmdtest.Run(t, NewCmdSettings(s), args...); err == nil {
				t.Fatalf("expected %v to fail", args)
			}
		})
	}
}
