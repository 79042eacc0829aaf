package state_test

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/viper"

	"github.com/Paintersrp/rnote/internal/remote"
	"github.com/Paintersrp/rnote/internal/remote/remotetest"
	"github.com/Paintersrp/rnote/internal/state"
)

func newState(t *testing.T, srv *remotetest.Server, token string) *state.State {
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

func newServer(t *testing.T) *remotetest.Server {
	t.Helper()

	srv := remotetest.NewServer(t)
	srv.Tags = []remote.Tag{{GUID: "t1", Name: "work"}}
	srv.Notebooks = []remote.Notebook{{GUID: "n1", Name: "Journal"}}
	return srv
}

func TestCollectionsAreFetchedOnce(t *testing.T) {
	srv := newServer(t)
	s := newState(t, srv, remotetest.Token)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		tags, err := s.Tags(ctx)
		if err != nil {
			t.Fatalf("Tags returned error: %v", err)
		}
		if len(tags) != 1 || tags[0].Name != "work" {
			t.Fatalf("unexpected tags %+v", tags)
		}
		if _, err := s.Notebooks(ctx); err != nil {
			t.Fatalf("Notebooks returned error: %v", err)
		}
		if _, err := s.NoteCounts(ctx); err != nil {
			t.Fatalf("NoteCounts returned error: %v", err)
		}
	}

	if got := len(srv.SeenRequestIDs()); got != 3 {
		t.Fatalf("expected one request per collection, got %d", got)
	}

	s.Forget()
	if _, err := s.Tags(ctx); err != nil {
		t.Fatalf("Tags returned error: %v", err)
	}
	if got := len(srv.SeenRequestIDs()); got != 4 {
		t.Fatalf("expected Forget to force a refetch, got %d requests", got)
	}
}

func TestClientUsesEnvironment(t *testing.T) {
	srv := newServer(t)
	s := newState(t, srv, "")

	c, err := s.Client()
	if err != nil {
		t.Fatalf("Client returned error: %v", err)
	}
	if c.Endpoint() != srv.URL {
		t.Fatalf("expected endpoint %q, got %q", srv.URL, c.Endpoint())
	}

	if _, err := s.Tags(context.Background()); !errors.Is(err, remote.ErrNoToken) {
		t.Fatalf("expected ErrNoToken without a token, got %v", err)
	}
}

func TestSetTokenPersistsAndRebuildsClient(t *testing.T) {
	srv := newServer(t)
	s := newState(t, srv, "")
	ctx := context.Background()

	if _, err := s.Client(); err != nil {
		t.Fatalf("Client returned error: %v", err)
	}

	if err := s.SetToken(remotetest.Token); err != nil {
		t.Fatalf("SetToken returned error: %v", err)
	}
	if s.Profile.Token != remotetest.Token {
		t.Fatalf("expected token on profile, got %q", s.Profile.Token)
	}

	if _, err := s.Tags(ctx); err != nil {
		t.Fatalf("expected the new token to be used, got %v", err)
	}
}

func TestUseProfileRejectsUnknownProfile(t *testing.T) {
	srv := newServer(t)
	s := newState(t, srv, remotetest.Token)

	if err := s.UseProfile("missing"); err == nil {
		t.Fatal("expected unknown profile to be rejected")
	}
}
