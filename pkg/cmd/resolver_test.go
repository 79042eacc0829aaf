package cmd

import (
	"context"
	"testing"

	"github.com/Paintersrp/rnote/internal/remote"
	"github.com/Paintersrp/rnote/internal/remote/remotetest"
	"github.com/Paintersrp/rnote/pkg/cmd/cmdtest"
)

func TestResolveNotebook(t *testing.T) {
	srv := remotetest.NewServer(t)
	srv.Notebooks = []remote.Notebook{
		{GUID: "nb-1", Name: "Journal"},
		{GUID: "nb-2", Name: "Work"},
		{GUID: "nb-3", Name: "work"},
	}
	s := cmdtest.NewState(t, srv, remotetest.Token)
	ctx := context.Background()

	tests := map[string]struct {
		ref     string
		want    string
		wantErr bool
	}{
		"by guid":        {ref: "nb-2", want: "nb-2"},
		"by name":        {ref: "journal", want: "nb-1"},
		"trimmed":        {ref: "  Journal ", want: "nb-1"},
		"ambiguous name": {ref: "WORK", wantErr: true},
		"unknown":        {ref: "Recipes", wantErr: true},
		"empty":          {ref: " ", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			nb, err := ResolveNotebook(ctx, s, tc.ref)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %+v", tc.ref, nb)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveNotebook returned error: %v", err)
			}
			if nb.GUID != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, nb.GUID)
			}
		})
	}
}

func TestResolveTagGUIDs(t *testing.T) {
	srv := remotetest.NewServer(t)
	srv.Tags = []remote.Tag{
		{GUID: "t1", Name: "work"},
		{GUID: "t2", Name: "meetings", ParentGUID: "t1"},
	}
	s := cmdtest.NewState(t, srv, remotetest.Token)
	ctx := context.Background()

	guids, err := ResolveTagGUIDs(ctx, s, []string{"Meetings", "t1"})
	if err != nil {
		t.Fatalf("ResolveTagGUIDs returned error: %v", err)
	}
	if len(guids) != 2 || guids[0] != "t2" || guids[1] != "t1" {
		t.Fatalf("unexpected guids %v", guids)
	}

	if _, err := ResolveTagGUIDs(ctx, s, []string{"missing"}); err == nil {
		t.Fatal("expected unknown tag to fail")
	}

	names, err := Names(ctx, s)
	if err != nil {
		t.Fatalf("Names returned error: %v", err)
	}
	if names["t2"] != "meetings" {
		t.Fatalf("unexpected names %v", names)
	}
}
