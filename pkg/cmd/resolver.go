package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/Paintersrp/rnote/internal/remote"
	"github.com/Paintersrp/rnote/internal/state"
)

// ResolveNotebook finds a notebook by guid or, ignoring case, by name.
func ResolveNotebook(ctx context.Context, s *state.State, ref string) (*remote.Notebook, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("a notebook name or guid is required")
	}

	notebooks, err := s.Notebooks(ctx)
	if err != nil {
		return nil, err
	}

	var matches []*remote.Notebook
	for i := range notebooks {
		nb := &notebooks[i]
		if nb.GUID == ref {
			return nb, nil
		}
		if strings.EqualFold(nb.Name, ref) {
			matches = append(matches, nb)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("notebook %q not found", ref)
	case 1:
		return matches[0], nil
	default:
		guids := make([]string, 0, len(matches))
		for _, m := range matches {
			guids = append(guids, m.GUID)
		}
		return nil, fmt.Errorf("notebook name %q is ambiguous; use one of: %s", ref, strings.Join(guids, ", "))
	}
}

// ResolveTag finds a tag by guid or, ignoring case, by name.
func ResolveTag(ctx context.Context, s *state.State, ref string) (*remote.Tag, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("a tag name or guid is required")
	}

	tags, err := s.Tags(ctx)
	if err != nil {
		return nil, err
	}

	var matches []*remote.Tag
	for i := range tags {
		tag := &tags[i]
		if tag.GUID == ref {
			return tag, nil
		}
		if strings.EqualFold(tag.Name, ref) {
			matches = append(matches, tag)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("tag %q not found", ref)
	case 1:
		return matches[0], nil
	default:
		guids := make([]string, 0, len(matches))
		for _, m := range matches {
			guids = append(guids, m.GUID)
		}
		return nil, fmt.Errorf("tag name %q is ambiguous; use one of: %s", ref, strings.Join(guids, ", "))
	}
}

// ResolveTagGUIDs maps each reference to a tag guid, in order.
func ResolveTagGUIDs(ctx context.Context, s *state.State, refs []string) ([]string, error) {
	guids := make([]string, 0, len(refs))
	for _, ref := range refs {
		tag, err := ResolveTag(ctx, s, ref)
		if err != nil {
			return nil, err
		}
		guids = append(guids, tag.GUID)
	}
	return guids, nil
}

// Names maps every tag and notebook guid to its display name.
func Names(ctx context.Context, s *state.State) (map[string]string, error) {
	tags, err := s.Tags(ctx)
	if err != nil {
		return nil, err
	}
	notebooks, err := s.Notebooks(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(tags)+len(notebooks))
	for _, t := range tags {
		names[t.GUID] = t.Name
	}
	for _, nb := range notebooks {
		names[nb.GUID] = nb.Name
	}
	return names, nil
}
