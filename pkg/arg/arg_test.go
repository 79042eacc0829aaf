package arg

import (
	"reflect"
	"testing"
)

func TestTitle(t *testing.T) {
	if _, err := Title(nil); err == nil {
		t.Fatal("expected missing title to fail")
	}
	if _, err := Title([]string{"  "}); err == nil {
		t.Fatal("expected blank title to fail")
	}
	got, err := Title([]string{" standup ", "work"})
	if err != nil || got != "standup" {
		t.Fatalf("Title = %q, %v", got, err)
	}
}

func TestTagsAndContent(t *testing.T) {
	tests := map[string]struct {
		args    []string
		tags    []string
		content string
		wantErr bool
	}{
		"title only":         {args: []string{"t"}, tags: []string{}},
		"title and tags":     {args: []string{"t", "a b a"}, tags: []string{"a", "b"}},
		"title tags content": {args: []string{"t", "a", "body"}, tags: []string{"a"}, content: "body"},
		"invalid tag":        {args: []string{"t", "a b/c"}, wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			tags, err := Tags(tc.args)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Tags returned error: %v", err)
			}
			if !reflect.DeepEqual(tags, tc.tags) {
				t.Fatalf("Tags = %v, want %v", tags, tc.tags)
			}
			if got := Content(tc.args); got != tc.content {
				t.Fatalf("Content = %q, want %q", got, tc.content)
			}
		})
	}
}
