// Package arg reads the positional arguments of note create:
// TITLE [TAGS] [CONTENT].
package arg

import (
	"fmt"
	"strings"

	"github.com/Paintersrp/rnote/utils"
)

func Title(args []string) (string, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return "", fmt.Errorf("no title given")
	}
	return strings.TrimSpace(args[0]), nil
}

// Tags validates the space separated tag list in the second argument.
func Tags(args []string) ([]string, error) {
	if len(args) < 2 {
		return []string{}, nil
	}

	tags, err := utils.ValidateInput(args[1])
	if err != nil {
		return nil, fmt.Errorf("error processing tags argument: %w", err)
	}
	return tags, nil
}

func Content(args []string) string {
	if len(args) < 3 {
		return ""
	}
	return args[2]
}
