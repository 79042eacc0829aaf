package flags

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// ReadClipboard is swapped out in tests.
var ReadClipboard = clipboard.ReadAll

func AddPaste(cmd *cobra.Command) {
	cmd.Flags().
		Bool("paste", false, "Use the clipboard contents as note content.")
}

// HandlePaste returns the clipboard contents when --paste was given.
func HandlePaste(cmd *cobra.Command) (string, bool, error) {
	paste, err := cmd.Flags().GetBool("paste")
	if err != nil || !paste {
		return "", false, err
	}

	content, err := ReadClipboard()
	if err != nil {
		return "", false, fmt.Errorf("failed to read clipboard: %w", err)
	}
	return content, true, nil
}
