package flags

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AddCount registers --count. Commands fall back to the profile default when
// it is not given.
func AddCount(cmd *cobra.Command, usage string) {
	cmd.Flags().IntP("count", "n", 0, usage)
}

// HandleCount returns --count when it was set, otherwise fallback.
func HandleCount(cmd *cobra.Command, fallback int) (int, error) {
	if !cmd.Flags().Changed("count") {
		return fallback, nil
	}

	n, err := cmd.Flags().GetInt("count")
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("--count must be zero or greater, got %d", n)
	}
	return n, nil
}
