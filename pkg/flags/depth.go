package flags

import (
	"fmt"

	"github.com/spf13/cobra"
)

func AddDepth(cmd *cobra.Command) {
	cmd.Flags().IntP("depth", "d", 0, "Maximum tree depth to print, counting roots as 1 (0 prints everything)")
}

func HandleDepth(cmd *cobra.Command, fallback int) (int, error) {
	if !cmd.Flags().Changed("depth") {
		return fallback, nil
	}

	d, err := cmd.Flags().GetInt("depth")
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("--depth must be zero or greater, got %d", d)
	}
	return d, nil
}
