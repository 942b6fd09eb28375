package cli

import (
	"github.com/spf13/cobra"

	"github.com/subsplit/subsplit/internal/logging"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subsplit",
	Short: "Reflow SRT subtitle lines to a maximum length",
	Long: `Subsplit rewrites SubRip (.srt) subtitle files so that no displayed
line exceeds a configured character length.

Each subtitle block's timing interval is redistributed proportionally
across the lines it is split into, and blocks are renumbered from 1.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
