package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/subsplit/subsplit/internal/subtitle"
)

var splitCmd = &cobra.Command{
	Use:   "split [srt_file]",
	Short: "Split long subtitle lines in an SRT file",
	Long: `Split subtitle lines longer than the maximum length, dividing each
block's timing interval evenly across the resulting lines.

By default the output is written next to the input with "_split" inserted
before the extension.

Examples:
  subsplit split movie.srt
  subsplit split movie.srt -m 40
  subsplit split movie.srt -o reflowed.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)

	splitCmd.Flags().
		IntP("max-length", "m", 25, "Maximum characters per subtitle line")
	splitCmd.Flags().
		StringP("output", "o", "", "Output file path")
}

func runSplit(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	maxLength, _ := cmd.Flags().GetInt("max-length")
	outputPath, _ := cmd.Flags().GetString("output")

	if maxLength < 1 {
		return fmt.Errorf("max-length must be positive, got %d", maxLength)
	}
	if outputPath == "" {
		outputPath = subtitle.SplitName(inputPath)
	}

	logger.Infow("Splitting subtitles",
		"input", inputPath,
		"output", outputPath,
		"max_length", maxLength,
	)

	input, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inputPath, err)
	}

	output, err := subtitle.Process(input, maxLength)
	if err != nil {
		return fmt.Errorf("failed to process %s: %w", inputPath, err)
	}

	if err := writeFileAtomic(outputPath, output); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Processed subtitles written to %s\n", absOutput)

	return nil
}

// writeFileAtomic writes to a temp file in the destination directory and
// renames it into place, so a failure mid-write never leaves a truncated
// file at the destination.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".subsplit-*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
