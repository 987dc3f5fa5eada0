package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mrfp/gcodeprep/gcode"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <input>",
	Short: "Canonicalize mnemonics and strip redundant coordinates",
	Long: `Run only the normalization pass over a program file.

Examples:
  # Write 001_normalized.txt next to the input
  gcodeprep normalize 001.txt

  # Explicit output path, with header/footer comment blocks
  gcodeprep normalize 001.txt -o clean.txt --headers`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out, _ := cmd.Flags().GetString("output")
		headers, _ := cmd.Flags().GetBool("headers")

		out = outputPath(out, args[0], cfg.NormalizedSuffix)
		pl := gcode.Pipeline{
			NoAnnotate: true,
			Headers:    headers || cfg.Headers,
		}

		st, err := pl.ProcessFile(args[0], out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printStats(out, st, false)
	},
}

func init() {
	normalizeCmd.Flags().StringP("output", "o", "", "Output path (default: input with suffix appended).")
	normalizeCmd.Flags().Bool("headers", false, "Add header and statistics footer comment blocks.")
}

// outputPath picks the explicit output path or derives one from the
// input name and suffix.
func outputPath(flagVal, input, suffix string) string {
	if flagVal != "" {
		return flagVal
	}
	return gcode.DefaultOutputPath(input, suffix)
}

func printStats(output string, st gcode.Stats, annotated bool) {
	green := color.New(color.FgGreen).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	fmt.Printf("%s Wrote %s\n", green("✓"), cyan(output))
	fmt.Printf("  Lines processed: %d\n", st.Lines)
	fmt.Printf("  Mnemonics normalized: %d\n", st.MnemonicsNormalized)
	fmt.Printf("  Redundant coordinates removed: %d\n", st.CoordinatesRemoved)
	fmt.Printf("  Explicit motion commands added: %d\n", st.MnemonicsInserted)
	if annotated {
		fmt.Printf("  Safety blocks added: %d\n", st.SafetyBlocks)
	}
}
