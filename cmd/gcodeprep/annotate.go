package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrfp/gcodeprep/gcode"
)

var annotateCmd = &cobra.Command{
	Use:   "annotate <input>",
	Short: "Normalize a program and inject safety-check blocks",
	Long: `Run the full two-pass pipeline: normalization followed by safety
annotation. Every G01/G02/G03 line gets a #600-#603 assignment block and
an M150 check line inserted in front of it.

Examples:
  # Write 001_safe.txt next to the input
  gcodeprep annotate 001.txt

  # Annotate an already-normalized program without re-normalizing.
  # Axis flags then reflect the file exactly as it is on disk.
  gcodeprep annotate 001_normalized.txt --skip-normalize`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out, _ := cmd.Flags().GetString("output")
		headers, _ := cmd.Flags().GetBool("headers")
		skip, _ := cmd.Flags().GetBool("skip-normalize")

		out = outputPath(out, args[0], cfg.SafeSuffix)
		pl := gcode.Pipeline{
			SkipNormalize: skip || cfg.SkipNormalize,
			Headers:       headers || cfg.Headers,
		}

		st, err := pl.ProcessFile(args[0], out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printStats(out, st, true)
	},
}

func init() {
	annotateCmd.Flags().StringP("output", "o", "", "Output path (default: input with suffix appended).")
	annotateCmd.Flags().Bool("headers", false, "Add header and statistics footer comment blocks.")
	annotateCmd.Flags().Bool("skip-normalize", false, "Skip the normalizer and run only the safety annotator.")
}
