package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrfp/gcodeprep/internal/config"
)

var (
	cfgPath string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "gcodeprep",
	Short: "Normalize and safety-annotate CNC G-code programs",
	Long: `gcodeprep rewrites line-oriented G-code in two passes: the normalizer
canonicalizes motion mnemonics (G0 -> G00), tracks modal state, strips
positionally redundant coordinates, and makes modal motion explicit; the
annotator injects a #600-#603/M150 safety block before every cutting or
arc move for the machine controller to validate.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		return config.Validate(cfg)
	},
}

func main() {
	log.SetFlags(log.Lshortfile)

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to a yaml config file.")
	rootCmd.AddCommand(normalizeCmd, annotateCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
