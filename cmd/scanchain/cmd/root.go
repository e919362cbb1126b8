package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	configFile string
)

// logger reports progress to stderr when --verbose is set.
var logger = log.New(io.Discard, "scanchain: ", log.Ltime|log.Lmicroseconds)

var rootCmd = &cobra.Command{
	Use:   "scanchain",
	Short: "Scan chain router for DEF designs",
	Long: `Connect every ordinary pin of a design into 16 scan chains, each running
from an input driver pin to its paired output driver pin.

Examples:
  scanchain route chip.def                          # Fast banded routing
  scanchain route --strategy slow --svg chip.svg chip.def
  scanchain check chip.def chip_output.def          # Validate a routing
  scanchain generate 10000 --seed 7 -o big.def      # Synthetic design`,
	Version:       "0.3.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetOutput(cmd.ErrOrStderr())
		} else {
			logger.SetOutput(io.Discard)
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML file with default settings")
}
