// Command smt is the solver's single entrypoint, per spec.md §6: `smt run
// FILE...` parses and executes each file in order against one shared
// interpreter, printing accumulated diagnostics after each file.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "smt",
		Short: "An experimental SMT solver for booleans and uninterpreted linear integers",
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log solve statistics and diagnostics to stderr")

	rootCmd.AddCommand(newRunCmd(log, &verbose))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
