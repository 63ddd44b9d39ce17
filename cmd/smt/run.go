package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/proto-smt/solver/interp"
	"github.com/proto-smt/solver/parser"
	"github.com/proto-smt/solver/smterr"
)

// newRunCmd builds `smt run FILE...`, per spec.md §6: each file is parsed
// as an SMT-LIB script and executed in order against a shared
// interpreter; after each file, accumulated diagnostics print and clear.
func newRunCmd(log *logrus.Logger, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE...",
		Short: "Run one or more SMT-LIB scripts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, files []string) error {
			if *verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			return runFiles(cmd.OutOrStdout(), log, files)
		},
	}
}

func runFiles(out io.Writer, log *logrus.Logger, files []string) error {
	i := interp.New(out, log)
	errs := smterr.NewSet()

	for _, file := range files {
		source, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}

		cmds := parser.ParseScript(file, string(source), errs)
		i.Execute(file, cmds, errs)

		if !errs.Empty() {
			for _, m := range errs.Messages() {
				fmt.Fprintln(os.Stderr, m.String())
			}
			errs.Clear()
		}
	}
	return nil
}
