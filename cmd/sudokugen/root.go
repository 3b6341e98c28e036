package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func newRootCmd() *cobra.Command {
	var levelStr string
	root := &cobra.Command{
		Use:           "sudokugen",
		Short:         "Generate, solve, and verify 9x9 Sudoku puzzles",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			lvl, err := logrus.ParseLevel(levelStr)
			if err != nil {
				lvl = logrus.InfoLevel
			}
			log.SetLevel(lvl)
		},
	}
	root.PersistentFlags().StringVar(&levelStr, "log-level", "info", "debug|info|warn|error")
	root.AddCommand(newServeCmd(), newGenerateCmd(), newSolveCmd(), newCheckCmd())
	return root
}
