package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/solver"
)

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <grid>",
		Short: "Solve a puzzle given as 81 digits ('0' or '.' for empty)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := domain.ParseGrid(args[0])
			if err != nil {
				return err
			}
			s := solver.NewMRVSolver()
			out, st, err := s.Solve(cmd.Context(), &domain.Board{Values: g})
			if err != nil {
				return err
			}
			printGrid(out.Values)
			log.WithField("nodes", st.Nodes).
				WithField("dur", st.Duration.Round(time.Microsecond).String()).
				Debug("solved")
			return nil
		},
	}
	return cmd
}

func printGrid(g domain.Grid) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if c > 0 {
				fmt.Print(" ")
				if c%3 == 0 {
					fmt.Print("| ")
				}
			}
			if g[r][c] == 0 {
				fmt.Print(".")
			} else {
				fmt.Printf("%d", g[r][c])
			}
		}
		fmt.Println()
		if r == 2 || r == 5 {
			fmt.Println("------+-------+------")
		}
	}
}
