package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/solver"
	"svw.info/sudokugen/internal/validator"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <grid>",
		Short: "Report the solution count (0, 1, or 2+) of a puzzle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := domain.ParseGrid(args[0])
			if err != nil {
				return err
			}
			ok, conflicts, err := validator.New().Validate(cmd.Context(), &domain.Board{Values: g})
			if err != nil {
				return err
			}
			if !ok {
				fmt.Printf("invalid: %d conflicting cells\n", len(conflicts))
				return nil
			}
			switch n := solver.CountSolutions(g, 2); n {
			case 0:
				fmt.Println("no solution")
			case 1:
				fmt.Println("exactly one solution")
			default:
				fmt.Println("two or more solutions")
			}
			return nil
		},
	}
	return cmd
}
