package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/generator"
	"svw.info/sudokugen/internal/infrastructure/storage"
)

func newGenerateCmd() *cobra.Command {
	var (
		diffStr string
		count   int
		seed    int64
		strict  bool
		persist string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate puzzles and print them as JSON (or save with --persist-path)",
		RunE: func(cmd *cobra.Command, args []string) error {
			diff, err := domain.ParseDifficulty(diffStr)
			if err != nil {
				return err
			}
			g := generator.NewUniqueGenerator()
			g.StrictTarget = strict

			var store *storage.FS
			if persist != "" {
				store = storage.NewFS(persist)
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")

			ctx := context.Background()
			for i := 0; i < count; i++ {
				s := seed
				if s == 0 {
					s = time.Now().UnixNano()
				} else {
					s += int64(i) // distinct but reproducible per index
				}
				p, st, err := g.Generate(ctx, s, diff)
				if err != nil {
					return err
				}
				log.WithField("clues", p.Board.Values.Clues()).
					WithField("dur", st.Duration.Round(time.Millisecond).String()).
					Debug("generated")
				if store != nil {
					if err := store.Save(ctx, p); err != nil {
						return err
					}
					log.WithField("id", p.ID).Info("saved")
					continue
				}
				if err := enc.Encode(p); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&diffStr, "difficulty", "medium", "easy|medium|hard|expert|master")
	cmd.Flags().IntVar(&count, "count", 1, "number of puzzles")
	cmd.Flags().Int64Var(&seed, "seed", 0, "base RNG seed (0 = time-based)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail instead of warn when the clue target is missed")
	cmd.Flags().StringVar(&persist, "persist-path", "", "save puzzles here instead of printing")
	return cmd
}
