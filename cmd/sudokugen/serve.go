package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	httpadapter "svw.info/sudokugen/internal/adapters/http"
	"svw.info/sudokugen/internal/generator"
	"svw.info/sudokugen/internal/hint"
	"svw.info/sudokugen/internal/infrastructure/storage"
	"svw.info/sudokugen/internal/pregen"
	"svw.info/sudokugen/internal/solver"
	"svw.info/sudokugen/internal/usecase"
	"svw.info/sudokugen/internal/validator"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration per request.
func requestLogger(logger *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": sw.status,
			"bytes":  sw.bytes,
			"dur":    time.Since(start).Round(time.Millisecond).String(),
		}).Info("http")
	})
}

func newServeCmd() *cobra.Command {
	var (
		addr     string
		persist  string
		poolSize int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(persist, 0o755); err != nil {
				return err
			}

			s := solver.NewMRVSolver()
			g := generator.NewUniqueGenerator()
			uc := usecase.NewService(s, g, validator.New(), hint.NewSingles(), storage.NewFS(persist))

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			if poolSize > 0 {
				cache := pregen.NewCache(g, poolSize)
				cache.Start(ctx)
				uc.Pregen = cache
			}

			mux := http.NewServeMux()
			httpadapter.New(uc).Register(mux)

			srv := &http.Server{
				Addr:              addr,
				Handler:           requestLogger(log, mux),
				ReadHeaderTimeout: 5 * time.Second,
			}
			log.WithFields(logrus.Fields{
				"addr":    addr,
				"persist": persist,
				"pool":    poolSize,
			}).Info("listening")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&persist, "persist-path", "./data", "save directory")
	cmd.Flags().IntVar(&poolSize, "pregen", 4, "pregenerated puzzles kept per difficulty (0 disables)")
	return cmd
}
