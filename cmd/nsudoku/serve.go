package main

import (
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpadapter "svw.info/nsudoku/internal/adapters/http"
	"svw.info/nsudoku/internal/config"
	"svw.info/nsudoku/internal/generator"
	"svw.info/nsudoku/internal/hint"
	"svw.info/nsudoku/internal/infrastructure/storage"
	"svw.info/nsudoku/internal/usecase"
	"svw.info/nsudoku/internal/validator"
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

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		log.Info("http",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", sw.status),
			zap.Int("bytes", sw.bytes),
			zap.Duration("dur", time.Since(start).Round(time.Millisecond)),
		)
	})
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solve/validate/generate/hint JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if f := cmd.Flags().Lookup("addr"); f.Changed {
			cfg.Addr = f.Value.String()
		}
		if f := cmd.Flags().Lookup("data"); f.Changed {
			cfg.DataDir = f.Value.String()
		}
		if f := cmd.Flags().Lookup("solver"); f.Changed {
			cfg.Solver = f.Value.String()
		}
		s, err := newSolver(cfg.Solver, "")
		if err != nil {
			return err
		}
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return err
		}

		// Wire providers → use cases → HTTP adapter
		uc := usecase.NewService(
			s,
			generator.NewUniqueGenerator(s),
			validator.New(),
			hint.NewSingles(),
			storage.NewFS(cfg.DataDir),
		)
		h := httpadapter.New(uc)

		mux := http.NewServeMux()
		h.Register(mux)

		srv := &http.Server{
			Addr:              cfg.Addr,
			Handler:           requestLogger(logger, mux),
			ReadHeaderTimeout: 5 * time.Second,
		}
		logger.Info("listening",
			zap.String("addr", cfg.Addr),
			zap.String("data", cfg.DataDir),
			zap.String("solver", cfg.Solver))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("config", "", "YAML config file")
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().String("data", "./data", "save directory")
	serveCmd.Flags().String("solver", "bitset", "engine: bitset|backtrack")
}
