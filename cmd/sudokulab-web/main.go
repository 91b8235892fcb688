package main

import (
	"flag"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	httpadapter "svw.info/sudokulab/internal/adapters/http"
	"svw.info/sudokulab/internal/config"
	"svw.info/sudokulab/internal/generator"
	"svw.info/sudokulab/internal/infrastructure/storage"
	"svw.info/sudokulab/internal/ports"
	"svw.info/sudokulab/internal/solver"
	"svw.info/sudokulab/internal/usecase"
	"svw.info/sudokulab/internal/validator"
	"svw.info/sudokulab/web"
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

// requestLogger logs method, path, status, bytes, and duration in a human-readable format.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		dur := time.Since(start)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", dur.Round(time.Millisecond),
		)
	})
}

func logLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	cfgPath := flag.String("config", "", "YAML config file (flags override it)")
	addr := flag.String("addr", "", "listen address")
	persist := flag.String("persist-path", "", "save directory")
	levelStr := flag.String("log-level", "", "debug|info|warn|error")
	solverKind := flag.String("solver", "", "solver to use: backtrack|dlx")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			slog.Error("load config", "path", *cfgPath, "err", err)
			os.Exit(1)
		}
		cfg = *loaded
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *persist != "" {
		cfg.PersistDir = *persist
	}
	if *levelStr != "" {
		cfg.LogLevel = *levelStr
	}
	if *solverKind != "" {
		cfg.Solver = *solverKind
	}
	if err := cfg.Finalize(); err != nil {
		slog.Error("bad config", "err", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)}))
	_ = os.MkdirAll(cfg.PersistDir, 0o755)

	// Backtracking is the default: its solutions are deterministic, which the
	// generator's reproducibility contract depends on. DLX is opt-in.
	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(cfg.Solver)) {
	case "dlx":
		s = solver.NewDLXSolver()
	default:
		s = solver.NewBacktrackingSolver()
	}

	// Wire providers -> use cases -> HTTP adapter
	gcfg := generator.Config{
		EasyClues:   cfg.Clues.Easy,
		MediumClues: cfg.Clues.Medium,
		HardClues:   cfg.Clues.Hard,
	}
	g := generator.New(solver.NewBacktrackingSolver(), gcfg)
	v := validator.New()
	st := storage.NewFS(cfg.PersistDir)
	uc := usecase.NewService(s, g, v, st)
	h := httpadapter.New(uc)

	tmpl := web.Templates()

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(web.StaticFS())))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.ExecuteTemplate(w, "index.tmpl", map[string]any{}); err != nil {
			http.Error(w, template.HTMLEscapeString(err.Error()), http.StatusInternalServerError)
		}
	})
	h.Register(mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", cfg.Addr, "persist", cfg.PersistDir, "solver", cfg.Solver)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
