package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

type serveCmdArgs struct {
	bind string
}

var serveArgs serveCmdArgs

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Preview the generated site locally",
	Long:  "Serves the output directory over HTTP until interrupted",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveArgs.bind, "bind", "b", "", "bind address (overrides config)")
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveArgs.bind != "" {
		cfg.ServeBind = serveArgs.bind
	}

	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "index.html")); err != nil {
		return fmt.Errorf("no generated site in %s, run build first", cfg.OutputDir)
	}

	srv := &http.Server{
		Addr:    cfg.ServeBind,
		Handler: siteHandler(cfg.OutputDir),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("serving site", "addr", cfg.ServeBind, "dir", cfg.OutputDir)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to stop server: %w", err)
	}
	return nil
}

// siteHandler serves the generated files, falling back to the generated 404
// page for unknown paths.
func siteHandler(dir string) http.Handler {
	fileServer := http.FileServer(http.Dir(dir))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		target := filepath.Join(dir, filepath.FromSlash(strings.Trim(r.URL.Path, "/")))
		if info, err := os.Stat(target); err == nil {
			if !info.IsDir() {
				fileServer.ServeHTTP(w, r)
				return
			}
			if _, err := os.Stat(filepath.Join(target, "index.html")); err == nil {
				fileServer.ServeHTTP(w, r)
				return
			}
		}

		raw, err := os.ReadFile(filepath.Join(dir, "404.html"))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		w.Write(raw)
	})
}
