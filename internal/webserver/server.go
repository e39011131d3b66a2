package webserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Config captures the settings for serving the viewer page.
type Config struct {
	Addr          string
	Title         string
	AssetsBaseURL string
	ChoiceTypes   []string
}

// Serve starts an HTTP server hosting the viewer until ctx is cancelled.
func Serve(ctx context.Context, cfg Config, bank Bank, logger *zap.Logger) error {
	if ctx == nil {
		return errors.New("webserver: context is nil")
	}
	if cfg.Addr == "" {
		return errors.New("webserver: addr is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	handler, err := NewHandler(cfg, bank, logger)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()
	logger.Info("serving question bank", zap.String("addr", cfg.Addr), zap.Int("questions", len(bank.Records)))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) || err == nil {
			return nil
		}
		return err
	}
}
