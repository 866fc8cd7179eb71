package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

// ctxがキャンセルされたらgracefulに止める
func Start(ctx context.Context, e *echo.Echo, addr string, logger *log.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Infoj(log.JSON{"event": "server_start", "addr": addr})
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Infoj(log.JSON{"event": "server_shutdown"})
	return e.Shutdown(shutdownCtx)
}
