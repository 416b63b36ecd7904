package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/handlers"

	"github.com/rocketscienceinc/kalah-backend/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type uGame interface {
	NewGame(ctx context.Context, sessionID string) (*entity.TurnResult, error)
	MakeTurn(ctx context.Context, sessionID string, pitID int) (*entity.TurnResult, error)
	GetState(ctx context.Context, sessionID string) (*entity.TurnResult, error)
	LeaveGame(ctx context.Context, sessionID string) error
}

type Server struct {
	logger *slog.Logger
	uGame  uGame
}

func New(logger *slog.Logger, uGame uGame) *Server {
	return &Server{
		logger: logger.With("component", "rest"),
		uGame:  uGame,
	}
}

// Handler - routes of the http api.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", NewPingHandler().PingHandler)
	mux.HandleFunc("/api", that.apiHandler)

	recoveryLog := slog.NewLogLogger(that.logger.Handler(), slog.LevelError)

	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLog),
		handlers.PrintRecoveryStack(true),
	)(mux)
}

// Start - serves the http api until ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
