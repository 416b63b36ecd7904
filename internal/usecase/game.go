package usecase

import (
	"context"

	"github.com/rocketscienceinc/kalah-backend/internal/entity"
)

// GameUseCase is what the transports need from the game layer. Every call is scoped to
// the session of the client that makes it.
type GameUseCase interface {
	NewGame(ctx context.Context, sessionID string) (*entity.TurnResult, error)
	MakeTurn(ctx context.Context, sessionID string, pitID int) (*entity.TurnResult, error)
	GetState(ctx context.Context, sessionID string) (*entity.TurnResult, error)
	LeaveGame(ctx context.Context, sessionID string) error

	Watch(ctx context.Context, sessionID string) (<-chan entity.Event, error)
}

var _ GameUseCase = (*GameManager)(nil)
