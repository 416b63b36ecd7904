package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/kalah-backend/internal/apperror"
	"github.com/rocketscienceinc/kalah-backend/internal/entity"
	"github.com/rocketscienceinc/kalah-backend/internal/kalah"
	"github.com/rocketscienceinc/kalah-backend/internal/pkg"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type eventFeed interface {
	Publish(ctx context.Context, gameID string, events []entity.Event) error
	Subscribe(ctx context.Context, gameID string) (<-chan entity.Event, error)
}

type GameManager struct {
	logger *slog.Logger
	conf   kalah.Configuration

	sessionRepo sessionRepo
	events      eventFeed
}

func NewGameManager(logger *slog.Logger, conf kalah.Configuration, sessionRepo sessionRepo, events eventFeed) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game-manager"),
		conf:   conf,

		sessionRepo: sessionRepo,
		events:      events,
	}
}

// NewGame - starts a fresh game for the session, replacing the one it had before.
func (that *GameManager) NewGame(ctx context.Context, sessionID string) (*entity.TurnResult, error) {
	log := that.logger.With("method", "NewGame", "sessionID", sessionID)

	if sessionID == "" {
		return nil, fmt.Errorf("%w: empty session id", apperror.ErrSessionNotFound)
	}

	gameID := pkg.GenerateGameID()
	recorder := entity.NewRecorder(gameID)

	game, err := kalah.New(that.conf, recorder)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	session := &entity.Session{
		ID:       sessionID,
		GameID:   gameID,
		Game:     game,
		Recorder: recorder,
	}

	session.Lock()
	defer session.Unlock()

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	result := newTurnResult(session, recorder.Drain())
	that.publish(ctx, session.GameID, result.Events)

	log.Info("game created", "gameID", gameID)

	return result, nil
}

// MakeTurn - sows the given pit on behalf of the player whose turn it is. A move the
// rules reject is reported in the result's Problem with the unchanged state.
func (that *GameManager) MakeTurn(ctx context.Context, sessionID string, pitID int) (*entity.TurnResult, error) {
	log := that.logger.With("method", "MakeTurn", "sessionID", sessionID)

	session, err := that.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	game := session.Game

	err = game.DistributeFromPit(game.CurrentPlayer().ID(), pitID)
	if isRuleViolation(err) {
		log.Debug("move rejected", "pitID", pitID, "error", err)

		result := newTurnResult(session, nil)
		result.Problem = err.Error()

		return result, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	result := newTurnResult(session, session.Recorder.Drain())
	that.publish(ctx, session.GameID, result.Events)

	if result.Game.IsFinished() {
		log.Info("game finished", "gameID", session.GameID, "winner", result.Winner, "tied", result.Tied)
	}

	return result, nil
}

// GetState - the current state of the session's game.
func (that *GameManager) GetState(ctx context.Context, sessionID string) (*entity.TurnResult, error) {
	session, err := that.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	return newTurnResult(session, nil), nil
}

// LeaveGame - forgets the session and its game.
func (that *GameManager) LeaveGame(ctx context.Context, sessionID string) error {
	if err := that.sessionRepo.DeleteByID(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// Watch - streams the events of the session's game until ctx is done.
func (that *GameManager) Watch(ctx context.Context, sessionID string) (<-chan entity.Event, error) {
	session, err := that.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	gameID := session.GameID
	session.Unlock()

	events, err := that.events.Subscribe(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to watch game %s: %w", gameID, err)
	}

	return events, nil
}

func (that *GameManager) getSession(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// publish - event delivery is best effort, a watcher outage never fails a move.
func (that *GameManager) publish(ctx context.Context, gameID string, events []entity.Event) {
	if err := that.events.Publish(ctx, gameID, events); err != nil {
		that.logger.Error("failed to publish events", "method", "publish", "gameID", gameID, "error", err)
	}
}

func isRuleViolation(err error) bool {
	return errors.Is(err, apperror.ErrInvalidState) ||
		errors.Is(err, apperror.ErrNotYourTurn) ||
		errors.Is(err, apperror.ErrInvalidPit) ||
		errors.Is(err, apperror.ErrEmptyPit)
}

func newTurnResult(session *entity.Session, events []entity.Event) *entity.TurnResult {
	winner, loser, ended := session.Recorder.Result()

	return &entity.TurnResult{
		Game:           entity.NewGame(session.GameID, session.Game.Snapshot()),
		FreeMovePlayer: session.Recorder.FreeMovePlayer(),
		Winner:         winner,
		Loser:          loser,
		Tied:           ended && winner == "",
		Events:         events,
	}
}
