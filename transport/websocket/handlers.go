package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rocketscienceinc/kalah-backend/internal/apperror"
	"github.com/rocketscienceinc/kalah-backend/internal/entity"
)

func (that *Server) handleNewGame(ctx context.Context, conn *connection, msg *Message) error {
	log := that.logger.With("method", "handleNewGame", "sessionID", conn.sessionID)

	result, err := that.uGame.NewGame(ctx, conn.sessionID)
	if err != nil {
		log.Error("failed to create game", "error", err)
		return conn.sendError(msg.Action, errors.New("failed to create a new game"))
	}

	log.Info("game created", "gameID", result.Game.ID)

	return that.sendResult(conn, msg.Action, result)
}

func (that *Server) handleGameTurn(ctx context.Context, conn *connection, msg *Message) error {
	log := that.logger.With("method", "handleGameTurn", "sessionID", conn.sessionID)

	var payloadReq RequestPayload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		log.Error("failed to unmarshal payload", "error", err)
		return conn.sendError(msg.Action, errMalformedPayload)
	}

	if payloadReq.PitID == nil {
		log.Error("pitId is missing in payload")
		return conn.sendError(msg.Action, errPitRequired)
	}

	result, err := that.uGame.MakeTurn(ctx, conn.sessionID, *payloadReq.PitID)
	if err != nil {
		return that.sendFailure(conn, msg.Action, err)
	}

	return that.sendResult(conn, msg.Action, result)
}

func (that *Server) handleGameState(ctx context.Context, conn *connection, msg *Message) error {
	result, err := that.uGame.GetState(ctx, conn.sessionID)
	if err != nil {
		return that.sendFailure(conn, msg.Action, err)
	}

	return that.sendResult(conn, msg.Action, result)
}

// handleGameWatch - streams the events of the session's game as game:event messages
// until the connection closes or another watch replaces this one.
func (that *Server) handleGameWatch(ctx context.Context, conn *connection, msg *Message) error {
	log := that.logger.With("method", "handleGameWatch", "sessionID", conn.sessionID)

	watchCtx, cancel := context.WithCancel(ctx)

	events, err := that.uGame.Watch(watchCtx, conn.sessionID)
	if err != nil {
		cancel()
		return that.sendFailure(conn, msg.Action, err)
	}

	conn.watch(cancel)

	if err = conn.sendMessage(msg.Action, ResponsePayload{}); err != nil {
		return err
	}

	go func() {
		defer cancel()

		for event := range events {
			if err := conn.sendMessage(actionGameEvent, ResponsePayload{Event: &event}); err != nil {
				log.Error("failed to send event", "error", err)
				return
			}
		}
	}()

	return nil
}

func (that *Server) handleGameLeave(ctx context.Context, conn *connection, msg *Message) error {
	conn.watch(nil)

	if err := that.uGame.LeaveGame(ctx, conn.sessionID); err != nil {
		return that.sendFailure(conn, msg.Action, err)
	}

	return conn.sendMessage(msg.Action, ResponsePayload{})
}

// sendResult - events reach clients through game:watch only.
func (that *Server) sendResult(conn *connection, action string, result *entity.TurnResult) error {
	result.Events = nil

	return conn.sendMessage(action, ResponsePayload{TurnResult: result})
}

func (that *Server) sendFailure(conn *connection, action string, err error) error {
	if errors.Is(err, apperror.ErrSessionNotFound) {
		return conn.sendError(action, apperror.ErrSessionNotFound)
	}

	that.logger.Error("failed to process message", "action", action, "error", err)

	return conn.sendError(action, errors.New("failed to process request"))
}
