package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rocketscienceinc/kalah-backend/internal/apperror"
	"github.com/rocketscienceinc/kalah-backend/internal/entity"
	"github.com/rocketscienceinc/kalah-backend/internal/pkg"
)

const (
	sessionCookie = "user_session"

	actionNew   = "new"
	actionPlay  = "play"
	actionState = "state"
	actionLeave = "leave"

	problemInternal = "Error occured while processing your request"
)

// apiHandler - POST /api with the form fields action and pitId. The game state is
// always returned, a rejected move only adds a problem to it.
func (that *Server) apiHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	sessionID := that.sessionID(w, r)
	action := r.FormValue("action")

	log := that.logger.With("method", "apiHandler", "sessionID", sessionID, "action", action)

	var (
		result *entity.TurnResult
		err    error
	)

	switch action {
	case actionNew:
		result, err = that.uGame.NewGame(ctx, sessionID)
	case actionPlay:
		result, err = that.play(r, sessionID)
	case actionState:
		result, err = that.uGame.GetState(ctx, sessionID)
	case actionLeave:
		err = that.uGame.LeaveGame(ctx, sessionID)
		if errors.Is(err, apperror.ErrSessionNotFound) {
			err = nil
		}
		result = &entity.TurnResult{}
	default:
		that.writeJSON(w, http.StatusBadRequest, &entity.TurnResult{Problem: apperror.ErrInvalidAction.Error()})
		return
	}

	if errors.Is(err, apperror.ErrSessionNotFound) {
		// no game yet: the client has to start one first
		that.writeJSON(w, http.StatusOK, &entity.TurnResult{})
		return
	}

	if err != nil {
		log.Error("failed to process request", "error", err)
		that.writeJSON(w, http.StatusInternalServerError, &entity.TurnResult{Problem: problemInternal})
		return
	}

	// events are streamed to watchers, the http api only returns the state
	result.Events = nil

	that.writeJSON(w, http.StatusOK, result)
}

func (that *Server) play(r *http.Request, sessionID string) (*entity.TurnResult, error) {
	pitID, err := strconv.Atoi(r.FormValue("pitId"))
	if err != nil {
		result, stateErr := that.uGame.GetState(r.Context(), sessionID)
		if stateErr != nil {
			return nil, stateErr
		}

		result.Problem = apperror.ErrInvalidPit.Error()

		return result, nil
	}

	return that.uGame.MakeTurn(r.Context(), sessionID, pitID)
}

// sessionID - the session of the client, a new one is issued when the cookie is missing.
func (that *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(sessionCookie)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	cookie = &http.Cookie{
		Name:     sessionCookie,
		Value:    pkg.GenerateNewSessionID(),
		Expires:  time.Now().Add(24 * time.Hour),
		Path:     "/",
		HttpOnly: true,
	}
	http.SetCookie(w, cookie)

	that.logger.Info("session cookie not found, new one created", "cookie", cookie.Value)

	return cookie.Value
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, result *entity.TurnResult) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(result); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
