package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/kalah-backend/internal/apperror"
	"github.com/rocketscienceinc/kalah-backend/internal/entity"
)

const (
	actionNewGame   = "game:new"
	actionGameTurn  = "game:turn"
	actionGameState = "game:state"
	actionGameWatch = "game:watch"
	actionGameLeave = "game:leave"
	actionGameEvent = "game:event"
)

const writeTimeout = 10 * time.Second

var (
	errUnknownAction    = apperror.ErrInvalidAction
	errPitRequired      = errors.New("pitId is required")
	errMalformedPayload = errors.New("malformed payload")
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	PitID *int `json:"pitId,omitempty"`
}

type ResponsePayload struct {
	*entity.TurnResult

	Event *entity.Event `json:"event,omitempty"`
	Error string        `json:"error,omitempty"`
}

// connection serializes writes, gorilla connections allow one concurrent writer.
type connection struct {
	ws        *websocket.Conn
	sessionID string

	mu        sync.Mutex
	stopWatch func()
}

func newConnection(ws *websocket.Conn, sessionID string) *connection {
	return &connection{
		ws:        ws,
		sessionID: sessionID,
	}
}

func (that *connection) sendMessage(action string, payload ResponsePayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if err = that.ws.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = that.ws.WriteJSON(Message{Action: action, Payload: payloadJSON}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *connection) sendError(action string, err error) error {
	return that.sendMessage(action, ResponsePayload{Error: err.Error()})
}

// watch - replaces the running watch of the connection.
func (that *connection) watch(stop func()) {
	that.mu.Lock()
	previous := that.stopWatch
	that.stopWatch = stop
	that.mu.Unlock()

	if previous != nil {
		previous()
	}
}

func (that *connection) close() {
	that.watch(nil)
	_ = that.ws.Close()
}
