package websocket

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/kalah-backend/internal/apperror"
	"github.com/rocketscienceinc/kalah-backend/internal/entity"
	"github.com/rocketscienceinc/kalah-backend/internal/kalah"
	"github.com/rocketscienceinc/kalah-backend/internal/repository"
	"github.com/rocketscienceinc/kalah-backend/internal/usecase"
)

// memFeed delivers published events to the subscribers of the same process.
type memFeed struct {
	mu          sync.Mutex
	subscribers map[string][]chan entity.Event
}

func (that *memFeed) Publish(_ context.Context, gameID string, events []entity.Event) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	for _, subscriber := range that.subscribers[gameID] {
		for _, event := range events {
			subscriber <- event
		}
	}

	return nil
}

func (that *memFeed) Subscribe(_ context.Context, gameID string) (<-chan entity.Event, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	events := make(chan entity.Event, 1024)
	that.subscribers[gameID] = append(that.subscribers[gameID], events)

	return events, nil
}

func dial(t *testing.T) *websocket.Conn {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	feed := &memFeed{subscribers: make(map[string][]chan entity.Event)}
	manager := usecase.NewGameManager(logger, kalah.DefaultConfiguration(), repository.NewSessionRepository(), feed)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server := httptest.NewServer(New(logger, manager).Handler(ctx))
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"

	ws, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })
	defer resp.Body.Close()

	assert.Contains(t, resp.Header.Get("Set-Cookie"), sessionCookie+"=")

	return ws
}

func send(t *testing.T, ws *websocket.Conn, action string, payload any) {
	t.Helper()

	message := Message{Action: action}
	if payload != nil {
		payloadJSON, err := json.Marshal(payload)
		require.NoError(t, err)
		message.Payload = payloadJSON
	}

	require.NoError(t, ws.WriteJSON(message))
}

func receive(t *testing.T, ws *websocket.Conn) (string, ResponsePayload) {
	t.Helper()

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(5*time.Second)))

	var message Message
	require.NoError(t, ws.ReadJSON(&message))

	var payload ResponsePayload
	require.NoError(t, json.Unmarshal(message.Payload, &payload))

	return message.Action, payload
}

func pit(index int) *int {
	return &index
}

func TestServer(t *testing.T) {
	t.Run("New game and a turn", func(t *testing.T) {
		// Given: a connected client
		ws := dial(t)

		// When: starting a game
		send(t, ws, actionNewGame, nil)
		action, created := receive(t, ws)

		// Then: the new game is returned
		require.Equal(t, actionNewGame, action)
		require.NotNil(t, created.TurnResult)
		require.NotNil(t, created.Game)
		assert.Equal(t, 1, created.Game.CurrentPlayer)

		// When: playing pit 2
		send(t, ws, actionGameTurn, RequestPayload{PitID: pit(2)})
		action, played := receive(t, ws)

		// Then: the turn passes to player two
		require.Equal(t, actionGameTurn, action)
		assert.Equal(t, created.Game.ID, played.Game.ID)
		assert.Equal(t, []int{6, 6, 0, 7, 7, 7}, played.Game.PlayerOne.Pits)
		assert.Equal(t, 2, played.Game.CurrentPlayer)

		// When: asking for the state
		send(t, ws, actionGameState, nil)
		action, state := receive(t, ws)

		// Then: the same board is returned
		require.Equal(t, actionGameState, action)
		assert.Equal(t, played.Game, state.Game)
	})

	t.Run("Problems and errors", func(t *testing.T) {
		// Given: a connected client without a game
		ws := dial(t)

		// When: asking for the state
		send(t, ws, actionGameState, nil)
		_, payload := receive(t, ws)

		// Then: the session has no game
		assert.Equal(t, apperror.ErrSessionNotFound.Error(), payload.Error)

		// When: sending an unknown action
		send(t, ws, "game:jump", nil)
		action, payload := receive(t, ws)

		// Then: the action is rejected
		assert.Equal(t, "game:jump", action)
		assert.Equal(t, apperror.ErrInvalidAction.Error(), payload.Error)

		// When: playing without a pit
		send(t, ws, actionNewGame, nil)
		receive(t, ws)
		send(t, ws, actionGameTurn, RequestPayload{})
		_, payload = receive(t, ws)

		// Then: the pit is required
		assert.Equal(t, errPitRequired.Error(), payload.Error)

		// When: sending a pit id that is not a number
		require.NoError(t, ws.WriteMessage(websocket.TextMessage, []byte(`{"action":"game:turn","payload":{"pitId":"two"}}`)))
		action, payload = receive(t, ws)

		// Then: the malformed payload is answered
		assert.Equal(t, actionGameTurn, action)
		assert.Equal(t, errMalformedPayload.Error(), payload.Error)

		// When: playing an empty pit after a free move
		send(t, ws, actionGameTurn, RequestPayload{PitID: pit(0)})
		_, payload = receive(t, ws)
		require.Equal(t, "Player1", payload.FreeMovePlayer)

		send(t, ws, actionGameTurn, RequestPayload{PitID: pit(0)})
		_, payload = receive(t, ws)

		// Then: the problem is reported with the state
		assert.Contains(t, payload.Problem, apperror.ErrEmptyPit.Error())
		assert.Equal(t, 1, payload.Game.CurrentPlayer)
	})

	t.Run("Watch streams events", func(t *testing.T) {
		// Given: a client watching its own game
		ws := dial(t)

		send(t, ws, actionNewGame, nil)
		_, created := receive(t, ws)

		send(t, ws, actionGameWatch, nil)
		action, _ := receive(t, ws)
		require.Equal(t, actionGameWatch, action)

		// When: playing pit 2
		send(t, ws, actionGameTurn, RequestPayload{PitID: pit(2)})

		// Then: the turn result and its events arrive
		var (
			turnSeen bool
			events   []entity.Event
		)

		for !turnSeen || len(events) == 0 || events[len(events)-1].Type != entity.EventPlayerSwitch {
			action, payload := receive(t, ws)

			switch action {
			case actionGameTurn:
				turnSeen = true
			case actionGameEvent:
				require.NotNil(t, payload.Event)
				events = append(events, *payload.Event)
			}
		}

		assert.Equal(t, entity.EventDistStart, events[0].Type)
		for _, event := range events {
			assert.Equal(t, created.Game.ID, event.GameID)
		}
	})

	t.Run("Leave", func(t *testing.T) {
		// Given: a client with a game
		ws := dial(t)

		send(t, ws, actionNewGame, nil)
		receive(t, ws)

		// When: leaving
		send(t, ws, actionGameLeave, nil)
		action, payload := receive(t, ws)

		// Then: the game is gone
		require.Equal(t, actionGameLeave, action)
		assert.Empty(t, payload.Error)

		send(t, ws, actionGameState, nil)
		_, payload = receive(t, ws)
		assert.Equal(t, apperror.ErrSessionNotFound.Error(), payload.Error)
	})
}
