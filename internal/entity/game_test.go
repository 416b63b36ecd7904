package entity

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/kalah-backend/internal/kalah"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	t.Run("Copies the board from a snapshot", func(t *testing.T) {
		// Given: a started default game
		game, err := kalah.New(kalah.DefaultConfiguration(), nil)
		require.NoError(t, err)

		// When: building the client representation
		actual := NewGame("123", game.Snapshot())

		// Then: it should mirror the board
		expected := &Game{
			ID:            "123",
			Configuration: Configuration{Pits: 6, Stones: 6},
			Status:        StatusOngoing,
			CurrentPlayer: 1,
			PlayerOne: &Player{
				ID: 1, Name: "Player1", Pits: []int{6, 6, 6, 6, 6, 6}, Store: 0,
			},
			PlayerTwo: &Player{
				ID: 2, Name: "Player2", Pits: []int{6, 6, 6, 6, 6, 6}, Store: 0,
			},
		}

		require.Equal(t, expected, actual)
		assert.True(t, actual.IsOngoing())
		assert.False(t, actual.IsFinished())
	})

	t.Run("Serializes with the client field names", func(t *testing.T) {
		// Given: a game after a move
		game, err := kalah.New(kalah.DefaultConfiguration(), nil)
		require.NoError(t, err)
		require.NoError(t, game.DistributeFromPit(kalah.PlayerOne, 2))

		// When: encoding it as JSON
		data, err := json.Marshal(NewGame("abc", game.Snapshot()))
		require.NoError(t, err)

		// Then: the payload carries the configuration, the turn and both players
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, "abc", decoded["id"])
		assert.EqualValues(t, 2, decoded["currentPlayer"])
		assert.Equal(t, map[string]any{"pits": float64(6), "stones": float64(6)}, decoded["configuration"])

		playerOne, ok := decoded["playerOne"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Player1", playerOne["playerName"])
		assert.EqualValues(t, 1, playerOne["store"])
	})

	t.Run("Finished game", func(t *testing.T) {
		// Given: a game that was ended
		game, err := kalah.New(kalah.DefaultConfiguration(), nil)
		require.NoError(t, err)
		require.NoError(t, game.End(nil, nil))

		// When: building the client representation
		actual := NewGame("1", game.Snapshot())

		// Then: it should be finished
		assert.True(t, actual.IsFinished())
		assert.Equal(t, StatusFinished, actual.Status)
	})
}
