package entity

import (
	"testing"

	"github.com/rocketscienceinc/kalah-backend/internal/kalah"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	t.Run("Records a free move", func(t *testing.T) {
		// Given: a default game with a recorder
		recorder := NewRecorder("g1")
		game, err := kalah.New(kalah.DefaultConfiguration(), recorder)
		require.NoError(t, err)
		require.Equal(t, []Event{{Type: EventGameStart, GameID: "g1"}}, recorder.Drain())

		// When: player one sows pit 0 into its store
		require.NoError(t, game.DistributeFromPit(kalah.PlayerOne, 0))

		// Then: the free move is reported
		assert.Equal(t, "Player1", recorder.FreeMovePlayer())

		events := recorder.Drain()
		require.NotEmpty(t, events)
		assert.Equal(t, EventDistStart, events[0].Type)
		require.NotNil(t, events[0].Pit)
		assert.Equal(t, 0, *events[0].Pit)
		assert.Equal(t, EventDistEnd, events[len(events)-1].Type)

		// Then: the last stone went to the store, followed by the pit running empty
		var types []string
		for _, event := range events {
			types = append(types, event.Type)
		}
		assert.Contains(t, types, EventFreeMove)
		assert.NotContains(t, types, EventPlayerSwitch)
		assert.Contains(t, events, Event{
			Type: EventStoneAdded, GameID: "g1", Player: 1, Container: ContainerStore, Stones: 1,
		})

		// Then: drained events are gone
		assert.Empty(t, recorder.Drain())
	})

	t.Run("Free move is reset by the next distribution", func(t *testing.T) {
		// Given: player one just earned a free move
		recorder := NewRecorder("g2")
		game, err := kalah.New(kalah.DefaultConfiguration(), recorder)
		require.NoError(t, err)
		require.NoError(t, game.DistributeFromPit(kalah.PlayerOne, 0))

		// When: player one plays another pit ending on the opponent's side
		require.NoError(t, game.DistributeFromPit(kalah.PlayerOne, 1))

		// Then: no free move is reported anymore
		assert.Empty(t, recorder.FreeMovePlayer())
	})

	t.Run("Records the result", func(t *testing.T) {
		// Given: a single pit game
		recorder := NewRecorder("g3")
		conf, err := kalah.NewConfiguration(1, 1)
		require.NoError(t, err)
		game, err := kalah.New(conf, recorder)
		require.NoError(t, err)

		// When: player one ends the game
		require.NoError(t, game.DistributeFromPit(kalah.PlayerOne, 0))

		// Then: the game ended in a tie
		winner, loser, ended := recorder.Result()
		assert.True(t, ended)
		assert.Empty(t, winner)
		assert.Empty(t, loser)
	})
}
