package kalah

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	events  []string
	winner  *Player
	loser   *Player
	ended   bool
	added   []StoneContainer
	emptied []StoneContainer
}

func (that *recorder) GameStart() {
	that.events = append(that.events, "game_start")
}

func (that *recorder) GameEnd(winner, loser *Player) {
	that.ended = true
	that.winner, that.loser = winner, loser
	that.events = append(that.events, "game_end:"+nameOf(winner)+":"+nameOf(loser))
}

func nameOf(player *Player) string {
	if player == nil {
		return "none"
	}

	return player.Name()
}

func (that *recorder) DistStart(player *Player, pit *Pit) {
	that.events = append(that.events, fmt.Sprintf("dist_start:%s:%d", player, pit.Index()))
}

func (that *recorder) DistEnd(player *Player, pit *Pit) {
	that.events = append(that.events, fmt.Sprintf("dist_end:%s:%d", player, pit.Index()))
}

func (that *recorder) PlayerSwitch(player *Player) {
	that.events = append(that.events, "player_switch:"+player.Name())
}

func (that *recorder) FreeMove(player *Player) {
	that.events = append(that.events, "free_move:"+player.Name())
}

func (that *recorder) ContainerEmpty(container StoneContainer) {
	that.emptied = append(that.emptied, container)
}

func (that *recorder) StoneAdded(container StoneContainer) {
	that.added = append(that.added, container)
}

func (that *recorder) has(event string) bool {
	for _, e := range that.events {
		if e == event {
			return true
		}
	}

	return false
}

// newTestGame - a started game with the given board size and a recording listener.
func newTestGame(t *testing.T, pits, stones int) (*Game, *recorder) {
	t.Helper()

	conf, err := NewConfiguration(pits, stones)
	require.NoError(t, err)

	rec := &recorder{}
	game, err := New(conf, rec)
	require.NoError(t, err)

	return game, rec
}

// setBoard - overwrites every container count of a game.
func setBoard(game *Game, one []int, oneStore int, two []int, twoStore int) {
	for i, stones := range one {
		game.players[0].pits[i].stones = stones
	}
	game.players[0].store.stones = oneStore

	for i, stones := range two {
		game.players[1].pits[i].stones = stones
	}
	game.players[1].store.stones = twoStore
}
