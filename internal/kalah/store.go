package kalah

import (
	"fmt"
)

// Store is a player's scoring container. Stones in a store are out of play.
type Store struct {
	container
}

func newStore(owner PlayerID) *Store {
	return &Store{container: container{owner: owner}}
}

func (that *Store) String() string {
	return fmt.Sprintf("store of %s (%d stones)", playerName(that.owner), that.stones)
}

// receivedLast - the last stone of a normal move landing here gives its owner another turn.
func (that *Store) receivedLast(game *Game, normalMove bool) (bool, error) {
	if !normalMove {
		return false, nil
	}

	game.listener.FreeMove(game.player(that.owner))

	return true, nil
}
