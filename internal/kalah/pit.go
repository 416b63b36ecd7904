package kalah

import (
	"fmt"
)

// Pit is one of the playable holes on a player's side of the board.
type Pit struct {
	container
	index int
}

func newPit(owner PlayerID, index, stones int) *Pit {
	return &Pit{
		container: container{owner: owner, stones: stones},
		index:     index,
	}
}

// Index - position of the pit on its owner's side, starting at 0.
func (that *Pit) Index() int {
	return that.index
}

func (that *Pit) String() string {
	return fmt.Sprintf("pit %d of %s (%d stones)", that.index, playerName(that.owner), that.stones)
}

// receivedLast - captures the opposite pit when the mover's last stone lands in one of
// their own pits that was empty. A capture never grants a free move.
func (that *Pit) receivedLast(game *Game, normalMove bool) (bool, error) {
	if !normalMove || that.stones != 1 {
		return false, nil
	}

	current := game.currentPlayer()
	if current == nil || current.id != that.owner {
		return false, nil
	}

	opponent := game.opponent(current)
	if opponent == nil {
		return false, nil
	}

	opposite := opponent.pits[game.conf.pits-1-that.index]
	if opposite.stones == 0 {
		return false, nil
	}

	if err := game.transferAllStones(opposite, current.store); err != nil {
		return false, fmt.Errorf("failed to capture %s: %w", opposite, err)
	}

	if _, err := game.transferOneStone(that, current.store, false); err != nil {
		return false, fmt.Errorf("failed to capture %s: %w", that, err)
	}

	return false, nil
}
