package kalah

import (
	"fmt"

	"github.com/rocketscienceinc/kalah-backend/internal/apperror"
)

// StoneContainer is a slot that holds stones: either a *Pit or a *Store.
type StoneContainer interface {
	Owner() PlayerID
	Stones() int
	String() string

	base() *container
	// receivedLast is called on the destination when a transfer emptied its source.
	// It reports whether the mover earned a free move.
	receivedLast(game *Game, normalMove bool) (bool, error)
}

type container struct {
	owner  PlayerID
	stones int
}

// Owner - the id of the player that owns the container.
func (that *container) Owner() PlayerID {
	return that.owner
}

// Stones - the number of stones currently held.
func (that *container) Stones() int {
	return that.stones
}

func (that *container) base() *container {
	return that
}

// acceptStone - places one stone into the container.
func (that *Game) acceptStone(dst StoneContainer) {
	dst.base().stones++
	that.listener.StoneAdded(dst)
}

// transferOneStone - moves a single stone from src to dst. When src runs empty the
// destination policy decides whether the move grants a free move.
func (that *Game) transferOneStone(src, dst StoneContainer, normalMove bool) (bool, error) {
	from := src.base()
	if from.stones == 0 {
		return false, fmt.Errorf("%w: %s has no stone to transfer", apperror.ErrInvalidState, src)
	}

	from.stones--
	that.acceptStone(dst)

	if from.stones > 0 {
		return false, nil
	}

	that.listener.ContainerEmpty(src)

	return dst.receivedLast(that, normalMove)
}

// transferAllStones - empties src into dst. Used for captures and the final sweep,
// so it never yields a free move.
func (that *Game) transferAllStones(src, dst StoneContainer) error {
	for src.Stones() > 0 {
		if _, err := that.transferOneStone(src, dst, false); err != nil {
			return err
		}
	}

	return nil
}
