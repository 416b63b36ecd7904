package kalah

import (
	"fmt"

	"github.com/rocketscienceinc/kalah-backend/internal/apperror"
)

// DistributeFromPit - plays a turn for the player: sows the stones of the chosen pit around
// the ring, applies captures and free moves, and resolves the end of the turn.
// A rejected move leaves the game untouched.
func (that *Game) DistributeFromPit(id PlayerID, pitID int) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.lifecycle != Started {
		return fmt.Errorf("%w: game is %s", apperror.ErrInvalidState, that.lifecycle)
	}

	player := that.currentPlayer()
	if player == nil {
		return fmt.Errorf("%w: set players first", apperror.ErrInvalidState)
	}

	if player.id != id {
		return fmt.Errorf("%w: %s", apperror.ErrNotYourTurn, playerName(id))
	}

	pit, ok := player.Pit(pitID)
	if !ok {
		return fmt.Errorf("%w: pit %d", apperror.ErrInvalidPit, pitID)
	}

	if pit.stones == 0 {
		return fmt.Errorf("%w: pit %d", apperror.ErrEmptyPit, pitID)
	}

	opponent := that.opponent(player)
	if opponent == nil || opponent == player {
		return fmt.Errorf("%w: could not determine opposite player", apperror.ErrInvalidState)
	}

	freeMove, err := that.distribute(player, opponent, pit)
	if err != nil {
		return err
	}

	return that.completeTurn(opponent, freeMove)
}

// ring - the sowing order for the player: own pits, own store, then the opponent's pits.
// The opponent's store is never part of it.
func ring(player, opponent *Player) []StoneContainer {
	containers := make([]StoneContainer, 0, 2*len(player.pits)+1)
	for _, pit := range player.pits {
		containers = append(containers, pit)
	}

	containers = append(containers, player.store)

	for _, pit := range opponent.pits {
		containers = append(containers, pit)
	}

	return containers
}

func (that *Game) distribute(player, opponent *Player, source *Pit) (bool, error) {
	containers := ring(player, opponent)

	that.listener.DistStart(player, source)

	// only the final placement decides about the free move
	freeMove := false
	position := source.index

	for remaining := source.stones; remaining > 0; remaining-- {
		position = (position + 1) % len(containers)

		granted, err := that.transferOneStone(source, containers[position], true)
		if err != nil {
			return false, fmt.Errorf("failed to distribute from %s: %w", source, err)
		}

		freeMove = granted
	}

	that.listener.DistEnd(player, source)

	return freeMove, nil
}

// completeTurn - ends the game if a side ran out of stones, otherwise passes the turn
// unless the mover earned a free move.
func (that *Game) completeTurn(opponent *Player, freeMove bool) error {
	if emptied := that.isEndOfGame(); emptied != nil {
		rest := that.opponent(emptied)
		for _, pit := range rest.pits {
			if err := that.transferAllStones(pit, rest.store); err != nil {
				return fmt.Errorf("failed to sweep %s: %w", pit, err)
			}
		}

		winner, loser := that.result()

		return that.end(winner, loser)
	}

	if !freeMove {
		that.current = opponent
		that.listener.PlayerSwitch(opponent)
	}

	return nil
}

// result - the player with strictly more stones in the store wins, nil for both on a tie.
func (that *Game) result() (*Player, *Player) {
	one, two := that.players[0], that.players[1]

	switch oneScore, twoScore := one.CountStoreStones(), two.CountStoreStones(); {
	case oneScore > twoScore:
		return one, two
	case oneScore < twoScore:
		return two, one
	default:
		return nil, nil
	}
}
