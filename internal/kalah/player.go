package kalah

import (
	"fmt"

	"github.com/rocketscienceinc/kalah-backend/internal/apperror"
)

type PlayerID int

const (
	PlayerOne PlayerID = 1
	PlayerTwo PlayerID = 2
)

// Player owns one side of the board: its pits in index order and a store.
type Player struct {
	id    PlayerID
	pits  []*Pit
	store *Store
}

// NewPlayer - creates a player with every pit filled with the configured amount of stones.
func NewPlayer(conf Configuration, id PlayerID) (*Player, error) {
	if id != PlayerOne && id != PlayerTwo {
		return nil, fmt.Errorf("%w: unknown player id %d", apperror.ErrInvalidState, id)
	}

	pits := make([]*Pit, conf.pits)
	for i := range pits {
		pits[i] = newPit(id, i, conf.stones)
	}

	return &Player{
		id:    id,
		pits:  pits,
		store: newStore(id),
	}, nil
}

func (that *Player) ID() PlayerID {
	return that.id
}

func (that *Player) Name() string {
	return playerName(that.id)
}

// Pits - the player's pits in index order. The slice is a copy, the pits are not.
// Like every Player accessor it reads live state without the game guard: use it between
// moves or from a Listener callback, and Game.Snapshot everywhere else.
func (that *Player) Pits() []*Pit {
	pits := make([]*Pit, len(that.pits))
	copy(pits, that.pits)

	return pits
}

// Pit - looks up one of the player's pits by index.
func (that *Player) Pit(index int) (*Pit, bool) {
	if index < 0 || index >= len(that.pits) {
		return nil, false
	}

	return that.pits[index], true
}

func (that *Player) Store() *Store {
	return that.store
}

// CountPitStones - sum of the stones still in play on this side.
func (that *Player) CountPitStones() int {
	sum := 0
	for _, pit := range that.pits {
		sum += pit.stones
	}

	return sum
}

// CountStoreStones - the player's score.
func (that *Player) CountStoreStones() int {
	return that.store.stones
}

func (that *Player) String() string {
	return that.Name()
}

func playerName(id PlayerID) string {
	return fmt.Sprintf("Player%d", id)
}
