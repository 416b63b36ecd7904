package kalah

import (
	"fmt"

	"github.com/rocketscienceinc/kalah-backend/internal/apperror"
)

const (
	DefaultPits   = 6
	DefaultStones = 6
)

// Configuration holds the immutable board parameters of a game.
type Configuration struct {
	pits   int
	stones int
}

// NewConfiguration - validates and builds a board configuration.
func NewConfiguration(pits, stones int) (Configuration, error) {
	if pits < 1 {
		return Configuration{}, fmt.Errorf("%w: pits per side %d", apperror.ErrInvalidConfiguration, pits)
	}

	if stones < 0 {
		return Configuration{}, fmt.Errorf("%w: stones per pit %d", apperror.ErrInvalidConfiguration, stones)
	}

	return Configuration{pits: pits, stones: stones}, nil
}

// DefaultConfiguration - the standard six pits with six stones each.
func DefaultConfiguration() Configuration {
	return Configuration{pits: DefaultPits, stones: DefaultStones}
}

func (that Configuration) Pits() int {
	return that.pits
}

func (that Configuration) Stones() int {
	return that.stones
}

// TotalStones - the number of stones on the board for the whole game.
func (that Configuration) TotalStones() int {
	return 2 * that.pits * that.stones
}
