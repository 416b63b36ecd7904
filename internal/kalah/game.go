package kalah

import (
	"fmt"
	"sync"

	"github.com/rocketscienceinc/kalah-backend/internal/apperror"
)

type Lifecycle int

const (
	NotStarted Lifecycle = iota
	Started
	Ended
)

func (that Lifecycle) String() string {
	switch that {
	case NotStarted:
		return "not_started"
	case Started:
		return "started"
	case Ended:
		return "ended"
	default:
		return fmt.Sprintf("lifecycle(%d)", int(that))
	}
}

// Game is one Kalah match between two players.
//
// All exported methods that read or change the board hold the game guard, so a whole
// turn is applied atomically with respect to other callers.
type Game struct {
	mu sync.Mutex

	conf     Configuration
	listener Listener

	players   [2]*Player
	current   *Player
	lifecycle Lifecycle
}

// NewGame - creates a game without players. A nil listener discards all events.
func NewGame(conf Configuration, listener Listener) *Game {
	if listener == nil {
		listener = NopListener{}
	}

	return &Game{
		conf:     conf,
		listener: listener,
	}
}

// New - builds a game with both players assigned and starts it.
func New(conf Configuration, listener Listener) (*Game, error) {
	game := NewGame(conf, listener)

	one, err := NewPlayer(conf, PlayerOne)
	if err != nil {
		return nil, fmt.Errorf("failed to create player one: %w", err)
	}

	two, err := NewPlayer(conf, PlayerTwo)
	if err != nil {
		return nil, fmt.Errorf("failed to create player two: %w", err)
	}

	if err = game.AssignPlayers(one, two); err != nil {
		return nil, err
	}

	if err = game.Start(); err != nil {
		return nil, err
	}

	return game, nil
}

// AssignPlayers - binds both players to the game. Players can be assigned only once.
func (that *Game) AssignPlayers(one, two *Player) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.players[0] != nil || that.players[1] != nil {
		return fmt.Errorf("%w: players already assigned", apperror.ErrInvalidState)
	}

	if one == nil || two == nil || one.id != PlayerOne || two.id != PlayerTwo {
		return fmt.Errorf("%w: players must have ids 1 and 2", apperror.ErrInvalidState)
	}

	if len(one.pits) != that.conf.pits || len(two.pits) != that.conf.pits {
		return fmt.Errorf("%w: players do not match %d pits per side", apperror.ErrInvalidState, that.conf.pits)
	}

	that.players = [2]*Player{one, two}

	return nil
}

// Start - moves the game from not started to started.
func (that *Game) Start() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.lifecycle != NotStarted {
		return fmt.Errorf("%w: game already %s", apperror.ErrInvalidState, that.lifecycle)
	}

	if that.players[0] == nil {
		return fmt.Errorf("%w: set players first", apperror.ErrInvalidState)
	}

	that.lifecycle = Started
	that.listener.GameStart()

	return nil
}

// End - finishes a started game. Pass nil for both players to record a tie.
func (that *Game) End(winner, loser *Player) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.end(winner, loser)
}

func (that *Game) end(winner, loser *Player) error {
	if that.lifecycle != Started {
		return fmt.Errorf("%w: game is %s", apperror.ErrInvalidState, that.lifecycle)
	}

	that.lifecycle = Ended
	that.listener.GameEnd(winner, loser)

	return nil
}

// CurrentPlayer - the player to move, player one until the turn first switches.
// Returns nil if no players were assigned.
func (that *Game) CurrentPlayer() *Player {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.currentPlayer()
}

func (that *Game) currentPlayer() *Player {
	if that.current == nil {
		that.current = that.players[0]
	}

	return that.current
}

// IsEndOfGame - the player whose pits are all empty, checking the current player first.
func (that *Game) IsEndOfGame() *Player {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.isEndOfGame()
}

func (that *Game) isEndOfGame() *Player {
	current := that.currentPlayer()
	if current == nil {
		return nil
	}

	if current.CountPitStones() == 0 {
		return current
	}

	if opponent := that.opponent(current); opponent != nil && opponent.CountPitStones() == 0 {
		return opponent
	}

	return nil
}

func (that *Game) Lifecycle() Lifecycle {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.lifecycle
}

func (that *Game) Configuration() Configuration {
	return that.conf
}

// Player - looks a player up by id.
func (that *Game) Player(id PlayerID) *Player {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.player(id)
}

func (that *Game) PlayerOne() *Player {
	return that.Player(PlayerOne)
}

func (that *Game) PlayerTwo() *Player {
	return that.Player(PlayerTwo)
}

func (that *Game) player(id PlayerID) *Player {
	switch id {
	case PlayerOne:
		return that.players[0]
	case PlayerTwo:
		return that.players[1]
	default:
		return nil
	}
}

func (that *Game) opponent(player *Player) *Player {
	if player == nil {
		return nil
	}

	if player.id == PlayerOne {
		return that.players[1]
	}

	return that.players[0]
}
