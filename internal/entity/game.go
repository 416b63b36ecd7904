package entity

import (
	"github.com/rocketscienceinc/kalah-backend/internal/kalah"
)

const (
	StatusNotStarted = "not_started"
	StatusOngoing    = "started"
	StatusFinished   = "ended"
)

type Configuration struct {
	Pits   int `json:"pits"`
	Stones int `json:"stones"`
}

// Game is the client representation of a Kalah board.
type Game struct {
	ID            string        `json:"id"`
	Configuration Configuration `json:"configuration"`
	Status        string        `json:"status"`
	CurrentPlayer int           `json:"currentPlayer"`
	PlayerOne     *Player       `json:"playerOne"`
	PlayerTwo     *Player       `json:"playerTwo"`
}

// NewGame - builds the client representation from a board snapshot.
func NewGame(id string, snapshot kalah.Snapshot) *Game {
	game := &Game{
		ID: id,
		Configuration: Configuration{
			Pits:   snapshot.Configuration.Pits(),
			Stones: snapshot.Configuration.Stones(),
		},
		Status:        snapshot.Lifecycle.String(),
		CurrentPlayer: int(snapshot.CurrentPlayer),
	}

	for _, player := range snapshot.Players {
		switch player.ID {
		case kalah.PlayerOne:
			game.PlayerOne = NewPlayer(player)
		case kalah.PlayerTwo:
			game.PlayerTwo = NewPlayer(player)
		}
	}

	return game
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}
