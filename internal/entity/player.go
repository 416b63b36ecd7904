package entity

import "github.com/rocketscienceinc/kalah-backend/internal/kalah"

type Player struct {
	ID    int    `json:"playerId"`
	Name  string `json:"playerName"`
	Pits  []int  `json:"pits"`
	Store int    `json:"store"`
}

func NewPlayer(snapshot kalah.PlayerSnapshot) *Player {
	return &Player{
		ID:    int(snapshot.ID),
		Name:  snapshot.Name,
		Pits:  snapshot.Pits,
		Store: snapshot.Store,
	}
}
