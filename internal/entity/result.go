package entity

// TurnResult is what a client gets back after every request on its game.
type TurnResult struct {
	Game           *Game   `json:"game"`
	Problem        string  `json:"problem,omitempty"`
	FreeMovePlayer string  `json:"freeMovePlayer,omitempty"`
	Winner         string  `json:"winner,omitempty"`
	Loser          string  `json:"loser,omitempty"`
	Tied           bool    `json:"tied,omitempty"`
	Events         []Event `json:"events,omitempty"`
}
