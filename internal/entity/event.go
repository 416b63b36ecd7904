package entity

const (
	EventGameStart      = "game_start"
	EventGameEnd        = "game_end"
	EventDistStart      = "dist_start"
	EventDistEnd        = "dist_end"
	EventPlayerSwitch   = "player_switch"
	EventFreeMove       = "free_move"
	EventContainerEmpty = "container_empty"
	EventStoneAdded     = "stone_added"
)

const (
	ContainerPit   = "pit"
	ContainerStore = "store"
)

// Event is one engine notification as published to watchers.
type Event struct {
	Type      string `json:"type"`
	GameID    string `json:"gameId,omitempty"`
	Player    int    `json:"player,omitempty"`
	Container string `json:"container,omitempty"`
	Pit       *int   `json:"pit,omitempty"`
	Stones    int    `json:"stones,omitempty"`
	Winner    int    `json:"winner,omitempty"`
	Loser     int    `json:"loser,omitempty"`
}
