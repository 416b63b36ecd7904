package entity

import (
	"sync"

	"github.com/rocketscienceinc/kalah-backend/internal/kalah"
)

// Session binds one in-memory game to a client. Hold the session lock for a whole
// request so the move, its events and the returned state belong together.
type Session struct {
	sync.Mutex

	ID       string
	GameID   string
	Game     *kalah.Game
	Recorder *Recorder
}
