package kalah

// Listener is notified synchronously while a game changes state. Callbacks run while the
// game guard is held, so they must not call any locking Game method (every exported one
// except Configuration).
// The players and containers passed in may be read.
type Listener interface {
	// GameStart is called once the game enters the started state.
	GameStart()
	// GameEnd is called when the game is over. Both players are nil on a tie.
	GameEnd(winner, loser *Player)
	// DistStart is called before the first stone leaves the pit.
	DistStart(player *Player, pit *Pit)
	// DistEnd is called after the last stone of the pit was placed.
	DistEnd(player *Player, pit *Pit)
	// PlayerSwitch is called when the turn passes to the other player.
	PlayerSwitch(player *Player)
	// FreeMove is called when the last stone landed in the player's own store.
	FreeMove(player *Player)
	ContainerEmpty(container StoneContainer)
	StoneAdded(container StoneContainer)
}

// NopListener ignores every event. Embed it to implement only the callbacks you need.
type NopListener struct{}

func (NopListener) GameStart()                      {}
func (NopListener) GameEnd(_, _ *Player)            {}
func (NopListener) DistStart(_ *Player, _ *Pit)     {}
func (NopListener) DistEnd(_ *Player, _ *Pit)       {}
func (NopListener) PlayerSwitch(_ *Player)          {}
func (NopListener) FreeMove(_ *Player)              {}
func (NopListener) ContainerEmpty(_ StoneContainer) {}
func (NopListener) StoneAdded(_ StoneContainer)     {}
