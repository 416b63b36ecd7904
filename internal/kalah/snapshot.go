package kalah

// Snapshot is a consistent copy of the board taken between turns.
type Snapshot struct {
	Configuration Configuration
	Lifecycle     Lifecycle
	CurrentPlayer PlayerID
	Players       []PlayerSnapshot
}

type PlayerSnapshot struct {
	ID    PlayerID
	Name  string
	Pits  []int
	Store int
}

// Snapshot - copies the counts of every container under the game guard.
func (that *Game) Snapshot() Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	snapshot := Snapshot{
		Configuration: that.conf,
		Lifecycle:     that.lifecycle,
	}

	if current := that.currentPlayer(); current != nil {
		snapshot.CurrentPlayer = current.id
	}

	for _, player := range that.players {
		if player == nil {
			continue
		}

		pits := make([]int, len(player.pits))
		for i, pit := range player.pits {
			pits[i] = pit.stones
		}

		snapshot.Players = append(snapshot.Players, PlayerSnapshot{
			ID:    player.id,
			Name:  player.Name(),
			Pits:  pits,
			Store: player.store.stones,
		})
	}

	return snapshot
}

// TotalStones - sum over every pit and store in the snapshot.
func (that Snapshot) TotalStones() int {
	sum := 0
	for _, player := range that.Players {
		sum += player.Store
		for _, stones := range player.Pits {
			sum += stones
		}
	}

	return sum
}
