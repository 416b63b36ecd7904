package entity

import (
	"github.com/rocketscienceinc/kalah-backend/internal/kalah"
)

// Recorder collects engine notifications of one game as events and keeps track of
// the free move and the result the way clients report them.
type Recorder struct {
	gameID string
	events []Event

	freeMovePlayer string
	ended          bool
	winner         string
	loser          string
}

func NewRecorder(gameID string) *Recorder {
	return &Recorder{gameID: gameID}
}

// Drain - returns the events recorded since the last call and forgets them.
func (that *Recorder) Drain() []Event {
	events := that.events
	that.events = nil

	return events
}

// FreeMovePlayer - the name of the player that earned a free move in the last distribution.
func (that *Recorder) FreeMovePlayer() string {
	return that.freeMovePlayer
}

// Result - the winner and loser names once the game ended; both empty on a tie.
func (that *Recorder) Result() (winner, loser string, ended bool) {
	return that.winner, that.loser, that.ended
}

func (that *Recorder) GameStart() {
	that.add(Event{Type: EventGameStart})
}

func (that *Recorder) GameEnd(winner, loser *kalah.Player) {
	that.ended = true
	event := Event{Type: EventGameEnd}

	if winner != nil && loser != nil {
		that.winner, that.loser = winner.Name(), loser.Name()
		event.Winner, event.Loser = int(winner.ID()), int(loser.ID())
	}

	that.add(event)
}

func (that *Recorder) DistStart(player *kalah.Player, pit *kalah.Pit) {
	that.freeMovePlayer = ""
	that.add(pitEvent(EventDistStart, player.ID(), pit))
}

func (that *Recorder) DistEnd(player *kalah.Player, pit *kalah.Pit) {
	that.add(pitEvent(EventDistEnd, player.ID(), pit))
}

func (that *Recorder) PlayerSwitch(player *kalah.Player) {
	that.add(Event{Type: EventPlayerSwitch, Player: int(player.ID())})
}

func (that *Recorder) FreeMove(player *kalah.Player) {
	that.freeMovePlayer = player.Name()
	that.add(Event{Type: EventFreeMove, Player: int(player.ID())})
}

func (that *Recorder) ContainerEmpty(container kalah.StoneContainer) {
	that.add(containerEvent(EventContainerEmpty, container))
}

func (that *Recorder) StoneAdded(container kalah.StoneContainer) {
	that.add(containerEvent(EventStoneAdded, container))
}

func (that *Recorder) add(event Event) {
	event.GameID = that.gameID
	that.events = append(that.events, event)
}

func pitEvent(eventType string, player kalah.PlayerID, pit *kalah.Pit) Event {
	index := pit.Index()

	return Event{
		Type:      eventType,
		Player:    int(player),
		Container: ContainerPit,
		Pit:       &index,
		Stones:    pit.Stones(),
	}
}

func containerEvent(eventType string, container kalah.StoneContainer) Event {
	event := Event{
		Type:      eventType,
		Player:    int(container.Owner()),
		Container: ContainerStore,
		Stones:    container.Stones(),
	}

	if pit, ok := container.(*kalah.Pit); ok {
		index := pit.Index()
		event.Container = ContainerPit
		event.Pit = &index
	}

	return event
}
