package farm

import (
	"fmt"

	"github.com/vovakirdan/tui-farm/internal/core"
)

// EventKind identifies a notification raised by a farm operation.
type EventKind int

const (
	EventTurnAdvanced EventKind = iota
	EventPlanted
	EventOccupied
	EventReaped
	EventWin
)

// String returns a short machine-friendly name, used as the log key.
func (k EventKind) String() string {
	switch k {
	case EventTurnAdvanced:
		return "turn"
	case EventPlanted:
		return "planted"
	case EventOccupied:
		return "occupied"
	case EventReaped:
		return "reaped"
	case EventWin:
		return "win"
	default:
		return "unknown"
	}
}

// Event is a notification about something that happened on the farm.
// Fields not relevant to the kind are zero.
type Event struct {
	Kind   EventKind
	Turn   int        // turn counter when the event happened
	Pos    core.Point // affected cell for planted/occupied/reaped
	Plant  PlantKind  // kind sown, found or reaped
	Level  int        // plant level for reaped
	Mature int        // mature plant count for win
}

// Message returns the player-facing text of the event.
func (e Event) Message() string {
	switch e.Kind {
	case EventTurnAdvanced:
		return "Turn advanced!"
	case EventPlanted:
		return fmt.Sprintf("Planted %s", e.Plant)
	case EventOccupied:
		return "Cell already contains a plant!"
	case EventReaped:
		return fmt.Sprintf("Reaped %s!", e.Plant)
	case EventWin:
		return "You win!"
	default:
		return ""
	}
}

// Fields returns structured key/value pairs for loggers.
func (e Event) Fields() []any {
	fields := []any{"event", e.Kind.String(), "turn", e.Turn}
	switch e.Kind {
	case EventPlanted, EventOccupied:
		fields = append(fields, "x", e.Pos.X, "y", e.Pos.Y, "kind", e.Plant.String())
	case EventReaped:
		fields = append(fields, "x", e.Pos.X, "y", e.Pos.Y, "kind", e.Plant.String(), "level", e.Level)
	case EventWin:
		fields = append(fields, "mature", e.Mature)
	}
	return fields
}
