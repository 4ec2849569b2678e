package game

import "fmt"

// EventKind is the closed set of development card outcomes.
type EventKind int

const (
	// EventZombies spawns a zombie encounter; Value is the zombie count.
	EventZombies EventKind = iota
	// EventItem lets the player pick up an item drawn from the next card.
	EventItem
	// EventHealth adjusts health by the signed Value.
	EventHealth
)

var eventKindNames = map[EventKind]string{
	EventZombies: "ZOMBIES",
	EventItem:    "ITEM",
	EventHealth:  "HEALTH",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EVENT_%d", int(k))
}

// Event is one timed entry on a development card.
type Event struct {
	Kind  EventKind
	Value int    // zombie count or signed health delta
	Text  string // flavor line shown to the player
}

// DevCard is a development card. Entries holds one event per clock label;
// Item is the card's item row, read when another card triggers an item find.
type DevCard struct {
	ID      int
	Entries map[string]Event
	Item    string
}

// EventAt returns the card's event for the given clock label.
func (c *DevCard) EventAt(clock string) (Event, bool) {
	ev, ok := c.Entries[clock]
	return ev, ok
}

// Item attack and health effects. The bonus applies only to the item that
// was just picked up, keyed by exact name.
var itemAttackBonus = map[string]int{
	"Golf Club":        1,
	"Grisly Femur":     1,
	"Board with Nails": 1,
	"Machete":          2,
	"Chainsaw":         3,
}

var itemHealthBonus = map[string]int{
	"Soda Can": 2,
}

// itemOil negates the health cost of running from zombies and is consumed
// in the process.
const itemOil = "Oil"
