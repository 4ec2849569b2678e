package game

// Coordinate addresses a cell on the sparse board grid. Row grows south,
// column grows east.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Neighbor returns the coordinate one step in the given direction.
func (c Coordinate) Neighbor(d Direction) Coordinate {
	switch d {
	case North:
		return Coordinate{Row: c.Row - 1, Col: c.Col}
	case South:
		return Coordinate{Row: c.Row + 1, Col: c.Col}
	case East:
		return Coordinate{Row: c.Row, Col: c.Col + 1}
	default:
		return Coordinate{Row: c.Row, Col: c.Col - 1}
	}
}

// Player is the single actor's mutable state. It is owned and mutated
// exclusively by the game session.
type Player struct {
	Location Coordinate
	Health   int
	Attack   int
	Items    []string
	HasTotem bool
}

// NewPlayer creates a player at the start location with baseline stats.
func NewPlayer(start Coordinate, health, attack int) *Player {
	return &Player{
		Location: start,
		Health:   health,
		Attack:   attack,
		Items:    make([]string, 0, 2),
	}
}

// TakeDamage lowers health. Health may go to zero or below; the session
// checks for the terminal condition afterwards.
func (p *Player) TakeDamage(amount int) {
	p.Health -= amount
}

// HasItem reports whether the named item is carried.
func (p *Player) HasItem(name string) bool {
	for _, item := range p.Items {
		if item == name {
			return true
		}
	}
	return false
}

// RemoveItem drops the first carried item with the given name and reports
// whether one was found.
func (p *Player) RemoveItem(name string) bool {
	for i, item := range p.Items {
		if item == name {
			p.Items = append(p.Items[:i:i], p.Items[i+1:]...)
			return true
		}
	}
	return false
}
