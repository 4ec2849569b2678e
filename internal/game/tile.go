package game

import "fmt"

// Direction is one of the four cardinal directions a tile exit can face.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

var directionNames = map[Direction]string{
	North: "N",
	East:  "E",
	South: "S",
	West:  "W",
}

// Directions lists the four cardinals in N, E, S, W order.
var Directions = []Direction{North, East, South, West}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("DIRECTION_%d", int(d))
}

// Opposite returns the facing direction (N<->S, E<->W).
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// ParseDirection converts a single-letter direction command ("N", "e", ...)
// into a Direction. Returns ErrInvalidDirection for anything else.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "N", "n":
		return North, nil
	case "E", "e":
		return East, nil
	case "S", "s":
		return South, nil
	case "W", "w":
		return West, nil
	}
	return North, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Category describes which deck a tile belongs to.
type Category int

const (
	Indoor Category = iota
	Outdoor
	Special
)

var categoryNames = map[Category]string{
	Indoor:  "Indoor",
	Outdoor: "Outdoor",
	Special: "Special",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CATEGORY_%d", int(c))
}

// Tile is a single room cell on the board. Exits mark which sides have an
// opening. SpriteIndex and Rotations together form the visual handle passed
// through to observers; the engine never interprets them.
type Tile struct {
	Name        string
	Category    Category
	SpriteIndex int

	exits     map[Direction]bool
	rotations int // quarter turns applied so far, 0-3
}

// NewTile creates a tile with the given open sides.
func NewTile(name string, category Category, spriteIndex int, exits ...Direction) *Tile {
	t := &Tile{
		Name:        name,
		Category:    category,
		SpriteIndex: spriteIndex,
		exits:       make(map[Direction]bool, 4),
	}
	for _, d := range exits {
		t.exits[d] = true
	}
	return t
}

// HasExit reports whether side d is open.
func (t *Tile) HasExit(d Direction) bool {
	return t.exits[d]
}

// PossibleExits returns the currently open sides in N, E, S, W order.
func (t *Tile) PossibleExits() []Direction {
	out := make([]Direction, 0, 4)
	for _, d := range Directions {
		if t.exits[d] {
			out = append(out, d)
		}
	}
	return out
}

// AddExit forces side d open, for wall bashing.
func (t *Tile) AddExit(d Direction) error {
	if d < North || d > West {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	t.exits[d] = true
	return nil
}

// Rotations returns the number of clockwise quarter turns applied to the
// tile since it was drawn. Renderers use it to orient the sprite.
func (t *Tile) Rotations() int {
	return t.rotations
}

// rotationTable[exit][entry] is the number of clockwise quarter turns that
// align the tile side meaning entry with the direction exit required by the
// approaching player.
var rotationTable = map[Direction]map[Direction]int{
	North: {North: 2, East: 1, South: 0, West: 3},
	East:  {North: 3, East: 2, South: 1, West: 0},
	South: {North: 0, East: 3, South: 2, West: 1},
	West:  {North: 1, East: 0, South: 3, West: 2},
}

// Rotate reorients the tile in place so that the side previously meaning
// entry faces the direction exit, and returns the tile for chaining.
func (t *Tile) Rotate(entry, exit Direction) *Tile {
	for i := 0; i < rotationTable[exit][entry]; i++ {
		t.rotateClockwise()
	}
	return t
}

// rotateClockwise remaps each side one quarter turn: the new north side is
// the old west side, and so on around the compass.
func (t *Tile) rotateClockwise() {
	rotated := map[Direction]bool{
		North: t.exits[West],
		East:  t.exits[North],
		South: t.exits[East],
		West:  t.exits[South],
	}
	t.exits = rotated
	t.rotations = (t.rotations + 1) % 4
}

// Snapshot returns a read-only copy of the tile for observers. Mutating the
// copy never affects board state.
func (t *Tile) Snapshot() TileView {
	return TileView{
		Name:        t.Name,
		Category:    t.Category.String(),
		Exits:       t.PossibleExits(),
		SpriteIndex: t.SpriteIndex,
		Rotations:   t.rotations,
	}
}

// TileView is the immutable tile representation handed to observers.
type TileView struct {
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Exits       []Direction `json:"exits"`
	SpriteIndex int         `json:"sprite_index"`
	Rotations   int         `json:"rotations"`
}
