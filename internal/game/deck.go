package game

// Deck is an ordered, destructively drawn collection. The order is fixed at
// construction (the supplier shuffles); nothing is ever put back.
type Deck[T any] struct {
	items []T
}

// NewDeck wraps the given items in draw order. The slice is copied so the
// caller cannot mutate the deck underneath us.
func NewDeck[T any](items []T) *Deck[T] {
	return &Deck[T]{items: append([]T(nil), items...)}
}

// Count returns the number of items remaining.
func (d *Deck[T]) Count() int {
	return len(d.items)
}

// Draw removes and returns the top item. The second return is false once
// the deck is depleted.
func (d *Deck[T]) Draw() (T, bool) {
	var zero T
	if len(d.items) == 0 {
		return zero, false
	}
	top := d.items[0]
	d.items = d.items[1:]
	return top, true
}

// DrawFirst removes and returns the first item matching pred, leaving the
// order of the remainder unchanged.
func (d *Deck[T]) DrawFirst(pred func(T) bool) (T, bool) {
	for i, item := range d.items {
		if pred(item) {
			d.items = append(d.items[:i:i], d.items[i+1:]...)
			return item, true
		}
	}
	var zero T
	return zero, false
}

// TileDeck is a deck of room tiles for one category.
type TileDeck struct {
	Deck[*Tile]
}

// NewTileDeck wraps pre-shuffled tiles.
func NewTileDeck(tiles []*Tile) *TileDeck {
	return &TileDeck{Deck: *NewDeck(tiles)}
}

// DrawByName removes and returns the first tile with the given name, used
// for the guaranteed tiles (Foyer, Patio). Returns false if absent.
func (d *TileDeck) DrawByName(name string) (*Tile, bool) {
	return d.DrawFirst(func(t *Tile) bool { return t.Name == name })
}
