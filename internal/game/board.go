package game

import (
	"fmt"
	"math/rand"
)

// Tile names with board-level special handling.
const (
	tileFoyer      = "Foyer"
	tilePatio      = "Patio"
	tileDiningRoom = "Dining Room"
	tileKitchen    = "Kitchen"
	tileGarden     = "Garden"
	tileStorage    = "Storage"
	tileEvilTemple = "Evil Temple"
	tileGraveyard  = "Graveyard"
)

// Board is the explored map plus the room decks, the development card deck
// and the game clock. A coordinate is explored iff it has a tile.
type Board struct {
	tiles   map[Coordinate]*Tile
	indoor  *TileDeck
	outdoor *TileDeck

	devCards    *Deck[*DevCard]
	allDevCards []*DevCard

	clock    []string
	clockIdx int

	patio *Tile
	rng   *rand.Rand
}

// NewBoard builds the board from pre-shuffled decks, extracts the Foyer and
// Patio by name, and places the Foyer at the start coordinate. The clock
// labels advance in order; the last one is the time-out boundary. rng is
// used only to reshuffle the development deck when the clock advances.
func NewBoard(start Coordinate, indoor, outdoor *TileDeck, devCards []*DevCard, clock []string, rng *rand.Rand) (*Board, error) {
	if len(clock) == 0 {
		return nil, fmt.Errorf("board needs at least one clock label")
	}
	if len(devCards) == 0 {
		return nil, fmt.Errorf("board needs development cards")
	}

	foyer, ok := indoor.DrawByName(tileFoyer)
	if !ok {
		return nil, fmt.Errorf("indoor deck has no %s tile", tileFoyer)
	}
	patio, ok := outdoor.DrawByName(tilePatio)
	if !ok {
		return nil, fmt.Errorf("outdoor deck has no %s tile", tilePatio)
	}

	b := &Board{
		tiles:       make(map[Coordinate]*Tile),
		indoor:      indoor,
		outdoor:     outdoor,
		devCards:    NewDeck(devCards),
		allDevCards: append([]*DevCard(nil), devCards...),
		clock:       append([]string(nil), clock...),
		patio:       patio,
		rng:         rng,
	}
	b.tiles[start] = foyer
	return b, nil
}

// IsExplored reports whether a tile has been placed at c.
func (b *Board) IsExplored(c Coordinate) bool {
	_, ok := b.tiles[c]
	return ok
}

// TileAt returns the tile placed at c, if any.
func (b *Board) TileAt(c Coordinate) (*Tile, bool) {
	t, ok := b.tiles[c]
	return t, ok
}

// Place puts a tile on the map, overwriting any existing entry.
func (b *Board) Place(c Coordinate, t *Tile) {
	b.tiles[c] = t
}

// DrawTile draws the next room for a player leaving from. Indoor rooms
// connect to indoor rooms and outdoor to outdoor; the only indoor/outdoor
// crossing is the hardcoded Dining Room/Patio pairing, which bypasses this
// draw. Returns (nil, category) when that deck is depleted.
func (b *Board) DrawTile(from *Tile) (*Tile, Category) {
	deck := b.indoor
	category := Indoor
	if from.Category == Outdoor {
		deck = b.outdoor
		category = Outdoor
	}
	tile, ok := deck.Draw()
	if !ok {
		return nil, category
	}
	return tile, category
}

// TakePatio hands over the reserved Patio tile. Nil after the first call.
func (b *Board) TakePatio() *Tile {
	p := b.patio
	b.patio = nil
	return p
}

// DrawDevCard removes and returns the next development card.
func (b *Board) DrawDevCard() (*DevCard, bool) {
	return b.devCards.Draw()
}

// DevCardsLeft returns the remaining development card count.
func (b *Board) DevCardsLeft() int {
	return b.devCards.Count()
}

// IndoorLeft returns the remaining indoor tile count.
func (b *Board) IndoorLeft() int {
	return b.indoor.Count()
}

// OutdoorLeft returns the remaining outdoor tile count.
func (b *Board) OutdoorLeft() int {
	return b.outdoor.Count()
}

// Clock returns the current time label.
func (b *Board) Clock() string {
	return b.clock[b.clockIdx]
}

// AtFinalHour reports whether the clock is on its last label.
func (b *Board) AtFinalHour() bool {
	return b.clockIdx == len(b.clock)-1
}

// UpdateTime advances the clock one step after the development deck has
// been emptied a full pass, and rebuilds the deck from the full card set
// in a fresh shuffle. No-op at the final label; callers check
// AtFinalHour first.
func (b *Board) UpdateTime() {
	if b.AtFinalHour() {
		return
	}
	b.clockIdx++

	reshuffled := append([]*DevCard(nil), b.allDevCards...)
	b.rng.Shuffle(len(reshuffled), func(i, j int) {
		reshuffled[i], reshuffled[j] = reshuffled[j], reshuffled[i]
	})
	b.devCards = NewDeck(reshuffled)
}
