package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClock() []string {
	return []string{"9 PM", "10 PM", "11 PM"}
}

func healthCard(id, delta int) *DevCard {
	entries := make(map[string]Event)
	for _, label := range testClock() {
		entries[label] = Event{Kind: EventHealth, Value: delta}
	}
	return &DevCard{ID: id, Entries: entries, Item: "Candle"}
}

func zombieCard(id, count int) *DevCard {
	entries := make(map[string]Event)
	for _, label := range testClock() {
		entries[label] = Event{Kind: EventZombies, Value: count}
	}
	return &DevCard{ID: id, Entries: entries, Item: "Oil"}
}

func itemCard(id int, item string) *DevCard {
	entries := make(map[string]Event)
	for _, label := range testClock() {
		entries[label] = Event{Kind: EventItem}
	}
	return &DevCard{ID: id, Entries: entries, Item: item}
}

// cardStack pads the development deck so game-over checks never trip on an
// empty deck mid-test.
func cardStack(cards ...*DevCard) []*DevCard {
	for i := len(cards); i < 20; i++ {
		cards = append(cards, healthCard(100+i, 0))
	}
	return cards
}

func testBoard(t *testing.T, indoor, outdoor []*Tile, cards []*DevCard) *Board {
	t.Helper()
	indoor = append([]*Tile{NewTile(tileFoyer, Indoor, 0, North)}, indoor...)
	outdoor = append([]*Tile{NewTile(tilePatio, Outdoor, 0, North, South)}, outdoor...)

	board, err := NewBoard(Coordinate{},
		NewTileDeck(indoor), NewTileDeck(outdoor),
		cards, testClock(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	return board
}

func TestNewBoardPlacesFoyer(t *testing.T) {
	board := testBoard(t, nil, nil, cardStack())

	tile, ok := board.TileAt(Coordinate{})
	require.True(t, ok)
	assert.Equal(t, tileFoyer, tile.Name)
	assert.True(t, board.IsExplored(Coordinate{}))
	assert.False(t, board.IsExplored(Coordinate{Row: -1}))
}

func TestNewBoardRequiresFoyerAndPatio(t *testing.T) {
	_, err := NewBoard(Coordinate{},
		NewTileDeck([]*Tile{NewTile("Kitchen", Indoor, 1, North)}),
		NewTileDeck([]*Tile{NewTile(tilePatio, Outdoor, 0, North, South)}),
		cardStack(), testClock(), rand.New(rand.NewSource(1)))
	assert.Error(t, err)

	_, err = NewBoard(Coordinate{},
		NewTileDeck([]*Tile{NewTile(tileFoyer, Indoor, 0, North)}),
		NewTileDeck([]*Tile{NewTile("Garden", Outdoor, 1, North)}),
		cardStack(), testClock(), rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestDrawTileRoutesByCategory(t *testing.T) {
	board := testBoard(t,
		[]*Tile{NewTile("Kitchen", Indoor, 1, North, East, West)},
		[]*Tile{NewTile("Garden", Outdoor, 1, North, East, West)},
		cardStack())

	fromIndoor := NewTile("Bedroom", Indoor, 5, North, East)
	tile, category := board.DrawTile(fromIndoor)
	require.NotNil(t, tile)
	assert.Equal(t, Indoor, category)
	assert.Equal(t, "Kitchen", tile.Name)

	fromOutdoor := NewTile("Yard", Outdoor, 4, North, East, South, West)
	tile, category = board.DrawTile(fromOutdoor)
	require.NotNil(t, tile)
	assert.Equal(t, Outdoor, category)
	assert.Equal(t, "Garden", tile.Name)
}

func TestDrawTileExhausted(t *testing.T) {
	board := testBoard(t, nil, nil, cardStack())

	tile, category := board.DrawTile(NewTile("Bedroom", Indoor, 5, North))
	assert.Nil(t, tile)
	assert.Equal(t, Indoor, category)
}

func TestTakePatioOnlyOnce(t *testing.T) {
	board := testBoard(t, nil, nil, cardStack())

	patio := board.TakePatio()
	require.NotNil(t, patio)
	assert.Equal(t, tilePatio, patio.Name)
	assert.Nil(t, board.TakePatio())
}

func TestUpdateTimeAdvancesAndRebuildsDeck(t *testing.T) {
	cards := []*DevCard{healthCard(1, 0), healthCard(2, 0)}
	board := testBoard(t, nil, nil, cards)

	board.DrawDevCard()
	board.DrawDevCard()
	require.Equal(t, 0, board.DevCardsLeft())
	require.Equal(t, "9 PM", board.Clock())

	board.UpdateTime()
	assert.Equal(t, "10 PM", board.Clock())
	assert.Equal(t, 2, board.DevCardsLeft())

	board.UpdateTime()
	assert.Equal(t, "11 PM", board.Clock())
	assert.True(t, board.AtFinalHour())

	// No advance past the final hour.
	board.UpdateTime()
	assert.Equal(t, "11 PM", board.Clock())
}
