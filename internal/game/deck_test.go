package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeckDrawsAllThenEmpty(t *testing.T) {
	deck := NewDeck([]int{1, 2, 3})

	for i, want := range []int{1, 2, 3} {
		assert.Equal(t, 3-i, deck.Count())
		got, ok := deck.Draw()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	assert.Equal(t, 0, deck.Count())
	_, ok := deck.Draw()
	assert.False(t, ok)
}

func TestDeckCopiesInput(t *testing.T) {
	items := []string{"a", "b"}
	deck := NewDeck(items)
	items[0] = "mutated"

	got, ok := deck.Draw()
	require.True(t, ok)
	assert.Equal(t, "a", got)
}

func TestTileDeckDrawByName(t *testing.T) {
	deck := NewTileDeck([]*Tile{
		NewTile("Kitchen", Indoor, 1, North),
		NewTile("Foyer", Indoor, 0, North),
		NewTile("Bedroom", Indoor, 5, North),
	})

	foyer, ok := deck.DrawByName("Foyer")
	require.True(t, ok)
	assert.Equal(t, "Foyer", foyer.Name)
	assert.Equal(t, 2, deck.Count())

	// Remainder keeps its order.
	first, _ := deck.Draw()
	second, _ := deck.Draw()
	assert.Equal(t, "Kitchen", first.Name)
	assert.Equal(t, "Bedroom", second.Name)
}

func TestTileDeckDrawByNameMissing(t *testing.T) {
	deck := NewTileDeck([]*Tile{NewTile("Kitchen", Indoor, 1, North)})

	_, ok := deck.DrawByName("Ballroom")
	assert.False(t, ok)
	assert.Equal(t, 1, deck.Count())
}

func TestTileDeckDrawByNameRemovesOnlyFirstMatch(t *testing.T) {
	deck := NewTileDeck([]*Tile{
		NewTile("Yard", Outdoor, 4, North),
		NewTile("Yard", Outdoor, 5, North),
	})

	first, ok := deck.DrawByName("Yard")
	require.True(t, ok)
	assert.Equal(t, 4, first.SpriteIndex)
	assert.Equal(t, 1, deck.Count())
}
