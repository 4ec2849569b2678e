package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionOpposite(t *testing.T) {
	assert.Equal(t, South, North.Opposite())
	assert.Equal(t, North, South.Opposite())
	assert.Equal(t, West, East.Opposite())
	assert.Equal(t, East, West.Opposite())
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("n")
	require.NoError(t, err)
	assert.Equal(t, North, d)

	_, err = ParseDirection("X")
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestPossibleExitsOrdered(t *testing.T) {
	tile := NewTile("Kitchen", Indoor, 1, West, North, East)
	assert.Equal(t, []Direction{North, East, West}, tile.PossibleExits())
}

func TestAddExit(t *testing.T) {
	tile := NewTile("Bedroom", Indoor, 5, North)
	require.NoError(t, tile.AddExit(South))
	assert.True(t, tile.HasExit(South))

	assert.ErrorIs(t, tile.AddExit(Direction(7)), ErrInvalidDirection)
}

func TestRotateSingleExitAlignsWithArrival(t *testing.T) {
	// A player moving north enters the new tile through its south side,
	// so the tile's only exit must end up facing south.
	tile := NewTile("Bathroom", Indoor, 4, North)
	tile.Rotate(North, North)
	assert.Equal(t, []Direction{South}, tile.PossibleExits())
	assert.Equal(t, 2, tile.Rotations())
}

func TestRotateExitEntryPairs(t *testing.T) {
	cases := []struct {
		entry, exit Direction
		want        []Direction
	}{
		{entry: North, exit: East, want: []Direction{West}},
		{entry: North, exit: South, want: []Direction{North}},
		{entry: North, exit: West, want: []Direction{East}},
		{entry: East, exit: North, want: []Direction{South}},
		{entry: West, exit: South, want: []Direction{North}},
	}
	for _, tc := range cases {
		tile := NewTile("Storage", Indoor, 6, tc.entry)
		tile.Rotate(tc.entry, tc.exit)
		assert.Equal(t, tc.want, tile.PossibleExits(),
			"entry %s exit %s", tc.entry, tc.exit)
	}
}

func TestRotationIsGroupOfOrderFour(t *testing.T) {
	for _, entry := range Directions {
		for _, exit := range Directions {
			tile := NewTile("Family Room", Indoor, 3, North, East, West)
			original := tile.PossibleExits()
			for i := 0; i < 4; i++ {
				tile.Rotate(entry, exit)
			}
			assert.Equal(t, original, tile.PossibleExits(),
				"entry %s exit %s", entry, exit)
		}
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	tile := NewTile("Garden", Outdoor, 1, North, East)
	view := tile.Snapshot()
	view.Exits[0] = South

	assert.Equal(t, []Direction{North, East}, tile.PossibleExits())
	assert.Equal(t, "Outdoor", tile.Snapshot().Category)
}
