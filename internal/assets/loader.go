// Package assets turns on-disk tile and development card metadata into the
// ready-to-play, pre-shuffled decks the game engine consumes.
package assets

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strconv"

	"github.com/hcdiekmann/ZIMP/internal/game"
)

// DeckConfig names the metadata sources and the shuffle seed for one
// game's worth of decks.
type DeckConfig struct {
	IndoorPath   string
	OutdoorPath  string
	DevCardsPath string
	ClockLabels  []string
	Seed         int64
}

// tileMetadata mirrors one entry of the tile JSON files: an object keyed by
// sprite index, each tile carrying a name and its open sides.
type tileMetadata struct {
	Name  string          `json:"name"`
	Exits map[string]bool `json:"exits"`
}

// devCardMetadata mirrors one entry of the development card file.
type devCardMetadata struct {
	ID     int                      `json:"id"`
	Item   string                   `json:"item"`
	Events map[string]eventMetadata `json:"events"`
}

type eventMetadata struct {
	Type  string `json:"type"`
	Value int    `json:"value"`
	Text  string `json:"text"`
}

// Supply is a loaded, shuffled tile supply for exactly one game session.
type Supply struct {
	indoor   *game.TileDeck
	outdoor  *game.TileDeck
	devCards []*game.DevCard
	clock    []string
}

// IndoorDeck returns the shuffled indoor room deck.
func (s *Supply) IndoorDeck() *game.TileDeck { return s.indoor }

// OutdoorDeck returns the shuffled outdoor room deck.
func (s *Supply) OutdoorDeck() *game.TileDeck { return s.outdoor }

// DevCards returns the shuffled development cards.
func (s *Supply) DevCards() []*game.DevCard { return s.devCards }

// ClockLabels returns the clock labels in play order.
func (s *Supply) ClockLabels() []string { return s.clock }

// Load reads and validates the metadata files and builds the decks. Every
// development card must carry an event for every clock label.
func Load(cfg DeckConfig) (*Supply, error) {
	if len(cfg.ClockLabels) == 0 {
		return nil, fmt.Errorf("no clock labels configured")
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	indoor, err := loadTiles(cfg.IndoorPath, game.Indoor, rng)
	if err != nil {
		return nil, fmt.Errorf("indoor tiles: %w", err)
	}
	outdoor, err := loadTiles(cfg.OutdoorPath, game.Outdoor, rng)
	if err != nil {
		return nil, fmt.Errorf("outdoor tiles: %w", err)
	}
	devCards, err := loadDevCards(cfg.DevCardsPath, cfg.ClockLabels, rng)
	if err != nil {
		return nil, fmt.Errorf("development cards: %w", err)
	}

	return &Supply{
		indoor:   game.NewTileDeck(indoor),
		outdoor:  game.NewTileDeck(outdoor),
		devCards: devCards,
		clock:    append([]string(nil), cfg.ClockLabels...),
	}, nil
}

func loadTiles(path string, category game.Category, rng *rand.Rand) ([]*game.Tile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var metadata map[string]tileMetadata
	if err := json.Unmarshal(raw, &metadata); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	// File entries are keyed by sprite index; sort so the shuffle is the
	// only source of ordering.
	indices := make([]int, 0, len(metadata))
	for key := range metadata {
		idx, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("%s: tile key %q is not an index", path, key)
		}
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	tiles := make([]*game.Tile, 0, len(indices))
	for _, idx := range indices {
		md := metadata[strconv.Itoa(idx)]
		tile, err := buildTile(md, category, idx)
		if err != nil {
			return nil, fmt.Errorf("%s tile %d: %w", path, idx, err)
		}
		tiles = append(tiles, tile)
	}

	rng.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})
	return tiles, nil
}

func buildTile(md tileMetadata, category game.Category, spriteIndex int) (*game.Tile, error) {
	if md.Name == "" {
		return nil, fmt.Errorf("missing name")
	}
	if len(md.Exits) == 0 {
		return nil, fmt.Errorf("missing exits")
	}

	var exits []game.Direction
	for side, open := range md.Exits {
		d, err := game.ParseDirection(side)
		if err != nil {
			return nil, fmt.Errorf("exit %q: %w", side, err)
		}
		if open {
			exits = append(exits, d)
		}
	}
	if len(exits) == 0 {
		return nil, fmt.Errorf("tile %s has no open exits", md.Name)
	}
	return game.NewTile(md.Name, category, spriteIndex, exits...), nil
}

func loadDevCards(path string, clock []string, rng *rand.Rand) ([]*game.DevCard, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var metadata []devCardMetadata
	if err := json.Unmarshal(raw, &metadata); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(metadata) == 0 {
		return nil, fmt.Errorf("%s: no cards", path)
	}

	cards := make([]*game.DevCard, 0, len(metadata))
	for _, md := range metadata {
		card, err := buildDevCard(md, clock)
		if err != nil {
			return nil, fmt.Errorf("%s card %d: %w", path, md.ID, err)
		}
		cards = append(cards, card)
	}

	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards, nil
}

func buildDevCard(md devCardMetadata, clock []string) (*game.DevCard, error) {
	if md.Item == "" {
		return nil, fmt.Errorf("missing item row")
	}

	entries := make(map[string]game.Event, len(clock))
	for _, label := range clock {
		ev, ok := md.Events[label]
		if !ok {
			return nil, fmt.Errorf("no event for %s", label)
		}
		kind, err := parseEventKind(ev.Type)
		if err != nil {
			return nil, fmt.Errorf("event %s: %w", label, err)
		}
		entries[label] = game.Event{Kind: kind, Value: ev.Value, Text: ev.Text}
	}

	return &game.DevCard{ID: md.ID, Entries: entries, Item: md.Item}, nil
}

func parseEventKind(s string) (game.EventKind, error) {
	switch s {
	case "zombies":
		return game.EventZombies, nil
	case "item":
		return game.EventItem, nil
	case "health":
		return game.EventHealth, nil
	}
	return 0, fmt.Errorf("unknown event type %q", s)
}
