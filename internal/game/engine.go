package game

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TileSupply provides the pre-shuffled decks and development cards a new
// session plays with. Asset parsing is the supplier's job; the engine only
// consumes ready-to-use records.
type TileSupply interface {
	IndoorDeck() *TileDeck
	OutdoorDeck() *TileDeck
	DevCards() []*DevCard
	ClockLabels() []string
}

// Engine creates and owns game sessions. It is the only concurrency-aware
// type in the package: sessions themselves are strictly single-threaded and
// the engine serializes access per call.
type Engine struct {
	logger *zap.Logger
	rules  Rules

	mu    sync.Mutex
	games map[string]*Game
}

// NewEngine creates an engine with the given rule numbers.
func NewEngine(rules Rules, logger *zap.Logger) *Engine {
	return &Engine{
		logger: logger,
		rules:  rules,
		games:  make(map[string]*Game),
	}
}

// NewGame starts a session from a fresh tile supply and returns its ID. The
// player starts on the Foyer at the origin; seed drives only the clock
// reshuffle of the development deck.
func (e *Engine) NewGame(supply TileSupply, choices ChoiceProvider, seed int64) (string, error) {
	start := Coordinate{}
	rng := rand.New(rand.NewSource(seed))

	board, err := NewBoard(start, supply.IndoorDeck(), supply.OutdoorDeck(),
		supply.DevCards(), supply.ClockLabels(), rng)
	if err != nil {
		return "", fmt.Errorf("build board: %w", err)
	}

	id := uuid.NewString()
	player := NewPlayer(start, e.rules.StartHealth, e.rules.StartAttack)
	g := NewGame(id, board, player, choices, e.rules, e.logger)

	e.mu.Lock()
	e.games[id] = g
	e.mu.Unlock()

	e.logger.Info("game started",
		zap.String("game_id", id),
		zap.Int("indoor_tiles", board.IndoorLeft()),
		zap.Int("outdoor_tiles", board.OutdoorLeft()),
		zap.Int("dev_cards", board.DevCardsLeft()),
	)
	return id, nil
}

// Game returns the session with the given ID.
func (e *Engine) Game(id string) (*Game, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	g, ok := e.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return g, nil
}

// Remove drops a finished session.
func (e *Engine) Remove(id string) {
	e.mu.Lock()
	delete(e.games, id)
	e.mu.Unlock()
}
