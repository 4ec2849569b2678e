package game

import "errors"

var (
	// ErrInvalidDirection rejects a direction that is not one of the four
	// cardinals or is not an open exit of the current room.
	ErrInvalidDirection = errors.New("invalid direction")

	// ErrWallBlocked rejects a move into an explored room whose facing
	// side has no matching opening.
	ErrWallBlocked = errors.New("exit blocked by a wall from another room")

	// ErrExitExists rejects bashing a wall that is already an open exit.
	ErrExitExists = errors.New("a valid exit already exists")

	// ErrTurnIncomplete rejects cower or bash before a movement or bash
	// action has fully resolved (or immediately after cowering).
	ErrTurnIncomplete = errors.New("turn sequence not completed")

	// ErrDeckExhausted aborts an action that needs a tile from a depleted
	// deck. The game itself continues.
	ErrDeckExhausted = errors.New("no more tiles of that category")

	// ErrWrongRoom rejects a totem action outside the Evil Temple or
	// Graveyard.
	ErrWrongRoom = errors.New("not in the right room")

	// ErrNoTotem rejects burying before the totem has been found.
	ErrNoTotem = errors.New("totem not yet found")

	// ErrGameOver rejects any gameplay action once the session is won or
	// lost.
	ErrGameOver = errors.New("game is over")

	// ErrGameNotFound is returned by the engine for an unknown session ID.
	ErrGameNotFound = errors.New("game not found")
)
