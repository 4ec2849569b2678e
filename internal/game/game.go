package game

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Choice labels offered to the player during event resolution.
const (
	choiceFight = "F"
	choiceRun   = "R"
	choiceYes   = "Y"
	choiceNo    = "N"
)

// Rules holds the tunable rule numbers. Defaults match the physical game.
type Rules struct {
	StartHealth     int
	StartAttack     int
	ItemCapacity    int
	BashZombies     int
	MaxCombatDamage int
	CowerHeal       int
	RunHealthCost   int
}

// DefaultRules returns the standard rule numbers.
func DefaultRules() Rules {
	return Rules{
		StartHealth:     6,
		StartAttack:     1,
		ItemCapacity:    2,
		BashZombies:     3,
		MaxCombatDamage: 4,
		CowerHeal:       3,
		RunHealthCost:   1,
	}
}

// Game is one single-player session: the turn state machine over one board
// and one player. Methods are not reentrant; one action resolves fully,
// including nested events and blocking choices, before the next is
// accepted. All mutation of the board, decks and player happens here.
type Game struct {
	id      string
	logger  *zap.Logger
	board   *Board
	player  *Player
	choices ChoiceProvider
	rules   Rules

	observers []Observer

	// turnComplete gates cower and bash: set once a move or bash fully
	// resolves, cleared by cowering.
	turnComplete bool
	result       Result
}

// NewGame assembles a session. The board must already hold the Foyer at the
// player's start location.
func NewGame(id string, board *Board, player *Player, choices ChoiceProvider, rules Rules, logger *zap.Logger) *Game {
	return &Game{
		id:      id,
		logger:  logger,
		board:   board,
		player:  player,
		choices: choices,
		rules:   rules,
	}
}

// ID returns the session identifier.
func (g *Game) ID() string {
	return g.id
}

// Result returns the terminal outcome, or ResultNone while play continues.
func (g *Game) Result() Result {
	return g.result
}

// Attach subscribes an observer and immediately delivers the current
// snapshot so late subscribers can render without waiting for an action.
func (g *Game) Attach(o Observer) {
	g.observers = append(g.observers, o)
	o.StateChanged(g.Snapshot())
}

// CurrentRoom returns a read-only view of the room the player occupies.
func (g *Game) CurrentRoom() TileView {
	return g.currentRoom().Snapshot()
}

func (g *Game) currentRoom() *Tile {
	tile, ok := g.board.TileAt(g.player.Location)
	if !ok {
		// The start tile is placed before any action, so this cannot
		// happen once the session is constructed correctly.
		panic(fmt.Sprintf("player at unexplored coordinate %+v", g.player.Location))
	}
	return tile
}

// Snapshot builds the observable state of the session.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		GameID:       g.id,
		Clock:        g.board.Clock(),
		DevCardsLeft: g.board.DevCardsLeft(),
		IndoorLeft:   g.board.IndoorLeft(),
		OutdoorLeft:  g.board.OutdoorLeft(),
		Health:       g.player.Health,
		Attack:       g.player.Attack,
		Items:        append([]string(nil), g.player.Items...),
		Location:     g.player.Location,
		HasTotem:     g.player.HasTotem,
		Room:         g.CurrentRoom(),
		Result:       g.result.String(),
	}
}

// Move walks the player one room in the given direction, exploring a new
// tile if needed, and resolves a development card. Invalid directions and
// blocked walls are rejected with no state change; a depleted room deck
// aborts the move but not the game.
func (g *Game) Move(d Direction) error {
	if g.result != ResultNone {
		return ErrGameOver
	}

	room := g.currentRoom()
	if !room.HasExit(d) {
		g.message(fmt.Sprintf("Invalid direction. Choose from: %v", room.PossibleExits()))
		return fmt.Errorf("%w: no %s exit in %s", ErrInvalidDirection, d, room.Name)
	}

	target := g.player.Location.Neighbor(d)
	if g.board.IsExplored(target) {
		next, _ := g.board.TileAt(target)
		// Doors must align on both sides.
		if !next.HasExit(d.Opposite()) {
			g.message("This exit is blocked by a wall from another room.")
			return fmt.Errorf("%w: %s side of %s", ErrWallBlocked, d.Opposite(), next.Name)
		}
		g.player.Location = target
		g.logger.Debug("moved to explored room",
			zap.String("game_id", g.id),
			zap.String("room", next.Name),
			zap.String("direction", d.String()),
		)
		g.resolveDevCard()
	} else {
		tile, category := g.board.DrawTile(room)
		if tile == nil {
			g.message(fmt.Sprintf("No more %s tiles to draw.", category))
			return fmt.Errorf("%w: %s", ErrDeckExhausted, category)
		}
		g.player.Location = target
		g.notifyTilePlaced(tile)
		g.logger.Debug("exploring new room",
			zap.String("game_id", g.id),
			zap.String("room", tile.Name),
			zap.String("direction", d.String()),
		)
		g.placeNewTile(d, tile)
	}

	g.turnComplete = true
	g.notifyState()
	return nil
}

// placeNewTile orients and sites a freshly drawn tile at the player's new
// location, then resolves a development card. chosenExit is the direction
// the player moved from the previous room.
func (g *Game) placeNewTile(chosenExit Direction, tile *Tile) {
	entries := tile.PossibleExits()
	if len(entries) > 1 {
		if tile.Name == tileDiningRoom {
			tile = g.placePatioTile(chosenExit, tile)
		} else {
			tile = g.chooseEntry(chosenExit, tile, entries)
		}
	} else {
		tile.Rotate(entries[0], chosenExit)
	}

	g.board.Place(g.player.Location, tile)
	g.notifyTilePlaced(tile)
	g.resolveDevCard()
}

// chooseEntry asks the acting party which side to enter a multi-exit room
// from and rotates the tile accordingly.
func (g *Game) chooseEntry(chosenExit Direction, tile *Tile, entries []Direction) *Tile {
	prompt := fmt.Sprintf("You found the %s, enter from: %v", tile.Name, entries)
	entry := g.chooseDirection(prompt, entries)
	return tile.Rotate(entry, chosenExit)
}

// placePatioTile handles the hardcoded Dining Room pairing: the dining
// room's north doorway always leads to the Patio, so the patio is sited on
// the far side of the player's approach rather than drawn from a deck.
func (g *Game) placePatioTile(chosenExit Direction, diningRoom *Tile) *Tile {
	patio := g.board.TakePatio()
	if patio == nil {
		// Patio already on the board; the dining room places generically.
		return g.chooseEntry(chosenExit, diningRoom, diningRoom.PossibleExits())
	}

	patioLoc := g.player.Location
	if chosenExit == South {
		// North is reserved for the patio doorway, so flip the room.
		diningRoom.Rotate(South, South)
		patioLoc.Row++
	} else {
		patioLoc.Row--
	}
	g.board.Place(patioLoc, patio)
	for _, o := range g.observers {
		o.TilePlaced(patio.Snapshot(), patioLoc)
	}
	return diningRoom
}

// resolveDevCard draws the next development card keyed by the current
// clock, applies its content, then the room bonus, then re-notifies
// observers with the full snapshot.
func (g *Game) resolveDevCard() {
	// An emptied deck must advance the clock, or end the game at the
	// final hour, before the next card can be drawn.
	if g.evaluateGameOver() {
		return
	}
	card, ok := g.board.DrawDevCard()
	if !ok {
		return
	}

	ranAway := false
	if ev, ok := card.EventAt(g.board.Clock()); ok {
		if ev.Text != "" {
			g.message(ev.Text)
		}
		switch ev.Kind {
		case EventZombies:
			ranAway = g.fightOrRun(ev.Value)
		case EventItem:
			g.findItem()
		case EventHealth:
			g.player.Health += ev.Value
		}
	} else {
		g.logger.Warn("development card has no entry for current clock",
			zap.String("game_id", g.id),
			zap.Int("card", card.ID),
			zap.String("clock", g.board.Clock()),
		)
	}

	if !g.evaluateGameOver() && !ranAway {
		switch g.currentRoom().Name {
		case tileKitchen, tileGarden:
			g.player.Health++
		case tileStorage:
			g.findItem()
		}
	}

	g.notifyState()
}

// fightOrRun offers the fight-or-run choice for a zombie encounter and
// reports whether the player ran away. Running is only offered when an
// explored room lies behind an open exit.
func (g *Game) fightOrRun(zombies int) bool {
	g.notifyState()
	g.message(fmt.Sprintf("%d zombies attack!", zombies))

	escapes := g.escapeDirections()
	options := []string{choiceFight, choiceRun}
	prompt := "Enter 'F' to fight or 'R' to run away."
	if len(escapes) == 0 {
		options = []string{choiceFight}
		prompt = "Enter 'F' to fight."
	}

	action := g.chooseOption(prompt, options)
	if action == choiceRun {
		g.escapeZombies(escapes)
		return true
	}

	g.fightZombies(zombies)
	return false
}

// escapeDirections lists the open exits of the current room that lead to a
// previously explored room.
func (g *Game) escapeDirections() []Direction {
	var out []Direction
	for _, d := range g.currentRoom().PossibleExits() {
		if g.board.IsExplored(g.player.Location.Neighbor(d)) {
			out = append(out, d)
		}
	}
	return out
}

// escapeZombies relocates the player to an explored neighbor of their
// choice. Escaping costs one health unless the player burns their Oil.
func (g *Game) escapeZombies(escapes []Direction) {
	prompt := fmt.Sprintf("Possible escape directions: %v", escapes)
	chosen := g.chooseDirection(prompt, escapes)
	g.player.Location = g.player.Location.Neighbor(chosen)

	if g.player.RemoveItem(itemOil) {
		g.message("You throw the Oil behind you and slip away.")
		return
	}
	g.player.TakeDamage(g.rules.RunHealthCost)
}

// fightZombies applies combat: damage is the zombie count less the
// player's attack, never more than the per-encounter cap, and only applied
// when non-negative.
func (g *Game) fightZombies(zombies int) {
	damage := zombies - g.player.Attack
	if damage < 0 {
		return
	}
	if damage > g.rules.MaxCombatDamage {
		damage = g.rules.MaxCombatDamage
	}
	g.player.TakeDamage(damage)
	g.logger.Debug("fought zombies",
		zap.String("game_id", g.id),
		zap.Int("zombies", zombies),
		zap.Int("damage", damage),
		zap.Int("health", g.player.Health),
	)
}

// findItem draws the item row of the next development card. At carry
// capacity the player may replace an item; declining discards the find.
func (g *Game) findItem() {
	if g.evaluateGameOver() {
		return
	}
	card, ok := g.board.DrawDevCard()
	if !ok {
		return
	}
	newItem := card.Item
	g.message(fmt.Sprintf("You found %s", newItem))

	if len(g.player.Items) >= g.rules.ItemCapacity {
		prompt := fmt.Sprintf("Do you want to replace an item? (Y/N). Your current items: %s",
			strings.Join(g.player.Items, ", "))
		if g.chooseOption(prompt, []string{choiceYes, choiceNo}) == choiceYes {
			g.replaceItem(newItem)
			g.applyItemEffects(newItem)
		} else {
			g.message(fmt.Sprintf("You leave the %s behind.", newItem))
		}
		return
	}

	g.player.Items = append(g.player.Items, newItem)
	g.applyItemEffects(newItem)
}

// replaceItem swaps a carried item of the player's choice for newItem.
func (g *Game) replaceItem(newItem string) {
	dropped := g.chooseOption("Choose an item to replace:", g.player.Items)
	g.player.RemoveItem(dropped)
	g.player.Items = append(g.player.Items, newItem)
	g.message(fmt.Sprintf("You replaced %s with %s.", dropped, newItem))
}

// applyItemEffects grants the stat bonus of the item just picked up.
func (g *Game) applyItemEffects(item string) {
	g.player.Health += itemHealthBonus[item]
	g.player.Attack += itemAttackBonus[item]
}

// Cower heals the player and burns one development card without resolving
// it. Requires a completed turn sequence and clears it, so cowering twice
// in a row is rejected.
func (g *Game) Cower() error {
	if g.result != ResultNone {
		return ErrGameOver
	}
	if !g.turnComplete {
		g.message("You need to complete a turn sequence before cowering.")
		return ErrTurnIncomplete
	}
	g.turnComplete = false
	g.player.Health += g.rules.CowerHeal
	g.board.DrawDevCard()
	g.evaluateGameOver()
	g.notifyState()
	return nil
}

// Bash forces a new exit through a wall of the current room, relocates the
// player and fights a fixed pack of zombies. On an explored target the
// matching exit is forced too; on an unexplored one the normal draw and
// placement routine runs after the fight.
func (g *Game) Bash(d Direction) error {
	if g.result != ResultNone {
		return ErrGameOver
	}
	if !g.turnComplete {
		g.message("You can't bash after cowering.")
		return ErrTurnIncomplete
	}

	room := g.currentRoom()
	if room.HasExit(d) {
		g.message(fmt.Sprintf("No need to bash. A valid exit exists, use 'go %s'.", d))
		return fmt.Errorf("%w: %s", ErrExitExists, d)
	}

	target := g.player.Location.Neighbor(d)
	if g.board.IsExplored(target) {
		next, _ := g.board.TileAt(target)
		if !next.HasExit(d.Opposite()) {
			next.AddExit(d.Opposite())
		}
		room.AddExit(d)
		g.player.Location = target
		g.fightZombies(g.rules.BashZombies)
		g.evaluateGameOver()
	} else {
		tile, category := g.board.DrawTile(room)
		if tile == nil {
			g.message(fmt.Sprintf("Can't bash from here, no more %s tiles to explore.", category))
			return fmt.Errorf("%w: %s", ErrDeckExhausted, category)
		}
		room.AddExit(d)
		g.player.Location = target
		g.notifyTilePlaced(tile)
		g.fightZombies(g.rules.BashZombies)
		g.placeNewTile(d, tile)
	}

	g.turnComplete = true
	g.notifyState()
	return nil
}

// FindOrBuryTotem searches for the totem in the Evil Temple or buries it in
// the Graveyard. Both resolve a development card first; burying with the
// totem in hand wins the game.
func (g *Game) FindOrBuryTotem() error {
	if g.result != ResultNone {
		return ErrGameOver
	}
	switch g.currentRoom().Name {
	case tileEvilTemple:
		g.findTotem()
		return nil
	case tileGraveyard:
		return g.buryTotem()
	default:
		g.message("You are not in the right room!")
		return fmt.Errorf("%w: %s", ErrWrongRoom, g.currentRoom().Name)
	}
}

func (g *Game) findTotem() {
	g.message("You are searching for the Totem!")
	g.resolveDevCard()
	if g.result == ResultNone {
		g.player.HasTotem = true
		g.message("You found the Totem!")
		g.notifyState()
	}
}

func (g *Game) buryTotem() error {
	if !g.player.HasTotem {
		g.message("You don't have the Totem!")
		return ErrNoTotem
	}
	g.message("You are burying the Totem!")
	g.resolveDevCard()
	if g.result == ResultNone {
		g.end(ResultWon, "All zombies collapse. You WIN!")
	}
	return nil
}

// evaluateGameOver applies the terminal checks: an emptied development deck
// at the final hour loses on time, otherwise an empty deck advances the
// clock; health at or below zero loses. Returns true once the session is
// over.
func (g *Game) evaluateGameOver() bool {
	if g.result != ResultNone {
		return true
	}
	if g.board.DevCardsLeft() == 0 {
		if g.board.AtFinalHour() {
			g.end(ResultLost, "You ran out of time. GAME OVER!")
			return true
		}
		g.board.UpdateTime()
	}
	if g.player.Health <= 0 {
		g.end(ResultLost, "You died. GAME OVER!")
		return true
	}
	return false
}

func (g *Game) end(result Result, reason string) {
	g.result = result
	g.logger.Info("game over",
		zap.String("game_id", g.id),
		zap.String("result", result.String()),
		zap.String("reason", reason),
	)
	for _, o := range g.observers {
		o.GameEnded(result, reason)
	}
	g.notifyState()
}

// chooseDirection asks the choice provider until it answers with a member
// of the offered set.
func (g *Game) chooseDirection(prompt string, options []Direction) Direction {
	for {
		got := g.choices.ChooseDirection(prompt, options)
		for _, d := range options {
			if got == d {
				return got
			}
		}
		g.message(fmt.Sprintf("Invalid choice. Please choose from: %v", options))
	}
}

// chooseOption asks the choice provider until it answers with a member of
// the offered set.
func (g *Game) chooseOption(prompt string, options []string) string {
	for {
		got := g.choices.ChooseOption(prompt, options)
		for _, o := range options {
			if got == o {
				return got
			}
		}
		g.message(fmt.Sprintf("Invalid choice. Please choose from: %v", options))
	}
}

func (g *Game) message(text string) {
	for _, o := range g.observers {
		o.Message(text)
	}
}

func (g *Game) notifyTilePlaced(tile *Tile) {
	for _, o := range g.observers {
		o.TilePlaced(tile.Snapshot(), g.player.Location)
	}
}

func (g *Game) notifyState() {
	snapshot := g.Snapshot()
	for _, o := range g.observers {
		o.StateChanged(snapshot)
	}
}
