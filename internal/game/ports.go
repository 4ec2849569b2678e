package game

// ChoiceProvider supplies the in-turn decisions the rules require from the
// acting party: entry side for a multi-exit room, fight or run, escape
// direction, item replacement. Calls block until an answer is given. The
// session validates every answer and asks again on an invalid one, so
// implementations may return anything; a non-interactive implementation
// should return a member of the offered set or the session will loop.
type ChoiceProvider interface {
	// ChooseDirection picks one of the offered directions.
	ChooseDirection(prompt string, options []Direction) Direction
	// ChooseOption picks one of the offered labels.
	ChooseOption(prompt string, options []string) string
}

// Observer receives read-only state pushed by the session after each
// resolved action. Implementations must not call back into the session.
type Observer interface {
	// StateChanged delivers the full snapshot after every mutation.
	StateChanged(s Snapshot)
	// TilePlaced reports a newly placed tile for rendering.
	TilePlaced(tile TileView, at Coordinate)
	// Message carries player-facing rule feedback (rejections, flavor).
	Message(text string)
	// GameEnded fires once when the session reaches a terminal state.
	GameEnded(result Result, reason string)
}

// Result is the terminal outcome of a session.
type Result int

const (
	ResultNone Result = iota
	ResultWon
	ResultLost
)

var resultNames = map[Result]string{
	ResultNone: "NONE",
	ResultWon:  "WON",
	ResultLost: "LOST",
}

func (r Result) String() string {
	return resultNames[r]
}

// Snapshot is the observable state of a session after an action resolves.
type Snapshot struct {
	GameID       string     `json:"game_id"`
	Clock        string     `json:"clock"`
	DevCardsLeft int        `json:"dev_cards_left"`
	IndoorLeft   int        `json:"indoor_left"`
	OutdoorLeft  int        `json:"outdoor_left"`
	Health       int        `json:"health"`
	Attack       int        `json:"attack"`
	Items        []string   `json:"items"`
	Location     Coordinate `json:"location"`
	HasTotem     bool       `json:"has_totem"`
	Room         TileView   `json:"room"`
	Result       string     `json:"result"`
}
