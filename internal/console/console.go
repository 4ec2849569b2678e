// Package console provides the interactive terminal surface: a blocking
// prompt acting as the game's choice provider, and a renderer that draws
// tiles and player state as an observer.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hcdiekmann/ZIMP/internal/game"
)

// Prompter reads in-turn choices from the terminal. Answers are returned
// as-is; the game validates and asks again on invalid input.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter wraps the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ChooseDirection implements game.ChoiceProvider.
func (p *Prompter) ChooseDirection(prompt string, options []game.Direction) game.Direction {
	fmt.Fprintln(p.out, prompt)
	fmt.Fprint(p.out, "> ")
	d, err := game.ParseDirection(p.readLine())
	if err != nil {
		// Out-of-range answer; the game rejects it and asks again.
		return game.Direction(-1)
	}
	return d
}

// ChooseOption implements game.ChoiceProvider.
func (p *Prompter) ChooseOption(prompt string, options []string) string {
	fmt.Fprintf(p.out, "%s %v\n", prompt, options)
	fmt.Fprint(p.out, "> ")
	answer := p.readLine()
	// Single-letter choices (F/R, Y/N) are case-insensitive.
	if len(answer) == 1 {
		return strings.ToUpper(answer)
	}
	return answer
}

func (p *Prompter) readLine() string {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dangerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	tileStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

// Renderer draws game state to the terminal. It implements game.Observer.
type Renderer struct {
	out io.Writer
}

// NewRenderer writes to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// StateChanged implements game.Observer.
func (r *Renderer) StateChanged(s game.Snapshot) {
	status := fmt.Sprintf("Time: %s | Dev cards: %d | Tiles in/out: %d/%d | Health: %d | Attack: %d | Items: [%s]",
		s.Clock, s.DevCardsLeft, s.IndoorLeft, s.OutdoorLeft,
		s.Health, s.Attack, strings.Join(s.Items, ", "))
	fmt.Fprintln(r.out, statusStyle.Render(status))
	fmt.Fprintln(r.out, titleStyle.Render(fmt.Sprintf("You are in the %s.", s.Room.Name)))
	fmt.Fprintln(r.out, r.tileArt(s.Room))
	fmt.Fprintf(r.out, "Possible directions: %v\n", s.Room.Exits)
}

// TilePlaced implements game.Observer.
func (r *Renderer) TilePlaced(tile game.TileView, at game.Coordinate) {
	fmt.Fprintf(r.out, "Placed %s at row %d, col %d\n", tile.Name, at.Row, at.Col)
}

// Message implements game.Observer.
func (r *Renderer) Message(text string) {
	fmt.Fprintln(r.out, messageStyle.Render(text))
}

// GameEnded implements game.Observer.
func (r *Renderer) GameEnded(result game.Result, reason string) {
	style := dangerStyle
	if result == game.ResultWon {
		style = titleStyle
	}
	fmt.Fprintln(r.out, style.Render(reason))
}

// tileArt renders a room the way the board tile looks: walls are solid,
// open sides are gaps.
func (r *Renderer) tileArt(tile game.TileView) string {
	open := map[string]bool{}
	for _, d := range tile.Exits {
		open[d.String()] = true
	}
	width := len(tile.Name)
	if width < 15 {
		width = 15
	}
	pad := (width - len(tile.Name)) / 2
	name := strings.Repeat(" ", pad) + tile.Name + strings.Repeat(" ", width-len(tile.Name)-pad)

	side := func(openSide bool, wall string) string {
		if openSide {
			return " "
		}
		return wall
	}

	var b strings.Builder
	b.WriteString(" " + strings.Repeat(side(open["N"], "_"), width+2) + " \n")
	b.WriteString("+" + strings.Repeat(" ", width+2) + "+\n")
	b.WriteString(side(open["W"], "|") + " " + name + " " + side(open["E"], "|") + "\n")
	b.WriteString("+" + strings.Repeat(side(open["S"], "_"), width+2) + "+")
	return tileStyle.Render(b.String())
}
