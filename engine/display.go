package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/minaorangina/daidi/deck"
	"github.com/minaorangina/daidi/game"
)

// Display renders match progress as text.
type Display struct {
	out   io.Writer
	red   func(a ...interface{}) string
	plain func(a ...interface{}) string
	bold  func(a ...interface{}) string
}

// NewDisplay writes to out. With noColor set, no escape codes are emitted.
func NewDisplay(out io.Writer, noColor bool) *Display {
	red := color.New(color.FgHiRed)
	plain := color.New(color.FgHiWhite)
	bold := color.New(color.Bold)
	if noColor {
		red.DisableColor()
		plain.DisableColor()
		bold.DisableColor()
	}

	return &Display{
		out:   out,
		red:   red.SprintFunc(),
		plain: plain.SprintFunc(),
		bold:  bold.SprintFunc(),
	}
}

// SendText writes formatted text to the display's writer.
func (d *Display) SendText(text string, a ...interface{}) {
	fmt.Fprintf(d.out, text, a...)
}

// Card renders one card, red suits in red.
func (d *Display) Card(c deck.Card) string {
	if c.Suit().Red() {
		return d.red(c.Short())
	}
	return d.plain(c.Short())
}

// Cards renders cards separated by spaces.
func (d *Display) Cards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = d.Card(c)
	}
	return strings.Join(parts, " ")
}

// Combo renders a move.
func (d *Display) Combo(c game.Combo) string {
	if c.IsPass() {
		return "pass"
	}
	text := "[" + d.Cards(c) + "]"
	if len(c) == 5 {
		text += " " + fmt.Sprint(game.Classify(c))
	}
	return text
}

// State prints whose turn it is, the pile and that player's hand.
func (d *Display) State(g *game.Game) {
	seat := g.CurrentTurn()
	pile := "open table"
	if p := g.Pile(); !p.IsPass() {
		pile = d.Combo(p)
	}

	d.SendText("\n%s\n", d.bold(fmt.Sprintf("Player %d's turn", seat)))
	d.SendText("Current pile: %s\n", pile)
	d.SendText("Hand: %s\n", d.Cards(g.Hand(seat)))
}

// Turn prints the resolution of one turn.
func (d *Display) Turn(o game.TurnOutcome) {
	switch o.Kind {
	case game.Played:
		d.SendText("Player %d plays: %s\n", o.Player, d.Combo(o.Move))
	case game.Passed:
		d.SendText("Player %d passes\n", o.Player)
	case game.ControlReset:
		d.SendText("Player %d passes\nEveryone passed: player %d takes the table\n", o.Player, o.NextTurn)
	}
}

// GameOver announces the winner.
func (d *Display) GameOver(winner int) {
	d.SendText("\n%s\n", d.bold(fmt.Sprintf("Game Over! Player %d wins!", winner)))
}
