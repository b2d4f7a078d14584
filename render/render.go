package render

import (
	"connect4/game"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

const border = "+---+---+---+---+---+---+---+"

const menu = `Choose an opponent.

1. Human. (Yourself or the person next to you).
2. Random agent.
3. Monte Carlo rollout agent.

Select opponent ('1', '2', or '3') or 'q' to quit, then press enter.`

// Renderer draws matches and menus on a terminal.
type Renderer struct {
	out *termenv.Output
}

// New renders to w. Pass termenv.WithProfile(termenv.Ascii) to drop colors.
func New(w io.Writer, options ...termenv.OutputOption) *Renderer {
	return &Renderer{out: termenv.NewOutput(w, options...)}
}

// Setup switches to the alternate screen, Cleanup restores the terminal.
func (r *Renderer) Setup() {
	r.out.AltScreen()
	r.out.HideCursor()
}

func (r *Renderer) Cleanup() {
	r.out.Reset()
	r.out.ShowCursor()
	r.out.ExitAltScreen()
}

func (r *Renderer) color(p game.Player) termenv.Color {
	if p == game.First {
		return termenv.ANSIBlue
	}
	return termenv.ANSIRed
}

func (r *Renderer) name(p game.Player) string {
	return r.out.String(p.String()).Foreground(r.color(p)).String()
}

func (r *Renderer) piece(c game.Cell) string {
	p, ok := c.Player()
	if !ok {
		return " "
	}
	return r.out.String("●").Foreground(r.color(p)).String()
}

// Match draws the header, the board and the key hints. The column numbers are
// only shown when a human is to move.
func (r *Renderer) Match(m game.Match, yourTurn bool) {
	var b strings.Builder

	result, over := m.State().Result()
	switch {
	case !over:
		b.WriteString(r.name(m.NextPlayer()) + "'s turn")
		if yourTurn {
			b.WriteString(" (that's you)")
		}
	case result.IsTie():
		b.WriteString("It's a Tie")
	default:
		winner, _ := result.Winner()
		b.WriteString(r.name(winner) + " wins!")
	}
	b.WriteString("\n")

	if yourTurn && !over {
		for col := 0; col < game.Cols; col++ {
			if m.ValidAction(game.Action{Column: col}) {
				fmt.Fprintf(&b, "  %d ", col+1)
			} else {
				b.WriteString("    ")
			}
		}
	}
	b.WriteString("\n" + border + "\n")

	for row := game.Rows - 1; row >= 0; row-- {
		for col := 0; col < game.Cols; col++ {
			b.WriteString("| " + r.piece(m.Get(col, row)) + " ")
		}
		b.WriteString("|\n" + border + "\n")
	}

	if yourTurn && !over {
		fmt.Fprintf(&b, "choose a column (1-%d) or ", game.Cols)
	}
	b.WriteString("'q' to quit\n")

	r.out.ClearScreen()
	io.WriteString(r.out, b.String())
}

// Menu draws the opponent menu, flagging debug builds whose rollout agent is weaker.
func (r *Renderer) Menu(debug bool) {
	var b strings.Builder
	b.WriteString("Connect 4")
	if debug {
		b.WriteString(r.out.String(" !!! Debug Mode (rollout agent is weaker) !!!").Foreground(termenv.ANSIRed).String())
	}
	b.WriteString("\n" + menu + "\n")

	r.out.ClearScreen()
	io.WriteString(r.out, b.String())
}
