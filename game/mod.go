package game

import "fmt"

const (
	Rows   = 6
	Cols   = 7
	InARow = 4 // Pieces in a line needed to win
)

// Player is one of the two sides. Colors are cosmetic: First plays blue.
type Player uint8

const (
	First Player = iota + 1
	Second
)

// Next returns the opponent of p
func (p Player) Next() Player {
	if p == First {
		return Second
	}
	return First
}

func (p Player) String() string {
	switch p {
	case First:
		return "Blue"
	case Second:
		return "Red"
	default:
		return fmt.Sprintf("Player(%d)", uint8(p))
	}
}

// Cell is either Empty or holds the piece of one player.
type Cell uint8

const Empty Cell = 0

func occupied(p Player) Cell {
	return Cell(p)
}

// Player returns the owner of the cell, false if the cell is empty.
func (c Cell) Player() (Player, bool) {
	return Player(c), c != Empty
}

// Board stores cells column-major: index col*Rows+row, with row 0 at the bottom.
type Board [Cols * Rows]Cell

func (b *Board) Get(col, row int) Cell {
	return b[col*Rows+row]
}

func (b *Board) set(col, row int, c Cell) {
	b[col*Rows+row] = c
}

// Action drops a piece into a 0-based column.
type Action struct {
	Column int
}

// MatchResult is the outcome of a finished match: a winner or a tie.
type MatchResult struct {
	winner Player
	tie    bool
}

// Winner returns a result won by p.
func Winner(p Player) MatchResult {
	return MatchResult{winner: p}
}

// Tie is the result of a full board without a line.
var Tie = MatchResult{tie: true}

// Winner reports the winning player, false on a tie and on the zero value
// returned next to an error.
func (r MatchResult) Winner() (Player, bool) {
	return r.winner, r.winner != 0 && !r.tie
}

func (r MatchResult) IsTie() bool {
	return r.tie
}

func (r MatchResult) String() string {
	if r.tie {
		return "Tie"
	}
	return r.winner.String() + " wins"
}

// MatchState is derived from the board on demand: in progress, or over with a result.
type MatchState struct {
	over   bool
	result MatchResult
}

var InProgress = MatchState{}

// Over returns a terminal state with the given result.
func Over(r MatchResult) MatchState {
	return MatchState{over: true, result: r}
}

func (s MatchState) IsOver() bool {
	return s.over
}

// Result returns the result of a terminal state, false while in progress.
func (s MatchState) Result() (MatchResult, bool) {
	return s.result, s.over
}

func (s MatchState) String() string {
	if !s.over {
		return "InProgress"
	}
	return "Over(" + s.result.String() + ")"
}

// Mover supplies actions for one side of a match. The match is passed by
// value, so a mover cannot change the caller's state.
type Mover interface {
	SelectMove(m Match) Action
}

// MoverFunc adapts a plain function to a Mover.
type MoverFunc func(m Match) Action

func (f MoverFunc) SelectMove(m Match) Action {
	return f(m)
}
