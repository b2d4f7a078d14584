package game

// Match holds the board and the player to move. It is a plain value: assigning
// or passing a Match copies the whole game.
type Match struct {
	board Board
	next  Player
}

// NewMatch returns an empty board with First to move.
func NewMatch() Match {
	return Match{next: First}
}

func (m *Match) NextPlayer() Player {
	return m.next
}

func (m *Match) Get(col, row int) Cell {
	return m.board.Get(col, row)
}

// Board returns a copy of the grid.
func (m *Match) Board() Board {
	return m.board
}

// Clone returns an independent copy of the match.
func (m *Match) Clone() Match {
	return *m
}

// Pieces counts the occupied cells.
func (m *Match) Pieces() int {
	n := 0
	for _, c := range m.board {
		if c != Empty {
			n++
		}
	}
	return n
}

// ValidAction reports whether a piece can be dropped into the action's column.
func (m *Match) ValidAction(a Action) bool {
	if a.Column < 0 || a.Column >= Cols {
		return false
	}
	return m.board.Get(a.Column, Rows-1) == Empty
}

// ValidActions lists the playable columns in increasing order.
func (m *Match) ValidActions() []Action {
	actions := make([]Action, 0, Cols)
	for col := 0; col < Cols; col++ {
		if a := (Action{Column: col}); m.ValidAction(a) {
			actions = append(actions, a)
		}
	}
	return actions
}

// ApplyAction drops the mover's piece into the lowest empty cell of the column,
// passes the turn and returns the new state.
func (m *Match) ApplyAction(a Action) (MatchState, error) {
	if a.Column < 0 || a.Column >= Cols {
		return InProgress, &ActionError{Kind: UnknownColumn, Column: a.Column}
	}
	for row := 0; row < Rows; row++ {
		if m.board.Get(a.Column, row) == Empty {
			m.board.set(a.Column, row, occupied(m.next))
			m.next = m.next.Next()
			return m.State(), nil
		}
	}
	return InProgress, &ActionError{Kind: FullColumn, Column: a.Column}
}

// State recomputes the status from the board alone.
func (m *Match) State() MatchState {
	if p, ok := m.board.findLine(); ok {
		return Over(Winner(p))
	}
	for col := 0; col < Cols; col++ {
		if m.board.Get(col, Rows-1) == Empty {
			return InProgress
		}
	}
	return Over(Tie)
}

// Play asks the mover of the current player for actions until the match is
// over. Errors from ApplyAction are returned unchanged.
func (m *Match) Play(first, second Mover) (MatchResult, error) {
	for {
		if result, over := m.State().Result(); over {
			return result, nil
		}
		mover := first
		if m.next == Second {
			mover = second
		}
		if _, err := m.ApplyAction(mover.SelectMove(*m)); err != nil {
			return MatchResult{}, err
		}
	}
}
