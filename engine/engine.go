package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"
)

// Agent picks the moves of one side.
type Agent interface {
	Name() string
	// FindMove returns a move and performance metrics (if collected) for the given match
	FindMove(m game.Match) (game.Action, metrics.SearchMetric, error)
}

type moverAgent struct {
	name  string
	mover game.Mover
}

// MoverAgent adapts a game.Mover that neither fails nor reports metrics.
func MoverAgent(name string, mover game.Mover) Agent {
	return moverAgent{name: name, mover: mover}
}

func (a moverAgent) Name() string {
	return a.name
}

func (a moverAgent) FindMove(m game.Match) (game.Action, metrics.SearchMetric, error) {
	return a.mover.SelectMove(m), metrics.SearchMetric{}, nil
}
