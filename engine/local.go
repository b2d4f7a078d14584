package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// WithObserver registers a function called with the match before the first
// move and after every move, e.g. to redraw the board.
func WithObserver(observe func(game.Match)) Option {
	return func(e *Engine) {
		if observe != nil {
			e.observe = observe
		}
	}
}

type Engine struct {
	Match   game.Match
	Agents  [2]Agent // Indexed by seat: First, then Second
	observe func(game.Match)
}

func LocalEngine(first, second Agent, options ...Option) *Engine {
	if first == nil || second == nil {
		panic("need two agents")
	}

	e := &Engine{
		Match:   game.NewMatch(),
		Agents:  [2]Agent{first, second},
		observe: func(game.Match) {},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Engine) agent(p game.Player) Agent {
	if p == game.Second {
		return e.Agents[1]
	}
	return e.Agents[0]
}

// Run plays the match until it is over.
func (e *Engine) Run() (game.MatchResult, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingAgent: e.Agents[0].Name(),
		StartTime:     time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s (%s) vs %s (%s) is starting", e.Agents[0].Name(), game.First, e.Agents[1].Name(), game.Second)
	e.observe(e.Match)

	step := 1
	state := e.Match.State()
	for !state.IsOver() {
		player := e.Match.NextPlayer()
		agent := e.agent(player)

		action, searchMetric, err := agent.FindMove(e.Match.Clone())
		if err != nil {
			return game.MatchResult{}, gameMetric, moveMetrics, fmt.Errorf("step %d: %s failed to find a move: %w", step, agent.Name(), err)
		}

		state, err = e.Match.ApplyAction(action)
		if err != nil {
			return game.MatchResult{}, gameMetric, moveMetrics, fmt.Errorf("step %d: %s made an invalid move: %w", step, agent.Name(), err)
		}
		log.Debug().Msgf("step %d: %s (%s) played column %d in %s", step, agent.Name(), player, action.Column, searchMetric.Duration)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Column:       action.Column,
			SearchMetric: searchMetric,
		})
		e.observe(e.Match)
		step++
	}

	result, _ := state.Result()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if winner, ok := result.Winner(); ok {
		gameMetric.Winner = e.agent(winner).Name()
		log.Info().Msgf("game over after %d moves, winner: %s (%s)", gameMetric.TotalMoves, gameMetric.Winner, winner)
	} else {
		log.Info().Msgf("game over after %d moves, it's a tie", gameMetric.TotalMoves)
	}

	return result, gameMetric, moveMetrics, nil
}
