package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/meta"
	"fmt"
	"math"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(r *Rollout)

// Rollout scores every valid column by playing full random games from the
// position after that column and picks the best average outcome. This is flat
// Monte-Carlo evaluation: no tree is kept between candidates or moves.
type Rollout struct {
	simulations int
	goroutines  int
	rng         *rand.Rand
	metrics     metrics.Collector
}

// Candidate is a scored column.
type Candidate struct {
	Action game.Action
	Wins   int
	Losses int
	Ties   int
	Score  float64 // (Wins-Losses)/simulations, in [-1, 1]
}

func WithSimulations(simulations int) Option {
	return func(r *Rollout) {
		if simulations > 0 {
			r.simulations = simulations
		}
	}
}

func WithGoroutines(goroutines int) Option {
	return func(r *Rollout) {
		if goroutines > 0 {
			r.goroutines = goroutines
		}
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(r *Rollout) {
		if rng != nil {
			r.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(r *Rollout) {
		r.metrics = metrics.NewCollector()
	}
}

func NewRollout(options ...Option) *Rollout {
	r := &Rollout{ // Default values
		simulations: meta.SIMULATIONS,
		goroutines:  meta.GOROUTINES,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(r)
	}
	if r.simulations <= 0 {
		panic("Must specify a positive number of simulations")
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewSource(meta.SeedFn()))
	}
	return r
}

func (r *Rollout) Name() string {
	return fmt.Sprintf("rollout(%d)", r.simulations)
}

// SelectMove returns the best scored column. Equal scores resolve to the lowest
// column. A match without valid columns yields column 0, unchecked.
func (r *Rollout) SelectMove(m game.Match) game.Action {
	action, _ := r.Search(m)
	return action
}

func (r *Rollout) FindMove(m game.Match) (game.Action, metrics.SearchMetric, error) {
	action, metric := r.Search(m)
	return action, metric, nil
}

// Search is SelectMove with the metrics of the search.
func (r *Rollout) Search(m game.Match) (game.Action, metrics.SearchMetric) {
	r.metrics.Start(r.goroutines, r.simulations)
	best := bestAction(r.Evaluate(m))
	return best, r.metrics.Complete()
}

// Evaluate scores every valid column in increasing order, from the
// perspective of the player to move.
func (r *Rollout) Evaluate(m game.Match) []Candidate {
	player := m.NextPlayer()
	candidates := make([]Candidate, 0, game.Cols)
	for _, action := range m.ValidActions() {
		next := m.Clone()
		if _, err := next.ApplyAction(action); err != nil {
			panic(fmt.Sprintf("valid action %d rejected: %v", action.Column, err))
		}
		r.metrics.AddCandidate()

		var t tally
		if r.goroutines > 1 {
			t = r.iterate(next, player)
		} else {
			t = r.playouts(next, player, NewRandom(r.rng), r.simulations)
		}

		c := Candidate{
			Action: action,
			Wins:   t.wins,
			Losses: t.losses,
			Ties:   t.ties,
			Score:  float64(t.wins-t.losses) / float64(r.simulations),
		}
		log.Debug().Msgf("column %d scored %.3f (%d wins, %d losses, %d ties)", action.Column, c.Score, c.Wins, c.Losses, c.Ties)
		candidates = append(candidates, c)
	}
	return candidates
}

func bestAction(candidates []Candidate) game.Action {
	maxScore := -math.MaxFloat64
	best := game.Action{Column: 0}
	for _, c := range candidates {
		if c.Score > maxScore {
			maxScore = c.Score
			best = c.Action
		}
	}
	return best
}

func (r *Rollout) playouts(start game.Match, player game.Player, policy *Random, n int) tally {
	var t tally
	for i := 0; i < n; i++ {
		t.record(r.playout(start, player, policy))
	}
	return t
}

// iterate spreads the playouts over a pool of goroutines. Worker i runs a
// fixed share of the playouts with its own generator, seeded before any worker
// starts, so the tallies only depend on the seed and the goroutine count.
func (r *Rollout) iterate(start game.Match, player game.Player) tally {
	tallies := make([]tally, r.goroutines)
	var wg sync.WaitGroup
	for i := 0; i < r.goroutines; i++ {
		n := share(r.simulations, r.goroutines, i)
		policy := NewRandom(rand.New(rand.NewSource(r.rng.Uint64())))
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tallies[i] = r.playouts(start, player, policy, n)
		}(i)
	}
	wg.Wait()

	var total tally
	for _, t := range tallies {
		total.merge(t)
	}
	return total
}

// share is the number of playouts of worker i; the remainder goes to the first workers
func share(simulations, goroutines, i int) int {
	n := simulations / goroutines
	if i < simulations%goroutines {
		n++
	}
	return n
}

func (r *Rollout) playout(start game.Match, player game.Player, policy *Random) int {
	m := start.Clone()
	result, err := m.Play(policy, policy)
	if err != nil {
		panic(fmt.Sprintf("random playout made an invalid move: %v", err))
	}
	r.metrics.AddPlayout()
	return reward(result, player)
}
