package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/meta"
	"time"

	"golang.org/x/exp/rand"
)

// Random picks uniformly among the valid columns. It owns its generator and
// must not be shared between goroutines.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a uniform random selector. A nil rng is replaced by a
// generator seeded with meta.SeedFn.
func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		rng = rand.New(rand.NewSource(meta.SeedFn()))
	}
	return &Random{rng: rng}
}

func (r *Random) Name() string {
	return "random"
}

// SelectMove panics if the match has no valid column.
func (r *Random) SelectMove(m game.Match) game.Action {
	var actions [game.Cols]game.Action
	n := 0
	for col := 0; col < game.Cols; col++ {
		if a := (game.Action{Column: col}); m.ValidAction(a) {
			actions[n] = a
			n++
		}
	}
	if n == 0 {
		panic("random selector called on a full board")
	}
	return actions[r.rng.Intn(n)]
}

func (r *Random) FindMove(m game.Match) (game.Action, metrics.SearchMetric, error) {
	start := time.Now()
	action := r.SelectMove(m)
	return action, metrics.SearchMetric{Goroutines: 1, Duration: time.Since(start)}, nil
}
