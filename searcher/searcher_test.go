package searcher

import (
	"connect4/game"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func play(t *testing.T, columns ...int) game.Match {
	t.Helper()
	m := game.NewMatch()
	for _, col := range columns {
		_, err := m.ApplyAction(game.Action{Column: col})
		require.NoError(t, err)
	}
	return m
}

// fillColumn stacks alternating pieces until the column is full
func fillColumn(t *testing.T, m *game.Match, col int) {
	t.Helper()
	for m.ValidAction(game.Action{Column: col}) {
		_, err := m.ApplyAction(game.Action{Column: col})
		require.NoError(t, err)
	}
}

// First owns row 0 of columns 0-2, Second row 1; First to move wins at column 3
func oneMoveFromWin(t *testing.T) game.Match {
	return play(t, 0, 0, 1, 1, 2, 2)
}

// Tie board minus the top cells of columns 2 and 5; filling them either way is a tie
func twoCellsFromTie(t *testing.T) game.Match {
	m := play(t, 0, 1, 0, 0, 2, 0, 0, 1, 0, 3, 1, 3, 1, 1, 2, 1, 3, 2, 3, 2,
		2, 3, 4, 3, 4, 4, 6, 4, 4, 5, 4, 5, 5, 6, 5, 5, 6, 6, 6, 6)
	require.Equal(t, game.InProgress, m.State())
	require.Equal(t, []game.Action{{Column: 2}, {Column: 5}}, m.ValidActions())
	return m
}

func TestRandom(t *testing.T) {
	t.Run("always returns a valid column", func(t *testing.T) {
		m := play(t)
		fillColumn(t, &m, 0)
		fillColumn(t, &m, 3)
		fillColumn(t, &m, 6)
		policy := NewRandom(seeded(7))

		for i := 0; i < 500; i++ {
			action := policy.SelectMove(m)
			require.True(t, m.ValidAction(action), "Column %d should be valid", action.Column)
		}
	})

	t.Run("covers every valid column", func(t *testing.T) {
		m := play(t)
		fillColumn(t, &m, 1)
		policy := NewRandom(seeded(3))
		seen := map[int]int{}

		for i := 0; i < 1200; i++ {
			seen[policy.SelectMove(m).Column]++
		}

		require.Len(t, seen, game.Cols-1, "Every open column should be drawn")
		require.NotContains(t, seen, 1, "Full column should never be drawn")
		for col, n := range seen {
			require.InDelta(t, 200, n, 80, "Column %d should be drawn about uniformly", col)
		}
	})

	t.Run("same seed gives the same moves", func(t *testing.T) {
		m := play(t)
		a, b := NewRandom(seeded(11)), NewRandom(seeded(11))

		for i := 0; i < 50; i++ {
			require.Equal(t, a.SelectMove(m), b.SelectMove(m))
		}
	})

	t.Run("panics on a full board", func(t *testing.T) {
		m := play(t)
		m2 := twoCellsFromTie(t)
		_, err := m2.ApplyAction(game.Action{Column: 2})
		require.NoError(t, err)
		_, err = m2.ApplyAction(game.Action{Column: 5})
		require.NoError(t, err)
		policy := NewRandom(seeded(1))

		require.NotPanics(t, func() { policy.SelectMove(m) })
		require.Panics(t, func() { policy.SelectMove(m2) }, "Full board has no move to pick")
	})

	t.Run("plays a whole match", func(t *testing.T) {
		m := play(t)
		policy := NewRandom(seeded(5))

		result, err := m.Play(policy, policy)

		require.NoError(t, err)
		state, over := m.State().Result()
		require.True(t, over)
		require.Equal(t, result, state)
	})
}

func TestRolloutSelectMove(t *testing.T) {
	t.Run("takes an immediate win every time", func(t *testing.T) {
		m := oneMoveFromWin(t)
		for seed := uint64(1); seed <= 5; seed++ {
			r := NewRollout(WithSimulations(200), WithRand(seeded(seed)))

			require.Equal(t, game.Action{Column: 3}, r.SelectMove(m), "Seed %d should find the win", seed)
		}
	})

	t.Run("winning column scores exactly one", func(t *testing.T) {
		m := oneMoveFromWin(t)
		r := NewRollout(WithSimulations(100), WithRand(seeded(2)))

		candidates := r.Evaluate(m)

		require.Len(t, candidates, game.Cols)
		for i, c := range candidates {
			require.Equal(t, i, c.Action.Column, "Candidates should be in column order")
			require.Equal(t, 100, c.Wins+c.Losses+c.Ties, "Every candidate gets every playout")
			require.GreaterOrEqual(t, c.Score, -1.0)
			require.LessOrEqual(t, c.Score, 1.0)
		}
		require.Equal(t, 1.0, candidates[3].Score)
		require.Equal(t, 100, candidates[3].Wins)
		for _, c := range candidates {
			if c.Action.Column != 3 {
				require.Less(t, c.Score, 1.0, "Column %d should not be a sure win", c.Action.Column)
			}
		}
	})

	t.Run("equal scores resolve to the lowest column", func(t *testing.T) {
		m := twoCellsFromTie(t)
		r := NewRollout(WithSimulations(20), WithRand(seeded(1)))

		candidates := r.Evaluate(m)
		require.Len(t, candidates, 2)
		require.Equal(t, 0.0, candidates[0].Score, "Every playout should tie")
		require.Equal(t, 0.0, candidates[1].Score, "Every playout should tie")
		require.Equal(t, 20, candidates[1].Ties)

		require.Equal(t, game.Action{Column: 2}, r.SelectMove(m))
	})

	t.Run("single candidate is chosen", func(t *testing.T) {
		m := twoCellsFromTie(t)
		_, err := m.ApplyAction(game.Action{Column: 5})
		require.NoError(t, err)
		r := NewRollout(WithSimulations(5), WithRand(seeded(1)))

		require.Equal(t, game.Action{Column: 2}, r.SelectMove(m))
	})

	t.Run("no candidate returns column zero", func(t *testing.T) {
		m := twoCellsFromTie(t)
		for _, col := range []int{2, 5} {
			_, err := m.ApplyAction(game.Action{Column: col})
			require.NoError(t, err)
		}
		r := NewRollout(WithSimulations(5), WithRand(seeded(1)))

		require.Empty(t, r.Evaluate(m))
		require.Equal(t, game.Action{Column: 0}, r.SelectMove(m), "Sentinel should be column 0")
	})

	t.Run("does not change the match", func(t *testing.T) {
		m := oneMoveFromWin(t)
		before := m.Clone()
		r := NewRollout(WithSimulations(10), WithRand(seeded(1)))

		r.SelectMove(m)

		require.Equal(t, before, m)
	})

	t.Run("returns a valid column mid game", func(t *testing.T) {
		m := play(t, 3, 3, 2)
		r := NewRollout(WithSimulations(30), WithRand(seeded(9)))

		require.True(t, m.ValidAction(r.SelectMove(m)))
	})
}

func TestRolloutParallel(t *testing.T) {
	t.Run("goroutines run every playout", func(t *testing.T) {
		m := oneMoveFromWin(t)
		r := NewRollout(WithSimulations(101), WithGoroutines(4), WithRand(seeded(1)), WithMetrics())

		action, metric := r.Search(m)

		require.Equal(t, game.Action{Column: 3}, action)
		require.Equal(t, 4, metric.Goroutines)
		require.Equal(t, 101, metric.Simulations)
		require.Equal(t, game.Cols, metric.Candidates)
		require.Equal(t, game.Cols*101, metric.Playouts, "Every candidate should get every playout")
	})

	t.Run("same seed gives the same candidates", func(t *testing.T) {
		m := play(t, 3)
		evaluate := func() []Candidate {
			return NewRollout(WithSimulations(2000), WithGoroutines(4), WithRand(seeded(42))).Evaluate(m)
		}

		first := evaluate()
		for i := 0; i < 5; i++ {
			require.Equal(t, first, evaluate(), "Run %d should repeat the first", i+2)
		}
	})

	t.Run("shares cover every playout", func(t *testing.T) {
		for _, tc := range []struct{ simulations, goroutines int }{{101, 4}, {3, 8}, {64, 8}} {
			total := 0
			for i := 0; i < tc.goroutines; i++ {
				n := share(tc.simulations, tc.goroutines, i)
				require.GreaterOrEqual(t, n, tc.simulations/tc.goroutines)
				total += n
			}
			require.Equal(t, tc.simulations, total, "%d playouts over %d goroutines", tc.simulations, tc.goroutines)
		}
	})

	t.Run("parallel tallies add up", func(t *testing.T) {
		m := play(t, 3)
		r := NewRollout(WithSimulations(64), WithGoroutines(8), WithRand(seeded(4)))

		for _, c := range r.Evaluate(m) {
			require.Equal(t, 64, c.Wins+c.Losses+c.Ties)
		}
	})
}

func TestNewRollout(t *testing.T) {
	t.Run("ignores non-positive options", func(t *testing.T) {
		r := NewRollout(WithSimulations(0), WithGoroutines(-1), WithRand(nil))

		require.Positive(t, r.simulations)
		require.Equal(t, 1, r.goroutines)
		require.NotNil(t, r.rng)
	})

	t.Run("metrics are off by default", func(t *testing.T) {
		r := NewRollout(WithSimulations(3), WithRand(seeded(1)))

		_, metric, err := r.FindMove(play(t))

		require.NoError(t, err)
		require.Zero(t, metric.Playouts)
	})
}

func TestReward(t *testing.T) {
	require.Equal(t, WIN, reward(game.Winner(game.First), game.First))
	require.Equal(t, LOSS, reward(game.Winner(game.Second), game.First))
	require.Equal(t, TIE, reward(game.Tie, game.Second))
}
