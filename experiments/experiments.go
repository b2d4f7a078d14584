package experiments

import (
	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/meta"
	"connect4/searcher"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type ArenaConfig struct {
	Name   string
	Games  int
	Agents [2]metrics.AgentConfig
	Seed   uint64 // 0 seeds from meta.SeedFn
	OutDir string // Records are only written when set
}

type Summary struct {
	Games          int
	Wins           [2]int // Indexed like ArenaConfig.Agents
	Ties           int
	FirstSeatWins  int
	SecondSeatWins int
	Dir            string // Where the records were written
}

// named overrides the name of an agent so both sides stay distinguishable
// in the records when they share a configuration.
type named struct {
	engine.Agent
	name string
}

func (n named) Name() string {
	return n.name
}

// RunArena plays cfg.Games games between the two agents, swapping seats every
// game so each starts equally often.
func RunArena(cfg ArenaConfig) (Summary, error) {
	if cfg.Games <= 0 {
		return Summary{}, fmt.Errorf("arena needs at least one game, got %d", cfg.Games)
	}
	if cfg.Name == "" {
		cfg.Name = "arena"
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = meta.SeedFn()
	}
	rng := rand.New(rand.NewSource(seed))

	summary := Summary{}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment between agent1=%+v and agent2=%+v (seed %d)...", cfg.Name, cfg.Agents[0], cfg.Agents[1], seed)

	for i := 0; i < cfg.Games; i++ {
		seats := [2]int{0, 1}
		if i%2 == 1 {
			seats = [2]int{1, 0}
		}

		first, err := newAgent(cfg.Agents[seats[0]], rng)
		if err != nil {
			return summary, err
		}
		second, err := newAgent(cfg.Agents[seats[1]], rng)
		if err != nil {
			return summary, err
		}

		log.Info().Msgf("starting game %d of %d...", i+1, cfg.Games)
		result, gameMetric, moveMetrics, err := engine.LocalEngine(first, second).Run()
		if err != nil {
			return summary, fmt.Errorf("game %d: %w", i+1, err)
		}

		summary.Games++
		if winner, ok := result.Winner(); !ok {
			summary.Ties++
		} else if winner == game.First {
			summary.FirstSeatWins++
			summary.Wins[seats[0]]++
		} else {
			summary.SecondSeatWins++
			summary.Wins[seats[1]]++
		}

		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i + 1,
			Agent1:     cfg.Agents[seats[0]].ID,
			Agent2:     cfg.Agents[seats[1]].ID,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       i + 1,
				MoveMetric: mm,
			})
		}

		log.Info().Msgf("completed game %d of %d with result: %s", i+1, cfg.Games, result)
	}

	log.Info().Msgf("completed %s experiment: agent1 %d wins, agent2 %d wins, %d ties", cfg.Name, summary.Wins[0], summary.Wins[1], summary.Ties)

	if cfg.OutDir == "" {
		return summary, nil
	}

	// Store experiment metadata and results
	writer, err := metrics.NewWriter(cfg.OutDir, cfg.Name)
	if err != nil {
		return summary, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(cfg.Agents[:]); err != nil {
		return summary, err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return summary, err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return summary, err
	}
	summary.Dir = writer.Dir()
	log.Info().Msgf("stored records in %s", summary.Dir)

	return summary, nil
}

func newAgent(config metrics.AgentConfig, rng *rand.Rand) (engine.Agent, error) {
	child := rand.New(rand.NewSource(rng.Uint64()))

	var agent engine.Agent
	switch config.Kind {
	case metrics.RandomAgent:
		agent = searcher.NewRandom(child)
	case metrics.RolloutAgent:
		agent = searcher.NewRollout(
			searcher.WithSimulations(config.Simulations),
			searcher.WithGoroutines(config.Goroutines),
			searcher.WithRand(child),
			searcher.WithMetrics(),
		)
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
	return named{Agent: agent, name: fmt.Sprintf("%d:%s", config.ID, agent.Name())}, nil
}
