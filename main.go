package main

import (
	"bufio"
	"connect4/config"
	"connect4/engine"
	"connect4/experiments"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/meta"
	"connect4/player"
	"connect4/render"
	"connect4/searcher"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	human   = "human"
	random  = "random"
	rollout = "rollout"
)

func main() {
	cfg := config.Load()

	first := flag.String("first", "", "First seat: human, random or rollout (empty opens the menu)")
	second := flag.String("second", "", "Second seat: human, random or rollout")
	simulations := flag.Int("simulations", cfg.Simulations, "Playouts per candidate column for rollout agents")
	goroutines := flag.Int("goroutines", cfg.Goroutines, "Number of goroutines for parallel playouts")
	seed := flag.Uint64("seed", cfg.Seed, "Random seed, 0 seeds from the clock")
	games := flag.Int("games", cfg.Games, "Number of arena games between two agents")
	out := flag.String("out", cfg.ResultsDir, "Directory for arena records, empty to skip writing")
	level := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	flag.Parse()

	cfg.Simulations = *simulations
	cfg.Goroutines = *goroutines
	cfg.Seed = *seed
	cfg.Games = *games
	cfg.ResultsDir = *out

	interactive := *first == human || *second == human || (*first == "" && *second == "")
	setupLogging(cfg, *level, interactive)

	if cfg.Seed == 0 {
		cfg.Seed = meta.SeedFn()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	var err error
	switch {
	case *first == "" && *second == "":
		err = runMenu(cfg, rng)
	case interactive:
		err = runInteractive(cfg, rng, *first, *second)
	default:
		err = runArena(cfg, *first, *second)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("connect4 failed")
	}
}

func setupLogging(cfg *config.Config, level string, interactive bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	globalLevel := cfg.LogLevel
	if interactive && os.Getenv("C4_LOG_LEVEL") == "" {
		// keep log lines from overwriting the board
		globalLevel = zerolog.WarnLevel
	}
	if level != "" {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			log.Warn().Err(err).Msgf("invalid log level %q, keeping %s", level, globalLevel)
		} else {
			globalLevel = parsed
		}
	}
	zerolog.SetGlobalLevel(globalLevel)
}

// runMenu asks for an opponent until the user quits, playing them as Blue.
func runMenu(cfg *config.Config, rng *rand.Rand) error {
	r := render.New(os.Stdout)
	r.Setup()
	defer r.Cleanup()

	in := bufio.NewScanner(os.Stdin)
	for {
		r.Menu(meta.DEBUG)
		if !in.Scan() {
			return in.Err()
		}

		var opponent string
		switch strings.TrimSpace(in.Text()) {
		case "1":
			opponent = human
		case "2":
			opponent = random
		case "3":
			opponent = rollout
		case "q":
			return nil
		default:
			continue
		}

		if err := playMatch(cfg, rng, r, in, human, opponent); err != nil {
			return err
		}
	}
}

func runInteractive(cfg *config.Config, rng *rand.Rand, first, second string) error {
	r := render.New(os.Stdout)
	r.Setup()
	defer r.Cleanup()

	return playMatch(cfg, rng, r, bufio.NewScanner(os.Stdin), first, second)
}

// playMatch plays one match on the terminal and waits for 'q' once it is over.
// A player quitting ends the match early without an error.
func playMatch(cfg *config.Config, rng *rand.Rand, r *render.Renderer, in *bufio.Scanner, first, second string) error {
	seats := [2]string{first, second}
	agents := [2]engine.Agent{}
	for i, kind := range seats {
		agent, err := newAgent(cfg, rng, kind, r, in)
		if err != nil {
			return err
		}
		agents[i] = agent
	}

	observe := func(m game.Match) {
		// human seats redraw from their own prompt
		if seats[m.NextPlayer()-1] != human || m.State().IsOver() {
			r.Match(m, false)
		}
	}
	e := engine.LocalEngine(agents[0], agents[1], engine.WithObserver(observe))

	result, _, _, err := e.Run()
	if player.Quit(err) {
		return nil
	}
	if err != nil {
		return err
	}
	log.Info().Msgf("match over: %s", result)

	for in.Scan() {
		if strings.TrimSpace(in.Text()) == "q" {
			return nil
		}
	}
	return in.Err()
}

func newAgent(cfg *config.Config, rng *rand.Rand, kind string, r *render.Renderer, in *bufio.Scanner) (engine.Agent, error) {
	child := rand.New(rand.NewSource(rng.Uint64()))
	switch kind {
	case human:
		return player.NewHuman(human, in, func(m game.Match) { r.Match(m, true) }), nil
	case random:
		return searcher.NewRandom(child), nil
	case rollout:
		return searcher.NewRollout(
			searcher.WithSimulations(cfg.Simulations),
			searcher.WithGoroutines(cfg.Goroutines),
			searcher.WithRand(child),
		), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", kind)
	}
}

func agentConfig(cfg *config.Config, id int, kind string) (metrics.AgentConfig, error) {
	switch kind {
	case random:
		return metrics.AgentConfig{ID: id, Kind: metrics.RandomAgent}, nil
	case rollout:
		return metrics.AgentConfig{ID: id, Kind: metrics.RolloutAgent, Simulations: cfg.Simulations, Goroutines: cfg.Goroutines}, nil
	default:
		return metrics.AgentConfig{}, fmt.Errorf("arena needs random or rollout agents, got %q", kind)
	}
}

func runArena(cfg *config.Config, first, second string) error {
	agent1, err := agentConfig(cfg, 1, first)
	if err != nil {
		return err
	}
	agent2, err := agentConfig(cfg, 2, second)
	if err != nil {
		return err
	}

	summary, err := experiments.RunArena(experiments.ArenaConfig{
		Name:   fmt.Sprintf("%s_vs_%s", first, second),
		Games:  cfg.Games,
		Agents: [2]metrics.AgentConfig{agent1, agent2},
		Seed:   cfg.Seed,
		OutDir: cfg.ResultsDir,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%d games: agent1 (%s) %d wins, agent2 (%s) %d wins, %d ties\n", summary.Games, first, summary.Wins[0], second, summary.Wins[1], summary.Ties)
	fmt.Printf("first seat won %d, second seat won %d\n", summary.FirstSeatWins, summary.SecondSeatWins)
	if summary.Dir != "" {
		fmt.Printf("records stored in %s\n", summary.Dir)
	}
	return nil
}
