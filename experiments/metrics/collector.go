package metrics

import (
	"connect4/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines  int
	Simulations int // Playouts per candidate
	Duration    time.Duration
	Candidates  int
	Playouts    int
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Column int
	SearchMetric
}

type GameMetric struct {
	StartingAgent string // Agent playing First
	Winner        string // Agent name, "" on a tie
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	TotalMoves    int
}

type Collector interface {
	Start(goroutines, simulations int)
	AddCandidate()
	AddPlayout()
	Complete() SearchMetric
}

type collector struct {
	goroutines  int
	simulations int
	startTime   time.Time
	candidates  atomic.Int32
	playouts    atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, simulations int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.simulations = simulations
	m.candidates.Store(0)
	m.playouts.Store(0)
}

func (m *collector) AddCandidate() {
	m.candidates.Add(1)
}

func (m *collector) AddPlayout() {
	m.playouts.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:  m.goroutines,
		Simulations: m.simulations,
		Duration:    time.Since(m.startTime),
		Candidates:  int(m.candidates.Load()),
		Playouts:    int(m.playouts.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, simulations int) {}
func (m *dummyCollector) AddCandidate()                     {}
func (m *dummyCollector) AddPlayout()                       {}
func (m *dummyCollector) Complete() SearchMetric            { return SearchMetric{} }
