package metrics

import (
	"time"
)

// SearchMetric describes a single move search.
type SearchMetric struct {
	Difficulty string
	Depth      int
	Noise      int
	Duration   time.Duration
	Candidates int // Root moves considered
	Nodes      int
	Leaves     int
	Cutoffs    int
	TimedOut   bool
}

type MoveMetric struct {
	Step   int
	Player int
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int
	Winner         int // -1 if the turn cap was reached
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	IllegalMoves   int // Agent moves replaced by the engine's fallback
}

// Collector accumulates statistics during one search. Searches are single
// threaded, so collectors are not safe for concurrent use.
type Collector interface {
	Start(difficulty string, depth, noise int)
	SetCandidates(n int)
	AddNode()
	AddLeaf()
	AddCutoff()
	SetTimedOut()
	Complete() SearchMetric
}

type collector struct {
	difficulty string
	depth      int
	noise      int
	startTime  time.Time
	candidates int
	nodes      int
	leaves     int
	cutoffs    int
	timedOut   bool
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(difficulty string, depth, noise int) {
	*m = collector{
		difficulty: difficulty,
		depth:      depth,
		noise:      noise,
		startTime:  time.Now(),
	}
}

func (m *collector) SetCandidates(n int) {
	m.candidates = n
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) SetTimedOut() {
	m.timedOut = true
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Difficulty: m.difficulty,
		Depth:      m.depth,
		Noise:      m.noise,
		Duration:   time.Since(m.startTime),
		Candidates: m.candidates,
		Nodes:      m.nodes,
		Leaves:     m.leaves,
		Cutoffs:    m.cutoffs,
		TimedOut:   m.timedOut,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(difficulty string, depth, noise int) {}
func (m *dummyCollector) SetCandidates(n int)                       {}
func (m *dummyCollector) AddNode()                                  {}
func (m *dummyCollector) AddLeaf()                                  {}
func (m *dummyCollector) AddCutoff()                                {}
func (m *dummyCollector) SetTimedOut()                              {}
func (m *dummyCollector) Complete() SearchMetric                    { return SearchMetric{} }
