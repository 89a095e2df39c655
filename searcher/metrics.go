package searcher

import (
	"time"
)

type SearchMetric struct {
	StartTime  time.Time
	Duration   time.Duration
	Nodes      int // Expanded (non-terminal) states
	Terminals  int // Terminal leaves evaluated
	Overwrites int // Table entries replaced by a revisit of the same state
	MaxDepth   int // Deepest ply reached below the root
}

type MetricsCollector interface {
	Start()
	AddNode(depth int)
	AddTerminal(depth int)
	AddOverwrite()
	Complete() SearchMetric
}

// The search runs on one goroutine, so the collector needs no synchronization
type metricsCollector struct {
	startTime  time.Time
	nodes      int
	terminals  int
	overwrites int
	maxDepth   int
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	*m = metricsCollector{startTime: time.Now()}
}

func (m *metricsCollector) AddNode(depth int) {
	m.nodes++
	m.observe(depth)
}

func (m *metricsCollector) AddTerminal(depth int) {
	m.terminals++
	m.observe(depth)
}

func (m *metricsCollector) observe(depth int) {
	if depth > m.maxDepth {
		m.maxDepth = depth
	}
}

func (m *metricsCollector) AddOverwrite() {
	m.overwrites++
}

func (m *metricsCollector) Complete() SearchMetric {
	return SearchMetric{
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Nodes:      m.nodes,
		Terminals:  m.terminals,
		Overwrites: m.overwrites,
		MaxDepth:   m.maxDepth,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                 {}
func (m *noMetricsCollector) AddNode(int)            {}
func (m *noMetricsCollector) AddTerminal(int)        {}
func (m *noMetricsCollector) AddOverwrite()          {}
func (m *noMetricsCollector) Complete() SearchMetric { return SearchMetric{} }
