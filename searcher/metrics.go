package searcher

import (
	"time"
)

type SearchMetric struct {
	Solver    string
	StartTime time.Time
	Duration  time.Duration
	Nodes     int // states entered, including terminal ones and cache hits
	Terminals int
	CacheHits int
	Cutoffs   int
	CacheSize int
}

// Collector counts search events. A solve runs on a single goroutine, so
// implementations need no synchronization.
type Collector interface {
	Start(solver string)
	AddNode()
	AddTerminal()
	AddCacheHit()
	AddCutoff()
	Complete(cacheSize int) SearchMetric
}

type collector struct {
	metric SearchMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(solver string) {
	m.metric = SearchMetric{Solver: solver, StartTime: time.Now()}
}

func (m *collector) AddNode() {
	m.metric.Nodes++
}

func (m *collector) AddTerminal() {
	m.metric.Terminals++
}

func (m *collector) AddCacheHit() {
	m.metric.CacheHits++
}

func (m *collector) AddCutoff() {
	m.metric.Cutoffs++
}

func (m *collector) Complete(cacheSize int) SearchMetric {
	m.metric.Duration = time.Since(m.metric.StartTime)
	m.metric.CacheSize = cacheSize
	return m.metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(solver string)                 {}
func (m *dummyCollector) AddNode()                            {}
func (m *dummyCollector) AddTerminal()                        {}
func (m *dummyCollector) AddCacheHit()                        {}
func (m *dummyCollector) AddCutoff()                          {}
func (m *dummyCollector) Complete(cacheSize int) SearchMetric { return SearchMetric{} }
