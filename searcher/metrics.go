package searcher

import "time"

// SearchMetric summarizes a single FindBestMove call.
type SearchMetric struct {
	Depth    int
	Duration time.Duration
	Nodes    int64
	Leaves   int64
	Prunes   int64
}

// Collector gathers counters during a search. The search itself is
// single-threaded, so plain integers suffice.
type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddPrune()
	Complete() SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     int64
	leaves    int64
	prunes    int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(depth int) {
	c.startTime = time.Now()
	c.depth = depth
	c.nodes = 0
	c.leaves = 0
	c.prunes = 0
}

func (c *collector) AddNode() {
	c.nodes++
}

func (c *collector) AddLeaf() {
	c.leaves++
}

func (c *collector) AddPrune() {
	c.prunes++
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:    c.depth,
		Duration: time.Since(c.startTime),
		Nodes:    c.nodes,
		Leaves:   c.leaves,
		Prunes:   c.prunes,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (d *dummyCollector) Start(depth int)        {}
func (d *dummyCollector) AddNode()               {}
func (d *dummyCollector) AddLeaf()               {}
func (d *dummyCollector) AddPrune()              {}
func (d *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
