package testutil

import "sync"

// FixedLoadID is the load id handed out by FixedLoadIDGenerator when none is
// configured.
const FixedLoadID = "test-load-default"

// FixedLoadIDGenerator generates the same store load id every time.
//
// This keeps log fields and golden output deterministic. It satisfies
// store.LoadIDGenerator.
//
// Thread-safety: stateless and safe for concurrent use.
type FixedLoadIDGenerator struct {
	id string
}

// NewFixedLoadIDGenerator creates a fixed load id generator.
// If id is empty, Generate() returns FixedLoadID.
func NewFixedLoadIDGenerator(id string) *FixedLoadIDGenerator {
	if id == "" {
		id = FixedLoadID
	}
	return &FixedLoadIDGenerator{id: id}
}

// Generate returns the fixed load id.
func (g *FixedLoadIDGenerator) Generate() string {
	return g.id
}

// SequenceLoadIDGenerator hands out predetermined load ids in order, for
// tests that build several stores and need to tell them apart.
//
// Thread-safety: safe for concurrent use.
type SequenceLoadIDGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewSequenceLoadIDGenerator creates a generator that returns ids in order.
func NewSequenceLoadIDGenerator(ids ...string) *SequenceLoadIDGenerator {
	return &SequenceLoadIDGenerator{ids: ids}
}

// Generate returns the next id.
//
// Panics once every id has been handed out: the test built more stores
// than it declared.
func (g *SequenceLoadIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.ids) {
		panic("SequenceLoadIDGenerator: all ids exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}
