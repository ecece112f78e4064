package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedLoadIDGenerator_ReturnsSameID(t *testing.T) {
	gen := NewFixedLoadIDGenerator("load-123")

	assert.Equal(t, "load-123", gen.Generate())
	assert.Equal(t, "load-123", gen.Generate())
}

func TestFixedLoadIDGenerator_EmptyIDDefault(t *testing.T) {
	gen := NewFixedLoadIDGenerator("")
	assert.Equal(t, FixedLoadID, gen.Generate())
}

func TestFixedLoadIDGenerator_ThreadSafe(t *testing.T) {
	gen := NewFixedLoadIDGenerator("thread-safe")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, "thread-safe", gen.Generate())
			}
		}()
	}
	wg.Wait()
}

func TestSequenceLoadIDGenerator_InOrder(t *testing.T) {
	gen := NewSequenceLoadIDGenerator("load-1", "load-2")

	assert.Equal(t, "load-1", gen.Generate())
	assert.Equal(t, "load-2", gen.Generate())
	assert.Panics(t, func() { gen.Generate() })
}
