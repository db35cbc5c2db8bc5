package idgen

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSnowflake_UniqueAndMonotonic(t *testing.T) {
	g := NewSnowflakeIDGenerator(7)

	var (
		mu   sync.Mutex
		seen = make(map[int64]struct{})
		wg   sync.WaitGroup
	)
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				id := g.NextID()
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 800)
}

func TestSnowflake_Layout(t *testing.T) {
	fixed := time.Date(2024, 1, 1, 0, 0, 10, 0, time.UTC)
	g := NewSnowflakeIDGenerator(12)
	g.now = func() time.Time { return fixed }

	assert.Equal(t, int64(10*100000+12*1000), g.NextID())
	assert.Equal(t, int64(10*100000+12*1000+1), g.NextID())
}

func TestSnowflake_ClockBackwards(t *testing.T) {
	current := time.Date(2024, 1, 1, 0, 1, 0, 0, time.UTC)
	g := NewSnowflakeIDGenerator(1)
	g.now = func() time.Time { return current }

	first := g.NextID()
	current = current.Add(-5 * time.Second)
	second := g.NextID()

	assert.Greater(t, second, first)
}

func TestSnowflake_InvalidMachineID(t *testing.T) {
	g := NewSnowflakeIDGenerator(150)
	assert.Equal(t, int64(0), g.machineID)
}
