// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireEnforcesInterval(t *testing.T) {
	const interval = 50 * time.Millisecond

	g := NewGate()
	g.SetInterval("opencitations", interval)

	ctx := context.Background()
	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, g.Acquire(ctx, "opencitations"))
	}
	elapsed := time.Since(start)

	// First grant is immediate; the next two wait a full interval each.
	assert.GreaterOrEqual(t, elapsed, 2*interval)
}

func TestConcurrentAcquirersAreSerialized(t *testing.T) {
	const interval = 40 * time.Millisecond

	g := NewGate()
	g.SetInterval("crossref", interval)

	ctx := context.Background()
	grants := make([]time.Time, 3)

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, g.Acquire(ctx, "crossref"))
			grants[i] = time.Now()
		}(i)
	}
	wg.Wait()

	// Sort grant times and verify consecutive grants are spaced by at
	// least the interval, minus a small scheduling tolerance.
	for i := 0; i < len(grants); i++ {
		for j := i + 1; j < len(grants); j++ {
			if grants[j].Before(grants[i]) {
				grants[i], grants[j] = grants[j], grants[i]
			}
		}
	}
	const tolerance = 5 * time.Millisecond
	for i := 1; i < len(grants); i++ {
		gap := grants[i].Sub(grants[i-1])
		assert.GreaterOrEqual(t, gap, interval-tolerance,
			"grants %d and %d fired within the interval", i-1, i)
	}
}

func TestSourcesDoNotBlockEachOther(t *testing.T) {
	g := NewGate()
	g.SetInterval("slow", time.Second)
	g.SetInterval("fast", time.Millisecond)

	ctx := context.Background()

	// Consume slow's initial token so its next acquirer would wait 1s.
	require.NoError(t, g.Acquire(ctx, "slow"))

	start := time.Now()
	require.NoError(t, g.Acquire(ctx, "fast"))
	assert.Less(t, time.Since(start), 200*time.Millisecond,
		"fast source blocked by slow source's timer")
}

func TestZeroIntervalGrantsImmediately(t *testing.T) {
	g := NewGate()
	g.SetInterval("semantic_scholar", 0)

	ctx := context.Background()
	start := time.Now()
	for i := 0; i < 10; i++ {
		require.NoError(t, g.Acquire(ctx, "semantic_scholar"))
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestUnconfiguredSourceGrantsImmediately(t *testing.T) {
	g := NewGate()

	start := time.Now()
	require.NoError(t, g.Acquire(context.Background(), "never-configured"))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestAcquireRespectsContextCancellation(t *testing.T) {
	g := NewGate()
	g.SetInterval("slow", time.Minute)

	ctx := context.Background()
	require.NoError(t, g.Acquire(ctx, "slow"))

	waitCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()

	err := g.Acquire(waitCtx, "slow")
	require.Error(t, err)
}
