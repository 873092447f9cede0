//go:build unit

package bus

import (
	"sync"
	"testing"
	"time"

	"golang-ethernetd/internal/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_Transaction(t *testing.T) {
	g := NewGuard()
	assert.False(t, g.Held())
	_, ok := g.Settings()
	assert.False(t, ok)

	g.BeginTransaction(port.DefaultBusSettings)
	assert.True(t, g.Held())
	settings, ok := g.Settings()
	require.True(t, ok)
	assert.Equal(t, port.DefaultBusSettings, settings)

	g.EndTransaction()
	assert.False(t, g.Held())
	assert.Equal(t, uint64(1), g.Transactions())
}

func TestGuard_UnbalancedEnd(t *testing.T) {
	g := NewGuard()

	assert.NotPanics(t, func() { g.EndTransaction() })
	assert.False(t, g.Held())

	// still usable afterwards
	g.BeginTransaction(port.DefaultBusSettings)
	g.EndTransaction()
	assert.Equal(t, uint64(1), g.Transactions())
}

func TestGuard_Exclusive(t *testing.T) {
	g := NewGuard()
	g.BeginTransaction(port.DefaultBusSettings)

	acquired := make(chan struct{})
	go func() {
		g.BeginTransaction(port.DefaultBusSettings)
		close(acquired)
		g.EndTransaction()
	}()

	select {
	case <-acquired:
		t.Fatal("second transaction started while the bus was held")
	case <-time.After(50 * time.Millisecond):
	}

	g.EndTransaction()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second transaction never started")
	}
}

func TestGuard_Concurrent(t *testing.T) {
	g := NewGuard()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.BeginTransaction(port.DefaultBusSettings)
			counter++
			g.EndTransaction()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Equal(t, uint64(50), g.Transactions())
	assert.False(t, g.Held())
}
