// Package bus provides the bus guard adapter implementation.
package bus

import (
	"sync"
	"sync/atomic"

	"golang-ethernetd/internal/pkg/logging"
	"golang-ethernetd/internal/port"
)

// Guard is an adapter that implements the Bus port with an in-process mutex.
// Every Manager sharing one physical bus must share one Guard.
type Guard struct {
	mu   sync.Mutex
	held atomic.Bool

	settings     atomic.Pointer[port.BusSettings]
	transactions atomic.Uint64
}

// Ensure Guard implements the Bus port
var _ port.Bus = (*Guard)(nil)

// NewGuard creates a new, free bus guard.
func NewGuard() *Guard {
	return &Guard{}
}

// BeginTransaction blocks until the bus is free, then takes it with the given profile.
func (g *Guard) BeginTransaction(settings port.BusSettings) {
	g.mu.Lock()
	g.held.Store(true)
	g.settings.Store(&settings)
	g.transactions.Add(1)
}

// EndTransaction releases the bus. Releasing a free bus is logged and ignored.
func (g *Guard) EndTransaction() {
	if !g.held.CompareAndSwap(true, false) {
		logging.WithComponent("bus").Warn("EndTransaction called without a matching BeginTransaction")
		return
	}
	g.mu.Unlock()
}

// Held reports whether a transaction is open.
func (g *Guard) Held() bool {
	return g.held.Load()
}

// Settings returns the profile of the most recent transaction.
func (g *Guard) Settings() (port.BusSettings, bool) {
	s := g.settings.Load()
	if s == nil {
		return port.BusSettings{}, false
	}
	return *s, true
}

// Transactions returns how many transactions were started.
func (g *Guard) Transactions() uint64 {
	return g.transactions.Load()
}
