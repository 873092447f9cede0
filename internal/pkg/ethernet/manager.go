// Package ethernet manages the addressing of an Ethernet controller that sits
// behind a shared serial bus.
//
// A Manager owns one chip driver and its bus. It brings the interface up with
// either a static address set or a DHCP lease, exposes the addresses held by
// the chip, and republishes the lease addresses whenever Maintain observes a
// renewal or rebind. Every chip access happens inside a bus transaction; the
// bus is never held while the lease negotiator runs, since the negotiator
// talks to the same hardware on its own.
package ethernet

import (
	"io"
	"time"

	"golang-ethernetd/internal/pkg/logging"
	"golang-ethernetd/internal/pkg/portrand"
	"golang-ethernetd/internal/port"
	"golang-ethernetd/internal/types"

	"github.com/sirupsen/logrus"
)

// Manager is the interface-level state of one Ethernet controller.
// Calls are synchronous. Concurrent callers are serialized per call by the bus only.
type Manager struct {
	hw hardware

	newNegotiator func() port.LeaseNegotiator
	negotiator    port.LeaseNegotiator

	// The chip has no register for it, so DNS lives here.
	dnsServer types.Addr

	ports  *portrand.Source
	micros func() uint64
	logger *logrus.Entry
}

// Option configures a Manager.
type Option func(*Manager)

// WithBusSettings overrides the bus profile used for every transaction.
func WithBusSettings(settings port.BusSettings) Option {
	return func(m *Manager) {
		m.hw.settings = settings
	}
}

// WithLeaseNegotiatorFactory sets how the lease negotiator is built on the first DHCP bring-up.
func WithLeaseNegotiatorFactory(factory func() port.LeaseNegotiator) Option {
	return func(m *Manager) {
		m.newNegotiator = factory
	}
}

// WithPortSource sets the ephemeral port source seeded after a DHCP bring-up.
func WithPortSource(src *portrand.Source) Option {
	return func(m *Manager) {
		m.ports = src
	}
}

// WithMicros sets the monotonic microsecond clock used to seed the port source.
func WithMicros(micros func() uint64) Option {
	return func(m *Manager) {
		m.micros = micros
	}
}

// WithLogger sets the log entry used for bring-up and maintenance messages.
func WithLogger(logger *logrus.Entry) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

var processStart = time.Now()

// monotonicMicros reads the monotonic clock relative to process start.
func monotonicMicros() uint64 {
	return uint64(time.Since(processStart).Microseconds())
}

// NewManager creates a Manager owning chip and bus.
// Without WithLeaseNegotiatorFactory, DHCP bring-up always fails.
func NewManager(chip port.ChipDriver, bus port.Bus, opts ...Option) *Manager {
	m := &Manager{
		hw: hardware{
			chip:     chip,
			bus:      bus,
			settings: port.DefaultBusSettings,
		},
		ports:  portrand.NewSource(),
		micros: monotonicMicros,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = logging.WithComponent("ethernet")
	}
	return m
}

// Ports returns the ephemeral port source of this interface.
func (m *Manager) Ports() *portrand.Source {
	return m.ports
}

// Close releases the lease negotiator, if one was created.
func (m *Manager) Close() error {
	if m.negotiator == nil {
		return nil
	}
	var err error
	if c, ok := m.negotiator.(io.Closer); ok {
		err = c.Close()
	}
	m.negotiator = nil
	return err
}

// hardware pairs the chip with the bus it sits on.
type hardware struct {
	chip     port.ChipDriver
	bus      port.Bus
	settings port.BusSettings
}

// transaction runs fn with the bus held. The bus is released on every exit path, panics included.
func (h *hardware) transaction(fn func(chip port.ChipDriver)) {
	h.bus.BeginTransaction(h.settings)
	defer h.bus.EndTransaction()
	fn(h.chip)
}

// read is transaction for a single getter.
func read[T any](h *hardware, get func(chip port.ChipDriver) T) T {
	var v T
	h.transaction(func(chip port.ChipDriver) {
		v = get(chip)
	})
	return v
}
