package dhcp

import (
	"context"
	"time"

	"golang-ethernetd/internal/pkg/config"
	"golang-ethernetd/internal/pkg/ethernet"
	"golang-ethernetd/internal/pkg/logging"
	"golang-ethernetd/internal/pkg/metrics"
	"golang-ethernetd/internal/pkg/resolvconf"
	"golang-ethernetd/internal/port"
	"golang-ethernetd/internal/types"

	"github.com/sirupsen/logrus"
)

const defaultRetryDelay = 30 * time.Second

// Manager is a DHCP network configuration adapter that implements the NetworkConfigurationManager port.
// It brings one Ethernet interface up with DHCP and keeps calling Maintain for as long as it runs.
type Manager struct {
	ifaceName string
	mac       types.MAC
	eth       *ethernet.Manager
	config    config.InterfaceConfig

	resolv  *resolvconf.Publisher
	metrics *metrics.Metrics

	retryDelay time.Duration
}

// Ensure Manager implements the NetworkConfigurationManager port
var _ port.NetworkConfigurationManager = (*Manager)(nil)

// Option configures a Manager.
type Option func(*Manager)

// WithResolvConf publishes the lease DNS server through p.
func WithResolvConf(p *resolvconf.Publisher) Option {
	return func(m *Manager) {
		m.resolv = p
	}
}

// WithMetrics records bring-up and maintenance outcomes in mt.
func WithMetrics(mt *metrics.Metrics) Option {
	return func(m *Manager) {
		m.metrics = mt
	}
}

// NewManager creates a DHCP runner for the interface driven by eth.
func NewManager(ifaceName string, mac types.MAC, eth *ethernet.Manager, ifaceConfig config.InterfaceConfig, opts ...Option) *Manager {
	m := &Manager{
		ifaceName:  ifaceName,
		mac:        mac,
		eth:        eth,
		config:     ifaceConfig,
		retryDelay: defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// GetInterfaceName returns the name of the network interface managed by this manager.
func (m *Manager) GetInterfaceName() string {
	return m.ifaceName
}

// Run acquires a lease, retrying until one is obtained, then maintains it.
// It runs until the context is cancelled and releases the lease on the way out.
func (m *Manager) Run(ctx context.Context) error {
	logger := logging.WithComponentAndInterface("dhcp", m.ifaceName).WithField("mac", m.mac.String())
	logger.Info("Starting DHCP manager")

	defer func() {
		if err := m.eth.Close(); err != nil {
			logger.WithError(err).Warn("Failed to release DHCP lease")
		}
	}()

	// Start with immediate lease acquisition by using a short timer
	bringUpTimer := time.NewTimer(time.Millisecond)
	defer bringUpTimer.Stop()

	// Nil until a lease is held, so the maintain case never fires before then
	var maintain <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			logger.Info("DHCP manager stopped due to context cancellation")
			return ctx.Err()

		case <-bringUpTimer.C:
			outcome := m.eth.BeginDHCP(m.mac, m.config.DHCPTimeout, m.config.ResponseTimeout)
			m.metrics.ObserveBringUp(m.ifaceName, "dhcp", outcome == ethernet.DHCPSuccess)
			if outcome != ethernet.DHCPSuccess {
				logger.WithField("retry_in", m.retryDelay.String()).Error("Failed to get DHCP lease")
				bringUpTimer.Reset(m.retryDelay)
				continue
			}
			// Init reloads the retry registers, so they are set after every bring-up
			if r := m.config.Retransmission; r != nil {
				m.eth.SetRetransmissionTimeout(r.TimeoutMS)
				m.eth.SetRetransmissionCount(r.Count)
			}
			m.publishDNS(logger)

			ticker := time.NewTicker(m.config.MaintainInterval)
			defer ticker.Stop()
			maintain = ticker.C
			logger.WithField("interval", m.config.MaintainInterval.String()).Info("Maintaining DHCP lease")

		case <-maintain:
			m.maintain(logger)
		}
	}
}

// maintain runs one lease check and republishes DNS if the addresses may have changed.
func (m *Manager) maintain(logger *logrus.Entry) {
	rc := m.eth.Maintain()
	m.metrics.ObserveLeaseCheck(m.ifaceName, rc)
	m.metrics.SetLinkUp(m.ifaceName, m.eth.LinkStatus() == ethernet.LinkUp)

	if rc.Republish() {
		m.publishDNS(logger)
	}
}

func (m *Manager) publishDNS(logger *logrus.Entry) {
	if m.resolv == nil {
		return
	}
	if err := m.resolv.Publish(m.ifaceName, m.eth.DNSServerIP()); err != nil {
		logger.WithError(err).Warn("Failed to configure DNS")
	}
}
