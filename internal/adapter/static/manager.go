package static

import (
	"context"
	"errors"
	"fmt"
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

const defaultCheckInterval = 30 * time.Second

// ErrNoHardware is returned by Run when the Ethernet controller does not respond.
var ErrNoHardware = errors.New("ethernet controller not responding")

// Manager is a static IP network configuration adapter that implements the NetworkConfigurationManager port.
// It applies a static address set to one Ethernet interface and reapplies it when the chip loses it.
type Manager struct {
	ifaceName string
	mac       types.MAC
	eth       *ethernet.Manager
	config    config.InterfaceConfig
	addresses config.StaticAddresses

	resolv  *resolvconf.Publisher
	metrics *metrics.Metrics

	checkInterval time.Duration
}

// Ensure Manager implements the NetworkConfigurationManager port
var _ port.NetworkConfigurationManager = (*Manager)(nil)

// Option configures a Manager.
type Option func(*Manager)

// WithResolvConf publishes the configured DNS server through p.
func WithResolvConf(p *resolvconf.Publisher) Option {
	return func(m *Manager) {
		m.resolv = p
	}
}

// WithMetrics records bring-up outcomes and link state in mt.
func WithMetrics(mt *metrics.Metrics) Option {
	return func(m *Manager) {
		m.metrics = mt
	}
}

// NewManager creates a static runner for the interface driven by eth.
func NewManager(ifaceName string, mac types.MAC, eth *ethernet.Manager, ifaceConfig config.InterfaceConfig, opts ...Option) (*Manager, error) {
	if ifaceConfig.Static == nil {
		return nil, fmt.Errorf("interface configuration does not have static IP settings")
	}
	addresses, err := config.ParseStatic(ifaceConfig.Static)
	if err != nil {
		return nil, fmt.Errorf("invalid static configuration: %w", err)
	}

	m := &Manager{
		ifaceName:     ifaceName,
		mac:           mac,
		eth:           eth,
		config:        ifaceConfig,
		addresses:     addresses,
		checkInterval: defaultCheckInterval,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// GetInterfaceName returns the name of the network interface managed by this manager.
func (m *Manager) GetInterfaceName() string {
	return m.ifaceName
}

// Run configures the interface with static IP settings and maintains the configuration.
// It runs until the context is cancelled. This method implements the NetworkConfigurationManager port.
func (m *Manager) Run(ctx context.Context) error {
	logger := logging.WithComponentAndInterface("static", m.ifaceName).WithField("mac", m.mac.String())
	logger.Info("Starting static IP configuration")

	if err := m.apply(logger); err != nil {
		return fmt.Errorf("failed to apply static configuration: %w", err)
	}

	return m.monitorInterface(ctx, logger)
}

// apply brings the interface up through the static entry point matching the configured fields.
func (m *Manager) apply(logger *logrus.Entry) error {
	res := m.eth.BringUp(m.mac, ethernet.BringUpOptions{
		IP:      &m.addresses.IP,
		DNS:     m.addresses.DNS,
		Gateway: m.addresses.Gateway,
		Subnet:  m.addresses.Netmask,
	})
	m.metrics.ObserveBringUp(m.ifaceName, "static", res.OK())
	if !res.OK() {
		return ErrNoHardware
	}
	// Init reloads the retry registers, so they are set after every bring-up
	if r := m.config.Retransmission; r != nil {
		m.eth.SetRetransmissionTimeout(r.TimeoutMS)
		m.eth.SetRetransmissionCount(r.Count)
	}

	cfg := m.eth.Config()
	logger.WithFields(map[string]interface{}{
		"ip":      cfg.Local.String(),
		"netmask": cfg.Subnet.String(),
		"gateway": cfg.Gateway.String(),
		"dns":     cfg.DNS.String(),
	}).Info("Static IP configuration applied successfully")

	if m.resolv != nil {
		if err := m.resolv.Publish(m.ifaceName, cfg.DNS); err != nil {
			logger.WithError(err).Warn("Failed to configure DNS")
		}
	}
	return nil
}

// monitorInterface monitors the interface and reapplies configuration if needed.
func (m *Manager) monitorInterface(ctx context.Context, logger *logrus.Entry) error {
	logger.Info("Starting interface monitoring")

	ticker := time.NewTicker(m.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Interface monitoring stopped due to context cancellation")
			return ctx.Err()
		case <-ticker.C:
			if err := m.checkAndRepairConfiguration(logger); err != nil {
				logger.WithError(err).Error("Configuration check failed")
			}
		}
	}
}

// checkAndRepairConfiguration reapplies the address set if the chip no longer holds
// the configured IP, gateway or subnet mask.
func (m *Manager) checkAndRepairConfiguration(logger *logrus.Entry) error {
	link := m.eth.LinkStatus()
	m.metrics.SetLinkUp(m.ifaceName, link == ethernet.LinkUp)
	if link == ethernet.LinkDown {
		logger.Warn("Ethernet link is down")
	}

	want := m.expected()
	current := m.eth.Config()
	if current.Local == want.Local && current.Gateway == want.Gateway && current.Subnet == want.Subnet {
		return nil
	}
	logger.WithFields(map[string]interface{}{
		"expected_ip":      want.Local.String(),
		"current_ip":       current.Local.String(),
		"expected_gateway": want.Gateway.String(),
		"current_gateway":  current.Gateway.String(),
		"expected_netmask": want.Subnet.String(),
		"current_netmask":  current.Subnet.String(),
	}).Warn("Static configuration drifted on interface, reapplying configuration")

	if err := m.apply(logger); err != nil {
		return fmt.Errorf("failed to reapply static configuration: %w", err)
	}
	logger.Info("Static configuration reapplied successfully")
	return nil
}

// expected returns the chip-backed addresses apply writes, defaults filled in.
func (m *Manager) expected() types.AddressSet {
	want := types.AddressSet{
		Local:   m.addresses.IP,
		Gateway: m.addresses.IP.WithOctet(3, 1),
		Subnet:  ethernet.DefaultSubnetMask,
	}
	if m.addresses.Gateway != nil {
		want.Gateway = *m.addresses.Gateway
	}
	if m.addresses.Netmask != nil {
		want.Subnet = *m.addresses.Netmask
	}
	return want
}
