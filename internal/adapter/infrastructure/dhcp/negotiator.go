package dhcp

import (
	"context"
	"fmt"
	"net"
	"time"

	"golang-ethernetd/internal/pkg/logging"
	"golang-ethernetd/internal/port"
	"golang-ethernetd/internal/types"

	"github.com/insomniacslk/dhcp/dhcpv4"
	"github.com/sirupsen/logrus"
)

const (
	defaultLeaseTime = time.Hour
	retryDelay       = 2 * time.Second
)

// Negotiator is an adapter that implements the LeaseNegotiator port over the DHCPClient port.
// It keeps the lease timers: CheckLease renews after T1 and rebinds after T2,
// both measured from the moment the current lease was bound.
type Negotiator struct {
	ifaceName string
	client    port.DHCPClient
	now       func() time.Time
	logger    *logrus.Entry

	mac             types.MAC
	timeout         time.Duration
	responseTimeout time.Duration

	ack       *dhcpv4.DHCPv4
	boundAt   time.Time
	renewal   time.Duration
	rebinding time.Duration
	leaseTime time.Duration

	local   types.Addr
	gateway types.Addr
	subnet  types.Addr
	dns     types.Addr
}

// Ensure Negotiator implements the LeaseNegotiator port
var _ port.LeaseNegotiator = (*Negotiator)(nil)

// NewNegotiator creates a lease negotiator for the named interface.
func NewNegotiator(ifaceName string, client port.DHCPClient) *Negotiator {
	return &Negotiator{
		ifaceName: ifaceName,
		client:    client,
		now:       time.Now,
		logger:    logging.WithComponentAndInterface("dhcp", ifaceName),
	}
}

// BeginWithDHCP discards any previous lease and requests a new one, retrying until timeout.
func (n *Negotiator) BeginWithDHCP(mac types.MAC, timeout, responseTimeout time.Duration) bool {
	n.reset()
	n.mac = mac
	n.timeout = timeout
	n.responseTimeout = responseTimeout

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	logger := n.logger.WithField("mac", mac.String())
	for attempt := 1; ; attempt++ {
		logger.WithField("attempt", attempt).Debug("Attempting DHCP lease")

		ack, err := n.client.RequestLease(ctx, n.ifaceName, mac, types.Addr{}, responseTimeout)
		if err == nil {
			if err := n.bind(ack); err != nil {
				logger.WithError(err).Warn("Ignoring unusable DHCP ACK")
			} else {
				logger.WithFields(map[string]interface{}{
					"ip":         n.local.String(),
					"lease_time": n.leaseTime.String(),
				}).Info("Successfully obtained DHCP lease")
				return true
			}
		} else {
			logger.WithError(err).WithField("attempt", attempt).Warn("DHCP lease request failed")
		}

		select {
		case <-ctx.Done():
			logger.WithField("attempts", attempt).Error("No DHCP lease before timeout")
			return false
		case <-time.After(retryDelay):
		}
	}
}

// CheckLease renews or rebinds the lease when its timers have run out.
// A failed attempt leaves the lease as it was, so the next call tries again.
func (n *Negotiator) CheckLease() port.LeaseCheck {
	if n.ack == nil {
		return port.LeaseCheckNone
	}

	elapsed := n.now().Sub(n.boundAt)
	switch {
	case elapsed >= n.rebinding:
		return n.rebind()
	case elapsed >= n.renewal:
		return n.renew()
	default:
		return port.LeaseCheckNone
	}
}

func (n *Negotiator) renew() port.LeaseCheck {
	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	ack, err := n.client.RenewLease(ctx, n.ifaceName, n.mac, n.ack, n.responseTimeout)
	if err == nil {
		err = n.bind(ack)
	}
	if err != nil {
		n.logger.WithError(err).Warn("DHCP lease renewal failed")
		return port.LeaseRenewFailed
	}
	n.logger.WithField("ip", n.local.String()).Info("DHCP lease renewed")
	return port.LeaseRenewed
}

// rebind asks any server for the current address, as a fresh request.
func (n *Negotiator) rebind() port.LeaseCheck {
	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	ack, err := n.client.RequestLease(ctx, n.ifaceName, n.mac, n.local, n.responseTimeout)
	if err == nil {
		err = n.bind(ack)
	}
	if err != nil {
		n.logger.WithError(err).Warn("DHCP lease rebind failed")
		return port.LeaseRebindFailed
	}
	n.logger.WithField("ip", n.local.String()).Info("DHCP lease rebound")
	return port.LeaseRebound
}

// bind adopts ack as the current lease and restarts the timers.
func (n *Negotiator) bind(ack *dhcpv4.DHCPv4) error {
	if ack == nil {
		return fmt.Errorf("empty DHCP ACK")
	}
	local, ok := types.AddrFromIP(ack.YourIPAddr)
	if !ok || local.IsZero() {
		return fmt.Errorf("DHCP ACK carries no IPv4 address")
	}

	n.ack = ack
	n.boundAt = n.now()
	n.leaseTime = ack.IPAddressLeaseTime(defaultLeaseTime)
	n.renewal = ack.IPAddressRenewalTime(n.leaseTime / 2)
	n.rebinding = ack.IPAddressRebindingTime(n.leaseTime * 7 / 8)

	n.local = local
	n.subnet = types.AddrFrom4(255, 255, 255, 0)
	if mask := ack.SubnetMask(); len(mask) == net.IPv4len {
		copy(n.subnet[:], mask)
	}
	n.gateway = types.Addr{}
	if routers := ack.Router(); len(routers) > 0 {
		n.gateway, _ = types.AddrFromIP(routers[0])
	}
	n.dns = types.Addr{}
	if servers := ack.DNS(); len(servers) > 0 {
		n.dns, _ = types.AddrFromIP(servers[0])
	}
	return nil
}

func (n *Negotiator) reset() {
	n.ack = nil
	n.boundAt = time.Time{}
	n.local = types.Addr{}
	n.gateway = types.Addr{}
	n.subnet = types.Addr{}
	n.dns = types.Addr{}
}

// GetLocalIP returns the leased address, or zero without a lease.
func (n *Negotiator) GetLocalIP() types.Addr { return n.local }

// GetGatewayIP returns the router option of the lease.
func (n *Negotiator) GetGatewayIP() types.Addr { return n.gateway }

// GetSubnetMask returns the subnet mask option of the lease.
func (n *Negotiator) GetSubnetMask() types.Addr { return n.subnet }

// GetDNSServerIP returns the first DNS server option of the lease.
func (n *Negotiator) GetDNSServerIP() types.Addr { return n.dns }

// Close releases the current lease, if any.
func (n *Negotiator) Close() error {
	if n.ack == nil {
		return nil
	}
	ack := n.ack
	n.reset()
	if err := n.client.ReleaseLease(n.ifaceName, n.mac, ack); err != nil {
		return fmt.Errorf("failed to release lease: %w", err)
	}
	n.logger.Info("DHCP lease released")
	return nil
}
