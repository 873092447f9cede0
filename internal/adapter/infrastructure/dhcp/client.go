// Package dhcp provides DHCP client adapter implementation.
package dhcp

import (
	"context"
	"fmt"
	"time"

	"golang-ethernetd/internal/port"
	"golang-ethernetd/internal/types"

	"github.com/insomniacslk/dhcp/dhcpv4"
	"github.com/insomniacslk/dhcp/dhcpv4/nclient4"
)

// ClientAdapter is an adapter that implements the DHCPClient port using insomniacslk/dhcp library.
type ClientAdapter struct{}

// Ensure ClientAdapter implements the DHCPClient port
var _ port.DHCPClient = (*ClientAdapter)(nil)

// NewClientAdapter creates a new DHCP client adapter.
func NewClientAdapter() *ClientAdapter {
	return &ClientAdapter{}
}

func (c *ClientAdapter) newClient(interfaceName string, mac types.MAC, timeout time.Duration) (*nclient4.Client, error) {
	opts := []nclient4.ClientOpt{nclient4.WithTimeout(timeout)}
	if !mac.IsZero() {
		opts = append(opts, nclient4.WithHWAddr(mac.HardwareAddr()))
	}
	client, err := nclient4.New(interfaceName, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create DHCP client: %w", err)
	}
	return client, nil
}

// RequestLease performs the complete DHCP DISCOVER/OFFER/REQUEST/ACK sequence.
func (c *ClientAdapter) RequestLease(ctx context.Context, interfaceName string, mac types.MAC, requested types.Addr, timeout time.Duration) (*dhcpv4.DHCPv4, error) {
	client, err := c.newClient(interfaceName, mac, timeout)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	var modifiers []dhcpv4.Modifier
	if !requested.IsZero() {
		modifiers = append(modifiers, dhcpv4.WithOption(dhcpv4.OptRequestedIPAddress(requested.IP())))
	}

	// Get lease (DISCOVER/OFFER/REQUEST/ACK)
	lease, err := client.Request(ctx, modifiers...)
	if err != nil {
		return nil, fmt.Errorf("DHCP lease request failed: %w", err)
	}

	return lease.ACK, nil
}

// RenewLease sends a REQUEST for the leased address and waits for the ACK.
func (c *ClientAdapter) RenewLease(ctx context.Context, interfaceName string, mac types.MAC, ack *dhcpv4.DHCPv4, timeout time.Duration) (*dhcpv4.DHCPv4, error) {
	client, err := c.newClient(interfaceName, mac, timeout)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	lease, err := client.Renew(ctx, &nclient4.Lease{ACK: ack, CreationTime: time.Now()})
	if err != nil {
		return nil, fmt.Errorf("DHCP lease renewal failed: %w", err)
	}

	return lease.ACK, nil
}

// ReleaseLease sends a RELEASE for the leased address.
func (c *ClientAdapter) ReleaseLease(interfaceName string, mac types.MAC, ack *dhcpv4.DHCPv4) error {
	client, err := c.newClient(interfaceName, mac, 5*time.Second)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Release(&nclient4.Lease{ACK: ack}); err != nil {
		return fmt.Errorf("DHCP lease release failed: %w", err)
	}
	return nil
}
