// Package network provides the netlink adapter behind the host chip driver.
package network

import (
	"fmt"
	"net"

	"golang-ethernetd/internal/port"

	"github.com/vishvananda/netlink"
)

// ManagerAdapter is an adapter that implements the NetworkManager port using vishvananda/netlink library.
// A zero handle talks to the current network namespace.
type ManagerAdapter struct {
	handle *netlink.Handle
}

// Ensure ManagerAdapter implements the NetworkManager port
var _ port.NetworkManager = (*ManagerAdapter)(nil)

// NewManagerAdapter creates a network manager adapter for the current namespace.
func NewManagerAdapter() *ManagerAdapter {
	return newManagerAdapterWithHandle(&netlink.Handle{})
}

func newManagerAdapterWithHandle(handle *netlink.Handle) *ManagerAdapter {
	return &ManagerAdapter{handle: handle}
}

// GetLinkByName returns a network link by interface name.
func (n *ManagerAdapter) GetLinkByName(interfaceName string) (netlink.Link, error) {
	link, err := n.handle.LinkByName(interfaceName)
	if err != nil {
		return nil, fmt.Errorf("failed to get netlink interface %s: %w", interfaceName, err)
	}
	return link, nil
}

// ListAddresses returns IPv4 addresses configured on the link.
func (n *ManagerAdapter) ListAddresses(link netlink.Link) ([]netlink.Addr, error) {
	addrs, err := n.handle.AddrList(link, netlink.FAMILY_V4)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses on %s: %w", link.Attrs().Name, err)
	}
	return addrs, nil
}

// AddAddress adds an IP address to the interface.
func (n *ManagerAdapter) AddAddress(link netlink.Link, addr *netlink.Addr) error {
	if err := n.handle.AddrAdd(link, addr); err != nil {
		return fmt.Errorf("failed to add address %s: %w", addr.IPNet.String(), err)
	}
	return nil
}

// DeleteAddress removes an IP address from the interface.
func (n *ManagerAdapter) DeleteAddress(link netlink.Link, addr *netlink.Addr) error {
	if err := n.handle.AddrDel(link, addr); err != nil {
		return fmt.Errorf("failed to delete address %s: %w", addr.IPNet.String(), err)
	}
	return nil
}

// ListRoutes returns IPv4 routes.
func (n *ManagerAdapter) ListRoutes() ([]netlink.Route, error) {
	routes, err := n.handle.RouteList(nil, netlink.FAMILY_V4)
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	return routes, nil
}

// AddRoute adds a route.
func (n *ManagerAdapter) AddRoute(route *netlink.Route) error {
	if err := n.handle.RouteAdd(route); err != nil {
		return fmt.Errorf("failed to add route: %w", err)
	}
	return nil
}

// DeleteRoute removes a route.
func (n *ManagerAdapter) DeleteRoute(route *netlink.Route) error {
	if err := n.handle.RouteDel(route); err != nil {
		return fmt.Errorf("failed to delete route: %w", err)
	}
	return nil
}

// SetLinkUp brings the interface up.
func (n *ManagerAdapter) SetLinkUp(link netlink.Link) error {
	if err := n.handle.LinkSetUp(link); err != nil {
		return fmt.Errorf("failed to set link %s up: %w", link.Attrs().Name, err)
	}
	return nil
}

// SetHardwareAddr changes the MAC address of the interface.
func (n *ManagerAdapter) SetHardwareAddr(link netlink.Link, hwAddr net.HardwareAddr) error {
	if err := n.handle.LinkSetHardwareAddr(link, hwAddr); err != nil {
		return fmt.Errorf("failed to set hardware address %s on %s: %w", hwAddr.String(), link.Attrs().Name, err)
	}
	return nil
}
