package chip

import (
	"net"

	"golang-ethernetd/internal/pkg/logging"
	"golang-ethernetd/internal/port"
	"golang-ethernetd/internal/types"

	"github.com/sirupsen/logrus"
	"github.com/vishvananda/netlink"
)

// NetlinkChip is an adapter that implements the ChipDriver port on top of a Linux link.
// Register writes become link reconfiguration through the NetworkManager port:
// the IP and mask registers map to the link's IPv4 address, the gateway register
// to its default route, and the MAC register to its hardware address.
//
// Like a real controller it has no lock of its own; callers hold the bus.
type NetlinkChip struct {
	ifaceName  string
	identity   uint8
	networkMgr port.NetworkManager
	logger     *logrus.Entry

	// IP and mask are written separately but installed together.
	ip   types.Addr
	mask types.Addr
	// Replacing the address flushes the link's routes, so the gateway is reinstalled after it.
	gateway types.Addr

	retransmissionTime  uint16
	retransmissionCount uint8
}

// Ensure NetlinkChip implements the ChipDriver port
var _ port.ChipDriver = (*NetlinkChip)(nil)

// NewNetlinkChip creates a chip driver for the named link reporting the given identity code.
func NewNetlinkChip(ifaceName string, identity uint8, networkMgr port.NetworkManager) *NetlinkChip {
	return &NetlinkChip{
		ifaceName:           ifaceName,
		identity:            identity,
		networkMgr:          networkMgr,
		logger:              logging.WithComponentAndInterface("chip", ifaceName),
		retransmissionTime:  resetRetransmissionTime,
		retransmissionCount: resetRetransmissionCount,
	}
}

// Init looks the link up and brings it up administratively.
func (c *NetlinkChip) Init() bool {
	link, ok := c.link()
	if !ok {
		return false
	}
	if err := c.networkMgr.SetLinkUp(link); err != nil {
		c.logger.WithError(err).Error("Failed to bring link up")
		return false
	}
	c.ip = types.Addr{}
	c.mask = types.Addr{}
	c.gateway = types.Addr{}
	c.retransmissionTime = resetRetransmissionTime
	c.retransmissionCount = resetRetransmissionCount
	return true
}

// SetMACAddress changes the link's hardware address if it differs from mac.
func (c *NetlinkChip) SetMACAddress(mac types.MAC) {
	link, ok := c.link()
	if !ok {
		return
	}
	if types.MACFromHardwareAddr(link.Attrs().HardwareAddr) == mac {
		return
	}
	if err := c.networkMgr.SetHardwareAddr(link, mac.HardwareAddr()); err != nil {
		c.logger.WithError(err).WithField("mac", mac.String()).Warn("Failed to set hardware address")
		return
	}
	c.logger.WithField("mac", mac.String()).Debug("Hardware address set")
}

// GetMACAddress returns the link's hardware address.
func (c *NetlinkChip) GetMACAddress() types.MAC {
	link, ok := c.link()
	if !ok {
		return types.MAC{}
	}
	return types.MACFromHardwareAddr(link.Attrs().HardwareAddr)
}

// SetIPAddress installs ip with the last written mask, or /24 before one is written.
func (c *NetlinkChip) SetIPAddress(ip types.Addr) {
	c.ip = ip
	c.applyAddress()
}

// GetIPAddress returns the link's first IPv4 address.
func (c *NetlinkChip) GetIPAddress() types.Addr {
	addr, ok := c.firstAddress()
	if !ok {
		return types.Addr{}
	}
	ip, _ := types.AddrFromIP(addr.IPNet.IP)
	return ip
}

// SetSubnetMask reinstalls the current address with mask.
func (c *NetlinkChip) SetSubnetMask(mask types.Addr) {
	c.mask = mask
	c.applyAddress()
}

// GetSubnetMask returns the mask of the link's first IPv4 address.
func (c *NetlinkChip) GetSubnetMask() types.Addr {
	addr, ok := c.firstAddress()
	if !ok || len(addr.IPNet.Mask) != net.IPv4len {
		return types.Addr{}
	}
	var mask types.Addr
	copy(mask[:], addr.IPNet.Mask)
	return mask
}

// SetGatewayIP points the link's default route at gateway. A zero gateway removes it.
// The gateway is kept even when the route cannot be added yet, and is installed
// once the address covers it.
func (c *NetlinkChip) SetGatewayIP(gateway types.Addr) {
	c.gateway = gateway
	link, ok := c.link()
	if !ok {
		return
	}
	if gateway.IsZero() {
		c.removeDefaultRoutes(link, nil)
		return
	}
	if prefix := c.prefix(); prefix != nil && !prefix.Contains(gateway.IP()) {
		c.logger.WithFields(logrus.Fields{
			"gateway": gateway.String(),
			"prefix":  prefix.String(),
		}).Debug("Gateway not on link yet, deferring default route")
		return
	}
	c.installGateway(link)
}

// GetGatewayIP returns the gateway of the link's default route.
func (c *NetlinkChip) GetGatewayIP() types.Addr {
	link, ok := c.link()
	if !ok {
		return types.Addr{}
	}
	routes, err := c.networkMgr.ListRoutes()
	if err != nil {
		c.logger.WithError(err).Warn("Failed to list routes")
		return types.Addr{}
	}
	for _, route := range routes {
		if isDefaultRoute(route) && route.LinkIndex == link.Attrs().Index && route.Gw != nil {
			gw, _ := types.AddrFromIP(route.Gw)
			return gw
		}
	}
	return types.Addr{}
}

// GetLinkStatus maps the kernel's operational state of the link.
func (c *NetlinkChip) GetLinkStatus() port.ChipLinkStatus {
	link, ok := c.link()
	if !ok {
		return port.ChipLinkUnknown
	}
	switch link.Attrs().OperState {
	case netlink.OperUp:
		return port.ChipLinkOn
	case netlink.OperDown, netlink.OperLowerLayerDown, netlink.OperNotPresent:
		return port.ChipLinkOff
	default:
		return port.ChipLinkUnknown
	}
}

// GetChip returns the identity code the chip was created with.
func (c *NetlinkChip) GetChip() uint8 {
	return c.identity
}

// SetRetransmissionTime records the value; the kernel stack owns retransmission on a host link.
func (c *NetlinkChip) SetRetransmissionTime(units uint16) {
	c.retransmissionTime = units
	c.logger.WithField("units", units).Debug("Retransmission time recorded")
}

// SetRetransmissionCount records the value; see SetRetransmissionTime.
func (c *NetlinkChip) SetRetransmissionCount(count uint8) {
	c.retransmissionCount = count
	c.logger.WithField("count", count).Debug("Retransmission count recorded")
}

func (c *NetlinkChip) link() (netlink.Link, bool) {
	link, err := c.networkMgr.GetLinkByName(c.ifaceName)
	if err != nil {
		c.logger.WithError(err).Warn("Failed to get netlink interface")
		return nil, false
	}
	return link, true
}

func (c *NetlinkChip) firstAddress() (netlink.Addr, bool) {
	link, ok := c.link()
	if !ok {
		return netlink.Addr{}, false
	}
	addrs, err := c.networkMgr.ListAddresses(link)
	if err != nil {
		c.logger.WithError(err).Warn("Failed to list addresses")
		return netlink.Addr{}, false
	}
	for _, addr := range addrs {
		if addr.IPNet != nil && addr.IPNet.IP.To4() != nil {
			return addr, true
		}
	}
	return netlink.Addr{}, false
}

// applyAddress makes the link carry exactly the shadow IP and mask. A zero IP removes every IPv4 address.
func (c *NetlinkChip) applyAddress() {
	link, ok := c.link()
	if !ok {
		return
	}

	existingAddrs, err := c.networkMgr.ListAddresses(link)
	if err != nil {
		c.logger.WithError(err).Warn("Failed to list existing addresses")
		return
	}

	ipNet := c.prefix()

	// Check if the target IP is already configured
	targetConfigured := false
	for _, addr := range existingAddrs {
		if ipNet != nil && addr.IPNet.IP.Equal(ipNet.IP) && addr.IPNet.Mask.String() == ipNet.Mask.String() {
			targetConfigured = true
			break
		}
	}
	if targetConfigured {
		c.logger.WithField("ip", ipNet.String()).Debug("IP address already configured, skipping")
		return
	}

	for _, addr := range existingAddrs {
		addr := addr
		if err := c.networkMgr.DeleteAddress(link, &addr); err != nil {
			c.logger.WithError(err).WithField("address", addr.IPNet.String()).Warn("Failed to remove existing address")
		} else {
			c.logger.WithField("address", addr.IPNet.String()).Debug("Removed existing address")
		}
	}

	if ipNet == nil {
		return
	}
	if err := c.networkMgr.AddAddress(link, &netlink.Addr{IPNet: ipNet}); err != nil {
		c.logger.WithError(err).WithField("ip", ipNet.String()).Warn("Failed to add IP address")
		return
	}
	c.logger.WithField("ip", ipNet.String()).Info("Successfully added IP address")

	if !c.gateway.IsZero() {
		c.installGateway(link)
	}
}

// prefix returns the address to install, or nil if no IP has been written.
func (c *NetlinkChip) prefix() *net.IPNet {
	if c.ip.IsZero() {
		return nil
	}
	mask := c.mask
	if mask.IsZero() {
		// Default to /24 until the mask register is written
		mask = types.AddrFrom4(255, 255, 255, 0)
	}
	return &net.IPNet{IP: c.ip.IP(), Mask: mask.Mask()}
}

func (c *NetlinkChip) installGateway(link netlink.Link) {
	if err := c.configureDefaultRoute(link, c.gateway.IP()); err != nil {
		c.logger.WithError(err).WithField("gateway", c.gateway.String()).Warn("Failed to set default gateway")
	}
}

// configureDefaultRoute configures the default route using netlink
func (c *NetlinkChip) configureDefaultRoute(link netlink.Link, gateway net.IP) error {
	routes, err := c.networkMgr.ListRoutes()
	if err != nil {
		return err
	}

	for _, route := range routes {
		if isDefaultRoute(route) && route.Gw != nil && route.Gw.Equal(gateway) && route.LinkIndex == link.Attrs().Index {
			c.logger.WithField("gateway", gateway.String()).Debug("Default route already exists, skipping")
			return nil
		}
	}

	c.removeDefaultRoutes(link, routes)

	route := &netlink.Route{
		LinkIndex: link.Attrs().Index,
		Gw:        gateway,
	}
	if err := c.networkMgr.AddRoute(route); err != nil {
		return err
	}
	c.logger.WithField("gateway", gateway.String()).Info("Successfully added default route")
	return nil
}

// removeDefaultRoutes deletes the default routes through link. A nil routes slice is fetched first.
func (c *NetlinkChip) removeDefaultRoutes(link netlink.Link, routes []netlink.Route) {
	if routes == nil {
		var err error
		routes, err = c.networkMgr.ListRoutes()
		if err != nil {
			c.logger.WithError(err).Warn("Failed to list routes")
			return
		}
	}
	for _, route := range routes {
		route := route
		if !isDefaultRoute(route) || route.LinkIndex != link.Attrs().Index {
			continue
		}
		if err := c.networkMgr.DeleteRoute(&route); err != nil {
			c.logger.WithError(err).Warn("Failed to remove existing default route")
		} else if route.Gw != nil {
			c.logger.WithField("old_gateway", route.Gw.String()).Debug("Removed existing default route")
		}
	}
}

func isDefaultRoute(route netlink.Route) bool {
	return route.Dst == nil || route.Dst.String() == "0.0.0.0/0"
}
