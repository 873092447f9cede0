package chip

import (
	"sync"

	"golang-ethernetd/internal/port"
	"golang-ethernetd/internal/types"
)

// Register values loaded by Init, matching the controller's reset state.
const (
	resetRetransmissionTime  uint16 = 2000 // 200ms
	resetRetransmissionCount uint8  = 8
)

// MemoryChip is an adapter that implements the ChipDriver port with registers held in memory.
// It backs the "memory" driver for dry runs and stands in for hardware in tests.
type MemoryChip struct {
	mu sync.Mutex

	identity   uint8
	link       port.ChipLinkStatus
	responding bool

	mac     types.MAC
	ip      types.Addr
	gateway types.Addr
	subnet  types.Addr

	retransmissionTime  uint16
	retransmissionCount uint8

	writes int
}

// Ensure MemoryChip implements the ChipDriver port
var _ port.ChipDriver = (*MemoryChip)(nil)

// NewMemoryChip creates a responding chip with the given identity and the link up.
func NewMemoryChip(identity uint8) *MemoryChip {
	return &MemoryChip{
		identity:            identity,
		link:                port.ChipLinkOn,
		responding:          true,
		retransmissionTime:  resetRetransmissionTime,
		retransmissionCount: resetRetransmissionCount,
	}
}

// SetResponding controls whether Init succeeds.
func (c *MemoryChip) SetResponding(responding bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.responding = responding
}

// SetLink sets the link state returned by GetLinkStatus.
func (c *MemoryChip) SetLink(link port.ChipLinkStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.link = link
}

// Writes returns the number of register writes since creation.
func (c *MemoryChip) Writes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writes
}

// RetransmissionTime returns the raw retry timeout register.
func (c *MemoryChip) RetransmissionTime() uint16 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.retransmissionTime
}

// RetransmissionCount returns the raw retry count register.
func (c *MemoryChip) RetransmissionCount() uint8 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.retransmissionCount
}

// Init resets the registers. It fails if the chip was set not to respond.
func (c *MemoryChip) Init() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.responding {
		return false
	}
	c.mac = types.MAC{}
	c.ip = types.Addr{}
	c.gateway = types.Addr{}
	c.subnet = types.Addr{}
	c.retransmissionTime = resetRetransmissionTime
	c.retransmissionCount = resetRetransmissionCount
	return true
}

// SetMACAddress writes the MAC register.
func (c *MemoryChip) SetMACAddress(mac types.MAC) {
	c.write(func() { c.mac = mac })
}

// GetMACAddress reads the MAC register.
func (c *MemoryChip) GetMACAddress() types.MAC {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mac
}

// SetIPAddress writes the source IP register.
func (c *MemoryChip) SetIPAddress(ip types.Addr) {
	c.write(func() { c.ip = ip })
}

// GetIPAddress reads the source IP register.
func (c *MemoryChip) GetIPAddress() types.Addr {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ip
}

// SetGatewayIP writes the gateway register.
func (c *MemoryChip) SetGatewayIP(gateway types.Addr) {
	c.write(func() { c.gateway = gateway })
}

// GetGatewayIP reads the gateway register.
func (c *MemoryChip) GetGatewayIP() types.Addr {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gateway
}

// SetSubnetMask writes the subnet mask register.
func (c *MemoryChip) SetSubnetMask(mask types.Addr) {
	c.write(func() { c.subnet = mask })
}

// GetSubnetMask reads the subnet mask register.
func (c *MemoryChip) GetSubnetMask() types.Addr {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subnet
}

// GetLinkStatus returns the link state set with SetLink.
func (c *MemoryChip) GetLinkStatus() port.ChipLinkStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.link
}

// GetChip returns the identity code the chip was created with.
func (c *MemoryChip) GetChip() uint8 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.identity
}

// SetRetransmissionTime writes the retry timeout register, in 100us units.
func (c *MemoryChip) SetRetransmissionTime(units uint16) {
	c.write(func() { c.retransmissionTime = units })
}

// SetRetransmissionCount writes the retry count register.
func (c *MemoryChip) SetRetransmissionCount(count uint8) {
	c.write(func() { c.retransmissionCount = count })
}

func (c *MemoryChip) write(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn()
	c.writes++
}
