package ethernet

import "golang-ethernetd/internal/port"

// HardwareStatus identifies the Ethernet controller model.
type HardwareStatus int

const (
	// HardwareNone means no known controller answered.
	HardwareNone HardwareStatus = iota
	// HardwareW5100 is a WIZnet W5100.
	HardwareW5100
	// HardwareW5200 is a WIZnet W5200.
	HardwareW5200
	// HardwareW5500 is a WIZnet W5500.
	HardwareW5500
)

// Controller identity codes as reported by the chip driver.
const (
	ChipW5100 uint8 = 0x51
	ChipW5200 uint8 = 0x52
	ChipW5500 uint8 = 0x55
)

// String returns the controller model name, or "none".
func (s HardwareStatus) String() string {
	switch s {
	case HardwareW5100:
		return "W5100"
	case HardwareW5200:
		return "W5200"
	case HardwareW5500:
		return "W5500"
	default:
		return "none"
	}
}

// LinkStatus is the state of the Ethernet link.
type LinkStatus int

const (
	// LinkUnknown means the controller cannot report the link state.
	LinkUnknown LinkStatus = iota
	// LinkUp means a cable is connected and the PHY has a link.
	LinkUp
	// LinkDown means the PHY has no link.
	LinkDown
)

// String returns "up", "down" or "unknown".
func (s LinkStatus) String() string {
	switch s {
	case LinkUp:
		return "up"
	case LinkDown:
		return "down"
	default:
		return "unknown"
	}
}

// HardwareStatus reads the controller identity. Unknown codes map to HardwareNone.
func (m *Manager) HardwareStatus() HardwareStatus {
	return hardwareFromChip(read(&m.hw, port.ChipDriver.GetChip))
}

// LinkStatus reads the PHY link state.
func (m *Manager) LinkStatus() LinkStatus {
	return linkFromChip(read(&m.hw, port.ChipDriver.GetLinkStatus))
}

func hardwareFromChip(code uint8) HardwareStatus {
	switch code {
	case ChipW5100:
		return HardwareW5100
	case ChipW5200:
		return HardwareW5200
	case ChipW5500:
		return HardwareW5500
	default:
		return HardwareNone
	}
}

func linkFromChip(s port.ChipLinkStatus) LinkStatus {
	switch s {
	case port.ChipLinkOn:
		return LinkUp
	case port.ChipLinkOff:
		return LinkDown
	default:
		return LinkUnknown
	}
}
