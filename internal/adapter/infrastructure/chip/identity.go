// Package chip provides Ethernet controller driver adapters.
package chip

import (
	"fmt"
	"strings"
)

// Controller identity codes reported by GetChip.
const (
	IdentityNone  uint8 = 0x00
	IdentityW5100 uint8 = 0x51
	IdentityW5200 uint8 = 0x52
	IdentityW5500 uint8 = 0x55
)

// IdentityByName maps a controller model name ("w5100", "w5200", "w5500", "none") to its identity code.
func IdentityByName(name string) (uint8, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "w5100":
		return IdentityW5100, nil
	case "w5200":
		return IdentityW5200, nil
	case "w5500", "":
		return IdentityW5500, nil
	case "none":
		return IdentityNone, nil
	default:
		return 0, fmt.Errorf("unknown chip model %q", name)
	}
}
