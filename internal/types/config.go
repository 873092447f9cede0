// Package types defines common types used across the application.
package types

// StaticIPConfig represents static IP configuration parameters.
// Every field but IPAddress is optional; omitted fields are derived from the ones before them.
type StaticIPConfig struct {
	IPAddress string `yaml:"ip"`      // IP address in dotted decimal notation (e.g., "192.168.1.100")
	DNS       string `yaml:"dns"`     // DNS server address (optional)
	Gateway   string `yaml:"gateway"` // Default gateway IP address (optional)
	Netmask   string `yaml:"netmask"` // Subnet mask in dotted decimal notation (optional)
}

// AddressSet is the group of addresses that bring-up and lease maintenance publish together.
type AddressSet struct {
	Local   Addr
	Gateway Addr
	Subnet  Addr
	DNS     Addr
}

// InterfaceConfig is a snapshot of an interface's addressing state.
type InterfaceConfig struct {
	MAC MAC
	AddressSet
}
