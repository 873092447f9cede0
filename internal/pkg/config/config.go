package config

import (
	"fmt"
	"os"
	"time"

	"golang-ethernetd/internal/pkg/logging"
	"golang-ethernetd/internal/types"

	"gopkg.in/yaml.v3"
)

// Chip drivers selectable per interface
const (
	DriverNetlink = "netlink"
	DriverMemory  = "memory"
)

// Defaults applied by ApplyDefaults
const (
	DefaultDHCPTimeout      = 60 * time.Second
	DefaultResponseTimeout  = 4 * time.Second
	DefaultMaintainInterval = time.Second
	DefaultChip             = "w5500"
)

// InterfaceConfig represents the configuration for a network interface
type InterfaceConfig struct {
	MAC    string `yaml:"mac,omitempty"`
	Driver string `yaml:"driver,omitempty"`
	Chip   string `yaml:"chip,omitempty"`

	DHCP            bool          `yaml:"dhcp,omitempty"`
	DHCPTimeout     time.Duration `yaml:"dhcp_timeout,omitempty"`
	ResponseTimeout time.Duration `yaml:"response_timeout,omitempty"`

	MaintainInterval time.Duration `yaml:"maintain_interval,omitempty"`

	Retransmission *RetransmissionConfig `yaml:"retransmission,omitempty"`
	Static         *types.StaticIPConfig `yaml:"static,omitempty"`
}

// RetransmissionConfig sets the controller's retry behaviour
type RetransmissionConfig struct {
	TimeoutMS uint16 `yaml:"timeout_ms"`
	Count     uint8  `yaml:"count"`
}

// MetricsConfig enables the Prometheus endpoint when Listen is set
type MetricsConfig struct {
	Listen string `yaml:"listen,omitempty"`
}

// Config represents the main configuration structure
type Config struct {
	Logging    logging.LogConfig          `yaml:"logging"`
	Metrics    MetricsConfig              `yaml:"metrics"`
	ResolvConf string                     `yaml:"resolv_conf,omitempty"`
	Interfaces map[string]InterfaceConfig `yaml:"interfaces"`
}

// StaticAddresses holds a parsed static configuration. Nil fields were omitted.
type StaticAddresses struct {
	IP      types.Addr
	DNS     *types.Addr
	Gateway *types.Addr
	Netmask *types.Addr
}

// Load loads configuration from a YAML file and applies defaults
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	config.ApplyDefaults()

	return &config, nil
}

// ApplyDefaults fills in the optional per-interface settings
func (c *Config) ApplyDefaults() {
	for name, iface := range c.Interfaces {
		if iface.Driver == "" {
			iface.Driver = DriverNetlink
		}
		if iface.Chip == "" {
			iface.Chip = DefaultChip
		}
		if iface.DHCPTimeout == 0 {
			iface.DHCPTimeout = DefaultDHCPTimeout
		}
		if iface.ResponseTimeout == 0 {
			iface.ResponseTimeout = DefaultResponseTimeout
		}
		if iface.MaintainInterval == 0 {
			iface.MaintainInterval = DefaultMaintainInterval
		}
		c.Interfaces[name] = iface
	}
}

// GetInterfaceConfig returns the configuration for a specific interface
func (c *Config) GetInterfaceConfig(interfaceName string) (InterfaceConfig, bool) {
	config, exists := c.Interfaces[interfaceName]
	return config, exists
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if len(c.Interfaces) == 0 {
		return fmt.Errorf("no interfaces configured")
	}

	for name, iface := range c.Interfaces {
		if !iface.DHCP && iface.Static == nil {
			return fmt.Errorf("interface %s: must specify either dhcp or static configuration", name)
		}
		if iface.DHCP && iface.Static != nil {
			return fmt.Errorf("interface %s: cannot specify both dhcp and static configuration", name)
		}
		if iface.Static != nil {
			if _, err := ParseStatic(iface.Static); err != nil {
				return fmt.Errorf("interface %s: %w", name, err)
			}
		}
		if iface.MAC != "" {
			if _, err := types.ParseMAC(iface.MAC); err != nil {
				return fmt.Errorf("interface %s: invalid mac: %w", name, err)
			}
		}
		switch iface.Driver {
		case "", DriverNetlink, DriverMemory:
		default:
			return fmt.Errorf("interface %s: unknown driver %q", name, iface.Driver)
		}
		switch iface.Chip {
		case "", "none", "w5100", "w5200", "w5500":
		default:
			return fmt.Errorf("interface %s: unknown chip %q", name, iface.Chip)
		}
		if iface.DHCPTimeout < 0 || iface.ResponseTimeout < 0 || iface.MaintainInterval < 0 {
			return fmt.Errorf("interface %s: durations must not be negative", name)
		}
	}

	return nil
}

// ParseStatic parses the addresses of a static configuration. Only the IP is required.
func ParseStatic(static *types.StaticIPConfig) (StaticAddresses, error) {
	var out StaticAddresses
	if static.IPAddress == "" {
		return out, fmt.Errorf("static IP address is required")
	}
	ip, err := types.ParseAddr(static.IPAddress)
	if err != nil {
		return out, fmt.Errorf("invalid static ip: %w", err)
	}
	out.IP = ip

	optional := []struct {
		field string
		value string
		dst   **types.Addr
	}{
		{"dns", static.DNS, &out.DNS},
		{"gateway", static.Gateway, &out.Gateway},
		{"netmask", static.Netmask, &out.Netmask},
	}
	for _, o := range optional {
		if o.value == "" {
			continue
		}
		addr, err := types.ParseAddr(o.value)
		if err != nil {
			return StaticAddresses{}, fmt.Errorf("invalid static %s: %w", o.field, err)
		}
		*o.dst = &addr
	}
	return out, nil
}
