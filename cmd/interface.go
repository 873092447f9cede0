package cmd

import (
	"fmt"
	"hash/fnv"

	"golang-ethernetd/internal/adapter/dhcp"
	"golang-ethernetd/internal/adapter/infrastructure/bus"
	"golang-ethernetd/internal/adapter/infrastructure/chip"
	infraDhcp "golang-ethernetd/internal/adapter/infrastructure/dhcp"
	"golang-ethernetd/internal/adapter/static"
	"golang-ethernetd/internal/pkg/config"
	"golang-ethernetd/internal/pkg/ethernet"
	"golang-ethernetd/internal/pkg/logging"
	"golang-ethernetd/internal/pkg/metrics"
	"golang-ethernetd/internal/pkg/resolvconf"
	"golang-ethernetd/internal/port"
	"golang-ethernetd/internal/types"
)

// ethernetInterface is one configured interface with its controller wired up.
type ethernetInterface struct {
	name   string
	config config.InterfaceConfig
	mac    types.MAC
	eth    *ethernet.Manager
}

// buildInterface wires the chip driver, bus guard and lease negotiator of one interface.
func buildInterface(name string, ifaceConfig config.InterfaceConfig, networkMgr port.NetworkManager) (*ethernetInterface, error) {
	identity, err := chip.IdentityByName(ifaceConfig.Chip)
	if err != nil {
		return nil, err
	}

	var driver port.ChipDriver
	switch ifaceConfig.Driver {
	case config.DriverMemory:
		driver = chip.NewMemoryChip(identity)
	case config.DriverNetlink, "":
		driver = chip.NewNetlinkChip(name, identity, networkMgr)
	default:
		return nil, fmt.Errorf("unknown driver %q", ifaceConfig.Driver)
	}

	mac, err := resolveMAC(name, ifaceConfig, networkMgr)
	if err != nil {
		return nil, err
	}

	dhcpClient := infraDhcp.NewClientAdapter()
	eth := ethernet.NewManager(driver, bus.NewGuard(),
		ethernet.WithLogger(logging.WithComponentAndInterface("ethernet", name)),
		ethernet.WithLeaseNegotiatorFactory(func() port.LeaseNegotiator {
			return infraDhcp.NewNegotiator(name, dhcpClient)
		}))

	return &ethernetInterface{
		name:   name,
		config: ifaceConfig,
		mac:    mac,
		eth:    eth,
	}, nil
}

// resolveMAC picks the configured MAC, else the link's own, else (memory driver)
// a locally administered address derived from the interface name.
func resolveMAC(name string, ifaceConfig config.InterfaceConfig, networkMgr port.NetworkManager) (types.MAC, error) {
	if ifaceConfig.MAC != "" {
		return types.ParseMAC(ifaceConfig.MAC)
	}

	if ifaceConfig.Driver == config.DriverMemory {
		h := fnv.New32a()
		h.Write([]byte(name))
		sum := h.Sum32()
		return types.MAC{0x02, 0x00, byte(sum >> 24), byte(sum >> 16), byte(sum >> 8), byte(sum)}, nil
	}

	link, err := networkMgr.GetLinkByName(name)
	if err != nil {
		return types.MAC{}, err
	}
	mac := types.MACFromHardwareAddr(link.Attrs().HardwareAddr)
	if mac.IsZero() {
		return types.MAC{}, fmt.Errorf("interface %s has no hardware address, set mac in the configuration", name)
	}
	return mac, nil
}

// createNetworkConfigurationManager creates the runner matching the interface's addressing mode.
func createNetworkConfigurationManager(iface *ethernetInterface, resolv *resolvconf.Publisher, mt *metrics.Metrics) (port.NetworkConfigurationManager, error) {
	logger := logging.WithInterface(iface.name)

	if iface.config.DHCP {
		opts := []dhcp.Option{dhcp.WithMetrics(mt)}
		if resolv != nil {
			opts = append(opts, dhcp.WithResolvConf(resolv))
		}
		manager := dhcp.NewManager(iface.name, iface.mac, iface.eth, iface.config, opts...)
		logger.WithField("driver", iface.config.Driver).Info("Created DHCP network configuration adapter")
		return manager, nil
	} else if iface.config.Static != nil {
		opts := []static.Option{static.WithMetrics(mt)}
		if resolv != nil {
			opts = append(opts, static.WithResolvConf(resolv))
		}
		manager, err := static.NewManager(iface.name, iface.mac, iface.eth, iface.config, opts...)
		if err != nil {
			return nil, err
		}
		logger.WithFields(map[string]interface{}{
			"driver":  iface.config.Driver,
			"ip":      iface.config.Static.IPAddress,
			"netmask": iface.config.Static.Netmask,
			"gateway": iface.config.Static.Gateway,
		}).Info("Created static network configuration adapter")
		return manager, nil
	}

	return nil, fmt.Errorf("invalid interface configuration: must specify either DHCP or static")
}
