package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang-ethernetd/internal/adapter/infrastructure/network"
	"golang-ethernetd/internal/pkg/config"

	"github.com/spf13/cobra"
)

var statusConfigFlag string

// writeStatus prints hardware, link and chip-held addresses of each interface without bringing anything up.
func writeStatus(w io.Writer, ifaces []*ethernetInterface) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INTERFACE\tMODE\tHARDWARE\tLINK\tMAC\tIP\tNETMASK\tGATEWAY")
	for _, iface := range ifaces {
		mode := "static"
		if iface.config.DHCP {
			mode = "dhcp"
		}
		cfg := iface.eth.Config()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			iface.name,
			mode,
			iface.eth.HardwareStatus(),
			iface.eth.LinkStatus(),
			cfg.MAC,
			cfg.Local,
			cfg.Subnet,
			cfg.Gateway,
		)
	}
	return tw.Flush()
}

// selectInterfaces returns the named interfaces, or every configured one when none are named.
func selectInterfaces(cfg *config.Config, names []string) ([]string, error) {
	if len(names) == 0 {
		return sortedInterfaceNames(cfg), nil
	}
	for _, name := range names {
		if _, ok := cfg.GetInterfaceConfig(name); !ok {
			return nil, fmt.Errorf("interface %s is not configured", name)
		}
	}
	return names, nil
}

var statusCmd = &cobra.Command{
	Use:   "status [interface...]",
	Short: "Show controller, link and address state of the configured interfaces",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(statusConfigFlag)
		if err != nil {
			return err
		}

		names, err := selectInterfaces(cfg, args)
		if err != nil {
			return err
		}

		networkMgr := network.NewManagerAdapter()
		var ifaces []*ethernetInterface
		for _, name := range names {
			iface, err := buildInterface(name, cfg.Interfaces[name], networkMgr)
			if err != nil {
				return fmt.Errorf("interface %s: %w", name, err)
			}
			ifaces = append(ifaces, iface)
		}

		return writeStatus(cmd.OutOrStdout(), ifaces)
	},
}

func init() {
	statusCmd.Flags().StringVarP(&statusConfigFlag, "config", "f", "", "Path to config file (YAML)")
	if err := statusCmd.MarkFlagRequired("config"); err != nil {
		panic(err) // This should never happen during initialization
	}
	rootCmd.AddCommand(statusCmd)
}
