package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "golang-ethernetd",
	Short: "golang-ethernetd brings Ethernet controllers up with DHCP or static addressing",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
