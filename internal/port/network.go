// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"
)

//go:generate mockgen -source=network.go -destination=../mock/network.go -package=mock

// NetworkConfigurationManager is the primary port for running one interface.
// Implementations (DHCP, Static) bring the interface up through the Ethernet manager
// and keep it configured until the context is cancelled.
type NetworkConfigurationManager interface {
	// Run brings the interface up and keeps it configured until the context is cancelled.
	// It returns an error if bring-up cannot succeed or if the context is cancelled.
	Run(ctx context.Context) error

	// GetInterfaceName returns the name of the network interface managed by this manager.
	GetInterfaceName() string
}
