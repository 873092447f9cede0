//go:build unit

package ethernet

import (
	"errors"
	"testing"
	"time"

	"golang-ethernetd/internal/adapter/infrastructure/bus"
	"golang-ethernetd/internal/adapter/infrastructure/chip"
	"golang-ethernetd/internal/mock"
	"golang-ethernetd/internal/pkg/portrand"
	"golang-ethernetd/internal/port"
	"golang-ethernetd/internal/types"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testMAC = types.MAC{0xde, 0xad, 0xbe, 0xef, 0xfe, 0xed}

func testLogger() *logrus.Entry {
	return logrus.NewEntry(logrus.New())
}

// newMemoryManager wires a Manager to an in-memory chip and a real bus guard.
func newMemoryManager(t *testing.T, opts ...Option) (*Manager, *chip.MemoryChip, *bus.Guard) {
	t.Helper()
	c := chip.NewMemoryChip(chip.IdentityW5500)
	g := bus.NewGuard()
	opts = append([]Option{WithLogger(testLogger())}, opts...)
	return NewManager(c, g, opts...), c, g
}

// heldCheckingNegotiator wraps a mock negotiator and fails the test if the bus is held during a call.
type heldCheckingNegotiator struct {
	port.LeaseNegotiator
	t     *testing.T
	guard *bus.Guard
}

func (h *heldCheckingNegotiator) BeginWithDHCP(mac types.MAC, timeout, responseTimeout time.Duration) bool {
	assert.False(h.t, h.guard.Held(), "bus held while negotiating")
	return h.LeaseNegotiator.BeginWithDHCP(mac, timeout, responseTimeout)
}

func (h *heldCheckingNegotiator) CheckLease() port.LeaseCheck {
	assert.False(h.t, h.guard.Held(), "bus held while checking lease")
	return h.LeaseNegotiator.CheckLease()
}

func expectLease(n *mock.MockLeaseNegotiator, ip, gw, mask, dns string) {
	n.EXPECT().GetLocalIP().Return(types.MustParseAddr(ip)).AnyTimes()
	n.EXPECT().GetGatewayIP().Return(types.MustParseAddr(gw)).AnyTimes()
	n.EXPECT().GetSubnetMask().Return(types.MustParseAddr(mask)).AnyTimes()
	n.EXPECT().GetDNSServerIP().Return(types.MustParseAddr(dns)).AnyTimes()
}

func TestManager_BeginDHCP(t *testing.T) {
	t.Run("SuccessfulLease", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		negotiator := mock.NewMockLeaseNegotiator(ctrl)

		var guard *bus.Guard
		m, c, guard := newMemoryManager(t, WithLeaseNegotiatorFactory(func() port.LeaseNegotiator {
			return &heldCheckingNegotiator{LeaseNegotiator: negotiator, t: t, guard: guard}
		}))

		negotiator.EXPECT().BeginWithDHCP(testMAC, DefaultDHCPTimeout, DefaultResponseTimeout).Return(true)
		expectLease(negotiator, "10.0.0.5", "10.0.0.1", "255.255.255.0", "8.8.8.8")

		require.Equal(t, DHCPSuccess, m.BeginDHCP(testMAC, DefaultDHCPTimeout, DefaultResponseTimeout))

		assert.Equal(t, types.MustParseAddr("10.0.0.5"), m.LocalIP())
		assert.Equal(t, types.MustParseAddr("10.0.0.1"), m.GatewayIP())
		assert.Equal(t, types.MustParseAddr("255.255.255.0"), m.SubnetMask())
		assert.Equal(t, types.MustParseAddr("8.8.8.8"), m.DNSServerIP())
		assert.Equal(t, testMAC, m.MACAddress())
		assert.Equal(t, testMAC, c.GetMACAddress())
		assert.False(t, guard.Held())
	})

	t.Run("NegotiationFails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		negotiator := mock.NewMockLeaseNegotiator(ctrl)
		m, c, guard := newMemoryManager(t, WithLeaseNegotiatorFactory(func() port.LeaseNegotiator { return negotiator }))

		// Stale state from a previous run
		c.SetIPAddress(types.MustParseAddr("192.168.9.9"))

		negotiator.EXPECT().BeginWithDHCP(testMAC, time.Second, time.Millisecond).Return(false)

		assert.Equal(t, DHCPFailure, m.BeginDHCP(testMAC, time.Second, time.Millisecond))
		assert.True(t, m.LocalIP().IsZero(), "chip keeps the zero address")
		assert.True(t, m.DNSServerIP().IsZero())
		// SetMACAddress + SetIPAddress(0) after init; nothing after the failure
		assert.Equal(t, 3, c.Writes())
		assert.False(t, guard.Held())
	})

	t.Run("ChipNotResponding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		chipDriver := mock.NewMockChipDriver(ctrl)
		busMock := mock.NewMockBus(ctrl)
		negotiator := mock.NewMockLeaseNegotiator(ctrl)

		gomock.InOrder(
			busMock.EXPECT().BeginTransaction(port.DefaultBusSettings),
			chipDriver.EXPECT().Init().Return(false),
			busMock.EXPECT().EndTransaction(),
		)
		// No register writes and no negotiation expected

		m := NewManager(chipDriver, busMock,
			WithLogger(testLogger()),
			WithLeaseNegotiatorFactory(func() port.LeaseNegotiator { return negotiator }))

		assert.Equal(t, DHCPFailure, m.BeginDHCP(testMAC, time.Second, time.Second))
		assert.NotNil(t, m.negotiator, "negotiator is created before the chip is probed")
	})

	t.Run("TransactionLayout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		chipDriver := mock.NewMockChipDriver(ctrl)
		busMock := mock.NewMockBus(ctrl)
		negotiator := mock.NewMockLeaseNegotiator(ctrl)
		expectLease(negotiator, "10.0.0.5", "10.0.0.1", "255.255.255.0", "8.8.8.8")

		gomock.InOrder(
			busMock.EXPECT().BeginTransaction(port.DefaultBusSettings),
			chipDriver.EXPECT().Init().Return(true),
			busMock.EXPECT().EndTransaction(),

			busMock.EXPECT().BeginTransaction(port.DefaultBusSettings),
			chipDriver.EXPECT().SetMACAddress(testMAC),
			chipDriver.EXPECT().SetIPAddress(types.Addr{}),
			busMock.EXPECT().EndTransaction(),

			negotiator.EXPECT().BeginWithDHCP(testMAC, time.Minute, time.Second).Return(true),

			busMock.EXPECT().BeginTransaction(port.DefaultBusSettings),
			chipDriver.EXPECT().SetIPAddress(types.MustParseAddr("10.0.0.5")),
			chipDriver.EXPECT().SetGatewayIP(types.MustParseAddr("10.0.0.1")),
			chipDriver.EXPECT().SetSubnetMask(types.MustParseAddr("255.255.255.0")),
			busMock.EXPECT().EndTransaction(),
		)

		m := NewManager(chipDriver, busMock,
			WithLogger(testLogger()),
			WithLeaseNegotiatorFactory(func() port.LeaseNegotiator { return negotiator }))

		assert.Equal(t, DHCPSuccess, m.BeginDHCP(testMAC, time.Minute, time.Second))
	})

	t.Run("NoNegotiatorFactory", func(t *testing.T) {
		m, _, _ := newMemoryManager(t)
		assert.Equal(t, DHCPFailure, m.BeginDHCP(testMAC, time.Second, time.Second))
	})
}

func TestManager_NegotiatorIsReused(t *testing.T) {
	ctrl := gomock.NewController(t)
	negotiator := mock.NewMockLeaseNegotiator(ctrl)
	created := 0
	m, _, _ := newMemoryManager(t, WithLeaseNegotiatorFactory(func() port.LeaseNegotiator {
		created++
		return negotiator
	}))

	negotiator.EXPECT().BeginWithDHCP(testMAC, gomock.Any(), gomock.Any()).Return(false).Times(3)

	for i := 0; i < 3; i++ {
		m.BeginDHCP(testMAC, time.Second, time.Second)
	}
	assert.Equal(t, 1, created)
}

func TestManager_BeginDHCP_SeedsPorts(t *testing.T) {
	ctrl := gomock.NewController(t)
	negotiator := mock.NewMockLeaseNegotiator(ctrl)
	negotiator.EXPECT().BeginWithDHCP(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	expectLease(negotiator, "10.0.0.5", "10.0.0.1", "255.255.255.0", "8.8.8.8")

	src := portrand.NewSource()
	m, _, _ := newMemoryManager(t,
		WithPortSource(src),
		WithMicros(func() uint64 { return 0x1234 }),
		WithLeaseNegotiatorFactory(func() port.LeaseNegotiator { return negotiator }))

	require.Equal(t, DHCPSuccess, m.BeginDHCP(testMAC, time.Second, time.Second))
	assert.Equal(t, portrand.First^0x1234, m.Ports().Peek())
}

func TestManager_StaticDefaults(t *testing.T) {
	addresses := []string{"192.168.1.50", "10.0.0.200", "172.16.254.3", "1.2.3.4"}

	for _, a := range addresses {
		t.Run(a, func(t *testing.T) {
			m, _, guard := newMemoryManager(t)
			ip := types.MustParseAddr(a)

			require.Equal(t, StaticApplied, m.Begin(testMAC, ip))

			expected := ip.WithOctet(3, 1)
			assert.Equal(t, ip, m.LocalIP())
			assert.Equal(t, expected, m.GatewayIP())
			assert.Equal(t, expected, m.DNSServerIP())
			assert.Equal(t, types.MustParseAddr("255.255.255.0"), m.SubnetMask())
			assert.Equal(t, testMAC, m.MACAddress())
			assert.False(t, guard.Held())
		})
	}
}

func TestManager_StaticOverloads(t *testing.T) {
	ip := types.MustParseAddr("192.168.1.50")
	dns := types.MustParseAddr("9.9.9.9")
	gw := types.MustParseAddr("192.168.1.254")
	subnet := types.MustParseAddr("255.255.0.0")

	t.Run("WithDNS", func(t *testing.T) {
		m, _, _ := newMemoryManager(t)
		m.BeginWithDNS(testMAC, ip, dns)

		assert.Equal(t, dns, m.DNSServerIP())
		assert.Equal(t, types.MustParseAddr("192.168.1.1"), m.GatewayIP(), "gateway derives from ip, not dns")
		assert.Equal(t, DefaultSubnetMask, m.SubnetMask())
	})

	t.Run("WithGateway", func(t *testing.T) {
		m, _, _ := newMemoryManager(t)
		m.BeginWithGateway(testMAC, ip, dns, gw)

		assert.Equal(t, gw, m.GatewayIP())
		assert.Equal(t, DefaultSubnetMask, m.SubnetMask())
	})

	t.Run("Full", func(t *testing.T) {
		m, _, _ := newMemoryManager(t)
		m.BeginStatic(testMAC, ip, dns, gw, subnet)

		cfg := m.Config()
		assert.Equal(t, types.InterfaceConfig{
			MAC:        testMAC,
			AddressSet: types.AddressSet{Local: ip, Gateway: gw, Subnet: subnet, DNS: dns},
		}, cfg)
	})
}

func TestManager_BeginStatic_ChipNotResponding(t *testing.T) {
	m, c, guard := newMemoryManager(t)
	c.SetResponding(false)

	assert.Equal(t, StaticNoHardware, m.Begin(testMAC, types.MustParseAddr("192.168.1.50")))
	assert.Equal(t, 0, c.Writes())
	assert.True(t, m.DNSServerIP().IsZero())
	assert.False(t, guard.Held())
}

func TestManager_BeginStatic_TransactionLayout(t *testing.T) {
	ctrl := gomock.NewController(t)
	chipDriver := mock.NewMockChipDriver(ctrl)
	busMock := mock.NewMockBus(ctrl)

	ip := types.MustParseAddr("192.168.1.50")
	gomock.InOrder(
		busMock.EXPECT().BeginTransaction(port.DefaultBusSettings),
		chipDriver.EXPECT().Init().Return(true),
		busMock.EXPECT().EndTransaction(),

		busMock.EXPECT().BeginTransaction(port.DefaultBusSettings),
		chipDriver.EXPECT().SetMACAddress(testMAC),
		chipDriver.EXPECT().SetIPAddress(ip),
		chipDriver.EXPECT().SetGatewayIP(types.MustParseAddr("192.168.1.1")),
		chipDriver.EXPECT().SetSubnetMask(DefaultSubnetMask),
		busMock.EXPECT().EndTransaction(),
	)

	m := NewManager(chipDriver, busMock, WithLogger(testLogger()))
	assert.Equal(t, StaticApplied, m.Begin(testMAC, ip))
}

func TestManager_BringUp(t *testing.T) {
	ip := types.MustParseAddr("10.1.1.10")
	gw := types.MustParseAddr("10.1.1.254")

	t.Run("StaticWithGatewayOnly", func(t *testing.T) {
		m, _, _ := newMemoryManager(t)

		res := m.BringUp(testMAC, BringUpOptions{IP: &ip, Gateway: &gw})
		assert.Equal(t, ModeStatic, res.Mode)
		assert.True(t, res.OK())
		assert.Equal(t, gw, m.GatewayIP())
		assert.Equal(t, types.MustParseAddr("10.1.1.1"), m.DNSServerIP())
		assert.Equal(t, DefaultSubnetMask, m.SubnetMask())
	})

	t.Run("StaticNoHardware", func(t *testing.T) {
		m, c, _ := newMemoryManager(t)
		c.SetResponding(false)

		res := m.BringUp(testMAC, BringUpOptions{IP: &ip})
		assert.Equal(t, ModeStatic, res.Mode)
		assert.Equal(t, StaticNoHardware, res.Static)
		assert.False(t, res.OK())
	})

	t.Run("DHCPDefaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		negotiator := mock.NewMockLeaseNegotiator(ctrl)
		negotiator.EXPECT().BeginWithDHCP(testMAC, DefaultDHCPTimeout, DefaultResponseTimeout).Return(false)
		m, _, _ := newMemoryManager(t, WithLeaseNegotiatorFactory(func() port.LeaseNegotiator { return negotiator }))

		res := m.BringUp(testMAC, BringUpOptions{})
		assert.Equal(t, ModeDHCP, res.Mode)
		assert.Equal(t, DHCPFailure, res.DHCP)
		assert.False(t, res.OK())
	})
}

type closingNegotiator struct {
	*mock.MockLeaseNegotiator
	closed int
	err    error
}

func (c *closingNegotiator) Close() error {
	c.closed++
	return c.err
}

func TestManager_Close(t *testing.T) {
	t.Run("WithoutNegotiator", func(t *testing.T) {
		m, _, _ := newMemoryManager(t)
		assert.NoError(t, m.Close())
	})

	t.Run("ClosesNegotiator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		negotiator := &closingNegotiator{MockLeaseNegotiator: mock.NewMockLeaseNegotiator(ctrl), err: errors.New("release failed")}
		negotiator.EXPECT().BeginWithDHCP(gomock.Any(), gomock.Any(), gomock.Any()).Return(false)

		m, _, _ := newMemoryManager(t, WithLeaseNegotiatorFactory(func() port.LeaseNegotiator { return negotiator }))
		m.BeginDHCP(testMAC, time.Second, time.Second)

		assert.EqualError(t, m.Close(), "release failed")
		assert.Equal(t, 1, negotiator.closed)
		assert.NoError(t, m.Close(), "second close is a no-op")
		assert.Equal(t, port.LeaseCheckNone, m.Maintain())
	})
}
