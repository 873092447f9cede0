//go:build unit

package dhcp

import (
	"context"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"golang-ethernetd/internal/adapter/infrastructure/bus"
	"golang-ethernetd/internal/adapter/infrastructure/chip"
	"golang-ethernetd/internal/mock"
	"golang-ethernetd/internal/pkg/config"
	"golang-ethernetd/internal/pkg/ethernet"
	"golang-ethernetd/internal/pkg/metrics"
	"golang-ethernetd/internal/pkg/resolvconf"
	"golang-ethernetd/internal/port"
	"golang-ethernetd/internal/types"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testMAC = types.MAC{0x02, 0x00, 0x00, 0x00, 0x00, 0x01}

func testConfig() config.InterfaceConfig {
	return config.InterfaceConfig{
		Driver:           config.DriverMemory,
		DHCP:             true,
		DHCPTimeout:      time.Second,
		ResponseTimeout:  100 * time.Millisecond,
		MaintainInterval: 5 * time.Millisecond,
	}
}

type testEnv struct {
	chip       *chip.MemoryChip
	negotiator *mock.MockLeaseNegotiator
	fileMgr    *mock.MockFileManager
	metrics    *metrics.Metrics
	manager    *Manager
}

func newTestEnv(t *testing.T, ifaceConfig config.InterfaceConfig) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		chip:       chip.NewMemoryChip(chip.IdentityW5500),
		negotiator: mock.NewMockLeaseNegotiator(ctrl),
		fileMgr:    mock.NewMockFileManager(ctrl),
		metrics:    metrics.NewMetrics(prometheus.NewRegistry()),
	}
	eth := ethernet.NewManager(env.chip, bus.NewGuard(),
		ethernet.WithLeaseNegotiatorFactory(func() port.LeaseNegotiator { return env.negotiator }))

	env.manager = NewManager("eth0", testMAC, eth, ifaceConfig,
		WithResolvConf(resolvconf.NewPublisher("/etc/resolv.conf", env.fileMgr)),
		WithMetrics(env.metrics))
	env.manager.retryDelay = 10 * time.Millisecond
	return env
}

func (e *testEnv) expectLease(ip string, dns *atomic.Value) {
	e.negotiator.EXPECT().GetLocalIP().DoAndReturn(func() types.Addr { return types.MustParseAddr(ip) }).AnyTimes()
	e.negotiator.EXPECT().GetGatewayIP().Return(types.MustParseAddr("10.0.0.1")).AnyTimes()
	e.negotiator.EXPECT().GetSubnetMask().Return(types.MustParseAddr("255.255.255.0")).AnyTimes()
	e.negotiator.EXPECT().GetDNSServerIP().DoAndReturn(func() types.Addr { return dns.Load().(types.Addr) }).AnyTimes()
}

func runManager(t *testing.T, m *Manager) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()
	return cancel, done
}

func stop(t *testing.T, cancel context.CancelFunc, done <-chan error) {
	t.Helper()
	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("manager did not stop")
	}
}

func TestNewManager(t *testing.T) {
	eth := ethernet.NewManager(chip.NewMemoryChip(chip.IdentityW5500), bus.NewGuard())
	manager := NewManager("eth0", testMAC, eth, testConfig())

	assert.Equal(t, "eth0", manager.GetInterfaceName())
	assert.Equal(t, defaultRetryDelay, manager.retryDelay)
	assert.Nil(t, manager.resolv)
	assert.Nil(t, manager.metrics)
}

func TestManager_Run(t *testing.T) {
	t.Run("BringsUpAndMaintains", func(t *testing.T) {
		ifaceConfig := testConfig()
		ifaceConfig.Retransmission = &config.RetransmissionConfig{TimeoutMS: 250, Count: 3}
		env := newTestEnv(t, ifaceConfig)

		var dns atomic.Value
		dns.Store(types.MustParseAddr("8.8.8.8"))
		env.expectLease("10.0.0.5", &dns)
		env.negotiator.EXPECT().BeginWithDHCP(testMAC, time.Second, 100*time.Millisecond).Return(true)

		// The first check rebinds onto a new DNS server, later ones find nothing due
		var checks atomic.Int32
		env.negotiator.EXPECT().CheckLease().DoAndReturn(func() port.LeaseCheck {
			if checks.Add(1) == 1 {
				dns.Store(types.MustParseAddr("9.9.9.9"))
				return port.LeaseRebound
			}
			return port.LeaseCheckNone
		}).MinTimes(2)

		var written atomic.Value
		env.fileMgr.EXPECT().ReadFile("/etc/resolv.conf").Return(nil, os.ErrNotExist).AnyTimes()
		env.fileMgr.EXPECT().WriteFile("/etc/resolv.conf", gomock.Any(), 0644).
			DoAndReturn(func(_ string, data []byte, _ int) error {
				written.Store(string(data))
				return nil
			}).Times(2)

		cancel, done := runManager(t, env.manager)

		require.Eventually(t, func() bool { return checks.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
		stop(t, cancel, done)

		assert.Equal(t, types.MustParseAddr("10.0.0.5"), env.chip.GetIPAddress())
		assert.Equal(t, types.MustParseAddr("10.0.0.1"), env.chip.GetGatewayIP())
		assert.Equal(t, testMAC, env.chip.GetMACAddress())
		assert.Equal(t, uint16(2500), env.chip.RetransmissionTime())
		assert.Equal(t, uint8(3), env.chip.RetransmissionCount())
		assert.Equal(t, "# Generated by golang-ethernetd\nnameserver 9.9.9.9\n", written.Load())

		assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.BringUps.WithLabelValues("eth0", "dhcp", "success")))
		assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.Configured.WithLabelValues("eth0")))
		assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.LeaseChecks.WithLabelValues("eth0", "rebound")))
		assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.LinkUp.WithLabelValues("eth0")))
	})

	t.Run("RetriesAfterFailedBringUp", func(t *testing.T) {
		env := newTestEnv(t, testConfig())

		var dns atomic.Value
		dns.Store(types.MustParseAddr("8.8.8.8"))
		env.expectLease("10.0.0.7", &dns)
		gomock.InOrder(
			env.negotiator.EXPECT().BeginWithDHCP(testMAC, gomock.Any(), gomock.Any()).Return(false),
			env.negotiator.EXPECT().BeginWithDHCP(testMAC, gomock.Any(), gomock.Any()).Return(true),
		)
		env.negotiator.EXPECT().CheckLease().Return(port.LeaseCheckNone).AnyTimes()
		env.fileMgr.EXPECT().ReadFile(gomock.Any()).Return(nil, os.ErrNotExist).AnyTimes()
		env.fileMgr.EXPECT().WriteFile(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

		cancel, done := runManager(t, env.manager)

		require.Eventually(t, func() bool {
			return env.chip.GetIPAddress() == types.MustParseAddr("10.0.0.7")
		}, 2*time.Second, 5*time.Millisecond)
		stop(t, cancel, done)

		assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.BringUps.WithLabelValues("eth0", "dhcp", "failure")))
		assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.BringUps.WithLabelValues("eth0", "dhcp", "success")))
	})

	t.Run("ChipNotResponding", func(t *testing.T) {
		env := newTestEnv(t, testConfig())
		env.chip.SetResponding(false)
		// No negotiation and no DNS publication expected

		cancel, done := runManager(t, env.manager)

		require.Eventually(t, func() bool {
			return testutil.ToFloat64(env.metrics.BringUps.WithLabelValues("eth0", "dhcp", "failure")) >= 2
		}, 2*time.Second, 5*time.Millisecond)
		stop(t, cancel, done)

		assert.True(t, env.chip.GetIPAddress().IsZero())
		assert.Equal(t, 0.0, testutil.ToFloat64(env.metrics.Configured.WithLabelValues("eth0")))
	})

	t.Run("StopsBeforeBringUp", func(t *testing.T) {
		eth := ethernet.NewManager(chip.NewMemoryChip(chip.IdentityW5500), bus.NewGuard())
		manager := NewManager("eth0", testMAC, eth, testConfig())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// Either branch may win the first select; both end with the context error
		err := manager.Run(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
