//go:build unit

package cmd

import (
	"context"
	"errors"
	"testing"

	"golang-ethernetd/internal/mock"
	"golang-ethernetd/internal/port"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRunAll(t *testing.T) {
	logger := logrus.NewEntry(logrus.New())

	t.Run("CancelledManagersAreNotFailures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		eth0 := mock.NewMockNetworkConfigurationManager(ctrl)
		eth0.EXPECT().Run(gomock.Any()).Return(context.Canceled)
		eth1 := mock.NewMockNetworkConfigurationManager(ctrl)
		eth1.EXPECT().Run(gomock.Any()).Return(nil)

		var ranTask bool
		err := runAll(context.Background(), []port.NetworkConfigurationManager{eth0, eth1}, logger,
			func(context.Context) error {
				ranTask = true
				return nil
			})
		assert.NoError(t, err)
		assert.True(t, ranTask)
	})

	t.Run("FailureNamesInterface", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		boom := errors.New("boom")
		eth0 := mock.NewMockNetworkConfigurationManager(ctrl)
		eth0.EXPECT().Run(gomock.Any()).Return(boom)
		eth0.EXPECT().GetInterfaceName().Return("eth0").AnyTimes()
		eth1 := mock.NewMockNetworkConfigurationManager(ctrl)
		eth1.EXPECT().Run(gomock.Any()).Return(context.Canceled)

		err := runAll(context.Background(), []port.NetworkConfigurationManager{eth0, eth1}, logger)
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "interface eth0: boom")
	})
}
