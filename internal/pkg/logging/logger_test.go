//go:build unit

package logging

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompactFormatter(t *testing.T) {
	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Time:    time.Date(2024, 1, 1, 12, 30, 45, 0, time.UTC),
		Level:   logrus.InfoLevel,
		Message: "DHCP bring-up complete",
		Data: logrus.Fields{
			"interface": "eth0",
			"component": "ethernet",
			"ip":        "10.0.0.5",
			"dns":       "8.8.8.8",
		},
	}

	t.Run("Simple", func(t *testing.T) {
		out, err := (&CompactFormatter{}).Format(entry)
		require.NoError(t, err)
		assert.Equal(t, "[INFO][ethernet][eth0] DHCP bring-up complete (dns=8.8.8.8, ip=10.0.0.5)\n", string(out))
	})

	t.Run("WithTime", func(t *testing.T) {
		out, err := (&CompactFormatter{ShowTime: true}).Format(entry)
		require.NoError(t, err)
		assert.Equal(t, "[12:30:45][INFO][ethernet][eth0] DHCP bring-up complete (dns=8.8.8.8, ip=10.0.0.5)\n", string(out))
	})

	t.Run("NoFields", func(t *testing.T) {
		out, err := (&CompactFormatter{}).Format(&logrus.Entry{Level: logrus.WarnLevel, Message: "bare", Data: logrus.Fields{}})
		require.NoError(t, err)
		assert.Equal(t, "[WARNING] bare\n", string(out))
	})
}

func TestInitLogger(t *testing.T) {
	t.Cleanup(func() { Logger = nil })

	InitLogger(LogConfig{Level: "debug", Format: "json", Output: "stderr"})
	assert.Equal(t, logrus.DebugLevel, Logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, Logger.Formatter)
	assert.Equal(t, os.Stderr, Logger.Out)

	InitLogger(LogConfig{Level: "loud", Format: "fancy"})
	assert.Equal(t, logrus.InfoLevel, Logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, Logger.Formatter)
	assert.Equal(t, os.Stdout, Logger.Out)

	InitLogger(LogConfig{Format: "compact"})
	assert.Equal(t, &CompactFormatter{ShowTime: true}, Logger.Formatter)
}

func TestHelpers(t *testing.T) {
	t.Cleanup(func() { Logger = nil })
	Logger = nil

	entry := WithComponentAndInterface("chip", "eth1")
	assert.Equal(t, "chip", entry.Data["component"])
	assert.Equal(t, "eth1", entry.Data["interface"])
	assert.NotNil(t, Logger, "helpers initialize the logger on first use")

	err := errors.New("boom")
	assert.Equal(t, err, WithError(err).Data[logrus.ErrorKey])
	assert.Equal(t, "eth2", WithInterface("eth2").Data["interface"])
}
