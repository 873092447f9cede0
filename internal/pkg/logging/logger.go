// Package logging configures the process-wide logrus logger.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

// LogConfig represents logging configuration
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`           // json, text, simple, or compact
	Output string `yaml:"output,omitempty"` // stdout (default) or stderr
}

// Fields printed as bracketed prefixes by CompactFormatter, in this order.
var prefixFields = []string{"component", "interface"}

// CompactFormatter renders "[LEVEL][component][interface] message (k=v, ...)".
type CompactFormatter struct {
	ShowTime bool
}

// Format renders a single log entry
func (f *CompactFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	if f.ShowTime {
		fmt.Fprintf(b, "[%s]", entry.Time.Format("15:04:05"))
	}
	fmt.Fprintf(b, "[%s]", strings.ToUpper(entry.Level.String()))

	for _, key := range prefixFields {
		if v, ok := entry.Data[key]; ok {
			fmt.Fprintf(b, "[%v]", v)
		}
	}

	b.WriteByte(' ')
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if !isPrefixField(k) {
			keys = append(keys, k)
		}
	}
	if len(keys) > 0 {
		sort.Strings(keys)
		b.WriteString(" (")
		for i, key := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%s=%v", key, entry.Data[key])
		}
		b.WriteByte(')')
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func isPrefixField(key string) bool {
	for _, f := range prefixFields {
		if f == key {
			return true
		}
	}
	return false
}

// InitLogger initializes the global logger with the provided configuration
func InitLogger(config LogConfig) {
	Logger = logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
		Logger.Warnf("Invalid log level '%s', defaulting to 'info'", config.Level)
	}
	Logger.SetLevel(level)

	formatter, ok := newFormatter(config.Format)
	Logger.SetFormatter(formatter)
	if !ok {
		Logger.Warnf("Invalid log format '%s', defaulting to 'text'", config.Format)
	}

	Logger.SetOutput(outputFor(config.Output))

	Logger.Debugf("Logger initialized with level: %s, format: %s", level.String(), config.Format)
}

func newFormatter(format string) (logrus.Formatter, bool) {
	text := &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	}
	switch strings.ToLower(format) {
	case "json":
		return &logrus.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05"}, true
	case "simple":
		return &CompactFormatter{ShowTime: false}, true
	case "compact":
		return &CompactFormatter{ShowTime: true}, true
	case "text", "":
		return text, true
	default:
		return text, false
	}
}

func outputFor(name string) io.Writer {
	if strings.EqualFold(name, "stderr") {
		return os.Stderr
	}
	return os.Stdout
}

// GetLogger returns the global logger instance
func GetLogger() *logrus.Logger {
	if Logger == nil {
		InitLogger(LogConfig{
			Level:  "info",
			Format: "text",
		})
	}
	return Logger
}

// WithComponent returns an entry tagged with the component name.
func WithComponent(component string) *logrus.Entry {
	return GetLogger().WithField("component", component)
}

// WithInterface returns an entry tagged with the interface name.
func WithInterface(iface string) *logrus.Entry {
	return GetLogger().WithField("interface", iface)
}

// WithComponentAndInterface returns an entry tagged with both.
func WithComponentAndInterface(component, iface string) *logrus.Entry {
	return GetLogger().WithFields(logrus.Fields{
		"component": component,
		"interface": iface,
	})
}

// WithError returns an entry carrying err.
func WithError(err error) *logrus.Entry {
	return GetLogger().WithError(err)
}
