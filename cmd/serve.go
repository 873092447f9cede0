package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"golang-ethernetd/internal/adapter/infrastructure/file"
	"golang-ethernetd/internal/adapter/infrastructure/network"
	"golang-ethernetd/internal/pkg/config"
	"golang-ethernetd/internal/pkg/logging"
	"golang-ethernetd/internal/pkg/metrics"
	"golang-ethernetd/internal/pkg/resolvconf"
	"golang-ethernetd/internal/pkg/version"
	"golang-ethernetd/internal/port"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"
)

var (
	configFlag string
)

// loadConfig loads and validates the configuration, then initializes logging from it.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}
	logging.InitLogger(cfg.Logging)
	return cfg, nil
}

// sortedInterfaceNames keeps start-up and status output stable.
func sortedInterfaceNames(cfg *config.Config) []string {
	names := make([]string, 0, len(cfg.Interfaces))
	for name := range cfg.Interfaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// serveMetrics runs the Prometheus endpoint until ctx is done.
func serveMetrics(ctx context.Context, listen string, mt *metrics.Metrics, logger *logrus.Entry) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", mt.Handler())
	server := &http.Server{
		Addr:              listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.WithField("listen", listen).Info("Serving metrics")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server failed: %w", err)
	}
	return nil
}

// runAll runs every manager and extra task in a pool until all have returned.
// A manager stopped by cancellation is not a failure.
func runAll(ctx context.Context, managers []port.NetworkConfigurationManager, logger *logrus.Entry, tasks ...func(context.Context) error) error {
	p := pool.New().WithContext(ctx)
	for _, task := range tasks {
		p.Go(task)
	}
	for _, manager := range managers {
		manager := manager
		p.Go(func(ctx context.Context) error {
			err := manager.Run(ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.WithField("interface", manager.GetInterfaceName()).WithError(err).Error("Network configuration adapter failed")
				return fmt.Errorf("interface %s: %w", manager.GetInterfaceName(), err)
			}
			return nil
		})
	}
	return p.Wait()
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Bring up and maintain every configured Ethernet interface",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configFlag)
		if err != nil {
			return err
		}

		logger := logging.WithComponent("daemon")
		logger.WithFields(map[string]interface{}{
			"config_file": configFlag,
			"version":     version.GetGitInfo().String(),
		}).Info("Starting daemon")

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)
		go func() {
			select {
			case sig := <-sigChan:
				logger.WithField("signal", sig.String()).Info("Received shutdown signal")
				cancel()
			case <-ctx.Done():
			}
		}()

		networkMgr := network.NewManagerAdapter()
		mt := metrics.NewMetrics(prometheus.NewRegistry())

		var resolv *resolvconf.Publisher
		if cfg.ResolvConf != "" {
			resolv = resolvconf.NewPublisher(cfg.ResolvConf, file.NewManagerAdapter())
		}

		var managers []port.NetworkConfigurationManager
		for _, name := range sortedInterfaceNames(cfg) {
			ifaceLogger := logger.WithField("interface", name)

			iface, err := buildInterface(name, cfg.Interfaces[name], networkMgr)
			if err != nil {
				ifaceLogger.WithError(err).Error("Failed to set up interface")
				continue
			}
			manager, err := createNetworkConfigurationManager(iface, resolv, mt)
			if err != nil {
				ifaceLogger.WithError(err).Error("Failed to create network configuration adapter")
				continue
			}
			managers = append(managers, manager)
		}

		if len(managers) == 0 {
			logger.Warn("No network configuration adapters created")
			return nil
		}

		logger.WithField("adapter_count", len(managers)).Info("Starting network configuration adapters")

		var tasks []func(context.Context) error
		if cfg.Metrics.Listen != "" {
			tasks = append(tasks, func(ctx context.Context) error {
				return serveMetrics(ctx, cfg.Metrics.Listen, mt, logger)
			})
		}

		err = runAll(ctx, managers, logger, tasks...)
		logger.Info("All network configuration adapters stopped")
		return err
	},
}

func init() {
	serveCmd.Flags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML)")
	if err := serveCmd.MarkFlagRequired("config"); err != nil {
		panic(err) // This should never happen during initialization
	}
	rootCmd.AddCommand(serveCmd)
}
