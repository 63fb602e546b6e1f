package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/koios/config"
	"github.com/s0up4200/koios/filter"
	"github.com/s0up4200/koios/koios"
)

var (
	cfgFile  string
	cfg      *config.Config
	logger   zerolog.Logger
	client   *koios.Client
	filters  *filter.Manager
	registry *prometheus.Registry

	// Global flags
	network string
	baseURL string
	token   string
	timeout time.Duration
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "koios",
	Short: "Query the Koios Cardano API from the command line",
	Long: `koios is a CLI for the Koios REST API. It calls any endpoint by name,
places parameters the way the endpoint expects them (query string for GET,
JSON body for POST) and reports failures by the stage they happened at.`,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes the root command and writes metrics whether or not it failed
func run() error {
	registry = nil
	err := rootCmd.Execute()
	if ferr := flushMetrics(); ferr != nil {
		return errors.Join(err, ferr)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&network, "network", "n", "", "public network: mainnet, preprod, preview or guild")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Koios base URL, overrides --network")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "bearer token for authenticated tiers")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "request timeout (default from config)")

	// Add subcommands
	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(endpointsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Command line overrides
	if cmd.Flags().Changed("network") {
		cfg.API.Network = network
		cfg.API.BaseURL = ""
	}
	if cmd.Flags().Changed("base-url") {
		cfg.API.BaseURL = baseURL
	}
	if cmd.Flags().Changed("token") {
		cfg.API.Token = token
	}
	if cmd.Flags().Changed("timeout") {
		cfg.API.Timeout = timeout
	}
	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", cfg.API.Timeout)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	apiURL, err := cfg.API.ResolveBaseURL()
	if err != nil {
		return err
	}

	opts := []koios.Option{
		koios.WithTimeout(cfg.API.Timeout),
		koios.WithUserAgent(cfg.API.UserAgent),
		koios.WithHeaders(cfg.API.Headers),
	}
	if cfg.API.Token != "" {
		opts = append(opts, koios.WithHeader("Authorization", "Bearer "+cfg.API.Token))
	}

	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		opts = append(opts, koios.WithMetrics(registry))
	}

	// Create Koios client
	client, err = koios.NewClient(apiURL, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create Koios client: %w", err)
	}

	filters = filter.NewManager()
	if err := filters.RegisterFilters(cfg.Filters); err != nil {
		return fmt.Errorf("invalid filters in config: %w", err)
	}

	logger.Debug().
		Str("base_url", client.BaseURL()).
		Dur("timeout", cfg.API.Timeout).
		Bool("metrics", cfg.Metrics.Enabled).
		Msg("Koios client ready")

	return nil
}

// flushMetrics writes collected request metrics to the configured textfile
func flushMetrics() error {
	if registry == nil || cfg == nil || cfg.Metrics.Textfile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(cfg.Metrics.Textfile, registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	logger.Debug().Str("path", cfg.Metrics.Textfile).Msg("Wrote metrics textfile")
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(os.Stderr),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// isTerminal reports whether f is attached to a terminal
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
