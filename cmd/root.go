package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/shopsavvy/savvyctl/config"
	"github.com/shopsavvy/savvyctl/shopsavvy"
)

var (
	cfgFile string
	apiKey  string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *shopsavvy.Client

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "savvyctl",
	Short: "Query the ShopSavvy Data API from the command line",
	Long: `savvyctl wraps the ShopSavvy Data API: product search, detail lookup,
current offers, price history, monitoring schedules and account usage.

An API key (ss_live_... or ss_test_...) is required, either in the config
file or via --api-key.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion records the build information injected by the linker.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "ShopSavvy API key (overrides config)")
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		// Without a config file the key must come from the flag.
		if apiKey == "" {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = config.Default()
	}
	if apiKey != "" {
		cfg.API.Key = apiKey
	}

	logger = setupLogger(cfg.Logging)

	sdkCfg := shopsavvy.NewConfig(cfg.API.Key)
	if cfg.API.BaseURL != "" {
		sdkCfg = sdkCfg.WithBaseURL(cfg.API.BaseURL)
	}
	if cfg.API.Timeout > 0 {
		sdkCfg = sdkCfg.WithTimeout(time.Duration(cfg.API.Timeout) * time.Second)
	}

	client, err = shopsavvy.NewWithConfig(sdkCfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create ShopSavvy client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
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

	// Console format; colors only when writing to a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// skipClientSetup is used by commands that don't talk to the API.
func skipClientSetup(cmd *cobra.Command, args []string) error {
	return nil
}
