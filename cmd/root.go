package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/phuslu/log"
	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/boxoffice-cli/internal/config"
	"github.com/KaramelBytes/boxoffice-cli/internal/parser"
	"github.com/KaramelBytes/boxoffice-cli/internal/source"
)

var (
	cfgFile  string
	debug    bool
	logLevel string
	// HTTP flag (overrides config if set)
	flagHTTPTimeoutSec int

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "boxoffice",
	Short: "boxoffice: chart box-office grosses against theater counts",
	Long: `boxoffice reads a CSV/TSV/XLSX table of movie box-office records from a file or URL,
filters and sorts it, fits a trend line, and renders a scatter chart, a listing or a summary report.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.boxoffice/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace|debug|info|warn|error (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagHTTPTimeoutSec, "http-timeout", 0, "HTTP client timeout in seconds (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config, using defaults: %v\n", err)
		if c, err = cfgpkg.Default(); err != nil {
			c = &cfgpkg.Global{}
		}
	}
	cfg = c

	f := rootCmd.PersistentFlags()
	if f.Changed("http-timeout") && flagHTTPTimeoutSec > 0 {
		cfg.HTTPTimeoutSec = flagHTTPTimeoutSec
	}
	if f.Changed("log-level") && logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if debug {
		cfg.LogLevel = "debug"
	}
	setupLogger(cfg.LogLevel)
}

func setupLogger(level string) {
	if level == "" {
		level = "info"
	}
	log.DefaultLogger = log.Logger{
		Level:      log.ParseLevel(level),
		TimeFormat: "15:04:05",
		Writer: &log.ConsoleWriter{
			Writer:         os.Stderr,
			ColorOutput:    log.IsTerminal(os.Stderr.Fd()),
			EndWithMessage: true,
		},
	}
}

// fetchOptions builds source options from the loaded configuration.
func fetchOptions(sheet string) source.Options {
	opt := source.Options{Parse: parser.Options{Sheet: sheet}}
	if cfg != nil && cfg.HTTPTimeoutSec > 0 {
		opt.Timeout = time.Duration(cfg.HTTPTimeoutSec) * time.Second
	}
	return opt
}
