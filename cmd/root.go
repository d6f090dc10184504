package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/classfetch/classfetch/config"
	"github.com/classfetch/classfetch/tc"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *tc.Client

	// Command flags
	filterExpr  string
	preset      string
	showDetails bool
	strict      bool
)

// Version information, set at build time via SetVersion
var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records the build version for the version and update commands.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "classfetch",
	Short: "A read-only CLI for Transparent Classroom school records",
	Long: `classfetch fetches children, classrooms, staff and other records from
the Transparent Classroom API and prints them. Rosters can be narrowed
with filter expressions, either inline or as named presets from the
config file.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "fail on the first malformed record instead of skipping it")

	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration and client
func initializeApp(cmd *cobra.Command, args []string) error {
	// update and version run without a config file
	switch cmd.Name() {
	case "update", "version", "help", "completion":
		return nil
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Override show-details from command line if specified
	if cmd.Flags().Changed("details") {
		cfg.Output.ShowDetails = showDetails
	}

	opts := []tc.Option{tc.WithLocation(cfg.Location())}
	if cfg.TC.SchoolID != 0 {
		opts = append(opts, tc.WithSchoolID(cfg.TC.SchoolID))
	}
	if cfg.TC.MasqueradeID != 0 {
		opts = append(opts, tc.WithMasqueradeID(cfg.TC.MasqueradeID))
	}
	if strict || cfg.TC.Strict {
		opts = append(opts, tc.WithStrict())
	}

	client, err = tc.NewClient(cfg.TC.Host, cfg.TC.Email, cfg.TC.Password, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create Transparent Classroom client: %w", err)
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

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// versionCmd prints the build version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("classfetch %s (built %s)\n", version, buildTime)
	},
}

// getFilterExpression determines the filter expression to use.
// Priority: command line filter > preset. An empty result means no
// filtering.
func getFilterExpression() (string, error) {
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if expr, ok := cfg.Filter[preset]; ok {
			return expr, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return "", nil
}
