package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"titkee.com/techradar/config"
	"titkee.com/techradar/service"
	"titkee.com/techradar/util"
)

var (
	cfgPath string
	csvPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "techradar",
	Short: "Ask a language model about your tech radar",
	Long:  "techradar reads a tech radar CSV and asks an OpenAI-compatible model for insights about it.",
	// no subcommand means serve
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to an optional config file")
	rootCmd.PersistentFlags().StringVar(&csvPath, "csv", "", "tech radar CSV path (overrides TECH_RADAR_CSV)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("techradar failed")
		os.Exit(1)
	}
}

// bootstrap loads .env, config and the logger shared by every subcommand.
func bootstrap() (*config.Config, *logrus.Logger, error) {
	if err := util.LoadEnv(); err != nil {
		logrus.WithError(err).Warn("error loading .env file")
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	if csvPath != "" {
		cfg.CSVPath = csvPath
	}

	logger, err := util.NewLogger(os.Stderr, cfg.LogLevel, debug)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func newRadarService(cfg *config.Config, logger *logrus.Logger) (*service.RadarService, error) {
	if err := cfg.RequireAPIKey(); err != nil {
		return nil, err
	}

	completer, err := service.NewOpenAICompleter(service.OpenAIConfig{
		APIKey:    cfg.OpenAI.APIKey,
		BaseURL:   cfg.OpenAI.BaseURL,
		Model:     cfg.OpenAI.Model,
		MaxTokens: cfg.OpenAI.MaxTokens,
	}, logger)
	if err != nil {
		return nil, err
	}
	return service.NewRadarService(cfg.CSVPath, completer, logger), nil
}
