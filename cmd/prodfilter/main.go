// Package main provides the CLI entry point for prodfilter.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/prodfilter-go/pkg/prodfilter"
	"github.com/ukaji3/prodfilter-go/pkg/prodfilter/config"
	"github.com/ukaji3/prodfilter-go/pkg/prodfilter/logging"
	"github.com/ukaji3/prodfilter-go/pkg/prodfilter/output"
)

var (
	settingsPath  string
	blacklistPath string
	envFile       string
	inputDir      string
	outputDir     string
	saveImages    bool
	logFile       string
	logLevel      string
	summaryPath   string
	pretty        bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "prodfilter",
		Short: "Filter product listing workbooks",
		Long: `prodfilter reads every .xlsx workbook in the input directory, drops
listings below the configured price, ROI, rating, review and offer
thresholds or outside the availability rule, removes blacklisted titles,
and writes <name>_filtered.xlsx (and optionally <name>_images.xlsx).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().StringVar(&settingsPath, "settings", "./settings/settings.ini", "Settings file (INI)")
	rootCmd.Flags().StringVar(&blacklistPath, "blacklist", "./settings/blacklist.txt", "Blacklist file, one pattern per line")
	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "Optional dotenv file with PRODFILTER_* overrides")
	rootCmd.Flags().StringVarP(&inputDir, "input", "i", "", "Input directory (overrides settings)")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (overrides settings)")
	rootCmd.Flags().BoolVar(&saveImages, "save-images", false, "Write the images workbook (overrides settings)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "./logs/logs.log", "Log file, overwritten on each run")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&summaryPath, "summary", "", "Write a JSON run summary to this path")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print the JSON summary")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log, closeLog, err := logging.New(logging.Options{Level: logLevel, File: logFile})
	if err != nil {
		return err
	}
	defer closeLog()
	log = log.Named("prodfilter")

	opts := config.Options{
		SettingsFile: settingsPath,
		EnvFile:      envFile,
		InputPath:    inputDir,
		OutputPath:   outputDir,
	}
	if cmd.Flags().Changed("save-images") {
		opts.SaveImages = &saveImages
	}

	settings, err := config.Load(opts)
	if err != nil {
		log.Error("failed to load settings", zap.Error(err))
		return err
	}
	cfg := config.Resolve(*settings, log.Named("config"))

	blacklist, err := config.LoadBlacklist(blacklistPath)
	if err != nil {
		log.Error("failed to load blacklist", zap.Error(err))
		return err
	}
	log.Info("blacklisted items found", zap.Int("count", blacklist.Len()))

	if err := os.MkdirAll(settings.OutputPath, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	files, err := prodfilter.FindInputFiles(settings.InputPath)
	if err != nil {
		log.Error("failed to list input files", zap.Error(err))
		return err
	}
	log.Info("files found, filtering", zap.Int("count", len(files)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	processor := prodfilter.NewProcessor(prodfilter.Options{
		Config:    cfg,
		Blacklist: blacklist,
		OutputDir: settings.OutputPath,
		Logger:    log.Named("processor"),
	})
	summary := processor.Run(ctx, files)

	if summaryPath != "" {
		jsonData, err := output.ToJSON(&summary, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if err := os.WriteFile(summaryPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}

	return nil
}
