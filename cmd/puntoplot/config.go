package main

import (
	"fmt"
	"os"

	"github.com/jgoulah/puntoplot/internal/config"
	"github.com/spf13/cobra"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with every setting spelled out",
	Long: `Writes the effective configuration to --config (default ./puntoplot.yaml).
Values already set in an existing file are kept; everything else is filled
with its default. An existing file is only rewritten with --force.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := getConfigPath()

	if _, err := os.Stat(path); err == nil && !configForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	effective := &config.Config{
		ImageSize:    cfg.GetImageSize(),
		Style:        cfg.GetStyle(),
		OutputDir:    cfg.GetOutputDir(),
		LineWidth:    cfg.GetLineWidth(),
		MarkerRadius: cfg.GetMarkerRadius(),
		Label:        cfg.Label,
	}

	if err := saveConfig(effective); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote config to %s\n", path)
	return nil
}
