package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/jgoulah/puntoplot/internal/config"
	"github.com/jgoulah/puntoplot/internal/logging"
	"github.com/jgoulah/puntoplot/internal/parser"
	"github.com/jgoulah/puntoplot/pkg/models"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "puntoplot",
	Short: "Render punto records as trend charts",
	Long: `Puntoplot reads semicolon-delimited records (timestamp;mm;punto1;...;punto5),
normalizes the five readings of each record onto a square canvas and exports
one PNG chart per record. Red backgrounds mark series that ended lower than
they started, green everything else.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			l := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}))
			logging.SetLogger(l)
			// gg reports renderer fallbacks through its own logger
			gg.SetLogger(l)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./puntoplot.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log dropped lines and render details to stderr")
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

// loadConfig loads the configuration file
func loadConfig() (*config.Config, error) {
	return config.Load(getConfigPath())
}

// saveConfig saves the configuration file
func saveConfig(cfg *config.Config) error {
	return config.Save(getConfigPath(), cfg)
}

// readRecords parses the file named by args[0], or stdin when it is absent or "-"
func readRecords(cmd *cobra.Command, args []string) ([]models.DataRecord, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		r = f
	}

	return parser.ParseReader(r)
}
