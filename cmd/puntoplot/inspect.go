package main

import (
	"fmt"

	"github.com/jgoulah/puntoplot/internal/logging"
	"github.com/jgoulah/puntoplot/internal/plot"
	"github.com/jgoulah/puntoplot/pkg/models"
	"github.com/spf13/cobra"
)

var (
	inspectIndex int
	inspectSize  int
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Print the computed chart geometry",
	Long: `Computes the five screen-space points and background color for each record,
as they would be drawn on a square canvas of --size pixels.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().IntVar(&inspectIndex, "index", -1, "Only inspect the record at this zero-based position")
	inspectCmd.Flags().IntVar(&inspectSize, "size", 0, "Canvas side in pixels (default from config, 320)")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	size := cfg.GetImageSize()
	if inspectSize != 0 {
		if inspectSize < 0 {
			return fmt.Errorf("--size must be positive, got %d", inspectSize)
		}
		size = inspectSize
	}

	if inspectIndex < -1 {
		return fmt.Errorf("--index must be zero or positive, got %d", inspectIndex)
	}

	records, err := readRecords(cmd, args)
	if err != nil {
		return err
	}

	if inspectIndex >= len(records) {
		return fmt.Errorf("index %d out of range (%d records)", inspectIndex, len(records))
	}
	if inspectIndex >= 0 {
		records = records[inspectIndex : inspectIndex+1]
	}

	out := cmd.OutOrStdout()
	for _, rec := range records {
		pd := plot.Compute(rec, float64(size))
		logGeometry(pd)

		fmt.Fprintf(out, "%s  [%s]\n", pd.Timestamp, pd.BackgroundColor)
		for i, pt := range pd.Points {
			fmt.Fprintf(out, "  punto%d  x=%8.2f  y=%8.2f\n", i+1, pt.X, pt.Y)
		}
		if plot.IsDegenerate(rec) {
			fmt.Fprintln(out, "  ⚠ all readings equal, range is zero")
		} else if !pd.Finite() {
			fmt.Fprintln(out, "  ⚠ non-numeric reading, geometry is undefined")
		}
	}

	return nil
}

// logGeometry reports the computed points at debug level
func logGeometry(pd models.PlotData) {
	log := logging.Logger()
	attrs := make([]any, 0, 2+2*len(pd.Points))
	attrs = append(attrs, "timestamp", pd.Timestamp, "color", string(pd.BackgroundColor))
	for i, pt := range pd.Points {
		attrs = append(attrs, fmt.Sprintf("punto%d", i+1), fmt.Sprintf("(%.2f, %.2f)", pt.X, pt.Y))
	}
	log.Debug("computed geometry", attrs...)
}
