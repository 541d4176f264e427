package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jgoulah/puntoplot/internal/config"
	"github.com/jgoulah/puntoplot/internal/plot"
	"github.com/jgoulah/puntoplot/internal/render"
	"github.com/jgoulah/puntoplot/pkg/models"
	"github.com/spf13/cobra"
)

var (
	renderStyle string
	renderSize  int
	renderOut   string
	renderZip   string
	renderLabel bool
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render one PNG chart per record",
	Long: `Draws each record as a chart and writes it as <timestamp>.png.

Styles:
  point  solid red or green background
  line   vertical red or green gradient background

With --zip all images are bundled into a single archive instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderStyle, "style", "", "Background style: point or line (default from config, point)")
	renderCmd.Flags().IntVar(&renderSize, "size", 0, "Canvas side in pixels (default from config, 320)")
	renderCmd.Flags().StringVar(&renderOut, "out", "", "Output directory (default from config, ./images)")
	renderCmd.Flags().StringVar(&renderZip, "zip", "", "Write all images into this zip archive")
	renderCmd.Flags().BoolVar(&renderLabel, "label", false, "Draw the timestamp onto each image")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "=== Render started at %s ===\n", time.Now().Format("2006-01-02 15:04:05 MST"))

	// Load config
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Flags override config
	if renderStyle != "" {
		cfg.Style = renderStyle
	}
	if renderSize != 0 {
		cfg.ImageSize = renderSize
	}
	if renderOut != "" {
		cfg.OutputDir = renderOut
	}
	if renderLabel {
		cfg.Label = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	records, err := readRecords(cmd, args)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(out, "No records found")
		return nil
	}

	data := plot.ComputeAll(records, float64(renderer.Size()))
	for _, pd := range data {
		logGeometry(pd)
		if !pd.Finite() {
			fmt.Fprintf(out, "⚠ %s: geometry undefined, rendering background only\n", pd.Timestamp)
		}
	}

	fmt.Fprintf(out, "Rendering %d records (%s style, %dpx)...\n", len(data), cfg.GetStyle(), renderer.Size())

	if renderZip != "" {
		return writeArchive(cmd, renderer, data)
	}

	written, err := renderer.WriteFiles(cfg.GetOutputDir(), data)
	for i, w := range written {
		fmt.Fprintf(out, "[%d/%d] %s (%s)\n", i+1, len(data), w.Path, humanize.Bytes(uint64(w.Bytes)))
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "✓ Rendered %d images to %s\n", len(written), cfg.GetOutputDir())
	return nil
}

// newRenderer builds a renderer from the effective config
func newRenderer(cfg *config.Config) (*render.Renderer, error) {
	style, err := render.ParseStyle(cfg.GetStyle())
	if err != nil {
		return nil, err
	}

	return render.New(render.Options{
		Size:         cfg.GetImageSize(),
		Style:        style,
		LineWidth:    cfg.GetLineWidth(),
		MarkerRadius: cfg.GetMarkerRadius(),
		Label:        cfg.Label,
	}), nil
}

func writeArchive(cmd *cobra.Command, renderer *render.Renderer, data []models.PlotData) error {
	out := cmd.OutOrStdout()

	if err := os.MkdirAll(filepath.Dir(renderZip), 0755); err != nil {
		return fmt.Errorf("creating archive directory: %w", err)
	}
	f, err := os.Create(renderZip)
	if err != nil {
		return fmt.Errorf("creating archive: %w", err)
	}
	defer f.Close()

	written, err := renderer.WriteZip(f, data)
	if err != nil {
		return err
	}
	for i, w := range written {
		fmt.Fprintf(out, "[%d/%d] %s (%s)\n", i+1, len(data), w.Path, humanize.Bytes(uint64(w.Bytes)))
	}

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("reading archive size: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing archive: %w", err)
	}

	fmt.Fprintf(out, "✓ Wrote %d images to %s (%s)\n", len(written), renderZip, humanize.Bytes(uint64(info.Size())))
	return nil
}
