// Package render rasterizes plot geometry into PNG images.
//
// Two background styles exist. StylePoint paints a solid red or green
// canvas. StyleLine paints a vertical gradient of five lightness stops in
// the same hue. Both draw a black polyline through the five points and a
// filled marker on each.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/gogpu/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jgoulah/puntoplot/internal/logging"
	"github.com/jgoulah/puntoplot/pkg/models"
)

// Style selects the background treatment
type Style string

const (
	StylePoint Style = "point"
	StyleLine  Style = "line"
)

// ParseStyle validates a style name
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StylePoint, StyleLine:
		return Style(s), nil
	default:
		return "", fmt.Errorf("unknown style %q (available: point, line)", s)
	}
}

// gradientStops is the number of color stops in the line style background
const gradientStops = 5

var (
	cssRed   = gg.Hex("#FF0000")
	cssGreen = gg.Hex("#008000")
)

// Options controls how a Renderer draws
type Options struct {
	Size         int     // canvas side in pixels
	Style        Style   // background style
	LineWidth    float64 // polyline width
	MarkerRadius float64 // point marker radius
	Label        bool    // draw the timestamp in the bottom-left corner
}

// Renderer draws PlotData onto square canvases
type Renderer struct {
	opts Options
}

// New creates a renderer. Zero option values fall back to 320px, point
// style, a 2px line and 5px markers.
func New(opts Options) *Renderer {
	if opts.Size <= 0 {
		opts.Size = 320
	}
	if opts.Style == "" {
		opts.Style = StylePoint
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = 2
	}
	if opts.MarkerRadius <= 0 {
		opts.MarkerRadius = 5
	}
	return &Renderer{opts: opts}
}

// Size returns the canvas side in pixels
func (r *Renderer) Size() int {
	return r.opts.Size
}

// Render draws pd and returns the finished image.
// Geometry that contains NaN or infinite coordinates gets its background
// only; the polyline and markers are skipped.
func (r *Renderer) Render(pd models.PlotData) (*image.RGBA, error) {
	size := float64(r.opts.Size)
	dc := gg.NewContext(r.opts.Size, r.opts.Size)
	defer dc.Close()

	dc.SetFillBrush(r.background(pd.BackgroundColor))
	dc.DrawRectangle(0, 0, size, size)
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("filling background: %w", err)
	}

	if pd.Finite() {
		if err := r.drawSeries(dc, pd.Points); err != nil {
			return nil, err
		}
	} else {
		logging.Logger().Warn("skipping series with non-finite geometry", "timestamp", pd.Timestamp)
	}

	img := toRGBA(dc.Image())
	if r.opts.Label {
		drawLabel(img, pd.Timestamp)
	}
	return img, nil
}

// EncodePNG renders pd and writes it to w as PNG
func (r *Renderer) EncodePNG(w io.Writer, pd models.PlotData) error {
	img, err := r.Render(pd)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

func (r *Renderer) drawSeries(dc *gg.Context, points [5]models.PlotPoint) error {
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(r.opts.LineWidth)
	dc.MoveTo(points[0].X, points[0].Y)
	for _, pt := range points[1:] {
		dc.LineTo(pt.X, pt.Y)
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("stroking series: %w", err)
	}

	for _, pt := range points {
		dc.DrawCircle(pt.X, pt.Y, r.opts.MarkerRadius)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("filling marker: %w", err)
		}
	}
	return nil
}

func (r *Renderer) background(c models.BackgroundColor) gg.Brush {
	if r.opts.Style == StyleLine {
		return gradient(c, float64(r.opts.Size))
	}
	if c == models.Red {
		return gg.Solid(cssRed)
	}
	return gg.Solid(cssGreen)
}

// gradient runs top to bottom from white to a dark shade of the hue.
func gradient(c models.BackgroundColor, size float64) *gg.LinearGradientBrush {
	hue := 120.0
	if c == models.Red {
		hue = 0
	}

	g := gg.NewLinearGradientBrush(0, 0, 0, size)
	for i := 0; i < gradientStops; i++ {
		lightness := 90 - float64(i)*(70.0/(gradientStops-1)) + 10
		offset := float64(i) / (gradientStops - 1)
		g.AddColorStop(offset, gg.HSL(hue, 1, lightness/100))
	}
	return g
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	return rgba
}

// drawLabel writes text near the bottom-left corner on a translucent strip.
func drawLabel(img *image.RGBA, text string) {
	if text == "" {
		return
	}
	b := img.Bounds()
	face := basicfont.Face7x13
	pad := 4

	dr := &font.Drawer{Dst: img, Src: image.NewUniform(color.White), Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := b.Min.X + 6
	y := b.Max.Y - 6

	bg := image.NewUniform(color.RGBA{A: 160})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(img, rect.Intersect(b), bg, image.Point{}, draw.Over)

	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
}
