// Package plot maps a record onto a square canvas.
//
// The five readings are min-max normalized into the vertical band between
// 10% and 90% of the canvas and placed at fixed horizontal positions. The
// y-axis is inverted so larger readings sit higher on screen.
//
// When all five readings are equal the range is zero and the raw arithmetic
// is kept: every y coordinate comes out NaN. Use PlotData.Finite to detect
// geometry that cannot be drawn.
package plot

import (
	"math"

	"github.com/jgoulah/puntoplot/pkg/models"
)

const (
	// Margin is the fraction of the canvas left blank above and below the band
	Margin = 0.1
	// Band is the fraction of the canvas the normalized values span
	Band = 0.8
)

// xFractions are the horizontal positions of punto1..punto5
var xFractions = [5]float64{0.1, 0.3, 0.5, 0.7, 0.9}

// Compute derives the plot geometry and background color for one record.
func Compute(rec models.DataRecord, imageSize float64) models.PlotData {
	values := rec.Puntos()
	minVal, maxVal := Range(values)

	normalize := func(v float64) float64 {
		return ((v-minVal)/(maxVal-minVal))*(imageSize*Band) + imageSize*Margin
	}

	var points [5]models.PlotPoint
	for i, v := range values {
		points[i] = models.PlotPoint{
			X: imageSize * xFractions[i],
			Y: imageSize - normalize(v),
		}
	}

	return models.PlotData{
		Points:          points,
		BackgroundColor: Classify(rec),
		Timestamp:       rec.Timestamp,
	}
}

// ComputeAll runs Compute over records, keeping their order
func ComputeAll(records []models.DataRecord, imageSize float64) []models.PlotData {
	out := make([]models.PlotData, 0, len(records))
	for _, rec := range records {
		out = append(out, Compute(rec, imageSize))
	}
	return out
}

// Range returns the minimum and maximum of values. A NaN anywhere makes both NaN.
func Range(values [5]float64) (minVal, maxVal float64) {
	minVal, maxVal = values[0], values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	return minVal, maxVal
}

// Classify compares only the first and last readings: red when the series
// ended lower than it started, green otherwise.
func Classify(rec models.DataRecord) models.BackgroundColor {
	if rec.Punto1 > rec.Punto5 {
		return models.Red
	}
	return models.Green
}

// IsDegenerate reports whether all five readings share one value, which
// leaves nothing to normalize against.
func IsDegenerate(rec models.DataRecord) bool {
	minVal, maxVal := Range(rec.Puntos())
	return minVal == maxVal
}
