package models

import "math"

// BackgroundColor classifies a record's trend
type BackgroundColor string

const (
	Red   BackgroundColor = "red"   // punto1 > punto5
	Green BackgroundColor = "green" // everything else, equality included
)

// PlotPoint is a screen-space coordinate with the origin at the top-left
type PlotPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PlotData is the geometry and classification derived from one record
type PlotData struct {
	Points          [5]PlotPoint    `json:"points"`
	BackgroundColor BackgroundColor `json:"background_color"`
	Timestamp       string          `json:"timestamp"`
}

// Finite reports whether every coordinate is a finite number
func (p PlotData) Finite() bool {
	for _, pt := range p.Points {
		if math.IsNaN(pt.X) || math.IsInf(pt.X, 0) || math.IsNaN(pt.Y) || math.IsInf(pt.Y, 0) {
			return false
		}
	}
	return true
}
