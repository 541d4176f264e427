package models

// DataRecord represents a single parsed input line
type DataRecord struct {
	Timestamp string  `json:"timestamp"` // Opaque label, used as the export file name
	MM        bool    `json:"mm"`
	Punto1    float64 `json:"punto1"`
	Punto2    float64 `json:"punto2"`
	Punto3    float64 `json:"punto3"`
	Punto4    float64 `json:"punto4"`
	Punto5    float64 `json:"punto5"`
}

// Puntos returns the five readings in order
func (r DataRecord) Puntos() [5]float64 {
	return [5]float64{r.Punto1, r.Punto2, r.Punto3, r.Punto4, r.Punto5}
}
