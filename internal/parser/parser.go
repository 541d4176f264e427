package parser

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/jgoulah/puntoplot/internal/logging"
	"github.com/jgoulah/puntoplot/pkg/models"
)

const (
	fieldSeparator = ";"
	fieldCount     = 7
)

// Parse turns semicolon-delimited text into records.
// Lines that do not split into exactly seven fields are dropped without error.
// Numeric fields without a parseable prefix become NaN.
func Parse(input string) []models.DataRecord {
	records := []models.DataRecord{}
	log := logging.Logger()

	lines := strings.Split(strings.TrimSpace(input), "\n")
	for i, line := range lines {
		fields := strings.Split(line, fieldSeparator)
		if len(fields) != fieldCount {
			if line != "" {
				log.Debug("dropping line", "line", i+1, "fields", len(fields))
			}
			continue
		}

		records = append(records, models.DataRecord{
			Timestamp: fields[0],
			MM:        strings.ToLower(fields[1]) == "true",
			Punto1:    ParseFloatPrefix(fields[2]),
			Punto2:    ParseFloatPrefix(fields[3]),
			Punto3:    ParseFloatPrefix(fields[4]),
			Punto4:    ParseFloatPrefix(fields[5]),
			Punto5:    ParseFloatPrefix(fields[6]),
		})
	}

	return records
}

// ParseReader reads r to the end and parses its content
func ParseReader(r io.Reader) ([]models.DataRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return Parse(string(data)), nil
}

// ParseFloatPrefix parses the longest leading part of s that forms a decimal
// number and ignores the rest. Leading whitespace is skipped, "Infinity" is
// accepted with an optional sign, and NaN is returned when no prefix parses.
func ParseFloatPrefix(s string) float64 {
	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	if strings.HasPrefix(s[i:], "Infinity") {
		if s[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	mantissa := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		mantissa++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
			mantissa++
		}
		// the point belongs to the number only if a digit sits on either side
		if mantissa > 0 {
			i = j
		}
	}
	if mantissa == 0 {
		return math.NaN()
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		start := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > start {
			i = j
		}
	}

	// Out-of-range prefixes come back as ±Inf or ±0 alongside ErrRange,
	// which is the value we want.
	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return v
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
