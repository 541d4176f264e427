package parser

import (
	"errors"
	"math"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/jgoulah/puntoplot/pkg/models"
)

func TestParse(t *testing.T) {
	input := "2024-01-01 10:00;true;10;20;30;40;50\n" +
		"2024-01-01 11:00;FALSE;1.5;2;3;4;5\n" +
		"2024-01-01 12:00;TrUe;5;4;3;2;1\n"

	got := Parse(input)
	want := []models.DataRecord{
		{Timestamp: "2024-01-01 10:00", MM: true, Punto1: 10, Punto2: 20, Punto3: 30, Punto4: 40, Punto5: 50},
		{Timestamp: "2024-01-01 11:00", MM: false, Punto1: 1.5, Punto2: 2, Punto3: 3, Punto4: 4, Punto5: 5},
		{Timestamp: "2024-01-01 12:00", MM: true, Punto1: 5, Punto2: 4, Punto3: 3, Punto4: 2, Punto5: 1},
	}

	if len(got) != len(want) {
		t.Fatalf("Parse() returned %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParse_DropsMalformedLines(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantCount int
		wantFirst string
	}{
		{name: "too few fields", input: "a;true;1;2;3;4", wantCount: 0},
		{name: "too many fields", input: "a;true;1;2;3;4;5;6", wantCount: 0},
		{name: "blank line between records", input: "a;true;1;2;3;4;5\n\nb;false;1;2;3;4;5", wantCount: 2, wantFirst: "a"},
		{name: "header without seven fields", input: "timestamp,mm,p1,p2,p3,p4,p5\nb;false;1;2;3;4;5", wantCount: 1, wantFirst: "b"},
		{name: "header with seven fields is kept", input: "timestamp;mm;p1;p2;p3;p4;p5\nb;false;1;2;3;4;5", wantCount: 2, wantFirst: "timestamp"},
		{name: "mixed good and bad", input: "x\na;true;1;2;3;4;5\ny;1\n", wantCount: 1, wantFirst: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if len(got) != tt.wantCount {
				t.Fatalf("Parse() returned %d records, want %d", len(got), tt.wantCount)
			}
			if tt.wantCount > 0 && got[0].Timestamp != tt.wantFirst {
				t.Errorf("first timestamp = %q, want %q", got[0].Timestamp, tt.wantFirst)
			}
		})
	}
}

func TestParse_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n\t\n"} {
		got := Parse(input)
		if got == nil || len(got) != 0 {
			t.Errorf("Parse(%q) = %#v, want empty non-nil slice", input, got)
		}
	}
}

func TestParse_PreservesOrder(t *testing.T) {
	var b strings.Builder
	names := []string{"z", "a", "m", "b"}
	for _, n := range names {
		b.WriteString(n + ";false;1;2;3;4;5\n")
	}

	got := Parse(b.String())
	if len(got) != len(names) {
		t.Fatalf("Parse() returned %d records, want %d", len(got), len(names))
	}
	for i, n := range names {
		if got[i].Timestamp != n {
			t.Errorf("record %d timestamp = %q, want %q", i, got[i].Timestamp, n)
		}
	}
}

func TestParse_MM(t *testing.T) {
	tests := []struct {
		field string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{"false", false},
		{"1", false},
		{"", false},
		{"yes", false},
		{" true", false},
	}

	for _, tt := range tests {
		got := Parse("ts;" + tt.field + ";1;2;3;4;5")
		if len(got) != 1 {
			t.Fatalf("mm=%q: got %d records, want 1", tt.field, len(got))
		}
		if got[0].MM != tt.want {
			t.Errorf("mm=%q parsed as %v, want %v", tt.field, got[0].MM, tt.want)
		}
	}
}

func TestParse_CRLF(t *testing.T) {
	got := Parse("a;true;1;2;3;4;5\r\nb;false;6;7;8;9;10\r\n")
	if len(got) != 2 {
		t.Fatalf("Parse() returned %d records, want 2", len(got))
	}
	if got[0].Punto5 != 5 || got[1].Punto5 != 10 {
		t.Errorf("trailing carriage return broke punto5: %v, %v", got[0].Punto5, got[1].Punto5)
	}
}

func TestParse_InvalidNumberIsNaN(t *testing.T) {
	got := Parse("a;true;abc;2;3;4;5")
	if len(got) != 1 {
		t.Fatalf("Parse() returned %d records, want 1", len(got))
	}
	if !math.IsNaN(got[0].Punto1) {
		t.Errorf("punto1 = %v, want NaN", got[0].Punto1)
	}
	if got[0].Punto2 != 2 {
		t.Errorf("punto2 = %v, want 2", got[0].Punto2)
	}
}

func TestParseFloatPrefix(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"42", 42},
		{"-3.25", -3.25},
		{"+7", 7},
		{"  12", 12},
		{"\t8.5\n", 8.5},
		{"12abc", 12},
		{"3.5e2x", 350},
		{"1e", 1},
		{"1e+", 1},
		{"2E-1", 0.2},
		{".5", 0.5},
		{"-.5", -0.5},
		{"5.", 5},
		{"1.2.3", 1.2},
		{"0x10", 0},
		{"1_000", 1},
		{"1,5", 1},
		{"Infinity", math.Inf(1)},
		{"-Infinityfoo", math.Inf(-1)},
		{"1e400", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseFloatPrefix(tt.in); got != tt.want {
				t.Errorf("ParseFloatPrefix(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFloatPrefix_NaN(t *testing.T) {
	for _, in := range []string{"", " ", "abc", ".", "-", "+", "e5", "-.e1", "inf", "NaN", "infinity"} {
		if got := ParseFloatPrefix(in); !math.IsNaN(got) {
			t.Errorf("ParseFloatPrefix(%q) = %v, want NaN", in, got)
		}
	}
}

func TestParseReader(t *testing.T) {
	got, err := ParseReader(strings.NewReader("a;true;1;2;3;4;5\n"))
	if err != nil {
		t.Fatalf("ParseReader() error = %v", err)
	}
	if len(got) != 1 || got[0].Timestamp != "a" {
		t.Errorf("ParseReader() = %+v, want one record with timestamp a", got)
	}

	readErr := errors.New("boom")
	if _, err := ParseReader(iotest.ErrReader(readErr)); !errors.Is(err, readErr) {
		t.Errorf("ParseReader() error = %v, want wrapped %v", err, readErr)
	}
}
