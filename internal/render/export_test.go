package render

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jgoulah/puntoplot/pkg/models"
)

func TestFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-01-01", "2024-01-01.png"},
		{"2024-01-01 10:30:00", "2024-01-01 10_30_00.png"},
		{"a/b\\c", "a_b_c.png"},
		{"  padded  ", "padded.png"},
		{"", "record.png"},
		{"..", "record.png"},
		{"tab\there", "tab_here.png"},
	}

	for _, tt := range tests {
		if got := FileName(tt.in); got != tt.want {
			t.Errorf("FileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUniqueNames(t *testing.T) {
	data := []models.PlotData{
		{Timestamp: "a"},
		{Timestamp: "a"},
		{Timestamp: "a-2"},
		{Timestamp: "b"},
		{Timestamp: "a"},
	}

	got := UniqueNames(data)
	want := []string{"a.png", "a-2.png", "a-2-2.png", "b.png", "a-3.png"}
	seen := map[string]bool{}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("name %d = %q, want %q", i, got[i], want[i])
		}
		if seen[got[i]] {
			t.Errorf("duplicate name %q", got[i])
		}
		seen[got[i]] = true
	}
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	data := []models.PlotData{ascending(), descending(), ascending()}

	written, err := New(Options{Size: 32}).WriteFiles(dir, data)
	if err != nil {
		t.Fatalf("WriteFiles() error = %v", err)
	}
	if len(written) != 3 {
		t.Fatalf("WriteFiles() wrote %d files, want 3", len(written))
	}

	for _, name := range []string{"up.png", "down.png", "up-2.png"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("missing %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
	if written[1].Timestamp != "down" || written[1].Bytes == 0 {
		t.Errorf("written[1] = %+v", written[1])
	}
}

func TestWriteZip(t *testing.T) {
	var buf bytes.Buffer
	data := []models.PlotData{ascending(), descending()}

	written, err := New(Options{Size: 32}).WriteZip(&buf, data)
	if err != nil {
		t.Fatalf("WriteZip() error = %v", err)
	}
	if len(written) != 2 {
		t.Fatalf("WriteZip() returned %d entries, want 2", len(written))
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("zip.NewReader() error = %v", err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("archive has %d entries, want 2", len(zr.File))
	}
	if zr.File[0].Name != "up.png" || zr.File[1].Name != "down.png" {
		t.Errorf("entries = %q, %q", zr.File[0].Name, zr.File[1].Name)
	}
	if int64(zr.File[0].UncompressedSize64) != written[0].Bytes {
		t.Errorf("entry size %d, want %d", zr.File[0].UncompressedSize64, written[0].Bytes)
	}
}

func TestWriteZip_Empty(t *testing.T) {
	var buf bytes.Buffer
	if _, err := New(Options{}).WriteZip(&buf, nil); err != nil {
		t.Fatalf("WriteZip() error = %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("zip.NewReader() error = %v", err)
	}
	if len(zr.File) != 0 {
		t.Errorf("archive has %d entries, want 0", len(zr.File))
	}
}
