package render

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/jgoulah/puntoplot/internal/logging"
	"github.com/jgoulah/puntoplot/pkg/models"
)

// Written describes one exported image
type Written struct {
	Timestamp string
	Path      string
	Bytes     int64
}

// FileName turns a timestamp into a PNG file name. Path separators and
// characters that are invalid on common filesystems become underscores.
func FileName(timestamp string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case strings.ContainsRune(`/\:*?"<>|`, r), unicode.IsControl(r):
			return '_'
		}
		return r
	}, strings.TrimSpace(timestamp))

	if name == "" || name == "." || name == ".." {
		name = "record"
	}
	return name + ".png"
}

// UniqueNames returns one file name per record, suffixing repeats with -2, -3, ...
func UniqueNames(data []models.PlotData) []string {
	seen := make(map[string]int, len(data))
	names := make([]string, len(data))
	for i, pd := range data {
		name := FileName(pd.Timestamp)
		seen[name]++
		if n := seen[name]; n > 1 {
			base := strings.TrimSuffix(name, ".png")
			name = fmt.Sprintf("%s-%d.png", base, n)
			// a literal "x-2" timestamp may already hold the suffixed name
			for seen[name] > 0 {
				n++
				name = fmt.Sprintf("%s-%d.png", base, n)
			}
			seen[name]++
		}
		names[i] = name
	}
	return names
}

// WriteFiles renders every record into dir, creating it if needed
func (r *Renderer) WriteFiles(dir string, data []models.PlotData) ([]Written, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	names := UniqueNames(data)
	written := make([]Written, 0, len(data))
	for i, pd := range data {
		var buf bytes.Buffer
		if err := r.EncodePNG(&buf, pd); err != nil {
			return written, fmt.Errorf("rendering %s: %w", pd.Timestamp, err)
		}

		path := filepath.Join(dir, names[i])
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}

		logging.Logger().Info("wrote image", "path", path, "bytes", buf.Len())
		written = append(written, Written{Timestamp: pd.Timestamp, Path: path, Bytes: int64(buf.Len())})
	}

	return written, nil
}

// WriteZip renders every record into a single zip archive written to w.
// PNG data is already compressed, so entries are stored as-is.
func (r *Renderer) WriteZip(w io.Writer, data []models.PlotData) ([]Written, error) {
	zw := zip.NewWriter(w)

	names := UniqueNames(data)
	written := make([]Written, 0, len(data))
	for i, pd := range data {
		var buf bytes.Buffer
		if err := r.EncodePNG(&buf, pd); err != nil {
			zw.Close()
			return written, fmt.Errorf("rendering %s: %w", pd.Timestamp, err)
		}

		entry, err := zw.CreateHeader(&zip.FileHeader{Name: names[i], Method: zip.Store})
		if err != nil {
			zw.Close()
			return written, fmt.Errorf("creating zip entry %s: %w", names[i], err)
		}
		if _, err := entry.Write(buf.Bytes()); err != nil {
			zw.Close()
			return written, fmt.Errorf("writing zip entry %s: %w", names[i], err)
		}

		written = append(written, Written{Timestamp: pd.Timestamp, Path: names[i], Bytes: int64(buf.Len())})
	}

	if err := zw.Close(); err != nil {
		return written, fmt.Errorf("finishing zip archive: %w", err)
	}
	return written, nil
}
