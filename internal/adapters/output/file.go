// internal/adapters/output/file.go
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"urlsummary/internal/core/domain"
	"urlsummary/internal/core/ports"
	"urlsummary/internal/platform/logx"
)

// FileWriter writes an export to disk. The document is rendered into a
// temporary file next to the destination and renamed into place, so readers
// never observe a half-written summary.
type FileWriter struct {
	exporter  ports.Exporter
	timestamp string
	logger    logx.Logger
}

// NewFileWriter creates a writer for exporter.
func NewFileWriter(exporter ports.Exporter, logger logx.Logger) *FileWriter {
	if logger == nil {
		logger = logx.NewNop()
	}
	return &FileWriter{
		exporter:  exporter,
		timestamp: time.Now().Format("20060102_150405"),
		logger:    logger.With("component", "file-writer"),
	}
}

// Write renders result to path and returns the final file name.
// When path is an existing directory the file is named by GenerateFilename.
func (w *FileWriter) Write(path string, result domain.SummaryResult, opts ports.ExportOptions) (string, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, w.GenerateFilename())
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	tmp := f.Name()
	defer os.Remove(tmp) // no-op after a successful rename

	if err := w.exporter.Export(f, result, opts); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close output file: %w", err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		return "", fmt.Errorf("failed to set output file mode: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("failed to move output file into place: %w", err)
	}

	w.logger.Debug("summary written",
		"format", w.exporter.Name(),
		"items", len(result),
		"file", path,
	)

	return path, nil
}

// GenerateFilename names an output file: urlsummary_{timestamp}.{ext}.
func (w *FileWriter) GenerateFilename() string {
	return fmt.Sprintf("urlsummary_%s.%s", w.timestamp, extension(w.exporter.Name()))
}

func extension(format string) string {
	switch format {
	case FormatTree, FormatTable:
		return "txt"
	default:
		return format
	}
}
