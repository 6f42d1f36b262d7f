// File: pkg/report/report.go

// Package report names and writes the output files produced by a run.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// manifest is the slice of package.json this tool cares about.
type manifest struct {
	Name string `json:"name"`
}

// ProjectName resolves the display name for the scanned directory: the
// "name" field of a package.json at the root when present and non-empty,
// otherwise the directory's base name.
func ProjectName(rootPath string) string {
	if b, err := os.ReadFile(filepath.Join(rootPath, "package.json")); err == nil {
		var m manifest
		if json.Unmarshal(b, &m) == nil && m.Name != "" {
			return m.Name
		}
	}

	abs, err := filepath.Abs(rootPath)
	if err != nil {
		abs = rootPath
	}
	return filepath.Base(abs)
}

// FileName builds the timestamped output name, e.g.
// myproject_analysis_20260830_153045.txt.
func FileName(projectName, kind string, at time.Time) string {
	return fmt.Sprintf("%s_%s_%s.txt", projectName, kind, at.Format("20060102_150405"))
}

// Write stores content in a single complete operation in the current working
// directory. A write failure is logged and returned but is not fatal to the
// run; partial output is never left behind by this function's caller because
// nothing is written incrementally.
func Write(fileName, content string, logger *zap.Logger) error {
	if err := os.WriteFile(fileName, []byte(content), 0644); err != nil {
		logger.Error("Failed to write output file", zap.String("file", fileName), zap.Error(err))
		return err
	}
	logger.Info("Wrote output file", zap.String("file", fileName))
	return nil
}
