// File: pkg/scan/content.go
package scan

import (
	"bytes"
	"os"

	"go.uber.org/zap"
)

// LoadContent reads a file's text content. It returns ok=false, with a log
// entry, when the file is larger than maxBytes, cannot be read, or does not
// look like text. Oversized files are skipped outright, never truncated.
func LoadContent(path string, maxBytes int64, logger *zap.Logger) (string, bool) {
	info, err := os.Stat(path)
	if err != nil {
		logger.Warn("Failed to stat file", zap.String("file", path), zap.Error(err))
		return "", false
	}
	if info.Size() > maxBytes {
		logger.Warn("Skipping file over size limit",
			zap.String("file", path),
			zap.Int64("sizeBytes", info.Size()),
			zap.Int64("maxBytes", maxBytes))
		return "", false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Failed to read file", zap.String("file", path), zap.Error(err))
		return "", false
	}
	if isBinary(data) {
		logger.Warn("Skipping binary file", zap.String("file", path))
		return "", false
	}

	return string(data), true
}

// isBinary checks the first 512 bytes for null bytes or a high ratio of
// non-printable characters.
func isBinary(data []byte) bool {
	sample := data
	if len(sample) > 512 {
		sample = sample[:512]
	}
	if len(sample) == 0 {
		return false // Empty files are considered text
	}
	if bytes.Contains(sample, []byte{0}) {
		return true
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isPrintable(b) {
			nonPrintable++
		}
	}
	return float64(nonPrintable)/float64(len(sample)) > 0.3
}

// isPrintable checks if a byte represents a printable ASCII character
func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b == '\n' || b == '\r' || b == '\t'
}
