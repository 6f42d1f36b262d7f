// File: pkg/scan/collect.go
package scan

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// CollectFiles returns the slash-normalized root-relative paths of every
// regular file under rootPath that survives the exclude set. Traversal is
// depth-first with the same directories-first ordering as BuildTree, so the
// collected sequence lines up with the rendered tree. Directories that
// cannot be listed are logged and skipped, never fatal.
func CollectFiles(rootPath string, excludes *ExcludeSet, logger *zap.Logger) []string {
	var files []string
	collectInto(&files, rootPath, "", excludes, logger)
	return files
}

func collectInto(files *[]string, directory, relDir string, excludes *ExcludeSet, logger *zap.Logger) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		logger.Warn("Failed to read directory during collection",
			zap.String("directory", directory),
			zap.Error(err))
		return
	}

	entries = sortEntries(filterEntries(entries, excludes))

	for _, entry := range entries {
		relPath := entry.Name()
		if relDir != "" {
			relPath = relDir + "/" + entry.Name()
		}

		if entry.IsDir() {
			collectInto(files, filepath.Join(directory, entry.Name()), relPath, excludes, logger)
			continue
		}
		if entry.Type().IsRegular() {
			*files = append(*files, relPath)
		}
	}
}
