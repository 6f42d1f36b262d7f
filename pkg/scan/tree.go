// File: pkg/scan/tree.go
package scan

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// BuildTree renders the directory structure under rootPath as a box-drawing
// tree. Entries matching the exclude set are omitted. A subtree whose listing
// fails is logged and pruned; the rest of the tree is still rendered, so the
// result for a readable snapshot is deterministic.
func BuildTree(rootPath string, excludes *ExcludeSet, logger *zap.Logger) string {
	var tree strings.Builder
	buildSubtree(&tree, rootPath, "", excludes, logger)
	return tree.String()
}

// buildSubtree writes one directory level and recurses into subdirectories
// with an extended prefix.
func buildSubtree(tree *strings.Builder, directory, prefix string, excludes *ExcludeSet, logger *zap.Logger) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		logger.Warn("Failed to read directory for tree structure",
			zap.String("directory", directory),
			zap.Error(err))
		return
	}

	entries = sortEntries(filterEntries(entries, excludes))

	for i, entry := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}

		tree.WriteString(prefix + connector + entry.Name() + "\n")

		if entry.IsDir() {
			buildSubtree(tree, filepath.Join(directory, entry.Name()), prefix+extension, excludes, logger)
		}
	}
}

// filterEntries drops entries whose name matches the exclude set.
func filterEntries(entries []os.DirEntry, excludes *ExcludeSet) []os.DirEntry {
	kept := entries[:0]
	for _, entry := range entries {
		if !excludes.Match(entry.Name()) {
			kept = append(kept, entry)
		}
	}
	return kept
}

// sortEntries orders entries directories first, then files, each group in
// case-insensitive alphabetical order. This is the canonical listing policy
// for both the tree and the file collector.
func sortEntries(entries []os.DirEntry) []os.DirEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})
	return entries
}
