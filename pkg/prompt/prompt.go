// File: pkg/prompt/prompt.go

// Package prompt assembles the text sent to the remote completion service
// from a directory tree and collected file contents. Assembly is a pure
// function of its inputs so identical snapshots always produce an identical
// prompt.
package prompt

import (
	"fmt"
	"path"
	"strings"
)

// FileRecord pairs a root-relative path with its loaded text content.
// Records keep the order they were collected in.
type FileRecord struct {
	Path    string
	Content string
}

// Assemble builds the full analysis prompt: fixed task framing, the rendered
// directory tree when present, then one labeled fenced block per file in
// record order. The fence language tag is the file's lowercased extension
// without the dot; files without an extension get an untagged fence.
func Assemble(projectName string, directoryTree string, records []FileRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a senior software engineer reviewing the project %q.\n", projectName)
	b.WriteString("Analyze the project structure and source files below, then produce a report covering:\n")
	b.WriteString("1. The overall architecture and purpose of the project.\n")
	b.WriteString("2. Code quality issues, bugs, or risky patterns you can identify.\n")
	b.WriteString("3. Concrete suggestions for improvement, ordered by impact.\n")

	if directoryTree != "" {
		b.WriteString("\nDirectory structure:\n\n")
		b.WriteString(directoryTree)
		if !strings.HasSuffix(directoryTree, "\n") {
			b.WriteString("\n")
		}
	}

	for _, record := range records {
		fmt.Fprintf(&b, "\nFile: %s\n", record.Path)
		fmt.Fprintf(&b, "```%s\n", languageTag(record.Path))
		b.WriteString(record.Content)
		if !strings.HasSuffix(record.Content, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("```\n")
	}

	return b.String()
}

// languageTag infers the fence tag from the file extension.
func languageTag(filePath string) string {
	ext := strings.ToLower(path.Ext(filePath))
	return strings.TrimPrefix(ext, ".")
}
