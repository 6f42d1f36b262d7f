// File: pkg/app/app.go

// Package app wires the scan, prompt, remote, and report stages into the two
// top-level commands. Each run is strictly sequential: one tree walk, one
// collection pass, one blocking remote call, one file write.
package app

import (
	"context"
	"path/filepath"
	"time"

	"codescope/pkg/config"
	"codescope/pkg/openrouter"
	"codescope/pkg/prompt"
	"codescope/pkg/report"
	"codescope/pkg/scan"

	"go.uber.org/zap"
)

// Generate renders the directory tree for cfg.Root and writes it to a
// timestamped file in the current working directory.
func Generate(cfg config.Config, logger *zap.Logger) error {
	startTime := time.Now()
	logger.Info("Starting tree generation", zap.String("directory", cfg.Root))

	excludes := scan.NewExcludeSet(cfg.Excludes)
	tree := scan.BuildTree(cfg.Root, excludes, logger)

	projectName := report.ProjectName(cfg.Root)
	fileName := report.FileName(projectName, "directory", startTime)

	// Write errors are logged by report.Write; the run still completes.
	_ = report.Write(fileName, tree, logger)

	logger.Info("Tree generation completed",
		zap.String("project", projectName),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

// Analyze builds the full prompt for cfg.Root, sends it to the completion
// service, and writes the returned report. The credential is checked before
// any filesystem work so a misconfigured run produces no output at all. A
// failed remote call is logged and the run ends without a report file.
func Analyze(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	if err := cfg.RequireAPIKey(); err != nil {
		return err
	}

	startTime := time.Now()
	logger.Info("Starting project analysis",
		zap.String("directory", cfg.Root),
		zap.String("model", cfg.Model))

	excludes := scan.NewExcludeSet(cfg.Excludes)
	tree := scan.BuildTree(cfg.Root, excludes, logger)

	records := collectRecords(cfg, excludes, logger)
	logger.Info("Collected project files", zap.Int("fileCount", len(records)))

	projectName := report.ProjectName(cfg.Root)
	promptText := prompt.Assemble(projectName, tree, records)

	client := openrouter.NewClient(cfg.APIKey, cfg.Model, logger)
	if cfg.Endpoint != "" {
		client.Endpoint = cfg.Endpoint
	}
	client.Referer = cfg.Referer
	client.Title = cfg.Title

	analysis, err := client.RequestAnalysis(ctx, promptText)
	if err != nil {
		logger.Error("Analysis request failed, no report was produced", zap.Error(err))
		return nil
	}
	if analysis == "" {
		logger.Warn("The model returned an empty analysis")
	}

	fileName := report.FileName(projectName, "analysis", startTime)
	_ = report.Write(fileName, analysis, logger)

	logger.Info("Project analysis completed",
		zap.String("project", projectName),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

// collectRecords loads the content of every collectable file under the root,
// skipping entries the content loader rejects.
func collectRecords(cfg config.Config, excludes *scan.ExcludeSet, logger *zap.Logger) []prompt.FileRecord {
	var records []prompt.FileRecord
	for _, relPath := range scan.CollectFiles(cfg.Root, excludes, logger) {
		content, ok := scan.LoadContent(joinRoot(cfg.Root, relPath), cfg.MaxFileBytes, logger)
		if !ok {
			continue
		}
		records = append(records, prompt.FileRecord{Path: relPath, Content: content})
	}
	return records
}

// joinRoot resolves a slash-normalized relative path against the root.
func joinRoot(root, relPath string) string {
	return filepath.Join(root, filepath.FromSlash(relPath))
}
