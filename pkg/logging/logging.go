package logging

import (
	"go.uber.org/zap"

	"codescope/pkg/version"
)

// New builds the process logger. Debug mode switches to the development
// config with human-readable output.
func New(debug bool) (*zap.Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.InitialFields = map[string]interface{}{
		"appName":    "codescope",
		"appVersion": version.Get().Version,
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}
