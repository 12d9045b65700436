package main

import (
	"os"
	"strings"

	"go.uber.org/zap"

	"go-url-cache/internal/config"
)

const (
	defaultKeyDBURL     = "redis://keydb:6379"
	defaultKeyDBURLFile = "/app/.keydb-url"
)

type keydbURLSource struct {
	name   string
	lookup func() string
}

// GetKeyDBURL picks the first non-empty KeyDB address from shared.url,
// the KEYDB_URL environment variable and the connection file. The file
// is shared.url_file, overridden by URL_CACHE_KEYDB_URL_FILE.
func GetKeyDBURL(cfg *config.SharedConfig, logger *zap.Logger) string {
	sources := []keydbURLSource{
		{name: "config", lookup: func() string { return cfg.URL }},
		{name: "environment", lookup: func() string { return os.Getenv("KEYDB_URL") }},
		{name: "connection file", lookup: func() string { return readKeyDBURLFile(keydbURLFile(cfg), logger) }},
	}

	for _, source := range sources {
		if keydbURL := strings.TrimSpace(source.lookup()); keydbURL != "" {
			logger.Debug("Using KeyDB URL", zap.String("source", source.name))
			return keydbURL
		}
	}

	logger.Debug("Using default KeyDB URL")
	return defaultKeyDBURL
}

func keydbURLFile(cfg *config.SharedConfig) string {
	if path := os.Getenv("URL_CACHE_KEYDB_URL_FILE"); path != "" {
		return path
	}
	if cfg.URLFile != "" {
		return cfg.URLFile
	}
	return defaultKeyDBURLFile
}

func readKeyDBURLFile(path string, logger *zap.Logger) string {
	content, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("KeyDB connection file not readable", zap.String("file", path), zap.Error(err))
		return ""
	}
	return string(content)
}
