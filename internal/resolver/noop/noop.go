package noop

import (
	"go-url-cache/internal/interfaces"
)

// Ensure NoOpResolver implements interfaces.URLResolver
var _ interfaces.URLResolver = (*NoOpResolver)(nil)

// NoOpResolver is used when URL resolution is disabled. It offers neither
// resolution style, so every cache miss serves the raw file id.
type NoOpResolver struct{}

// NewNoOpResolver creates a new no-operation resolver instance
func NewNoOpResolver() interfaces.URLResolver {
	return &NoOpResolver{}
}

// Name identifies the resolver
func (n *NoOpResolver) Name() string {
	return "noop"
}
