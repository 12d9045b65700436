package template

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"go-url-cache/internal/interfaces"
	"go-url-cache/internal/utils"
)

const (
	FileIDPlaceholder  = "{file_id}"
	VariantPlaceholder = "{variant}"
)

// Ensure Resolver implements interfaces.SyncURLResolver
var _ interfaces.SyncURLResolver = (*Resolver)(nil)

// Resolver renders public CDN URLs from a pattern such as
// https://cdn.example.com/{variant}/{file_id}. It never blocks.
type Resolver struct {
	pattern        string
	defaultVariant string
}

// NewResolver creates a template resolver. The pattern must be an
// absolute http(s) URL containing the file id placeholder.
func NewResolver(pattern, defaultVariant string) (*Resolver, error) {
	if !utils.IsDownloadURL(pattern) {
		return nil, fmt.Errorf("template %q is not an http(s) URL", pattern)
	}
	if !strings.Contains(pattern, FileIDPlaceholder) {
		return nil, fmt.Errorf("template %q is missing %s", pattern, FileIDPlaceholder)
	}

	return &Resolver{
		pattern:        pattern,
		defaultVariant: defaultVariant,
	}, nil
}

// Name identifies the resolver
func (r *Resolver) Name() string {
	return "template"
}

// LookupURL renders the URL. The expiry is ignored since CDN URLs are
// not signed.
func (r *Resolver) LookupURL(fileID, variant string, _ time.Duration) (string, bool) {
	if fileID == "" {
		return "", false
	}
	if variant == "" {
		variant = r.defaultVariant
	}

	rendered := strings.ReplaceAll(r.pattern, FileIDPlaceholder, url.PathEscape(fileID))
	rendered = strings.ReplaceAll(rendered, VariantPlaceholder, url.PathEscape(variant))

	// collapse the empty segment left by a missing variant
	scheme, rest, _ := strings.Cut(rendered, "://")
	for strings.Contains(rest, "//") {
		rest = strings.ReplaceAll(rest, "//", "/")
	}
	return scheme + "://" + rest, true
}
