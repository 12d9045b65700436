package httpserver

import "go-url-cache/internal/service"

// URLRequest identifies a file variant for lookup or resolution
type URLRequest struct {
	FileID    string `json:"file_id" validate:"required,max=512"`
	Variant   string `json:"variant,omitempty" validate:"max=128"`
	ExpiresIn *int   `json:"expires_in,omitempty" validate:"omitempty,gte=0,lte=604800"` // Requested URL lifetime in seconds
}

// SetRequest represents a cache SET request
type SetRequest struct {
	FileID  string `json:"file_id" validate:"required,max=512"`
	Variant string `json:"variant,omitempty" validate:"max=128"`
	URL     string `json:"url" validate:"required,url"`
	TTL     *int   `json:"ttl,omitempty" validate:"omitempty,gte=0,lte=604800"`
}

// BatchResolveRequest represents a batch resolution request
type BatchResolveRequest struct {
	Items []URLRequest `json:"items" validate:"required,min=1,dive"`
}

// URLResponse represents a URL operation response
type URLResponse struct {
	Success   bool   `json:"success"`
	Found     bool   `json:"found,omitempty"`
	URL       string `json:"url,omitempty"`
	Cached    bool   `json:"cached,omitempty"`
	Resolved  bool   `json:"resolved,omitempty"`
	ExpiresAt int64  `json:"expires_at,omitempty"`
	TTL       int    `json:"ttl,omitempty"`
	Removed   *int   `json:"removed,omitempty"`
	Error     string `json:"error,omitempty"`
}

// BatchResolveResponse represents a batch resolution response
type BatchResolveResponse struct {
	Success bool                       `json:"success"`
	URLs    []*service.ResolveResponse `json:"urls"`
}

// StatsResponse represents a cache stats response
type StatsResponse struct {
	Success bool `json:"success"`
	*service.Stats
}
