package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"go-url-cache/internal/service"
	"go-url-cache/internal/utils"
)

// handleGet handles cache lookups
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	var req URLRequest
	if err := s.parseRequest(r, &req); err != nil {
		s.writeErrorResponse(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	result, err := s.urlService.Lookup(req.FileID, req.Variant)
	if err != nil {
		s.writeErrorResponse(w, fmt.Sprintf("URL service error: %v", err), http.StatusBadRequest)
		return
	}

	s.writeResponse(w, &URLResponse{
		Success:   true,
		Found:     result.Found,
		URL:       result.URL,
		ExpiresAt: result.ExpiresAt,
		TTL:       result.TTL,
	})
}

// handleSet handles caching a caller-supplied URL
func (s *Server) handleSet(w http.ResponseWriter, r *http.Request) {
	var req SetRequest
	if err := s.parseRequest(r, &req); err != nil {
		s.writeErrorResponse(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	if err := s.urlService.Store(req.FileID, req.URL, req.Variant, utils.SecondsToDuration(req.TTL)); err != nil {
		s.writeErrorResponse(w, fmt.Sprintf("URL service error: %v", err), http.StatusBadRequest)
		return
	}

	s.writeResponse(w, &URLResponse{
		Success: true,
	})
}

// handleResolve handles resolution of a single file variant
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req URLRequest
	if err := s.parseRequest(r, &req); err != nil {
		s.writeErrorResponse(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	result, err := s.urlService.Resolve(r.Context(), req.FileID, req.Variant, utils.SecondsToDuration(req.ExpiresIn))
	if err != nil {
		s.writeErrorResponse(w, fmt.Sprintf("URL service error: %v", err), http.StatusBadRequest)
		return
	}

	s.writeResponse(w, &URLResponse{
		Success:  true,
		URL:      result.URL,
		Cached:   result.Cached,
		Resolved: result.Resolved,
	})
}

// handleResolveBatch handles resolution of several file variants
func (s *Server) handleResolveBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchResolveRequest
	if err := s.parseRequest(r, &req); err != nil {
		s.writeErrorResponse(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	items := make([]service.ResolveItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.ResolveItem{
			FileID:    item.FileID,
			Variant:   item.Variant,
			ExpiresIn: utils.SecondsToDuration(item.ExpiresIn),
		}
	}

	results, err := s.urlService.ResolveBatch(r.Context(), items)
	if err != nil {
		status := http.StatusBadRequest
		if !errors.Is(err, service.ErrBatchTooLarge) && !errors.Is(err, service.ErrEmptyFileID) {
			status = http.StatusServiceUnavailable
		}
		s.writeErrorResponse(w, fmt.Sprintf("URL service error: %v", err), status)
		return
	}

	s.writeResponse(w, &BatchResolveResponse{
		Success: true,
		URLs:    results,
	})
}

// handleSweep removes expired entries
func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	removed := s.urlService.Sweep()
	s.writeResponse(w, &URLResponse{
		Success: true,
		Removed: &removed,
	})
}

// handleClear drops every cached URL
func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	s.urlService.Purge()
	s.writeResponse(w, &URLResponse{
		Success: true,
	})
}

// handleStats reports the cache state
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.writeResponse(w, &StatsResponse{
		Success: true,
		Stats:   s.urlService.Stats(),
	})
}
