package fileapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"go-url-cache/internal/config"
	"go-url-cache/internal/interfaces"
)

const maxResponseBytes = 64 * 1024

// Ensure Resolver implements interfaces.AsyncURLResolver
var _ interfaces.AsyncURLResolver = (*Resolver)(nil)

// downloadURLResponse is the file service reply
type downloadURLResponse struct {
	URL string `json:"url"`
}

// Resolver asks the file service to mint a signed download URL
type Resolver struct {
	baseURL  string
	secret   string
	issuer   string
	tokenTTL time.Duration
	client   *http.Client
	clock    clock.Clock
	logger   *zap.Logger
}

// NewResolver creates a file service resolver
func NewResolver(cfg *config.FileAPIConfig, client *http.Client, clk clock.Clock, logger *zap.Logger) *Resolver {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	if clk == nil {
		clk = clock.New()
	}

	return &Resolver{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		secret:   cfg.JWTSecret,
		issuer:   cfg.Issuer,
		tokenTTL: cfg.TokenTTL,
		client:   client,
		clock:    clk,
		logger:   logger,
	}
}

// Name identifies the resolver
func (r *Resolver) Name() string {
	return "fileapi"
}

// ResolveURL calls GET {base}/files/{id}/download-url
func (r *Resolver) ResolveURL(ctx context.Context, fileID, variant string, expiresIn time.Duration) (string, error) {
	if fileID == "" {
		return "", errors.New("file id cannot be empty")
	}

	token, err := GenerateToken(r.secret, r.issuer, fileID, variant, r.clock.Now(), r.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign request token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.requestURL(fileID, variant, expiresIn), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("file service request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read file service response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		r.logger.Debug("File service rejected download URL request",
			zap.String("file_id", fileID),
			zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("file service returned status %d", resp.StatusCode)
	}

	var payload downloadURLResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("failed to decode file service response: %w", err)
	}

	return payload.URL, nil
}

func (r *Resolver) requestURL(fileID, variant string, expiresIn time.Duration) string {
	query := url.Values{}
	if variant != "" {
		query.Set("variant", variant)
	}
	if expiresIn > 0 {
		query.Set("expires_in", strconv.FormatInt(int64(expiresIn/time.Second), 10))
	}

	endpoint := fmt.Sprintf("%s/files/%s/download-url", r.baseURL, url.PathEscape(fileID))
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}
	return endpoint
}
