package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Songmu/retry"
	ttlcache "github.com/jellydator/ttlcache/v3"
	"github.com/pyama86/safelink/domain/entity"
)

var (
	ErrUnavailable      = fmt.Errorf("backend unreachable")
	ErrMalformedPayload = fmt.Errorf("malformed payload")
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Body)
}

const (
	incidentsCacheKey = "incidents"
	errorBodyLimit    = 200
)

type APIRepository struct {
	baseURL        string
	client         *http.Client
	retryCount     uint
	retryInterval  time.Duration
	incidentsCache *ttlcache.Cache[string, []entity.Incident]
}

func NewAPIRepository(cfg *Config) *APIRepository {
	// The cache TTL stays under the poll interval so a dashboard timer
	// tick always refetches; the cache only absorbs remounts between ticks.
	ttl := cfg.PollInterval - time.Second
	if ttl <= 0 {
		ttl = cfg.PollInterval / 2
	}
	r := &APIRepository{
		baseURL:       strings.TrimSuffix(cfg.APIURL, "/"),
		client:        &http.Client{Timeout: cfg.RequestTimeout},
		retryCount:    cfg.RetryCount,
		retryInterval: cfg.RetryInterval,
		incidentsCache: ttlcache.New(
			ttlcache.WithTTL[string, []entity.Incident](ttl),
		),
	}
	go r.incidentsCache.Start()
	return r
}

// SubmitIncident reports a citizen message and returns the backend's
// classification. Submissions are never retried: a duplicated report is
// worse than an error the user can act on.
func (r *APIRepository) SubmitIncident(ctx context.Context, message string) (*entity.Incident, error) {
	body, err := json.Marshal(entity.Report{Message: message})
	if err != nil {
		return nil, fmt.Errorf("marshal report error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/incident", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request error: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var incident entity.Incident
	if err := r.do(req, &incident); err != nil {
		return nil, err
	}
	return &incident, nil
}

// Incidents fetches the full incident list, oldest first, as the backend
// stores it. Reads are idempotent so transient failures are retried.
func (r *APIRepository) Incidents(ctx context.Context) ([]entity.Incident, error) {
	if item := r.incidentsCache.Get(incidentsCacheKey); item != nil {
		return item.Value(), nil
	}

	var incidents []entity.Incident
	err := retry.Retry(r.retryCount, r.retryInterval, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/incidents", nil)
		if err != nil {
			return err
		}
		incidents = nil
		return r.do(req, &incidents)
	})
	if err != nil {
		return nil, err
	}

	r.incidentsCache.Set(incidentsCacheKey, incidents, ttlcache.DefaultTTL)
	return incidents, nil
}

// Health probes the backend root endpoint and returns its status line.
func (r *APIRepository) Health(ctx context.Context) (string, error) {
	var status struct {
		Status string `json:"status"`
	}
	err := retry.Retry(r.retryCount, r.retryInterval, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/", nil)
		if err != nil {
			return err
		}
		return r.do(req, &status)
	})
	if err != nil {
		return "", err
	}
	return status.Status, nil
}

func (r *APIRepository) do(req *http.Request, out any) error {
	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail := strings.TrimSpace(string(body))
		if len(detail) > errorBodyLimit {
			detail = detail[:errorBodyLimit]
		}
		return &APIError{StatusCode: resp.StatusCode, Body: detail}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return nil
}
