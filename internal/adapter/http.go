package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"crmsync/internal/config"
	"crmsync/internal/logger"
	"crmsync/models"
)

type httpRemoteAuthority struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRemoteAuthority constructs the HTTP/REST implementation of
// [RemoteAuthority]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying client with the resolved
// base URL and request timeout. A timed-out request surfaces as an ordinary
// delivery failure.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteAuthority(adapterCfg config.Adapter, log *logger.Logger) (RemoteAuthority, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpRemoteAuthority{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [RemoteAuthority]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpRemoteAuthority) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [RemoteAuthority].
func (h *httpRemoteAuthority) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// PushAutosave implements [RemoteAuthority]. It POSTs the draft snapshot to
// POST /api/sync/autosave. Requires a bearer token; without one it returns
// [ErrAuthMissing] before issuing the request.
func (h *httpRemoteAuthority) PushAutosave(ctx context.Context, autosaveReq models.AutosaveRequest) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(autosaveReq).
		Post("/api/sync/autosave")
	if err != nil {
		return fmt.Errorf("%w: autosave request: %v", ErrDeliveryFailed, err)
	}

	return mapHTTPError(resp)
}

// Deliver implements [RemoteAuthority]. It POSTs one queued operation to
// POST /api/sync/queue. The operation id in the body is the idempotency key
// for the authority's dedupe under at-least-once delivery.
func (h *httpRemoteAuthority) Deliver(ctx context.Context, deliverReq models.DeliverRequest) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(deliverReq).
		Post("/api/sync/queue")
	if err != nil {
		return fmt.Errorf("%w: deliver request: %v", ErrDeliveryFailed, err)
	}

	return mapHTTPError(resp)
}

// RemoteStatus implements [RemoteAuthority]. It GETs GET /api/sync/status and
// decodes the informational payload. Local queue counts stay authoritative
// for the UI; this is advisory only.
func (h *httpRemoteAuthority) RemoteStatus(ctx context.Context) (models.RemoteStatusResponse, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.RemoteStatusResponse{}, err
	}

	resp, err := req.Get("/api/sync/status")
	if err != nil {
		return models.RemoteStatusResponse{}, fmt.Errorf("%w: status request: %v", ErrDeliveryFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteStatusResponse{}, err
	}

	var status models.RemoteStatusResponse
	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		return models.RemoteStatusResponse{}, fmt.Errorf("decode status response: %w", err)
	}

	return status, nil
}

// Conflicts implements [RemoteAuthority]. It GETs
// GET /api/sync/conflicts?limit=N and decodes the ordered conflict list.
func (h *httpRemoteAuthority) Conflicts(ctx context.Context, limit int) ([]models.SyncConflict, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetQueryParam("limit", strconv.Itoa(limit)).
		Get("/api/sync/conflicts")
	if err != nil {
		return nil, fmt.Errorf("%w: conflicts request: %v", ErrDeliveryFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var list models.ConflictsResponse
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode conflicts response: %w", err)
	}

	return list.Conflicts, nil
}

// ResolveConflict implements [RemoteAuthority]. It POSTs the resolution to
// POST /api/sync/conflicts/{id}/resolve. On success the conflict is presumed
// deleted remotely.
func (h *httpRemoteAuthority) ResolveConflict(ctx context.Context, conflictID, resolution string) error {
	if !models.ValidResolution(resolution) {
		return fmt.Errorf("%w: unknown resolution %q", ErrBadRequest, resolution)
	}

	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.ResolveConflictRequest{Resolution: resolution}).
		Post("/api/sync/conflicts/" + url.PathEscape(conflictID) + "/resolve")
	if err != nil {
		return fmt.Errorf("%w: resolve request: %v", ErrDeliveryFailed, err)
	}

	return mapHTTPError(resp)
}

// Ping implements [RemoteAuthority]. Unauthenticated reachability probe of
// HEAD /api/sync/ping, used by the connectivity monitor.
func (h *httpRemoteAuthority) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Head("/api/sync/ping")
	if err != nil {
		return fmt.Errorf("%w: ping: %v", ErrDeliveryFailed, err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteAuthority) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrAuthMissing
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token), nil
}
