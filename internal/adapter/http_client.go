package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-ledger-sync/internal/config"
	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
	"github.com/MKhiriev/go-ledger-sync/models"
)

const traceIDHeader = "X-Trace-ID"

type httpDaemonAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPDaemonAdapter constructs the HTTP implementation of
// [DaemonAdapter] for the control API at adapterCfg.HTTPAddress.
func NewHTTPDaemonAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (DaemonAdapter, error) {
	if adapterCfg.HTTPAddress == "" {
		return nil, fmt.Errorf("invalid adapter http address: empty address")
	}

	return &httpDaemonAdapter{
		client: utils.NewHTTPClient(adapterCfg.HTTPAddress, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func (h *httpDaemonAdapter) Status(ctx context.Context) (models.SyncStatus, error) {
	var status models.SyncStatus
	err := h.do(ctx, http.MethodGet, "/api/sync/status", nil, &status)
	return status, err
}

func (h *httpDaemonAdapter) Config(ctx context.Context) (models.SyncConfig, error) {
	var cfg models.SyncConfig
	err := h.do(ctx, http.MethodGet, "/api/sync/config", nil, &cfg)
	return cfg, err
}

func (h *httpDaemonAdapter) UpdateConfig(ctx context.Context, cfg models.SyncConfig) (models.SyncConfig, error) {
	var updated models.SyncConfig
	err := h.do(ctx, http.MethodPut, "/api/sync/config", cfg, &updated)
	return updated, err
}

func (h *httpDaemonAdapter) ManualSync(ctx context.Context) (models.CycleResult, error) {
	var result models.CycleResult
	err := h.do(ctx, http.MethodPost, "/api/sync/manual", nil, &result)
	return result, err
}

func (h *httpDaemonAdapter) LoadFromRemote(ctx context.Context) (models.CycleResult, error) {
	var result models.CycleResult
	err := h.do(ctx, http.MethodPost, "/api/sync/pull", nil, &result)
	return result, err
}

func (h *httpDaemonAdapter) StartAutoSync(ctx context.Context) (models.SyncStatus, error) {
	var status models.SyncStatus
	err := h.do(ctx, http.MethodPost, "/api/sync/auto/start", nil, &status)
	return status, err
}

func (h *httpDaemonAdapter) StopAutoSync(ctx context.Context) (models.SyncStatus, error) {
	var status models.SyncStatus
	err := h.do(ctx, http.MethodPost, "/api/sync/auto/stop", nil, &status)
	return status, err
}

func (h *httpDaemonAdapter) NotifyDataChanged(ctx context.Context) error {
	return h.do(ctx, http.MethodPost, "/api/sync/data-changed", nil, nil)
}

func (h *httpDaemonAdapter) CreateBackup(ctx context.Context) (models.BackupInfo, error) {
	var info models.BackupInfo
	err := h.do(ctx, http.MethodPost, "/api/backups", nil, &info)
	return info, err
}

func (h *httpDaemonAdapter) ListBackups(ctx context.Context) ([]models.BackupInfo, error) {
	var backups []models.BackupInfo
	err := h.do(ctx, http.MethodGet, "/api/backups", nil, &backups)
	return backups, err
}

func (h *httpDaemonAdapter) RestoreBackup(ctx context.Context, timestamp string) error {
	return h.do(ctx, http.MethodPost, "/api/backups/"+url.PathEscape(timestamp)+"/restore", nil, nil)
}

func (h *httpDaemonAdapter) DeleteBackup(ctx context.Context, timestamp string) error {
	return h.do(ctx, http.MethodDelete, "/api/backups/"+url.PathEscape(timestamp), nil, nil)
}

func (h *httpDaemonAdapter) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo
	err := h.do(ctx, http.MethodGet, "/api/version", nil, &info)
	return info, err
}

// do sends one request and decodes a 2xx body into out when out is not nil.
func (h *httpDaemonAdapter) do(ctx context.Context, method, path string, body, out any) error {
	req := h.newRequest(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Err(err).Str("func", "httpDaemonAdapter.do").Str("path", path).Msg("control request failed")
		return fmt.Errorf("%w: %s %s: %w", ErrDaemonUnavailable, method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: decode %s response: %w", ErrUnexpectedResponse, path, err)
	}
	return nil
}

func (h *httpDaemonAdapter) newRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, uuid.NewString())
}
