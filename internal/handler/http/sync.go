package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-ledger-sync/internal/utils"
	"github.com/MKhiriev/go-ledger-sync/models"
)

func (h *Handler) getSyncStatus(w http.ResponseWriter, r *http.Request) {
	status := h.services.SyncManager.GetSyncStatus(r.Context())
	_, _ = utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) getSyncConfig(w http.ResponseWriter, r *http.Request) {
	cfg := h.services.SyncManager.GetSyncConfig(r.Context())
	_, _ = utils.WriteJSON(w, cfg, http.StatusOK)
}

func (h *Handler) updateSyncConfig(w http.ResponseWriter, r *http.Request) {
	var cfg models.SyncConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, r, "Handler.updateSyncConfig", fmt.Errorf("%w: %w", errInvalidJSON, err))
		return
	}

	updated, err := h.services.SyncManager.UpdateSyncConfig(r.Context(), cfg)
	if err != nil {
		writeError(w, r, "Handler.updateSyncConfig", err)
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) manualSync(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.SyncManager.ManualSync(r.Context())
	if err != nil {
		writeError(w, r, "Handler.manualSync", err)
		return
	}

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) loadFromRemote(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.SyncManager.LoadFromRemote(r.Context())
	if err != nil {
		writeError(w, r, "Handler.loadFromRemote", err)
		return
	}

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

// startAutoSync and stopAutoSync answer with the resulting status so the
// caller sees whether auto sync actually turned on.
func (h *Handler) startAutoSync(w http.ResponseWriter, r *http.Request) {
	if err := h.services.SyncManager.StartAutoSync(r.Context()); err != nil {
		writeError(w, r, "Handler.startAutoSync", err)
		return
	}

	_, _ = utils.WriteJSON(w, h.services.SyncManager.GetSyncStatus(r.Context()), http.StatusOK)
}

func (h *Handler) stopAutoSync(w http.ResponseWriter, r *http.Request) {
	if err := h.services.SyncManager.StopAutoSync(r.Context()); err != nil {
		writeError(w, r, "Handler.stopAutoSync", err)
		return
	}

	_, _ = utils.WriteJSON(w, h.services.SyncManager.GetSyncStatus(r.Context()), http.StatusOK)
}

func (h *Handler) notifyDataChanged(w http.ResponseWriter, r *http.Request) {
	if err := h.services.SyncManager.NotifyDataChanged(r.Context()); err != nil {
		writeError(w, r, "Handler.notifyDataChanged", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
