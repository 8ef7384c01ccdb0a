package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-ledger-sync/internal/utils"
)

const timestampParam = "timestamp"

func (h *Handler) listBackups(w http.ResponseWriter, r *http.Request) {
	backups, err := h.services.BackupService.List(r.Context())
	if err != nil {
		writeError(w, r, "Handler.listBackups", err)
		return
	}

	_, _ = utils.WriteJSON(w, backups, http.StatusOK)
}

func (h *Handler) createBackup(w http.ResponseWriter, r *http.Request) {
	info, err := h.services.BackupService.Create(r.Context())
	if err != nil {
		writeError(w, r, "Handler.createBackup", err)
		return
	}

	_, _ = utils.WriteJSON(w, info, http.StatusCreated)
}

func (h *Handler) restoreBackup(w http.ResponseWriter, r *http.Request) {
	if err := h.services.BackupService.Restore(r.Context(), chi.URLParam(r, timestampParam)); err != nil {
		writeError(w, r, "Handler.restoreBackup", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteBackup(w http.ResponseWriter, r *http.Request) {
	if err := h.services.BackupService.Delete(r.Context(), chi.URLParam(r, timestampParam)); err != nil {
		writeError(w, r, "Handler.deleteBackup", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
