package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-ledger-sync/internal/utils"
	"github.com/MKhiriev/go-ledger-sync/models"
)

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, models.ErrorResponse{
		Error: fmt.Sprintf("no route for %s", r.URL.Path),
		Code:  models.CodeInvalidRequest,
	}, http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, models.ErrorResponse{
		Error: fmt.Sprintf("method %s is not allowed on %s", r.Method, r.URL.Path),
		Code:  models.CodeInvalidRequest,
	}, http.StatusMethodNotAllowed)
}
