package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ledger-sync/models"
)

func TestGetAppVersion(t *testing.T) {
	f := newHandlerFixture(t)
	want := models.AppBuildInfo{Version: "v1.4.0", Date: "2026-01-02", Commit: "abc123"}
	f.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(want)

	rec := f.do(http.MethodGet, "/api/version", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.AppBuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}
