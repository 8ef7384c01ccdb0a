package service

import (
	"context"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
)

const probeMarkerPrefix = "probe"

type prober struct {
	layout store.Layout
	logger *logger.Logger
}

// NewProber returns a [Prober] over the application folder of layout.
func NewProber(layout store.Layout, log *logger.Logger) Prober {
	return &prober{layout: layout, logger: log}
}

// Probe requires root to be an existing directory. The application folder
// inside it is created on demand, then a uniquely named marker is written and
// removed.
func (p *prober) Probe(ctx context.Context, root string) bool {
	log := p.logger

	if root == "" {
		return false
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		log.Debug().Str("func", "prober.Probe").Str("root", root).Msg("shared root does not exist")
		return false
	}

	dir := p.layout.RemoteDataDir(root)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		log.Debug().Err(err).Str("func", "prober.Probe").Str("dir", dir).Msg("cannot create application folder")
		return false
	}

	marker := filepath.Join(dir, utils.TempName(probeMarkerPrefix))
	if err = os.WriteFile(marker, []byte(probeMarkerPrefix), 0o600); err != nil {
		log.Debug().Err(err).Str("func", "prober.Probe").Str("dir", dir).Msg("shared folder is not writable")
		return false
	}

	if err = os.Remove(marker); err != nil {
		log.Warn().Err(err).Str("func", "prober.Probe").Str("marker", marker).Msg("failed to remove probe marker")
	}

	return true
}
