package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
)

type attachmentMirror struct {
	layout store.Layout
	logger *logger.Logger
}

// NewAttachmentMirror copies attachment files in both directions. Files are
// only ever added or overwritten with a newer copy, never deleted.
func NewAttachmentMirror(layout store.Layout, log *logger.Logger) AttachmentMirror {
	return &attachmentMirror{layout: layout, logger: log}
}

func (a *attachmentMirror) Push(ctx context.Context, root string) (int, error) {
	return a.mirror(ctx, a.layout.LocalAttachmentsDir(), a.layout.RemoteAttachmentsDir(root))
}

func (a *attachmentMirror) Pull(ctx context.Context, root string) (int, error) {
	return a.mirror(ctx, a.layout.RemoteAttachmentsDir(root), a.layout.LocalAttachmentsDir())
}

// mirror copies every regular file under src that is missing in dst or has a
// newer mtime there. A missing src copies nothing. Per-file failures are
// collected and the walk goes on.
func (a *attachmentMirror) mirror(ctx context.Context, src, dst string) (int, error) {
	if _, err := os.Stat(src); err != nil {
		if utils.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: %w", ErrFileSystem, err)
	}

	var (
		copied int
		errs   []error
	)

	walkErr := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !d.Type().IsRegular() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		target := filepath.Join(dst, rel)

		if !needsCopy(path, target) {
			return nil
		}

		if err = os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			errs = append(errs, err)
			return nil
		}
		if _, err = utils.CopyFileAtomic(path, target); err != nil {
			errs = append(errs, err)
			return nil
		}
		if modified, err := utils.ModTime(path); err == nil {
			_ = utils.SetModTime(target, modified)
		}

		copied++
		return nil
	})
	if walkErr != nil {
		errs = append(errs, walkErr)
	}

	if len(errs) > 0 {
		a.logger.Debug().Str("func", "attachmentMirror.mirror").Int("failed", len(errs)).Msg("some attachments were not copied")
		return copied, fmt.Errorf("%w: %w", ErrFileSystem, errors.Join(errs...))
	}
	return copied, nil
}

// needsCopy compares mtimes in whole seconds.
func needsCopy(src, dst string) bool {
	dstModified, err := utils.ModTime(dst)
	if err != nil {
		return true
	}
	srcModified, err := utils.ModTime(src)
	if err != nil {
		return false
	}
	return srcModified.Unix() > dstModified.Unix()
}
