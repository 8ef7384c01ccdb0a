package utils

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// CopyFile copies src over dst in place, creating dst if needed, and syncs
// it to disk. dst keeps its identity (inode) so open handles held by other
// processes see the new content.
//
// Returns the number of bytes copied.
func CopyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("open source %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, fmt.Errorf("open destination %s: %w", dst, err)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		_ = out.Close()
		return n, fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}

	if err = out.Sync(); err != nil {
		_ = out.Close()
		return n, fmt.Errorf("sync %s: %w", dst, err)
	}

	return n, out.Close()
}

// CopyFileAtomic copies src to a temporary file next to dst and renames it
// over dst, so readers never observe a partially written dst.
func CopyFileAtomic(src, dst string) (int64, error) {
	tmp := filepath.Join(filepath.Dir(dst), TempName(filepath.Base(dst)))

	n, err := CopyFile(src, tmp)
	if err != nil {
		_ = os.Remove(tmp)
		return n, err
	}

	if err = os.Rename(tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return n, fmt.Errorf("rename %s to %s: %w", tmp, dst, err)
	}

	return n, nil
}

// WriteFileAtomic writes data to a temporary file next to path and renames
// it over path.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp := filepath.Join(filepath.Dir(path), TempName(filepath.Base(path)))

	if err := os.WriteFile(tmp, data, perm); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %s to %s: %w", tmp, path, err)
	}

	return nil
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ModTime returns the modification time of path.
func ModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// SetModTime sets both access and modification time of path to t.
func SetModTime(path string, t time.Time) error {
	return os.Chtimes(path, t, t)
}

// IsNotExist reports whether err (or anything it wraps) means a missing file.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
