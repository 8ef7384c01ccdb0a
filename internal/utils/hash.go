package utils

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/blake2b"
)

// FileDigest computes the BLAKE2b-256 digest of the file at path and returns
// it hex-encoded.
//
// Example usage:
//
//	sum, err := utils.FileDigest("/data/ledger.db")
func FileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s for digest: %w", path, err)
	}
	defer f.Close()

	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}

	if _, err = io.Copy(h, f); err != nil {
		return "", fmt.Errorf("read %s for digest: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// SameContent reports whether the files at a and b have identical bytes.
// Files of different sizes are never hashed.
func SameContent(a, b string) (bool, error) {
	sa, err := os.Stat(a)
	if err != nil {
		return false, err
	}
	sb, err := os.Stat(b)
	if err != nil {
		return false, err
	}
	if sa.Size() != sb.Size() {
		return false, nil
	}

	da, err := FileDigest(a)
	if err != nil {
		return false, err
	}
	db, err := FileDigest(b)
	if err != nil {
		return false, err
	}

	return da == db, nil
}
