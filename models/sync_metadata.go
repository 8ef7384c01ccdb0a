// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncMetadataVersion is the sidecar format written by this engine.
const SyncMetadataVersion = "1.0"

// SyncMetadata is the sidecar written next to every snapshot copy.
//
// LastModified is a logical timestamp in seconds since the epoch. It is the
// value peers compare against, because the mtime reported by a cloud-sync
// client can lag the real write by hours.
type SyncMetadata struct {
	LastModified int64  `json:"last_modified"`
	FileSize     uint64 `json:"file_size"`
	Version      string `json:"version"`
}

// ModifiedAt returns LastModified as a time.Time.
func (m SyncMetadata) ModifiedAt() time.Time {
	return time.Unix(m.LastModified, 0)
}
