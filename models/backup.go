package models

import "time"

// BackupInfo describes one database copy kept in the backup history folder.
type BackupInfo struct {
	Timestamp string    `json:"timestamp"`
	FileName  string    `json:"file_name"`
	FileSize  uint64    `json:"file_size"`
	CreatedAt time.Time `json:"created_at"`
	Version   string    `json:"version"`
}
