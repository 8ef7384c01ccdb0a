package models

// Tier identifies where a snapshot lives.
type Tier string

const (
	// TierRemote is the shared folder mirrored by the cloud-sync client.
	TierRemote Tier = "remote"
	// TierLocal is the local-only backup directory used when the shared
	// folder is unreachable.
	TierLocal Tier = "local"
)

// SnapshotTarget names the files of one snapshot: the database copy and its
// metadata sidecar. They are always written and read as a pair.
type SnapshotTarget struct {
	Tier     Tier   `json:"tier"`
	Dir      string `json:"dir"`
	DB       string `json:"db"`
	Metadata string `json:"metadata"`
}
