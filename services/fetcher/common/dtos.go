package common

import "time"

// MetricsQuery holds the caller-provided inputs of a single fetch
type MetricsQuery struct {
	RepositoryName    string
	RepositoryVersion string
}

// Snapshot describes a metrics file written to disk
type Snapshot struct {
	Filename   string `json:"filename"`
	Repository string `json:"repository"`
	Version    string `json:"version"`
	FetchedAt  int64  `json:"fetchedAt"`
	Path       string `json:"path"`
	SizeBytes  int64  `json:"sizeBytes"`
	Components int64  `json:"components"`
}

// NewSnapshot creates the snapshot descriptor of a freshly written file
func NewSnapshot(query MetricsQuery, filename string, path string, fetchedAt time.Time, sizeBytes int64, components int64) Snapshot {
	return Snapshot{
		Filename:   filename,
		Repository: query.RepositoryName,
		Version:    query.RepositoryVersion,
		FetchedAt:  fetchedAt.Unix(),
		Path:       path,
		SizeBytes:  sizeBytes,
		Components: components,
	}
}
