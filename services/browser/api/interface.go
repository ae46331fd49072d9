package api

import (
	"context"

	"github.com/fga-eps-mds/2023-1-CAPJu-Front/services/fetcher/common"
)

// Storage defines the read access to the snapshot ledger
type Storage interface {
	// ListSnapshots returns the recorded snapshots, newest first. An empty repository lists everything
	ListSnapshots(ctx context.Context, repository string) ([]common.Snapshot, error)

	// GetSnapshot returns the snapshot recorded under the filename
	GetSnapshot(ctx context.Context, filename string) (*common.Snapshot, error)

	// Close shuts down the database connection
	Close() error

	IsInterfaceNil() bool
}
