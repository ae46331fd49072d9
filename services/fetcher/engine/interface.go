package engine

import (
	"context"

	"github.com/fga-eps-mds/2023-1-CAPJu-Front/services/fetcher/common"
)

// Fetcher defines the component able to retrieve the raw metrics document of a repository
type Fetcher interface {
	// Fetch performs a single GET for the repository and returns the validated JSON body untouched
	Fetch(ctx context.Context, repositoryName string) ([]byte, error)

	IsInterfaceNil() bool
}

// Writer defines the component able to persist a snapshot
type Writer interface {
	// Write creates or truncates the named file and returns its path
	Write(filename string, contents []byte) (string, error)

	IsInterfaceNil() bool
}

// History defines the ledger of written snapshots
type History interface {
	RecordSnapshot(ctx context.Context, snapshot common.Snapshot) error
	Close() error

	IsInterfaceNil() bool
}
