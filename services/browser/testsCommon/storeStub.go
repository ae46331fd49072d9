package testsCommon

import (
	"context"

	"github.com/fga-eps-mds/2023-1-CAPJu-Front/services/fetcher/common"
)

// StoreStub -
type StoreStub struct {
	ListSnapshotsHandler func(ctx context.Context, repository string) ([]common.Snapshot, error)
	GetSnapshotHandler   func(ctx context.Context, filename string) (*common.Snapshot, error)
	CloseHandler         func() error
}

// ListSnapshots -
func (stub *StoreStub) ListSnapshots(ctx context.Context, repository string) ([]common.Snapshot, error) {
	if stub.ListSnapshotsHandler != nil {
		return stub.ListSnapshotsHandler(ctx, repository)
	}

	return make([]common.Snapshot, 0), nil
}

// GetSnapshot -
func (stub *StoreStub) GetSnapshot(ctx context.Context, filename string) (*common.Snapshot, error) {
	if stub.GetSnapshotHandler != nil {
		return stub.GetSnapshotHandler(ctx, filename)
	}

	return &common.Snapshot{Filename: filename}, nil
}

// Close -
func (stub *StoreStub) Close() error {
	if stub.CloseHandler != nil {
		return stub.CloseHandler()
	}

	return nil
}

// IsInterfaceNil -
func (stub *StoreStub) IsInterfaceNil() bool {
	return stub == nil
}
