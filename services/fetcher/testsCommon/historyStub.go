package testsCommon

import (
	"context"

	"github.com/fga-eps-mds/2023-1-CAPJu-Front/services/fetcher/common"
)

// HistoryStub -
type HistoryStub struct {
	RecordSnapshotHandler func(ctx context.Context, snapshot common.Snapshot) error
	CloseHandler          func() error
}

// RecordSnapshot -
func (stub *HistoryStub) RecordSnapshot(ctx context.Context, snapshot common.Snapshot) error {
	if stub.RecordSnapshotHandler != nil {
		return stub.RecordSnapshotHandler(ctx, snapshot)
	}

	return nil
}

// Close -
func (stub *HistoryStub) Close() error {
	if stub.CloseHandler != nil {
		return stub.CloseHandler()
	}

	return nil
}

// IsInterfaceNil -
func (stub *HistoryStub) IsInterfaceNil() bool {
	return stub == nil
}
