package history

import (
	"context"

	"github.com/fga-eps-mds/2023-1-CAPJu-Front/services/fetcher/common"
)

type disabledHistory struct{}

// NewDisabledHistory returns a history that records nothing
func NewDisabledHistory() *disabledHistory {
	return &disabledHistory{}
}

// RecordSnapshot does nothing
func (h *disabledHistory) RecordSnapshot(_ context.Context, _ common.Snapshot) error {
	return nil
}

// Close does nothing
func (h *disabledHistory) Close() error {
	return nil
}

// IsInterfaceNil returns true if the value under the interface is nil
func (h *disabledHistory) IsInterfaceNil() bool {
	return h == nil
}
