package factory

import (
	"context"

	"github.com/fga-eps-mds/2023-1-CAPJu-Front/services/fetcher/common"
)

// Engine defines the fetcher's operations
type Engine interface {
	Process(ctx context.Context, query common.MetricsQuery) (string, error)
	IsInterfaceNil() bool
}
