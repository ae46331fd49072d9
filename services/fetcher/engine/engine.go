package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fga-eps-mds/2023-1-CAPJu-Front/services/fetcher/client"
	"github.com/fga-eps-mds/2023-1-CAPJu-Front/services/fetcher/common"
	"github.com/fga-eps-mds/2023-1-CAPJu-Front/services/fetcher/naming"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("engine")

// ArgsMetricsEngine defines the arguments needed to create a metrics engine
type ArgsMetricsEngine struct {
	OrganizationPrefix string
	Fetcher            Fetcher
	Writer             Writer
	History            History
	Output             io.Writer
	Clock              func() time.Time
}

// metricsEngine runs one fetch-and-store cycle for a repository
type metricsEngine struct {
	prefix  string
	fetcher Fetcher
	writer  Writer
	history History
	output  io.Writer
	clock   func() time.Time
}

// NewMetricsEngine creates a new engine instance
func NewMetricsEngine(args ArgsMetricsEngine) (*metricsEngine, error) {
	if check.IfNil(args.Fetcher) {
		return nil, errNilFetcher
	}
	if check.IfNil(args.Writer) {
		return nil, errNilWriter
	}
	if check.IfNil(args.History) {
		return nil, errNilHistory
	}
	if args.Output == nil {
		return nil, errNilOutput
	}
	if args.Clock == nil {
		return nil, errNilClock
	}

	return &metricsEngine{
		prefix:  args.OrganizationPrefix,
		fetcher: args.Fetcher,
		writer:  args.Writer,
		history: args.History,
		output:  args.Output,
		clock:   args.Clock,
	}, nil
}

// Process fetches the metrics of the queried repository, prints the snapshot filename and writes the file.
// Nothing is written when the fetch fails.
func (e *metricsEngine) Process(ctx context.Context, query common.MetricsQuery) (string, error) {
	if len(query.RepositoryName) == 0 {
		return "", ErrEmptyRepositoryName
	}

	log.Debug("fetching metrics", "repository", query.RepositoryName, "version", query.RepositoryVersion)

	body, err := e.fetcher.Fetch(ctx, query.RepositoryName)
	if err != nil {
		return "", fmt.Errorf("failed to fetch metrics for '%s': %w", query.RepositoryName, err)
	}

	fetchedAt := e.clock()
	filename := naming.BuildFilename(e.prefix, query.RepositoryName, query.RepositoryVersion, fetchedAt)

	_, err = fmt.Fprintln(e.output, filename)
	if err != nil {
		return "", err
	}

	path, err := e.writer.Write(filename, body)
	if err != nil {
		return "", err
	}

	snapshot := common.NewSnapshot(query, filename, path, fetchedAt, int64(len(body)), client.CountComponents(body))
	err = e.history.RecordSnapshot(ctx, snapshot)
	if err != nil {
		log.Warn("snapshot written but not recorded in history", "filename", filename, "error", err)
	}

	log.Debug("metrics snapshot stored", "repository", query.RepositoryName, "path", path)

	return path, nil
}

// IsInterfaceNil returns true if the value under the interface is nil
func (e *metricsEngine) IsInterfaceNil() bool {
	return e == nil
}
