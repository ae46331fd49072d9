package factory

import (
	"io"
	"time"

	"github.com/fga-eps-mds/2023-1-CAPJu-Front/services/fetcher/client"
	"github.com/fga-eps-mds/2023-1-CAPJu-Front/services/fetcher/common"
	"github.com/fga-eps-mds/2023-1-CAPJu-Front/services/fetcher/config"
	"github.com/fga-eps-mds/2023-1-CAPJu-Front/services/fetcher/engine"
	"github.com/fga-eps-mds/2023-1-CAPJu-Front/services/fetcher/history"
	"github.com/fga-eps-mds/2023-1-CAPJu-Front/services/fetcher/writer"
)

type componentsHandler struct {
	fetcher engine.Fetcher
	writer  engine.Writer
	history engine.History
	engine  Engine
}

// NewComponentsHandler creates a new components handler
func NewComponentsHandler(cfg config.Config, output io.Writer) (*componentsHandler, error) {
	fetcher := client.NewSonarClient(cfg.Sonar.ComponentTreeURL, time.Duration(cfg.Sonar.RequestTimeoutInSeconds)*time.Second)
	fileWriter := writer.NewFileWriter(cfg.Output.Directory)

	hist, err := createHistory(cfg.History)
	if err != nil {
		return nil, err
	}

	eng, err := engine.NewMetricsEngine(engine.ArgsMetricsEngine{
		OrganizationPrefix: common.OrganizationPrefix,
		Fetcher:            fetcher,
		Writer:             fileWriter,
		History:            hist,
		Output:             output,
		Clock:              time.Now,
	})
	if err != nil {
		_ = hist.Close()
		return nil, err
	}

	return &componentsHandler{
		fetcher: fetcher,
		writer:  fileWriter,
		history: hist,
		engine:  eng,
	}, nil
}

func createHistory(cfg config.HistoryConfig) (engine.History, error) {
	if !cfg.Enabled {
		return history.NewDisabledHistory(), nil
	}

	sqliteHistory, err := history.NewSQLiteHistory(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	return sqliteHistory, nil
}

// GetFetcher returns the fetcher component
func (ch *componentsHandler) GetFetcher() engine.Fetcher {
	return ch.fetcher
}

// GetWriter returns the writer component
func (ch *componentsHandler) GetWriter() engine.Writer {
	return ch.writer
}

// GetHistory returns the history component
func (ch *componentsHandler) GetHistory() engine.History {
	return ch.history
}

// GetEngine returns the engine component
func (ch *componentsHandler) GetEngine() Engine {
	return ch.engine
}

// Close closes the inner components
func (ch *componentsHandler) Close() {
	_ = ch.history.Close()
}
