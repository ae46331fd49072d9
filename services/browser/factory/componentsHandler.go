package factory

import (
	"github.com/fga-eps-mds/2023-1-CAPJu-Front/services/browser/api"
	"github.com/fga-eps-mds/2023-1-CAPJu-Front/services/browser/config"
	"github.com/fga-eps-mds/2023-1-CAPJu-Front/services/fetcher/history"
)

type componentsHandler struct {
	store  api.Storage
	server Server
}

// NewComponentsHandler creates a new components handler
func NewComponentsHandler(cfg config.Config) (*componentsHandler, error) {
	store, err := history.NewSQLiteHistory(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	serverArgs := api.ArgsWebServer{
		ListenAddress:      cfg.ListenAddress,
		SnapshotsDirectory: cfg.SnapshotsDirectory,
		Storage:            store,
		GeneralHandler:     api.CORSMiddleware,
	}

	server, err := api.NewServer(serverArgs)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &componentsHandler{
		store:  store,
		server: server,
	}, nil
}

// GetStore returns the storage component
func (ch *componentsHandler) GetStore() api.Storage {
	return ch.store
}

// GetServer returns the server component
func (ch *componentsHandler) GetServer() Server {
	return ch.server
}

// Start starts the inner components
func (ch *componentsHandler) Start() error {
	return ch.server.Start()
}

// Close closes the inner components
func (ch *componentsHandler) Close() {
	// the server closes the store as well
	_ = ch.server.Close()
}
