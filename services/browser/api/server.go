package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fga-eps-mds/2023-1-CAPJu-Front/services/fetcher/history"
	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/tidwall/gjson"
)

var log = logger.GetOrCreate("api")

type server struct {
	router         *gin.Engine
	httpServer     *http.Server
	storage        Storage
	listenAddr     string
	snapshotsDir   string
	generalHandler func(http.Handler) http.Handler
	wg             sync.WaitGroup
}

// ArgsWebServer defines the web server arguments
type ArgsWebServer struct {
	ListenAddress      string
	SnapshotsDirectory string
	Storage            Storage
	GeneralHandler     func(http.Handler) http.Handler
}

// MeasuresResponse holds the values of one metric across the snapshot's components
type MeasuresResponse struct {
	Metric     string            `json:"metric"`
	Base       string            `json:"base"`
	Components map[string]string `json:"components"`
}

// NewServer initializes the Gin engine and mounts all routes
func NewServer(args ArgsWebServer) (*server, error) {
	if check.IfNil(args.Storage) {
		return nil, errors.New("storage is required")
	}
	if args.GeneralHandler == nil {
		return nil, errors.New("nil http handler")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(gin.Recovery())

	s := &server{
		router:         router,
		storage:        args.Storage,
		listenAddr:     args.ListenAddress,
		snapshotsDir:   args.SnapshotsDirectory,
		generalHandler: args.GeneralHandler,
	}

	s.setupRoutes()
	return s, nil
}

func (s *server) setupRoutes() {
	api := s.router.Group("/api")

	api.GET("/snapshots", s.handleListSnapshots)
	api.GET("/snapshots/:filename", s.handleGetSnapshot)
	api.GET("/snapshots/:filename/measures/:metric", s.handleGetMeasures)

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "api route not found"})
	})
}

// Start listens and serves connections
func (s *server) Start() error {
	handler := s.generalHandler(s.router)

	s.httpServer = &http.Server{
		Addr:    s.listenAddr,
		Handler: handler,
	}

	ln, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on '%s': %w", s.listenAddr, err)
	}
	s.listenAddr = ln.Addr().String()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		log.Info("starting HTTP server", "address", s.listenAddr)

		err := s.httpServer.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "error", err)
		}
	}()

	return nil
}

// Address returns the actual listen address
func (s *server) Address() string {
	return s.listenAddr
}

// Close gracefully stops the server
func (s *server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return err
		}
	}
	s.wg.Wait()
	return s.storage.Close()
}

// --- Handlers ---

func (s *server) handleListSnapshots(c *gin.Context) {
	snapshots, err := s.storage.ListSnapshots(c.Request.Context(), c.Query("repository"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"snapshots": snapshots})
}

func (s *server) handleGetSnapshot(c *gin.Context) {
	contents, ok := s.readSnapshot(c)
	if !ok {
		return
	}

	c.Data(http.StatusOK, "application/json", contents)
}

func (s *server) handleGetMeasures(c *gin.Context) {
	contents, ok := s.readSnapshot(c)
	if !ok {
		return
	}

	metric := c.Param("metric")
	response := MeasuresResponse{
		Metric:     metric,
		Components: make(map[string]string),
	}

	base, found := measureValue(gjson.GetBytes(contents, "baseComponent"), metric)
	if found {
		response.Base = base
	}

	gjson.GetBytes(contents, "components").ForEach(func(_, component gjson.Result) bool {
		value, ok := measureValue(component, metric)
		if ok {
			response.Components[component.Get("key").String()] = value
		}

		return true
	})

	c.JSON(http.StatusOK, response)
}

// measureValue returns the value of the named metric from the component's measures array
func measureValue(component gjson.Result, metric string) (string, bool) {
	value := ""
	found := false
	component.Get("measures").ForEach(func(_, measure gjson.Result) bool {
		if measure.Get("metric").String() != metric {
			return true
		}

		value = measure.Get("value").String()
		found = true
		return false
	})

	return value, found
}

// readSnapshot resolves the :filename parameter through the ledger and returns the file contents. On failure the
// response is already written.
func (s *server) readSnapshot(c *gin.Context) ([]byte, bool) {
	filename := c.Param("filename")
	if filename != filepath.Base(filename) || filename == "." || filename == ".." {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filename"})
		return nil, false
	}

	_, err := s.storage.GetSnapshot(c.Request.Context(), filename)
	if errors.Is(err, history.ErrSnapshotNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}

	contents, err := os.ReadFile(filepath.Join(s.snapshotsDir, filename))
	if errors.Is(err, os.ErrNotExist) {
		c.JSON(http.StatusNotFound, gin.H{"error": "snapshot file is missing"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}

	return contents, true
}
