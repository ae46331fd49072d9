package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fga-eps-mds/2023-1-CAPJu-Front/services/browser/testsCommon"
	"github.com/fga-eps-mds/2023-1-CAPJu-Front/services/fetcher/common"
	"github.com/fga-eps-mds/2023-1-CAPJu-Front/services/fetcher/history"
	"github.com/stretchr/testify/require"
)

func TestHandlers_StorageErrors(t *testing.T) {
	store := &testsCommon.StoreStub{
		ListSnapshotsHandler: func(ctx context.Context, repository string) ([]common.Snapshot, error) {
			return nil, errors.New("db list error")
		},
		GetSnapshotHandler: func(ctx context.Context, filename string) (*common.Snapshot, error) {
			return nil, errors.New("db get error")
		},
	}

	serv, err := NewServer(ArgsWebServer{
		ListenAddress:  ":0",
		Storage:        store,
		GeneralHandler: func(h http.Handler) http.Handler { return h },
	})
	require.NoError(t, err)

	req, _ := http.NewRequest("GET", "/api/snapshots", nil)
	w := httptest.NewRecorder()
	serv.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "db list error")

	req, _ = http.NewRequest("GET", "/api/snapshots/a.json", nil)
	w = httptest.NewRecorder()
	serv.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "db get error")

	req, _ = http.NewRequest("GET", "/api/snapshots/a.json/measures/ncloc", nil)
	w = httptest.NewRecorder()
	serv.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandlers_RecordedButMissingFile(t *testing.T) {
	store := &testsCommon.StoreStub{}

	serv, err := NewServer(ArgsWebServer{
		ListenAddress:      ":0",
		SnapshotsDirectory: t.TempDir(),
		Storage:            store,
		GeneralHandler:     func(h http.Handler) http.Handler { return h },
	})
	require.NoError(t, err)

	req, _ := http.NewRequest("GET", "/api/snapshots/deleted.json", nil)
	w := httptest.NewRecorder()
	serv.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "snapshot file is missing")
}

func TestHandlers_NotFound(t *testing.T) {
	store := &testsCommon.StoreStub{
		GetSnapshotHandler: func(ctx context.Context, filename string) (*common.Snapshot, error) {
			return nil, history.ErrSnapshotNotFound
		},
	}

	serv, err := NewServer(ArgsWebServer{
		ListenAddress:  ":0",
		Storage:        store,
		GeneralHandler: func(h http.Handler) http.Handler { return h },
	})
	require.NoError(t, err)

	req, _ := http.NewRequest("GET", "/api/snapshots/a.json/measures/ncloc", nil)
	w := httptest.NewRecorder()
	serv.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)

	req, _ = http.NewRequest("GET", "/api/unknown", nil)
	w = httptest.NewRecorder()
	serv.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "api route not found")
}
