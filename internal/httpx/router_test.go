package httpx

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admferramentastudo-hash/cobradash-app/internal/config"
	"github.com/admferramentastudo-hash/cobradash-app/internal/funnel"
	"github.com/admferramentastudo-hash/cobradash-app/internal/ingest"
	"github.com/admferramentastudo-hash/cobradash-app/internal/models"
	"github.com/admferramentastudo-hash/cobradash-app/internal/report"
	"github.com/admferramentastudo-hash/cobradash-app/internal/store"
)

func newTestRouter(t *testing.T, cfg config.Config) (http.Handler, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	syncer := ingest.NewSyncer(ingest.NewHTTPClient(0), st, log, cfg)
	rpt := report.NewService(st, funnel.DefaultCatalog)
	return NewRouter(log, syncer, rpt), st
}

func TestHealthEndpoints(t *testing.T) {
	r, _ := newTestRouter(t, config.Config{})
	for _, path := range []string{"/healthz", "/readyz"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestSyncUnknownFeed(t *testing.T) {
	r, _ := newTestRouter(t, config.Config{})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sync/orders", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSyncNotConfiguredIsBadRequest(t *testing.T) {
	r, _ := newTestRouter(t, config.Config{})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sync/sales", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSyncSalesEndToEnd(t *testing.T) {
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"VALOR ": "50,00", "Cod. Oferta": "f1dwnh9i"}]`))
	}))
	defer feed.Close()

	r, st := newTestRouter(t, config.Config{SalesURL: feed.URL})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sync/sales", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, st.Sales(), 1)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/funnels", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var aggs []models.FunnelAggregate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &aggs))
	require.NotEmpty(t, aggs)
	assert.Equal(t, "DESTRAVA", aggs[0].Name)
	assert.Equal(t, 50.0, aggs[0].Revenue)
}

func TestFeedFailureIsBadGateway(t *testing.T) {
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer feed.Close()

	r, _ := newTestRouter(t, config.Config{SalesURL: feed.URL})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sync/sales", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestSyncStatusAndListings(t *testing.T) {
	r, st := newTestRouter(t, config.Config{})
	st.ReplaceLeads([]models.Lead{{ID: "l1", Name: "João"}})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sync/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var statuses []models.SyncStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &statuses))
	assert.Len(t, statuses, 3)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leads", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var leads []models.Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &leads))
	require.Len(t, leads, 1)
	assert.Equal(t, "João", leads[0].Name)
}

func TestMetricsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t, config.Config{})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
