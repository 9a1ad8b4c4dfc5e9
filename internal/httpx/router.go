package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/admferramentastudo-hash/cobradash-app/internal/ingest"
	"github.com/admferramentastudo-hash/cobradash-app/internal/obs"
	"github.com/admferramentastudo-hash/cobradash-app/internal/report"
)

func NewRouter(log *slog.Logger, syncer *ingest.Syncer, rpt *report.Service) http.Handler {
	mux := chi.NewRouter()
	mux.Use(obs.RequestID)
	mux.Use(obs.Logger(log))
	mux.Use(obs.Duration)

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
	mux.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ready")) })

	mux.Post("/sync/all", func(w http.ResponseWriter, r *http.Request) {
		results := syncer.SyncAll(r.Context())
		out := make(map[string]string, len(results))
		for feed, err := range results {
			if err != nil {
				out[string(feed)] = err.Error()
			} else {
				out[string(feed)] = "ok"
			}
		}
		writeJSON(w, out)
	})

	mux.Post("/sync/{feed}", func(w http.ResponseWriter, r *http.Request) {
		feed, ok := ingest.ParseFeed(chi.URLParam(r, "feed"))
		if !ok {
			http.Error(w, "unknown feed", 404)
			return
		}
		switch err := syncer.Sync(r.Context(), feed); {
		case errors.Is(err, ingest.ErrSyncInProgress):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, ingest.ErrFeedNotConfigured):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case err != nil:
			http.Error(w, err.Error(), http.StatusBadGateway)
		default:
			writeJSON(w, map[string]string{"feed": string(feed), "status": "ok"})
		}
	})

	mux.Get("/sync/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, syncer.Status())
	})

	mux.Get("/sales", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, rpt.QuerySales(r.URL.Query()))
	})
	mux.Get("/leads", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, rpt.QueryLeads(r.URL.Query()))
	})
	mux.Get("/traffic", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, rpt.QueryTraffic(r.URL.Query()))
	})

	mux.Get("/funnels", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, rpt.Funnels())
	})
	mux.Get("/reports/funnels", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, rpt.QueryFunnels(r.URL.Query()))
	})
	mux.Get("/reports/summary", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, rpt.QuerySummary(r.URL.Query()))
	})

	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	enc.Encode(v)
}
