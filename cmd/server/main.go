package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/admferramentastudo-hash/cobradash-app/internal/config"
	"github.com/admferramentastudo-hash/cobradash-app/internal/funnel"
	"github.com/admferramentastudo-hash/cobradash-app/internal/httpx"
	"github.com/admferramentastudo-hash/cobradash-app/internal/ingest"
	"github.com/admferramentastudo-hash/cobradash-app/internal/report"
	"github.com/admferramentastudo-hash/cobradash-app/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config error", slog.String("err", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	catalog, err := funnel.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		logger.Error("catalog error", slog.String("err", err.Error()))
		os.Exit(1)
	}

	cl := ingest.NewHTTPClient(cfg.HTTPTimeout)
	st := store.NewMemoryStore()
	syncer := ingest.NewSyncer(cl, st, logger, cfg)
	rpt := report.NewService(st, catalog)

	r := httpx.NewRouter(logger, syncer, rpt)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting server", slog.String("port", cfg.Port), slog.Int("funnels", len(catalog)))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}
