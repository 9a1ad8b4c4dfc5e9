// Package ingest runs the fetch → normalize → replace cycle against
// the external feeds.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/admferramentastudo-hash/cobradash-app/internal/config"
	"github.com/admferramentastudo-hash/cobradash-app/internal/models"
	"github.com/admferramentastudo-hash/cobradash-app/internal/normalize"
	"github.com/admferramentastudo-hash/cobradash-app/internal/obs"
	"github.com/admferramentastudo-hash/cobradash-app/internal/store"
)

type Feed string

const (
	FeedSales   Feed = "sales"
	FeedLeads   Feed = "leads"
	FeedTraffic Feed = "traffic"
)

var feeds = []Feed{FeedSales, FeedLeads, FeedTraffic}

func ParseFeed(s string) (Feed, bool) {
	switch Feed(s) {
	case FeedSales, FeedLeads, FeedTraffic:
		return Feed(s), true
	}
	return "", false
}

var (
	// ErrSyncInProgress rejects a sync while one is outstanding for
	// the same feed; the new request does not supersede the old one.
	ErrSyncInProgress = errors.New("sync already in progress")

	ErrFeedNotConfigured = errors.New("feed url not configured")
)

type feedState struct {
	busy   atomic.Bool
	mu     sync.Mutex
	status models.SyncStatus
}

// Syncer runs sync operations for the three feeds. Feeds share no
// mutable state with each other, so concurrent syncs of different
// feeds need no cross-feed locking. A failed sync leaves the
// previously held canonical collection untouched.
type Syncer struct {
	c      HTTPClient
	st     *store.MemoryStore
	log    *slog.Logger
	urls   map[Feed]string
	states map[Feed]*feedState
}

func NewSyncer(c HTTPClient, st *store.MemoryStore, log *slog.Logger, cfg config.Config) *Syncer {
	s := &Syncer{
		c:   c,
		st:  st,
		log: log,
		urls: map[Feed]string{
			FeedSales:   cfg.SalesURL,
			FeedLeads:   cfg.LeadsURL,
			FeedTraffic: cfg.TrafficURL,
		},
		states: make(map[Feed]*feedState, len(feeds)),
	}
	for _, f := range feeds {
		s.states[f] = &feedState{status: models.SyncStatus{Feed: string(f)}}
	}
	return s
}

// Sync fetches one feed, normalizes it and replaces the canonical
// collection wholesale. There is no retry: any transport or decode
// failure is terminal for this operation.
func (s *Syncer) Sync(ctx context.Context, feed Feed) error {
	state, ok := s.states[feed]
	if !ok {
		return fmt.Errorf("unknown feed %q", feed)
	}
	if !state.busy.CompareAndSwap(false, true) {
		return ErrSyncInProgress
	}
	defer state.busy.Store(false)

	url := s.urls[feed]
	if url == "" {
		obs.SyncRuns.WithLabelValues(string(feed), "error").Inc()
		state.setError(ErrFeedNotConfigured)
		return fmt.Errorf("sync %s: %w", feed, ErrFeedNotConfigured)
	}

	var payload any
	if err := GetJSON(ctx, s.c, url, &payload); err != nil {
		obs.SyncRuns.WithLabelValues(string(feed), "error").Inc()
		state.setError(err)
		s.log.Error("sync failed", slog.String("feed", string(feed)), slog.String("err", err.Error()))
		return fmt.Errorf("sync %s: %w", feed, err)
	}

	received := len(normalize.Items(payload))
	var kept int
	switch feed {
	case FeedSales:
		sales := normalize.NormalizeSales(payload)
		s.st.ReplaceSales(sales)
		kept = len(sales)
	case FeedLeads:
		leads := normalize.NormalizeLeads(payload)
		s.st.ReplaceLeads(leads)
		kept = len(leads)
	case FeedTraffic:
		traffic := normalize.NormalizeTraffic(payload)
		s.st.ReplaceTraffic(traffic)
		kept = len(traffic)
	}

	obs.SyncRuns.WithLabelValues(string(feed), "ok").Inc()
	obs.RecordsNormalized.WithLabelValues(string(feed)).Add(float64(kept))
	obs.RecordsDropped.WithLabelValues(string(feed)).Add(float64(received - kept))
	state.setSuccess(kept)
	s.log.Info("sync complete",
		slog.String("feed", string(feed)),
		slog.Int("received", received),
		slog.Int("kept", kept))
	return nil
}

// SyncAll runs the three feeds concurrently and reports each outcome.
// One feed failing never affects another feed's collection.
func (s *Syncer) SyncAll(ctx context.Context) map[Feed]error {
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	results := make(map[Feed]error, len(feeds))
	for _, f := range feeds {
		wg.Add(1)
		go func(f Feed) {
			defer wg.Done()
			err := s.Sync(ctx, f)
			mu.Lock()
			results[f] = err
			mu.Unlock()
		}(f)
	}
	wg.Wait()
	return results
}

// Status reports the last known outcome per feed, in fixed feed order.
func (s *Syncer) Status() []models.SyncStatus {
	out := make([]models.SyncStatus, 0, len(feeds))
	for _, f := range feeds {
		state := s.states[f]
		state.mu.Lock()
		st := state.status
		state.mu.Unlock()
		st.Syncing = state.busy.Load()
		out = append(out, st)
	}
	return out
}

func (st *feedState) setSuccess(total int) {
	now := time.Now().UTC()
	st.mu.Lock()
	defer st.mu.Unlock()
	st.status.LastSuccess = &now
	st.status.Total = total
	st.status.Error = ""
}

func (st *feedState) setError(err error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.status.Error = err.Error()
}
