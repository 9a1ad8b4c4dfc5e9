// Package report answers presentation-layer queries over the canonical
// collections. Everything here is synchronous, pure over a store
// snapshot, and recomputed per call.
package report

import (
	"net/url"
	"sort"
	"strconv"

	"github.com/admferramentastudo-hash/cobradash-app/internal/funnel"
	"github.com/admferramentastudo-hash/cobradash-app/internal/models"
	"github.com/admferramentastudo-hash/cobradash-app/internal/store"
)

type Service struct {
	st      *store.MemoryStore
	funnels []models.Funnel
}

func NewService(st *store.MemoryStore, funnels []models.Funnel) *Service {
	return &Service{st: st, funnels: funnels}
}

// Summary is the dashboard headline: revenue, volume and spend over a
// date range, plus global ROAS.
type Summary struct {
	Revenue    float64 `json:"revenue"`
	SalesCount int     `json:"sales_count"`
	LeadCount  int     `json:"lead_count"`
	Investment float64 `json:"investment"`
	ROAS       float64 `json:"roas"`
}

// dateRange reads from/to as YYYY-MM-DD; a missing bound is open.
type dateRange struct {
	from, to models.Day
}

func parseRange(v url.Values) dateRange {
	var r dateRange
	if d, err := models.ParseDay(v.Get("from")); err == nil {
		r.from = d
	}
	if d, err := models.ParseDay(v.Get("to")); err == nil {
		r.to = d
	}
	return r
}

// contains filters by calendar day, bounds inclusive.
func (r dateRange) contains(d models.Day) bool {
	if !r.from.IsZero() && d.Before(r.from) {
		return false
	}
	if !r.to.IsZero() && d.After(r.to) {
		return false
	}
	return true
}

func (s *Service) approvedSales(r dateRange) []models.Sale {
	all := s.st.Sales()
	out := make([]models.Sale, 0, len(all))
	for _, sale := range all {
		if sale.Status != models.SaleStatusApproved {
			continue
		}
		if r.contains(models.NewDay(sale.Timestamp)) {
			out = append(out, sale)
		}
	}
	return out
}

// QueryFunnels attributes date-filtered approved sales to the catalog.
func (s *Service) QueryFunnels(v url.Values) []models.FunnelAggregate {
	return funnel.Attribute(s.approvedSales(parseRange(v)), s.funnels)
}

func (s *Service) QuerySummary(v url.Values) Summary {
	r := parseRange(v)
	var sum Summary
	for _, sale := range s.approvedSales(r) {
		sum.Revenue += sale.Amount
		sum.SalesCount++
	}
	for _, l := range s.st.Leads() {
		if r.contains(models.NewDay(l.Timestamp)) {
			sum.LeadCount++
		}
	}
	for _, t := range s.st.Traffic() {
		if r.contains(t.Date) {
			sum.Investment += t.Amount
		}
	}
	if sum.Investment > 0 {
		sum.ROAS = round2(sum.Revenue / sum.Investment)
	}
	return sum
}

// QuerySales lists canonical sales, newest first, paginated.
func (s *Service) QuerySales(v url.Values) []models.Sale {
	rows := s.st.Sales()
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Timestamp.After(rows[j].Timestamp) })
	limit, offset := limits(v, len(rows))
	return paginate(rows, limit, offset)
}

func (s *Service) QueryLeads(v url.Values) []models.Lead {
	rows := s.st.Leads()
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Timestamp.After(rows[j].Timestamp) })
	limit, offset := limits(v, len(rows))
	return paginate(rows, limit, offset)
}

func (s *Service) QueryTraffic(v url.Values) []models.TrafficInvestment {
	rows := s.st.Traffic()
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date.Time().After(rows[j].Date.Time()) })
	limit, offset := limits(v, len(rows))
	return paginate(rows, limit, offset)
}

func (s *Service) Funnels() []models.Funnel { return s.funnels }

func limits(v url.Values, n int) (int, int) {
	return clampLimitOffset(atoiDef(v.Get("limit"), 100), atoiDef(v.Get("offset"), 0), n)
}

func paginate[T any](rows []T, limit, offset int) []T {
	if offset >= len(rows) {
		return []T{}
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}

func atoiDef(s string, d int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return d
	}
	return v
}

func clampLimitOffset(limit, offset, n int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = n
	}
	if limit > 1000 {
		limit = 1000
	}
	if offset > n {
		offset = n
	}
	return limit, offset
}

func round2(f float64) float64 { return float64(int64(f*100+0.5)) / 100 }
