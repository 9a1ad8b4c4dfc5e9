package report

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admferramentastudo-hash/cobradash-app/internal/models"
	"github.com/admferramentastudo-hash/cobradash-app/internal/store"
)

func seedService() *Service {
	st := store.NewMemoryStore()
	day := func(d int) time.Time { return time.Date(2026, 1, d, 12, 0, 0, 0, time.UTC) }

	st.ReplaceSales([]models.Sale{
		{ID: "s1", OfferCode: "AAA111", Amount: 100, Timestamp: day(10), Status: models.SaleStatusApproved},
		{ID: "s2", OfferCode: "BBB222", Amount: 50, Timestamp: day(20), Status: models.SaleStatusApproved},
		{ID: "s3", OfferCode: "CCC333", Amount: 10, Timestamp: day(15), Status: models.SaleStatusApproved},
		{ID: "s4", OfferCode: "AAA111", Amount: 999, Timestamp: day(12), Status: models.SaleStatusRefunded},
		{ID: "s5", OfferCode: "AAA111", Amount: 77, Timestamp: time.Date(2026, 2, 5, 12, 0, 0, 0, time.UTC), Status: models.SaleStatusApproved},
	})
	st.ReplaceLeads([]models.Lead{
		{ID: "l1", Timestamp: day(11)},
		{ID: "l2", Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
	})
	st.ReplaceTraffic([]models.TrafficInvestment{
		{ID: "t1", Date: models.NewDay(day(10)), Amount: 40},
	})

	funnels := []models.Funnel{
		{ID: "f1", Name: "F1", Products: []models.Product{{Name: "P1", Code: "aaa111"}}},
		{ID: "f2", Name: "F2", Products: []models.Product{{Name: "P2", Code: "bbb222"}}},
	}
	return NewService(st, funnels)
}

func january() url.Values {
	return url.Values{"from": {"2026-01-01"}, "to": {"2026-01-31"}}
}

func TestQuerySummary(t *testing.T) {
	sum := seedService().QuerySummary(january())
	assert.Equal(t, 160.0, sum.Revenue, "refunded and out-of-range sales excluded")
	assert.Equal(t, 3, sum.SalesCount)
	assert.Equal(t, 1, sum.LeadCount)
	assert.Equal(t, 40.0, sum.Investment)
	assert.Equal(t, 4.0, sum.ROAS)
}

func TestQuerySummaryZeroInvestment(t *testing.T) {
	svc := seedService()
	sum := svc.QuerySummary(url.Values{"from": {"2026-02-01"}, "to": {"2026-02-28"}})
	assert.Equal(t, 77.0, sum.Revenue)
	assert.Equal(t, 0.0, sum.ROAS)
}

func TestQueryFunnels(t *testing.T) {
	got := seedService().QueryFunnels(january())
	require.Len(t, got, 3)
	assert.Equal(t, models.FunnelAggregate{Name: "F1", Revenue: 100, SalesCount: 1}, got[0])
	assert.Equal(t, models.FunnelAggregate{Name: "F2", Revenue: 50, SalesCount: 1}, got[1])
	assert.Equal(t, models.FunnelAggregate{Name: "OUTROS", Revenue: 10, SalesCount: 1, Uncategorized: true}, got[2])
}

func TestQueryFunnelsOpenRange(t *testing.T) {
	// no bounds: everything approved is attributed
	got := seedService().QueryFunnels(url.Values{})
	require.Len(t, got, 3)
	assert.Equal(t, 177.0, got[0].Revenue)
}

func TestQuerySalesPagination(t *testing.T) {
	svc := seedService()

	all := svc.QuerySales(url.Values{})
	require.Len(t, all, 5)
	// newest first
	assert.Equal(t, "s5", all[0].ID)

	page := svc.QuerySales(url.Values{"limit": {"2"}, "offset": {"1"}})
	require.Len(t, page, 2)
	assert.Equal(t, "s2", page[0].ID)

	assert.Empty(t, svc.QuerySales(url.Values{"offset": {"99"}}))
}
