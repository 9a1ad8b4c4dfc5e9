package funnel

import (
	"sort"
	"strings"

	"github.com/admferramentastudo-hash/cobradash-app/internal/models"
)

// UncategorizedName labels the synthetic bucket for sales whose offer
// code matches no funnel.
const UncategorizedName = "OUTROS"

// CleanCode canonicalizes an offer code for matching: lower-cased with
// everything outside [a-z0-9] removed.
func CleanCode(code string) string {
	code = strings.ToLower(code)
	var b strings.Builder
	b.Grow(len(code))
	for _, r := range code {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Attribute buckets each sale into exactly one funnel by offer code,
// or into the OUTROS bucket when the code is in no funnel's catalog.
// A code present in more than one funnel attributes to the first in
// catalog order; ValidateCatalog rejects such catalogs up front.
// Buckets are sorted by descending revenue, ties keeping input order.
// Pure and reentrant; recomputed on every call.
func Attribute(sales []models.Sale, funnels []models.Funnel) []models.FunnelAggregate {
	aggs := make([]models.FunnelAggregate, len(funnels))
	owner := make(map[string]int)
	for i, f := range funnels {
		aggs[i] = models.FunnelAggregate{Name: f.Name}
		for _, p := range f.Products {
			code := CleanCode(p.Code)
			if _, ok := owner[code]; !ok {
				owner[code] = i
			}
		}
	}

	outros := models.FunnelAggregate{Name: UncategorizedName, Uncategorized: true}
	for _, s := range sales {
		if i, ok := owner[CleanCode(s.OfferCode)]; ok {
			aggs[i].Revenue += s.Amount
			aggs[i].SalesCount++
		} else {
			outros.Revenue += s.Amount
			outros.SalesCount++
		}
	}
	if outros.SalesCount > 0 {
		aggs = append(aggs, outros)
	}

	sort.SliceStable(aggs, func(i, j int) bool { return aggs[i].Revenue > aggs[j].Revenue })
	return aggs
}
