package normalize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/admferramentastudo-hash/cobradash-app/internal/models"
)

// Candidate field names per feed. The feeds mix Portuguese and English
// headers; matching is handled by Resolve.
var (
	saleAmountKeys   = []string{"valor", "amount", "total", "preco"}
	saleOfferKeys    = []string{"codoferta", "offercode", "codigo", "cod", "sku", "idoferta"}
	saleIDKeys       = []string{"transactionid", "id", "transacao"}
	saleProductKeys  = []string{"produto", "productname"}
	saleCustomerKeys = []string{"nome", "customername", "cliente", "name"}
	dateKeys         = []string{"data", "date", "timestamp"}

	leadIDKeys    = []string{"id", "contactid", "leadid"}
	leadNameKeys  = []string{"contactname", "nome", "name", "fullname", "cliente"}
	leadPhoneKeys = []string{"contactphone", "telefone", "phone", "tel", "whatsapp"}
	leadTagKeys   = []string{"contacttag", "tags", "origem", "tag"}
	leadOwnerKeys = []string{"dealuser", "vendedor", "responsavel"}

	trafficDateKeys   = []string{"data", "date", "timestamp", "dia"}
	trafficAmountKeys = []string{"investimento", "valor", "amount", "gasto"}
	trafficSourceKeys = []string{"fonte", "source", "origem", "canal"}
)

// Per-field defaults applied after resolution.
const (
	defaultProductName   = "Produto"
	defaultCustomerName  = "Cliente"
	defaultLeadName      = "Lead Novo"
	defaultLeadTag       = "SEM TAG"
	defaultDealUser      = "---"
	defaultTrafficSource = "Ads"
)

// Items coerces a decoded feed payload into a record slice. Feeds
// deliver either a JSON array, an object wrapping an array under
// "data", or a single bare object.
func Items(payload any) []RawRecord {
	switch p := payload.(type) {
	case []any:
		return toRecords(p)
	case map[string]any:
		if data, ok := p["data"].([]any); ok {
			return toRecords(data)
		}
		return []RawRecord{p}
	}
	return nil
}

func toRecords(items []any) []RawRecord {
	out := make([]RawRecord, len(items))
	for i, it := range items {
		if m, ok := it.(map[string]any); ok {
			out[i] = m
		}
		// non-object entries stay nil and resolve to nothing,
		// keeping positional ids stable
	}
	return out
}

// NormalizeSales transforms a raw sales payload into canonical Sale
// records. Records whose amount is not strictly positive are dropped.
func NormalizeSales(payload any) []models.Sale {
	items := Items(payload)
	out := make([]models.Sale, 0, len(items))
	for idx, item := range items {
		amount := ParseAmount(value(item, saleAmountKeys))
		if amount <= 0 {
			continue
		}
		id := stringField(item, saleIDKeys, fmt.Sprintf("TR-%d", idx))
		ts, _ := ParseDate(value(item, dateKeys))
		out = append(out, models.Sale{
			ID:            id,
			TransactionID: id,
			OfferCode:     strings.ToUpper(strings.TrimSpace(stringField(item, saleOfferKeys, ""))),
			Amount:        amount,
			Timestamp:     ts,
			ProductName:   stringField(item, saleProductKeys, defaultProductName),
			CustomerName:  stringField(item, saleCustomerKeys, defaultCustomerName),
			Source:        models.SaleSourceHotmart,
			Status:        models.SaleStatusApproved,
		})
	}
	return out
}

// NormalizeLeads transforms a raw leads payload into canonical Lead
// records. All well-formed items are retained; status always starts at
// the initial pipeline state.
func NormalizeLeads(payload any) []models.Lead {
	items := Items(payload)
	out := make([]models.Lead, 0, len(items))
	for idx, item := range items {
		ts, _ := ParseDate(value(item, dateKeys))
		out = append(out, models.Lead{
			ID:        stringField(item, leadIDKeys, strconv.Itoa(idx)),
			Name:      stringField(item, leadNameKeys, defaultLeadName),
			Phone:     stringField(item, leadPhoneKeys, ""),
			Status:    models.LeadStatusNew,
			Timestamp: ts,
			Source:    models.LeadSourceClint,
			Tags:      stringField(item, leadTagKeys, defaultLeadTag),
			DealUser:  stringField(item, leadOwnerKeys, defaultDealUser),
		})
	}
	return out
}

// NormalizeTraffic transforms a raw ad-spend payload into canonical
// TrafficInvestment records, truncating dates to the calendar day.
// Non-positive amounts are dropped.
func NormalizeTraffic(payload any) []models.TrafficInvestment {
	items := Items(payload)
	out := make([]models.TrafficInvestment, 0, len(items))
	for idx, item := range items {
		amount := ParseAmount(value(item, trafficAmountKeys))
		if amount <= 0 {
			continue
		}
		ts, _ := ParseDate(value(item, trafficDateKeys))
		out = append(out, models.TrafficInvestment{
			ID:     strconv.Itoa(idx),
			Date:   models.NewDay(ts),
			Amount: amount,
			Source: stringField(item, trafficSourceKeys, defaultTrafficSource),
		})
	}
	return out
}

func value(rec RawRecord, keys []string) any {
	v, _ := Resolve(rec, keys)
	return v
}

// stringField resolves a field and stringifies it, substituting the
// default when the field is missing or blank.
func stringField(rec RawRecord, keys []string, def string) string {
	v, ok := Resolve(rec, keys)
	if !ok || v == nil {
		return def
	}
	s := stringify(v)
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
