package models

import "time"

type SaleSource string

const (
	SaleSourceHotmart SaleSource = "hotmart"
	SaleSourceManual  SaleSource = "manual"
)

type SaleStatus string

const (
	SaleStatusApproved SaleStatus = "approved"
	SaleStatusRefunded SaleStatus = "refunded"
	SaleStatusCanceled SaleStatus = "canceled"
)

type LeadSource string

const (
	LeadSourceClint  LeadSource = "clint"
	LeadSourceManual LeadSource = "manual"
)

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusScheduled LeadStatus = "scheduled"
	LeadStatusConducted LeadStatus = "conducted"
	LeadStatusWon       LeadStatus = "won"
	LeadStatusLost      LeadStatus = "lost"
)

// Sale is a normalized transaction from the sales feed.
// Amount is strictly positive; non-positive records never survive
// normalization.
type Sale struct {
	ID            string     `json:"id"`
	TransactionID string     `json:"transaction_id"`
	OfferCode     string     `json:"offer_code"`
	Amount        float64    `json:"amount"`
	Timestamp     time.Time  `json:"timestamp"`
	ProductName   string     `json:"product_name"`
	CustomerName  string     `json:"customer_name"`
	Source        SaleSource `json:"source"`
	Status        SaleStatus `json:"status"`
}

type Lead struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone,omitempty"`
	Status    LeadStatus `json:"status"`
	Timestamp time.Time  `json:"timestamp"`
	Source    LeadSource `json:"source"`
	Tags      string     `json:"tags"`
	DealUser  string     `json:"deal_user"`
}

// TrafficInvestment is one day of ad spend on one channel.
type TrafficInvestment struct {
	ID     string  `json:"id"`
	Date   Day     `json:"date"`
	Amount float64 `json:"amount"`
	Source string  `json:"source"`
}

type Product struct {
	Name string `json:"name" yaml:"name" validate:"required"`
	Code string `json:"code" yaml:"code" validate:"required"`
}

// Funnel groups offer codes for attribution. The catalog is static
// configuration and never mutated at runtime.
type Funnel struct {
	ID       string    `json:"id" yaml:"id" validate:"required"`
	Name     string    `json:"name" yaml:"name" validate:"required"`
	Products []Product `json:"products" yaml:"products" validate:"required,min=1,dive"`
}

// FunnelAggregate is recomputed per query and never cached.
type FunnelAggregate struct {
	Name          string  `json:"name"`
	Revenue       float64 `json:"revenue"`
	SalesCount    int     `json:"sales_count"`
	Uncategorized bool    `json:"uncategorized,omitempty"`
}

// SyncStatus is the last known outcome of one feed's sync operation.
type SyncStatus struct {
	Feed        string     `json:"feed"`
	Syncing     bool       `json:"syncing"`
	LastSuccess *time.Time `json:"last_success,omitempty"`
	Total       int        `json:"total"`
	Error       string     `json:"error,omitempty"`
}
