package entities

import (
	"encoding/json"
	"time"
)

// TrackingParams are the ad-click parameters captured when the charge was
// created; the webhook flow forwards them with the conversion event.
type TrackingParams struct {
	Src         string `json:"src,omitempty"`
	Sck         string `json:"sck,omitempty"`
	UTMSource   string `json:"utm_source,omitempty"`
	UTMCampaign string `json:"utm_campaign,omitempty"`
	UTMMedium   string `json:"utm_medium,omitempty"`
	UTMContent  string `json:"utm_content,omitempty"`
	UTMTerm     string `json:"utm_term,omitempty"`
}

// Transaction is the persisted record of a created charge.
//
// Storage model (DynamoDB):
//   - PK: transaction_id
//   - GSI (external_ref-index): external_ref
//
// It is best-effort bookkeeping for the webhook flow, never the source of
// truth for charge state (the gateway is).
type Transaction struct {
	TransactionID    string
	ExternalRef      string
	Status           ChargeStatus
	AmountCents      int64
	PaymentMethod    string
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	CustomerDocument string
	CustomerIP       string
	Tracking         TrackingParams
	CreatedAt        time.Time
	UpdatedAt        time.Time
	PaidAt           time.Time
}

// ConversionOrder is the canonical order/customer/tracking payload handed to
// the analytics forwarding port when a transaction reaches a terminal state.
type ConversionOrder struct {
	OrderID       string
	PaymentMethod string
	Status        ChargeStatus
	AmountCents   int64
	Customer      Customer
	CustomerIP    string
	Tracking      TrackingParams
	CreatedAt     time.Time
	PaidAt        time.Time
	RefundedAt    time.Time
}

// ForwardResult mirrors the {success, error?, data?} contract of the
// analytics consumers.
type ForwardResult struct {
	Success bool
	Error   string
	Data    json.RawMessage
}
