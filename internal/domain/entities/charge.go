package entities

import "encoding/json"

// ChargeStatus is the canonical charge state, collapsing each provider's
// bespoke vocabulary. `paid`, `refused`, `refunded` and `cancelled` are
// terminal. Provider strings with no mapping collapse to `unknown` (the
// literal is preserved in RawStatus) so new provider statuses never break
// the contract.
type ChargeStatus string

const (
	ChargeStatusWaiting   ChargeStatus = "waiting"
	ChargeStatusPaid      ChargeStatus = "paid"
	ChargeStatusRefused   ChargeStatus = "refused"
	ChargeStatusRefunded  ChargeStatus = "refunded"
	ChargeStatusCancelled ChargeStatus = "cancelled"
	ChargeStatusFailed    ChargeStatus = "failed"
	ChargeStatusUnknown   ChargeStatus = "unknown"
)

// ChargeOrder is the normalized, fully-resolved input handed to a gateway
// adapter. Amount is authoritative centavos; the customer is already merged
// with synthesized fallbacks.
type ChargeOrder struct {
	AmountCents int64
	Description string
	Customer    Customer
	WebhookURL  string
	ExternalRef string
	Metadata    map[string]any
}

// PixCharge is the canonical charge shape returned to every caller regardless
// of which gateway produced it. Constructed once per successful gateway call
// and never mutated; status polls re-fetch instead of updating.
type PixCharge struct {
	ID          string
	Code        string // copy-paste payment payload
	CodeImage   string // data:image/png;base64,... ; empty when unavailable
	ImageURL    string // provider-supplied rendering URL, resolver input only
	AmountCents int64
	CreatedAt   string
	ExpiresAt   string
	Status      ChargeStatus
	RawStatus   string
	Raw         json.RawMessage
}

// ChargeStatusView is the subset returned by a status poll.
type ChargeStatusView struct {
	ID          string
	Status      ChargeStatus
	RawStatus   string
	AmountCents int64
	CreatedAt   string
	PaidAt      string
	Customer    Customer
	Raw         json.RawMessage
}

// CollapseStatus maps a provider status literal through the given vocabulary.
func CollapseStatus(raw string, vocabulary map[string]ChargeStatus) ChargeStatus {
	if s, ok := vocabulary[raw]; ok {
		return s
	}
	return ChargeStatusUnknown
}

// marchaStatuses covers the full transaction vocabulary observed on Marcha
// webhooks, shared by the adapter and the webhook flow.
var marchaStatuses = map[string]ChargeStatus{
	"waiting_payment": ChargeStatusWaiting,
	"pending":         ChargeStatusWaiting,
	"approved":        ChargeStatusPaid,
	"paid":            ChargeStatusPaid,
	"refused":         ChargeStatusRefused,
	"in_protest":      ChargeStatusRefused,
	"refunded":        ChargeStatusRefunded,
	"chargeback":      ChargeStatusRefunded,
	"cancelled":       ChargeStatusCancelled,
}

// CollapseMarchaStatus maps a Marcha transaction status to the canonical one.
func CollapseMarchaStatus(raw string) ChargeStatus {
	return CollapseStatus(raw, marchaStatuses)
}

var paradiseStatuses = map[string]ChargeStatus{
	"pending":  ChargeStatusWaiting,
	"approved": ChargeStatusPaid,
	"failed":   ChargeStatusFailed,
	"refunded": ChargeStatusRefunded,
}

// CollapseParadiseStatus maps a Paradise transaction status to the canonical one.
func CollapseParadiseStatus(raw string) ChargeStatus {
	return CollapseStatus(raw, paradiseStatuses)
}
