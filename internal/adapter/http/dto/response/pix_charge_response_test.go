package response

import (
	"encoding/json"
	"testing"

	"github.com/cietz/laranjinhao/internal/domain/entities"
)

func TestFromPixCharge(t *testing.T) {
	charge := entities.PixCharge{
		ID:          "tx-1",
		Code:        "000201...brcode",
		AmountCents: 1990,
		CreatedAt:   "2026-08-30T12:00:00Z",
		ExpiresAt:   "2026-08-30T12:15:00Z",
		Status:      entities.ChargeStatusWaiting,
		Raw:         json.RawMessage(`{"id":"tx-1"}`),
	}

	b, err := json.Marshal(FromPixCharge(charge))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(b, &body)

	if body["id"] != "tx-1" || body["qr_code"] != "000201...brcode" {
		t.Fatalf("unexpected body: %s", b)
	}
	// Absent image renders as null, not "".
	if v, ok := body["qr_code_base64"]; !ok || v != nil {
		t.Fatalf("qr_code_base64 must be null: %s", b)
	}
	if body["amount_cents"] != float64(1990) || body["amount"] != 19.9 || body["amount_formatted"] != "19,90" {
		t.Fatalf("unexpected amount fields: %s", b)
	}
	if body["status"] != "waiting" {
		t.Fatalf("unexpected status: %s", b)
	}
	raw, _ := body["raw"].(map[string]any)
	if raw["id"] != "tx-1" {
		t.Fatalf("raw body not embedded: %s", b)
	}
}

func TestFromChargeStatusView(t *testing.T) {
	view := entities.ChargeStatusView{
		ID:          "tx-1",
		Status:      entities.ChargeStatusPaid,
		RawStatus:   "approved",
		AmountCents: 1990,
		CreatedAt:   "2026-08-30T12:00:00Z",
		PaidAt:      "2026-08-30T12:05:00Z",
		Customer:    entities.Customer{Name: "Maria"},
	}

	b, err := json.Marshal(FromChargeStatusView(view))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(b, &body)

	if body["status"] != "paid" || body["raw_status"] != "approved" {
		t.Fatalf("unexpected body: %s", b)
	}
	if body["paidAt"] != "2026-08-30T12:05:00Z" {
		t.Fatalf("paidAt missing: %s", b)
	}
	customer, _ := body["customer"].(map[string]any)
	if customer["name"] != "Maria" {
		t.Fatalf("customer missing: %s", b)
	}
}
