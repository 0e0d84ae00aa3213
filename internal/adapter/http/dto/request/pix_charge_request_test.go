package request

import (
	"encoding/json"
	"testing"
)

func TestResolveAmount(t *testing.T) {
	var req PixChargeCreateRequest
	if err := json.Unmarshal([]byte(`{"amount": 19.9, "value": 5}`), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if got := req.ResolveAmount(); got != 19.9 {
		t.Fatalf("amount must win over value, got %v", got)
	}

	req = PixChargeCreateRequest{}
	if err := json.Unmarshal([]byte(`{"value": "25.5"}`), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if got := req.ResolveAmount(); got != "25.5" {
		t.Fatalf("legacy value not used, got %v", got)
	}

	req = PixChargeCreateRequest{}
	if got := req.ResolveAmount(); got != nil {
		t.Fatalf("expected nil when both fields absent, got %v", got)
	}
}

func TestRequestDecoding(t *testing.T) {
	raw := `{
		"amount": "19.9",
		"description": "Plano Premium",
		"name": "Maria",
		"email": "maria@loja.com",
		"webhook_url": "https://hooks.example.com/pix",
		"metadata": {"utm_source": "fb", "identifier": "order-77"}
	}`
	var req PixChargeCreateRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if req.ResolveAmount() != "19.9" {
		t.Fatalf("string amount lost: %v", req.Amount)
	}
	if req.WebhookURL != "https://hooks.example.com/pix" {
		t.Fatalf("webhook_url not decoded: %q", req.WebhookURL)
	}
	if req.Metadata["identifier"] != "order-77" {
		t.Fatalf("metadata not decoded: %v", req.Metadata)
	}
}
