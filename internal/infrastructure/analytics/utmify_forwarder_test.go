package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cietz/laranjinhao/internal/domain/entities"
)

func testConversionOrder() entities.ConversionOrder {
	created := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	return entities.ConversionOrder{
		OrderID:       "tx-1",
		PaymentMethod: "pix",
		Status:        entities.ChargeStatusPaid,
		AmountCents:   1990,
		Customer: entities.Customer{
			Name:     "Maria",
			Email:    "maria@loja.com",
			Document: "52998224725",
			Phone:    "11987654321",
		},
		CustomerIP: "200.1.2.3",
		Tracking:   entities.TrackingParams{UTMSource: "fb", UTMCampaign: "promo"},
		CreatedAt:  created,
		PaidAt:     created.Add(5 * time.Minute),
	}
}

func TestNewUTMifyForwarder(t *testing.T) {
	if _, err := NewUTMifyForwarder(""); !errors.Is(err, ErrMissingUTMifyToken) {
		t.Fatalf("expected ErrMissingUTMifyToken, got %v", err)
	}
	if _, err := NewUTMifyForwarder("tok"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUTMifyForwarder_Forward(t *testing.T) {
	ctx := context.Background()

	t.Run("posts the order payload", func(t *testing.T) {
		var gotToken string
		var sent map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotToken = r.Header.Get("x-api-token")
			_ = json.NewDecoder(r.Body).Decode(&sent)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"ok":true}`))
		}))
		defer srv.Close()

		f, err := NewUTMifyForwarder("tok-123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f.apiURL = srv.URL

		result := f.Forward(ctx, testConversionOrder())
		if !result.Success || result.Error != "" {
			t.Fatalf("expected success, got %+v", result)
		}
		if gotToken != "tok-123" {
			t.Fatalf("missing api token header, got %q", gotToken)
		}

		if sent["orderId"] != "tx-1" || sent["status"] != "paid" {
			t.Fatalf("unexpected payload: %v", sent)
		}
		if sent["createdAt"] != "2026-08-30 12:00:00" {
			t.Fatalf("wrong date format: %v", sent["createdAt"])
		}
		if sent["approvedDate"] != "2026-08-30 12:05:00" {
			t.Fatalf("wrong approved date: %v", sent["approvedDate"])
		}
		if sent["refundedAt"] != nil {
			t.Fatalf("refundedAt must be null: %v", sent["refundedAt"])
		}

		customer, _ := sent["customer"].(map[string]any)
		if customer["country"] != "BR" || customer["ip"] != "200.1.2.3" {
			t.Fatalf("unexpected customer: %v", customer)
		}

		tracking, _ := sent["trackingParameters"].(map[string]any)
		if tracking["utm_source"] != "fb" || tracking["utm_medium"] != nil {
			t.Fatalf("unexpected tracking: %v", tracking)
		}

		commission, _ := sent["commission"].(map[string]any)
		if commission["totalPriceInCents"] != float64(1990) {
			t.Fatalf("unexpected total: %v", commission)
		}
		// 3% gateway fee, rounded.
		if commission["gatewayFeeInCents"] != float64(60) || commission["userCommissionInCents"] != float64(1930) {
			t.Fatalf("unexpected commission split: %v", commission)
		}
	})

	t.Run("waiting maps to waiting_payment", func(t *testing.T) {
		var sent map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&sent)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		f, _ := NewUTMifyForwarder("tok")
		f.apiURL = srv.URL

		order := testConversionOrder()
		order.Status = entities.ChargeStatusWaiting
		_ = f.Forward(ctx, order)
		if sent["status"] != "waiting_payment" {
			t.Fatalf("unexpected status: %v", sent["status"])
		}
	})

	t.Run("api error reports failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"bad token"}`))
		}))
		defer srv.Close()

		f, _ := NewUTMifyForwarder("tok")
		f.apiURL = srv.URL

		result := f.Forward(ctx, testConversionOrder())
		if result.Success || result.Error == "" {
			t.Fatalf("expected failure, got %+v", result)
		}
	})

	t.Run("network error reports failure", func(t *testing.T) {
		f, _ := NewUTMifyForwarder("tok")
		f.apiURL = "http://127.0.0.1:1"

		result := f.Forward(ctx, testConversionOrder())
		if result.Success || result.Error == "" {
			t.Fatalf("expected failure, got %+v", result)
		}
	})
}
