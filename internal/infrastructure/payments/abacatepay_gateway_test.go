package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cietz/laranjinhao/internal/domain/entities"
)

func newTestAbacatePayGateway(t *testing.T, handler http.HandlerFunc) *AbacatePayGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g, err := NewAbacatePayGateway("tok_test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.client.baseURL = srv.URL
	return g
}

func TestAbacatePayGateway_CreateCharge(t *testing.T) {
	ctx := context.Background()

	t.Run("success unwraps the data envelope", func(t *testing.T) {
		var sent map[string]any
		g := newTestAbacatePayGateway(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/pixQrCode/create" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if r.Header.Get("Authorization") != "Bearer tok_test" {
				t.Errorf("missing bearer token")
			}
			_ = json.NewDecoder(r.Body).Decode(&sent)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"error": null,
				"data": {
					"id": "pix_char_1",
					"brCode": "000201...brcode",
					"brCodeBase64": "data:image/png;base64,AAAA",
					"status": "PENDING",
					"createdAt": "2026-08-30T12:00:00Z",
					"expiresAt": "2026-08-30T12:15:00Z"
				}
			}`))
		})

		charge, err := g.CreateCharge(ctx, testOrder())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if charge.ID != "pix_char_1" || charge.Code != "000201...brcode" {
			t.Fatalf("unexpected charge: %+v", charge)
		}
		if charge.Status != entities.ChargeStatusWaiting || charge.RawStatus != "PENDING" {
			t.Fatalf("unexpected status: %+v", charge)
		}
		if sent["amount"] != float64(1990) {
			t.Fatalf("wrong amount sent: %v", sent["amount"])
		}
	})

	t.Run("error field maps to rejection", func(t *testing.T) {
		g := newTestAbacatePayGateway(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"error": "Valor abaixo do mínimo", "data": null}`))
		})

		_, err := g.CreateCharge(ctx, testOrder())
		var rejection *entities.GatewayRejectionError
		if !errors.As(err, &rejection) || rejection.Reason != "Valor abaixo do mínimo" {
			t.Fatalf("expected rejection, got %v", err)
		}
	})
}

func TestAbacatePayGateway_GetCharge(t *testing.T) {
	ctx := context.Background()

	g := newTestAbacatePayGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pixQrCode/check" || r.URL.Query().Get("id") != "pix_char_1" {
			t.Errorf("unexpected request %s?%s", r.URL.Path, r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": {"status": "PAID", "amount": 1990}}`))
	})

	view, err := g.GetCharge(ctx, "pix_char_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Status != entities.ChargeStatusPaid || view.AmountCents != 1990 {
		t.Fatalf("unexpected view: %+v", view)
	}
	// Missing id in the body falls back to the requested one.
	if view.ID != "pix_char_1" {
		t.Fatalf("id fallback missing: %+v", view)
	}
}
