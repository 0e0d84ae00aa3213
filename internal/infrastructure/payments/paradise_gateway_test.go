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

func newTestParadiseGateway(t *testing.T, handler http.HandlerFunc) *ParadiseGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g, err := NewParadiseGateway("key_test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.client.baseURL = srv.URL
	return g
}

func TestParadiseGateway_CreateCharge(t *testing.T) {
	ctx := context.Background()

	t.Run("success reads the flat document", func(t *testing.T) {
		var sent map[string]any
		g := newTestParadiseGateway(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/transactions" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if r.Header.Get("x-api-key") != "key_test" {
				t.Errorf("missing api key header")
			}
			_ = json.NewDecoder(r.Body).Decode(&sent)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"transaction_id": "par_1",
				"status": "pending",
				"pix": {
					"qr_code": "000201...brcode",
					"qr_code_base64": "data:image/png;base64,AAAA"
				},
				"created_at": "2026-08-30T12:00:00Z"
			}`))
		})

		charge, err := g.CreateCharge(ctx, testOrder())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if charge.ID != "par_1" || charge.Code != "000201...brcode" {
			t.Fatalf("unexpected charge: %+v", charge)
		}
		if charge.Status != entities.ChargeStatusWaiting || charge.RawStatus != "pending" {
			t.Fatalf("unexpected status: %+v", charge)
		}
		if sent["amount"] != float64(1990) || sent["external_id"] != "order-77" {
			t.Fatalf("unexpected request body: %v", sent)
		}
	})

	t.Run("failed status maps to rejection", func(t *testing.T) {
		g := newTestParadiseGateway(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status": "failed", "error_message": "Documento inválido"}`))
		})

		_, err := g.CreateCharge(ctx, testOrder())
		var rejection *entities.GatewayRejectionError
		if !errors.As(err, &rejection) || rejection.Reason != "Documento inválido" {
			t.Fatalf("expected rejection, got %v", err)
		}
	})

	t.Run("failed status without message gets a default reason", func(t *testing.T) {
		g := newTestParadiseGateway(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status": "failed"}`))
		})

		_, err := g.CreateCharge(ctx, testOrder())
		var rejection *entities.GatewayRejectionError
		if !errors.As(err, &rejection) || rejection.Reason != "Transação recusada pela Paradise" {
			t.Fatalf("expected default rejection reason, got %v", err)
		}
	})
}

func TestParadiseGateway_GetCharge(t *testing.T) {
	g := newTestParadiseGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transactions/par_1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"transaction_id": "par_1",
			"status": "approved",
			"amount": 1990,
			"paid_at": "2026-08-30T12:05:00Z",
			"customer": {"name": "Maria", "email": "maria@loja.com"}
		}`))
	})

	view, err := g.GetCharge(context.Background(), "par_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Status != entities.ChargeStatusPaid || view.AmountCents != 1990 {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.Customer.Name != "Maria" || view.PaidAt != "2026-08-30T12:05:00Z" {
		t.Fatalf("customer or paid_at lost: %+v", view)
	}
}
