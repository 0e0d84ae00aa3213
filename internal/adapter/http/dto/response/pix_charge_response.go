package response

import (
	"encoding/json"

	"github.com/cietz/laranjinhao/internal/domain/entities"
)

// PixChargeResponse is the normalized shape every provider's create response
// collapses into. ID and the QR fields are pointers so absent values render
// as JSON null rather than empty strings.
type PixChargeResponse struct {
	ID              *string         `json:"id"`
	QRCode          *string         `json:"qr_code"`
	QRCodeBase64    *string         `json:"qr_code_base64"`
	AmountCents     int64           `json:"amount_cents"`
	Amount          float64         `json:"amount"`
	AmountFormatted string          `json:"amount_formatted"`
	CreatedAt       string          `json:"created_at"`
	ExpiresAt       string          `json:"expires_at"`
	Status          string          `json:"status"`
	Raw             json.RawMessage `json:"raw"`
}

func FromPixCharge(c entities.PixCharge) PixChargeResponse {
	return PixChargeResponse{
		ID:              nullable(c.ID),
		QRCode:          nullable(c.Code),
		QRCodeBase64:    nullable(c.CodeImage),
		AmountCents:     c.AmountCents,
		Amount:          entities.AmountDecimal(c.AmountCents),
		AmountFormatted: entities.FormatAmountBRL(c.AmountCents),
		CreatedAt:       c.CreatedAt,
		ExpiresAt:       c.ExpiresAt,
		Status:          string(c.Status),
		Raw:             c.Raw,
	}
}

// ChargeStatusResponse is the body of GET /pix.
type ChargeStatusResponse struct {
	ID          string            `json:"id"`
	Status      string            `json:"status"`
	RawStatus   string            `json:"raw_status,omitempty"`
	AmountCents int64             `json:"amount_cents"`
	CreatedAt   string            `json:"createdAt,omitempty"`
	PaidAt      string            `json:"paidAt,omitempty"`
	Customer    entities.Customer `json:"customer"`
	Raw         json.RawMessage   `json:"raw"`
}

func FromChargeStatusView(v entities.ChargeStatusView) ChargeStatusResponse {
	return ChargeStatusResponse{
		ID:          v.ID,
		Status:      string(v.Status),
		RawStatus:   v.RawStatus,
		AmountCents: v.AmountCents,
		CreatedAt:   v.CreatedAt,
		PaidAt:      v.PaidAt,
		Customer:    v.Customer,
		Raw:         v.Raw,
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
