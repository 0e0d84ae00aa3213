package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/cietz/laranjinhao/internal/domain/entities"
	"github.com/cietz/laranjinhao/internal/usecase/interfaces"
)

var ErrMissingPushinPayToken = errors.New("missing PUSHINPAY_TOKEN")

const (
	pushinPayBaseURL        = "https://api.pushinpay.com.br/api"
	pushinPayMinAmountCents = 100
)

// PushinPayGateway creates PIX cash-ins on the PushinPay API.
// Auth is a Bearer token. PushinPay takes no customer data on charge
// creation, so the synthesized customer is not sent anywhere.
type PushinPayGateway struct {
	client *apiClient
}

var _ interfaces.IPixGateway = (*PushinPayGateway)(nil)

func NewPushinPayGateway(token string) (*PushinPayGateway, error) {
	if token == "" {
		log.Printf("[pix][gateway] missing PushinPay token")
		return nil, ErrMissingPushinPayToken
	}
	return &PushinPayGateway{
		client: newAPIClient("PushinPay", pushinPayBaseURL, func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+token)
		}),
	}, nil
}

func (g *PushinPayGateway) Name() string          { return "pushinpay" }
func (g *PushinPayGateway) MinAmountCents() int64 { return pushinPayMinAmountCents }

var pushinPayStatuses = map[string]entities.ChargeStatus{
	"created":  entities.ChargeStatusWaiting,
	"pending":  entities.ChargeStatusWaiting,
	"paid":     entities.ChargeStatusPaid,
	"expired":  entities.ChargeStatusCancelled,
	"canceled": entities.ChargeStatusCancelled,
	"refunded": entities.ChargeStatusRefunded,
}

type pushinPayChargeResponse struct {
	ID           string `json:"id"`
	QRCode       string `json:"qr_code"`
	QRCodeBase64 string `json:"qr_code_base64"`
	Status       string `json:"status"`
	Value        int64  `json:"value"`
	CreatedAt    string `json:"created_at"`
	EndToEndID   string `json:"end_to_end_id"`
	PayerName    string `json:"payer_name"`
	PaidAt       string `json:"paid_at"`
}

func (g *PushinPayGateway) CreateCharge(ctx context.Context, order entities.ChargeOrder) (entities.PixCharge, error) {
	body := map[string]any{
		"value":       order.AmountCents,
		"webhook_url": order.WebhookURL,
	}

	raw, err := g.client.doJSON(ctx, http.MethodPost, "/pix/cashIn", body)
	if err != nil {
		return entities.PixCharge{}, err
	}

	var resp pushinPayChargeResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return entities.PixCharge{}, &entities.GatewayTransportError{Message: "resposta da PushinPay não é JSON válido", Remote: raw}
	}

	return entities.PixCharge{
		ID:          resp.ID,
		Code:        resp.QRCode,
		CodeImage:   resp.QRCodeBase64,
		AmountCents: order.AmountCents,
		CreatedAt:   resp.CreatedAt,
		Status:      entities.CollapseStatus(resp.Status, pushinPayStatuses),
		RawStatus:   resp.Status,
		Raw:         raw,
	}, nil
}

func (g *PushinPayGateway) GetCharge(ctx context.Context, id string) (entities.ChargeStatusView, error) {
	raw, err := g.client.doJSON(ctx, http.MethodGet, "/transactions/"+id, nil)
	if err != nil {
		return entities.ChargeStatusView{}, err
	}

	var resp pushinPayChargeResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return entities.ChargeStatusView{}, &entities.GatewayTransportError{Message: "resposta da PushinPay não é JSON válido", Remote: raw}
	}

	return entities.ChargeStatusView{
		ID:          resp.ID,
		Status:      entities.CollapseStatus(resp.Status, pushinPayStatuses),
		RawStatus:   resp.Status,
		AmountCents: resp.Value,
		CreatedAt:   resp.CreatedAt,
		PaidAt:      resp.PaidAt,
		Customer:    entities.Customer{Name: resp.PayerName},
		Raw:         raw,
	}, nil
}
