package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"

	"github.com/cietz/laranjinhao/internal/domain/entities"
	"github.com/cietz/laranjinhao/internal/usecase/interfaces"
)

var ErrMissingAbacatePayToken = errors.New("missing ABACATEPAY_TOKEN")

const (
	abacatePayBaseURL        = "https://api.abacatepay.com/v1"
	abacatePayMinAmountCents = 100
	abacatePayExpirySeconds  = 900
)

// AbacatePayGateway creates PIX QR codes on the AbacatePay API.
// Auth is a Bearer token; payloads are wrapped in a data envelope and a
// non-null top-level error field signals a business refusal.
type AbacatePayGateway struct {
	client *apiClient
}

var _ interfaces.IPixGateway = (*AbacatePayGateway)(nil)

func NewAbacatePayGateway(token string) (*AbacatePayGateway, error) {
	if token == "" {
		log.Printf("[pix][gateway] missing AbacatePay token")
		return nil, ErrMissingAbacatePayToken
	}
	return &AbacatePayGateway{
		client: newAPIClient("AbacatePay", abacatePayBaseURL, func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+token)
		}),
	}, nil
}

func (g *AbacatePayGateway) Name() string          { return "abacatepay" }
func (g *AbacatePayGateway) MinAmountCents() int64 { return abacatePayMinAmountCents }

var abacatePayStatuses = map[string]entities.ChargeStatus{
	"PENDING":   entities.ChargeStatusWaiting,
	"PAID":      entities.ChargeStatusPaid,
	"EXPIRED":   entities.ChargeStatusCancelled,
	"CANCELLED": entities.ChargeStatusCancelled,
	"REFUNDED":  entities.ChargeStatusRefunded,
}

func (g *AbacatePayGateway) CreateCharge(ctx context.Context, order entities.ChargeOrder) (entities.PixCharge, error) {
	body := map[string]any{
		"amount":      order.AmountCents,
		"expiresIn":   abacatePayExpirySeconds,
		"description": order.Description,
		"customer": map[string]any{
			"name":      order.Customer.Name,
			"email":     order.Customer.Email,
			"cellphone": order.Customer.Phone,
			"taxId":     order.Customer.Document,
		},
	}

	raw, err := g.client.doJSON(ctx, http.MethodPost, "/pixQrCode/create", body)
	if err != nil {
		return entities.PixCharge{}, err
	}

	doc := map[string]any{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return entities.PixCharge{}, &entities.GatewayTransportError{Message: "resposta da AbacatePay não é JSON válido", Remote: raw}
	}
	if reason := stringAt(doc, "error"); reason != "" {
		return entities.PixCharge{}, &entities.GatewayRejectionError{Reason: reason, Raw: raw}
	}

	rawStatus := stringAt(doc, "data.status")
	return entities.PixCharge{
		ID:          idAt(doc, "data.id"),
		Code:        firstString(doc, "data.brCode", "data.copyAndPaste"),
		CodeImage:   firstString(doc, "data.brCodeBase64"),
		AmountCents: order.AmountCents,
		CreatedAt:   stringAt(doc, "data.createdAt"),
		ExpiresAt:   stringAt(doc, "data.expiresAt"),
		Status:      entities.CollapseStatus(rawStatus, abacatePayStatuses),
		RawStatus:   rawStatus,
		Raw:         raw,
	}, nil
}

func (g *AbacatePayGateway) GetCharge(ctx context.Context, id string) (entities.ChargeStatusView, error) {
	raw, err := g.client.doJSON(ctx, http.MethodGet, "/pixQrCode/check?id="+url.QueryEscape(id), nil)
	if err != nil {
		return entities.ChargeStatusView{}, err
	}

	doc := map[string]any{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return entities.ChargeStatusView{}, &entities.GatewayTransportError{Message: "resposta da AbacatePay não é JSON válido", Remote: raw}
	}

	rawStatus := stringAt(doc, "data.status")
	view := entities.ChargeStatusView{
		ID:          idAt(doc, "data.id"),
		Status:      entities.CollapseStatus(rawStatus, abacatePayStatuses),
		RawStatus:   rawStatus,
		AmountCents: int64At(doc, "data.amount"),
		CreatedAt:   stringAt(doc, "data.createdAt"),
		PaidAt:      stringAt(doc, "data.paidAt"),
		Raw:         raw,
	}
	if view.ID == "" {
		view.ID = id
	}
	return view, nil
}
