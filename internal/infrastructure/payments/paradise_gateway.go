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

var ErrMissingParadiseAPIKey = errors.New("missing PARADISE_API_KEY")

const (
	paradiseBaseURL        = "https://api.paradisepags.com/api/v1"
	paradiseMinAmountCents = 100
)

// ParadiseGateway creates PIX transactions on the Paradise API.
// Auth is an x-api-key header.
type ParadiseGateway struct {
	client *apiClient
}

var _ interfaces.IPixGateway = (*ParadiseGateway)(nil)

func NewParadiseGateway(apiKey string) (*ParadiseGateway, error) {
	if apiKey == "" {
		log.Printf("[pix][gateway] missing Paradise api key")
		return nil, ErrMissingParadiseAPIKey
	}
	return &ParadiseGateway{
		client: newAPIClient("Paradise", paradiseBaseURL, func(r *http.Request) {
			r.Header.Set("x-api-key", apiKey)
		}),
	}, nil
}

func (g *ParadiseGateway) Name() string          { return "paradise" }
func (g *ParadiseGateway) MinAmountCents() int64 { return paradiseMinAmountCents }

func (g *ParadiseGateway) CreateCharge(ctx context.Context, order entities.ChargeOrder) (entities.PixCharge, error) {
	body := map[string]any{
		"external_id":    order.ExternalRef,
		"amount":         order.AmountCents,
		"payment_method": "pix",
		"description":    order.Description,
		"customer": map[string]any{
			"name":     order.Customer.Name,
			"email":    order.Customer.Email,
			"document": order.Customer.Document,
			"phone":    order.Customer.Phone,
		},
		"postback_url": order.WebhookURL,
	}

	raw, err := g.client.doJSON(ctx, http.MethodPost, "/transactions", body)
	if err != nil {
		return entities.PixCharge{}, err
	}

	doc := map[string]any{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return entities.PixCharge{}, &entities.GatewayTransportError{Message: "resposta da Paradise não é JSON válido", Remote: raw}
	}

	rawStatus := stringAt(doc, "status")
	if rawStatus == "failed" {
		reason := firstString(doc, "error_message", "message")
		if reason == "" {
			reason = "Transação recusada pela Paradise"
		}
		return entities.PixCharge{}, &entities.GatewayRejectionError{Reason: reason, Raw: raw}
	}

	charge := entities.PixCharge{
		ID: idAt(doc, "transaction_id", "id"),
		Code: firstString(doc,
			"pix.qr_code",
			"pix.payload",
			"qr_code",
			"payload",
		),
		CodeImage: firstString(doc,
			"pix.qr_code_base64",
			"qr_code_base64",
		),
		ImageURL:    firstString(doc, "pix.qr_code_url", "qr_code_url"),
		AmountCents: order.AmountCents,
		CreatedAt:   stringAt(doc, "created_at"),
		ExpiresAt:   firstString(doc, "pix.expires_at", "expires_at"),
		Status:      entities.CollapseParadiseStatus(rawStatus),
		RawStatus:   rawStatus,
		Raw:         raw,
	}
	return charge, nil
}

func (g *ParadiseGateway) GetCharge(ctx context.Context, id string) (entities.ChargeStatusView, error) {
	raw, err := g.client.doJSON(ctx, http.MethodGet, "/transactions/"+id, nil)
	if err != nil {
		return entities.ChargeStatusView{}, err
	}

	doc := map[string]any{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return entities.ChargeStatusView{}, &entities.GatewayTransportError{Message: "resposta da Paradise não é JSON válido", Remote: raw}
	}

	rawStatus := stringAt(doc, "status")
	return entities.ChargeStatusView{
		ID:          idAt(doc, "transaction_id", "id"),
		Status:      entities.CollapseParadiseStatus(rawStatus),
		RawStatus:   rawStatus,
		AmountCents: int64At(doc, "amount"),
		CreatedAt:   stringAt(doc, "created_at"),
		PaidAt:      stringAt(doc, "paid_at"),
		Customer: entities.Customer{
			Name:     stringAt(doc, "customer.name"),
			Email:    stringAt(doc, "customer.email"),
			Phone:    stringAt(doc, "customer.phone"),
			Document: stringAt(doc, "customer.document"),
		},
		Raw: raw,
	}, nil
}
