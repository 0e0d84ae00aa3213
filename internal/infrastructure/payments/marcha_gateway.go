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

var ErrMissingMarchaCredentials = errors.New("missing MARCHA_PUBLIC_KEY / MARCHA_SECRET_KEY")

const (
	marchaBaseURL          = "https://api.marchabb.com/v1"
	marchaMinAmountCents   = 300
	marchaPixExpirySeconds = 900
)

// MarchaGateway creates PIX transactions on the Marcha API.
// Auth is Basic base64(publicKey:secretKey).
type MarchaGateway struct {
	client *apiClient
}

var _ interfaces.IPixGateway = (*MarchaGateway)(nil)

func NewMarchaGateway(publicKey, secretKey string) (*MarchaGateway, error) {
	if publicKey == "" || secretKey == "" {
		log.Printf("[pix][gateway] missing Marcha credentials")
		return nil, ErrMissingMarchaCredentials
	}
	auth := basicAuthHeader(publicKey, secretKey)
	return &MarchaGateway{
		client: newAPIClient("Marcha", marchaBaseURL, func(r *http.Request) {
			r.Header.Set("Authorization", auth)
		}),
	}, nil
}

func (g *MarchaGateway) Name() string          { return "marcha" }
func (g *MarchaGateway) MinAmountCents() int64 { return marchaMinAmountCents }

func (g *MarchaGateway) CreateCharge(ctx context.Context, order entities.ChargeOrder) (entities.PixCharge, error) {
	documentType := "cpf"
	if len(order.Customer.Document) > 11 {
		documentType = "cnpj"
	}

	body := map[string]any{
		"amount":        order.AmountCents,
		"paymentMethod": "pix",
		"pix": map[string]any{
			"expiresInSeconds": marchaPixExpirySeconds,
		},
		"customer": map[string]any{
			"name":  order.Customer.Name,
			"email": order.Customer.Email,
			"document": map[string]any{
				"number": order.Customer.Document,
				"type":   documentType,
			},
			"phone": order.Customer.Phone,
		},
		"items": []map[string]any{
			{
				"title":     order.Description,
				"unitPrice": order.AmountCents,
				"quantity":  1,
				"tangible":  false,
			},
		},
		"postbackUrl": order.WebhookURL,
		"externalRef": order.ExternalRef,
	}
	if len(order.Metadata) > 0 {
		// Marcha takes metadata as an opaque JSON string.
		if b, err := json.Marshal(order.Metadata); err == nil {
			body["metadata"] = string(b)
		}
	}

	raw, err := g.client.doJSON(ctx, http.MethodPost, "/transactions", body)
	if err != nil {
		return entities.PixCharge{}, err
	}

	doc := map[string]any{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return entities.PixCharge{}, &entities.GatewayTransportError{Message: "resposta da Marcha não é JSON válido", Remote: raw}
	}

	rawStatus := stringAt(doc, "status")
	if rawStatus == "refused" {
		reason := stringAt(doc, "refusedReason.description")
		if reason == "" {
			reason = "Transação recusada pela Marcha"
		}
		return entities.PixCharge{}, &entities.GatewayRejectionError{
			Reason:       reason,
			AcquirerCode: stringAt(doc, "refusedReason.acquirerCode"),
			Raw:          raw,
		}
	}

	charge := entities.PixCharge{
		ID: idAt(doc, "id", "transactionId"),
		Code: firstString(doc,
			"pix.qrcodeText",
			"pix.qrCodeText",
			"pix.qrcode",
			"pix.qrCode",
			"pix.payload",
			"pix.copyAndPaste",
			"pix.emv",
			"pix.brcode",
			"qrcode",
			"qrcodeText",
		),
		CodeImage: firstString(doc,
			"pix.qrCodeBase64",
			"pix.qrcodeBase64",
			"pix.image",
			"pix.imageBase64",
			"pix.base64",
		),
		ImageURL: firstString(doc,
			"pix.qrcodeUrl",
			"pix.qrCodeUrl",
			"pix.imageUrl",
			"pix.qrcodeImage",
		),
		AmountCents: order.AmountCents,
		CreatedAt:   stringAt(doc, "createdAt"),
		ExpiresAt:   stringAt(doc, "pix.expirationDate"),
		Status:      entities.CollapseMarchaStatus(rawStatus),
		RawStatus:   rawStatus,
		Raw:         raw,
	}
	return charge, nil
}

func (g *MarchaGateway) GetCharge(ctx context.Context, id string) (entities.ChargeStatusView, error) {
	raw, err := g.client.doJSON(ctx, http.MethodGet, "/transactions/"+id, nil)
	if err != nil {
		return entities.ChargeStatusView{}, err
	}

	// The lookup endpoint answers with either a single transaction or an
	// array containing one.
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return entities.ChargeStatusView{}, &entities.GatewayTransportError{Message: "resposta da Marcha não é JSON válido", Remote: raw}
	}
	if list, ok := decoded.([]any); ok {
		if len(list) == 0 {
			return entities.ChargeStatusView{}, &entities.GatewayTransportError{StatusCode: http.StatusNotFound, Message: "Pagamento não encontrado", Remote: raw}
		}
		decoded = list[0]
	}
	doc, ok := decoded.(map[string]any)
	if !ok {
		return entities.ChargeStatusView{}, &entities.GatewayTransportError{Message: "resposta da Marcha em formato inesperado", Remote: raw}
	}
	element, _ := json.Marshal(doc)

	rawStatus := stringAt(doc, "status")
	return entities.ChargeStatusView{
		ID:          idAt(doc, "id"),
		Status:      entities.CollapseMarchaStatus(rawStatus),
		RawStatus:   rawStatus,
		AmountCents: int64At(doc, "amount"),
		CreatedAt:   stringAt(doc, "createdAt"),
		PaidAt:      stringAt(doc, "paidAt"),
		Customer: entities.Customer{
			Name:     stringAt(doc, "customer.name"),
			Email:    stringAt(doc, "customer.email"),
			Phone:    stringAt(doc, "customer.phone"),
			Document: stringAt(doc, "customer.document.number"),
		},
		Raw: element,
	}, nil
}
