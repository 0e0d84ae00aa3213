package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/cietz/laranjinhao/internal/domain/entities"
	"github.com/cietz/laranjinhao/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var (
	ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrInvalidMercadoPagoChargeID    = errors.New("mercado pago charge id must be numeric")
)

const mercadoPagoMinAmountCents = 100

// MercadoPagoGateway creates PIX payments through the official SDK. The PIX
// material comes back under point_of_interaction.transaction_data.
type MercadoPagoGateway struct {
	client payment.Client
}

var _ interfaces.IPixGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[pix][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[pix][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) Name() string          { return "mercadopago" }
func (g *MercadoPagoGateway) MinAmountCents() int64 { return mercadoPagoMinAmountCents }

var mercadoPagoStatuses = map[string]entities.ChargeStatus{
	"pending":      entities.ChargeStatusWaiting,
	"in_process":   entities.ChargeStatusWaiting,
	"approved":     entities.ChargeStatusPaid,
	"rejected":     entities.ChargeStatusRefused,
	"cancelled":    entities.ChargeStatusCancelled,
	"refunded":     entities.ChargeStatusRefunded,
	"charged_back": entities.ChargeStatusRefunded,
}

func (g *MercadoPagoGateway) CreateCharge(ctx context.Context, order entities.ChargeOrder) (entities.PixCharge, error) {
	req := payment.Request{
		TransactionAmount: entities.AmountDecimal(order.AmountCents),
		Description:       order.Description,
		PaymentMethodID:   "pix",
		ExternalReference: order.ExternalRef,
		NotificationURL:   order.WebhookURL,
		Payer: &payment.PayerRequest{
			Email:     order.Customer.Email,
			FirstName: order.Customer.Name,
			Identification: &payment.IdentificationRequest{
				Type:   "CPF",
				Number: order.Customer.Document,
			},
		},
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[pix][gateway] mercado pago create failed err=%v", err)
		return entities.PixCharge{}, &entities.GatewayTransportError{Message: err.Error()}
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return entities.PixCharge{}, &entities.GatewayTransportError{Message: fmt.Sprintf("marshal response: %v", err)}
	}
	doc := map[string]any{}
	_ = json.Unmarshal(raw, &doc)

	if resp.Status == "rejected" {
		reason := stringAt(doc, "status_detail")
		if reason == "" {
			reason = "Transação recusada pelo Mercado Pago"
		}
		return entities.PixCharge{}, &entities.GatewayRejectionError{Reason: reason, Raw: raw}
	}

	return entities.PixCharge{
		ID:          strconv.Itoa(resp.ID),
		Code:        resp.PointOfInteraction.TransactionData.QRCode,
		CodeImage:   resp.PointOfInteraction.TransactionData.QRCodeBase64,
		AmountCents: order.AmountCents,
		CreatedAt:   stringAt(doc, "date_created"),
		ExpiresAt:   stringAt(doc, "date_of_expiration"),
		Status:      entities.CollapseStatus(resp.Status, mercadoPagoStatuses),
		RawStatus:   resp.Status,
		Raw:         raw,
	}, nil
}

func (g *MercadoPagoGateway) GetCharge(ctx context.Context, id string) (entities.ChargeStatusView, error) {
	numericID, err := strconv.Atoi(id)
	if err != nil {
		return entities.ChargeStatusView{}, ErrInvalidMercadoPagoChargeID
	}

	resp, err := g.client.Get(ctx, numericID)
	if err != nil {
		log.Printf("[pix][gateway] mercado pago get failed id=%s err=%v", id, err)
		return entities.ChargeStatusView{}, &entities.GatewayTransportError{Message: err.Error()}
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return entities.ChargeStatusView{}, &entities.GatewayTransportError{Message: fmt.Sprintf("marshal response: %v", err)}
	}
	doc := map[string]any{}
	_ = json.Unmarshal(raw, &doc)

	return entities.ChargeStatusView{
		ID:          strconv.Itoa(resp.ID),
		Status:      entities.CollapseStatus(resp.Status, mercadoPagoStatuses),
		RawStatus:   resp.Status,
		AmountCents: entities.CentsFromDecimal(resp.TransactionAmount),
		CreatedAt:   stringAt(doc, "date_created"),
		PaidAt:      stringAt(doc, "date_approved"),
		Customer: entities.Customer{
			Email: stringAt(doc, "payer.email"),
		},
		Raw: raw,
	}, nil
}
