package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cietz/laranjinhao/internal/domain/entities"
	"github.com/cietz/laranjinhao/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrChargeIDRequired        = errors.New("charge id is required")
	ErrGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrGatewayCredentialsEmpty = errors.New("payment gateway credentials missing")
)

// MinimumAmountError rejects amounts below the active gateway's floor.
type MinimumAmountError struct {
	MinCents int64
}

func (e *MinimumAmountError) Error() string {
	return fmt.Sprintf("amount below gateway minimum of %d cents", e.MinCents)
}

const (
	defaultDescription = "Pagamento via PIX"
	chargeExpiry       = 15 * time.Minute
)

// ChargeInput is the caller-supplied charge request. Amount is kept untyped
// because the frontend sends either a JSON number or a numeric string; no
// field is trusted until normalized.
type ChargeInput struct {
	Amount      any
	Description string
	Name        string
	Email       string
	WebhookURL  string
	Metadata    map[string]any
}

// IPixChargeUseCase creates charges on the active gateway and polls their status.
type IPixChargeUseCase interface {
	CreateCharge(ctx context.Context, input ChargeInput) (entities.PixCharge, error)
	GetChargeStatus(ctx context.Context, id string) (entities.ChargeStatusView, error)
}

type PixChargeUseCase struct {
	gateway           interfaces.IPixGateway
	repo              interfaces.ITransactionRepository
	qr                interfaces.IQRCodeImageResolver
	defaultWebhookURL string
}

var _ IPixChargeUseCase = (*PixChargeUseCase)(nil)

func NewPixChargeUseCase(
	gateway interfaces.IPixGateway,
	repo interfaces.ITransactionRepository,
	qr interfaces.IQRCodeImageResolver,
	defaultWebhookURL string,
) *PixChargeUseCase {
	return &PixChargeUseCase{
		gateway:           gateway,
		repo:              repo,
		qr:                qr,
		defaultWebhookURL: defaultWebhookURL,
	}
}

func (u *PixChargeUseCase) CreateCharge(ctx context.Context, input ChargeInput) (entities.PixCharge, error) {
	if u.gateway == nil {
		log.Printf("[pix][usecase] gateway not configured")
		return entities.PixCharge{}, ErrGatewayNotConfigured
	}

	raw, err := entities.ParseAmountValue(input.Amount)
	if err != nil {
		log.Printf("[pix][usecase] amount rejected value=%v err=%v", input.Amount, err)
		return entities.PixCharge{}, err
	}

	cents := entities.NormalizeAmountCents(raw)
	if min := u.gateway.MinAmountCents(); cents < min {
		log.Printf("[pix][usecase] amount below minimum cents=%d min=%d", cents, min)
		return entities.PixCharge{}, &MinimumAmountError{MinCents: min}
	}
	log.Printf("[pix][usecase] create start gateway=%s raw=%v cents=%d", u.gateway.Name(), raw, cents)

	order := entities.ChargeOrder{
		AmountCents: cents,
		Description: strings.TrimSpace(input.Description),
		Customer: entities.SynthesizeCustomer(
			input.Name,
			input.Email,
			metadataString(input.Metadata, "document"),
			metadataString(input.Metadata, "phone"),
		),
		WebhookURL:  strings.TrimSpace(input.WebhookURL),
		ExternalRef: metadataString(input.Metadata, "identifier"),
		Metadata:    input.Metadata,
	}
	if order.Description == "" {
		order.Description = defaultDescription
	}
	if order.WebhookURL == "" {
		order.WebhookURL = u.defaultWebhookURL
	}
	if order.ExternalRef == "" {
		order.ExternalRef = newExternalRef()
	}

	charge, err := u.gateway.CreateCharge(ctx, order)
	if err != nil {
		log.Printf("[pix][usecase] gateway create failed gateway=%s err=%v", u.gateway.Name(), err)
		return entities.PixCharge{}, err
	}

	if charge.Code == "" && charge.CodeImage == "" && charge.ImageURL == "" {
		log.Printf("[pix][usecase] no payment code in gateway response gateway=%s id=%s", u.gateway.Name(), charge.ID)
		return entities.PixCharge{}, entities.ErrPaymentCodeNotFound
	}

	if u.qr != nil {
		charge.CodeImage = u.qr.Resolve(ctx, charge.CodeImage, charge.ImageURL, charge.Code)
	}
	if charge.Code == "" && charge.CodeImage == "" {
		log.Printf("[pix][usecase] no payment code after image resolution gateway=%s id=%s", u.gateway.Name(), charge.ID)
		return entities.PixCharge{}, entities.ErrPaymentCodeNotFound
	}

	// The normalized amount is authoritative regardless of what the
	// provider echoed back.
	charge.AmountCents = cents

	now := time.Now().UTC()
	if charge.CreatedAt == "" {
		charge.CreatedAt = now.Format(time.RFC3339)
	}
	if charge.ExpiresAt == "" {
		charge.ExpiresAt = now.Add(chargeExpiry).Format(time.RFC3339)
	}
	if charge.Status == "" {
		charge.Status = entities.ChargeStatusWaiting
	}

	u.saveTransaction(ctx, order, charge)

	log.Printf("[pix][usecase] create success gateway=%s id=%s cents=%d status=%s", u.gateway.Name(), charge.ID, cents, charge.Status)
	return charge, nil
}

// saveTransaction records the charge for the webhook flow. Best effort: the
// charge was already created on the provider, so a storage failure must not
// fail the request.
func (u *PixChargeUseCase) saveTransaction(ctx context.Context, order entities.ChargeOrder, charge entities.PixCharge) {
	if u.repo == nil || charge.ID == "" {
		return
	}

	t := entities.Transaction{
		TransactionID:    charge.ID,
		ExternalRef:      order.ExternalRef,
		Status:           charge.Status,
		AmountCents:      charge.AmountCents,
		PaymentMethod:    "pix",
		CustomerName:     order.Customer.Name,
		CustomerEmail:    order.Customer.Email,
		CustomerPhone:    order.Customer.Phone,
		CustomerDocument: order.Customer.Document,
		Tracking:         trackingFromMetadata(order.Metadata),
		CreatedAt:        time.Now().UTC(),
	}
	if _, err := u.repo.Save(ctx, t); err != nil {
		log.Printf("[pix][usecase] transaction save failed id=%s err=%v", charge.ID, err)
	}
}

func (u *PixChargeUseCase) GetChargeStatus(ctx context.Context, id string) (entities.ChargeStatusView, error) {
	if u.gateway == nil {
		return entities.ChargeStatusView{}, ErrGatewayNotConfigured
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ChargeStatusView{}, ErrChargeIDRequired
	}

	log.Printf("[pix][usecase] status poll gateway=%s id=%s", u.gateway.Name(), id)
	view, err := u.gateway.GetCharge(ctx, id)
	if err != nil {
		log.Printf("[pix][usecase] status poll failed gateway=%s id=%s err=%v", u.gateway.Name(), id, err)
		return entities.ChargeStatusView{}, err
	}
	return view, nil
}

func newExternalRef() string {
	return fmt.Sprintf("pix-%d-%s", time.Now().Unix(), uuid.NewString()[:8])
}

func metadataString(metadata map[string]any, key string) string {
	if metadata == nil {
		return ""
	}
	if s, ok := metadata[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func trackingFromMetadata(metadata map[string]any) entities.TrackingParams {
	return entities.TrackingParams{
		Src:         metadataString(metadata, "src"),
		Sck:         metadataString(metadata, "sck"),
		UTMSource:   metadataString(metadata, "utm_source"),
		UTMCampaign: metadataString(metadata, "utm_campaign"),
		UTMMedium:   metadataString(metadata, "utm_medium"),
		UTMContent:  metadataString(metadata, "utm_content"),
		UTMTerm:     metadataString(metadata, "utm_term"),
	}
}
