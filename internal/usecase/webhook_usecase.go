package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/cietz/laranjinhao/internal/domain/entities"
	"github.com/cietz/laranjinhao/internal/usecase/interfaces"
)

var (
	ErrInvalidWebhookPayload = errors.New("invalid webhook payload")
	ErrUnknownWebhookFormat  = errors.New("unknown webhook format")
	ErrMissingWebhookFields  = errors.New("missing required webhook fields")
)

// WebhookOutcome summarizes what was done with a provider event.
type WebhookOutcome struct {
	Provider      string
	TransactionID string
	Status        entities.ChargeStatus
	StoredUpdated bool
	Forwarded     bool
	ForwardError  string
	ForwardData   json.RawMessage
}

// IWebhookUseCase processes provider transaction events.
type IWebhookUseCase interface {
	Process(ctx context.Context, payload json.RawMessage) (WebhookOutcome, error)
}

type WebhookUseCase struct {
	repo      interfaces.ITransactionRepository
	forwarder interfaces.IAnalyticsForwarder
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(repo interfaces.ITransactionRepository, forwarder interfaces.IAnalyticsForwarder) *WebhookUseCase {
	return &WebhookUseCase{repo: repo, forwarder: forwarder}
}

// marchaWebhookEvent is the envelope Marcha posts: the transaction lives
// under data.
type marchaWebhookEvent struct {
	Type string `json:"type"`
	Data struct {
		ID            json.Number `json:"id"`
		Amount        int64       `json:"amount"`
		PaymentMethod string      `json:"paymentMethod"`
		Status        string      `json:"status"`
		ExternalRef   string      `json:"externalRef"`
		CreatedAt     string      `json:"createdAt"`
		UpdatedAt     string      `json:"updatedAt"`
		PaidAt        string      `json:"paidAt"`
		IP            string      `json:"ip"`
		Customer      struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Phone    string `json:"phone"`
			Document struct {
				Number string `json:"number"`
			} `json:"document"`
		} `json:"customer"`
	} `json:"data"`
}

// paradiseWebhookEvent is the flat format Paradise posts.
type paradiseWebhookEvent struct {
	WebhookType   string `json:"webhook_type"`
	TransactionID string `json:"transaction_id"`
	ExternalID    string `json:"external_id"`
	Status        string `json:"status"`
	RawStatus     string `json:"raw_status"`
	Amount        int64  `json:"amount"`
	PaymentMethod string `json:"payment_method"`
	Timestamp     string `json:"timestamp"`
	Customer      struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Document string `json:"document"`
		Phone    string `json:"phone"`
	} `json:"customer"`
	Tracking *entities.TrackingParams `json:"tracking"`
}

// webhookEvent is the provider-neutral view both formats collapse into.
type webhookEvent struct {
	provider      string
	transactionID string
	externalRef   string
	status        entities.ChargeStatus
	rawStatus     string
	amountCents   int64
	paymentMethod string
	customer      entities.Customer
	customerIP    string
	tracking      *entities.TrackingParams
	createdAt     time.Time
	paidAt        time.Time
}

func (u *WebhookUseCase) Process(ctx context.Context, payload json.RawMessage) (WebhookOutcome, error) {
	if len(payload) == 0 || !json.Valid(payload) {
		return WebhookOutcome{}, ErrInvalidWebhookPayload
	}

	event, err := classifyWebhook(payload)
	if err != nil {
		log.Printf("[webhook][usecase] classify failed err=%v", err)
		return WebhookOutcome{}, err
	}
	log.Printf("[webhook][usecase] event provider=%s id=%s status=%s raw_status=%s", event.provider, event.transactionID, event.status, event.rawStatus)

	outcome := WebhookOutcome{
		Provider:      event.provider,
		TransactionID: event.transactionID,
		Status:        event.status,
	}

	stored := u.lookupTransaction(ctx, event)
	if stored.TransactionID != "" {
		paidAt := time.Time{}
		if event.status == entities.ChargeStatusPaid {
			paidAt = event.paidAt
			if paidAt.IsZero() {
				paidAt = time.Now().UTC()
			}
		}
		if _, err := u.repo.UpdateStatus(ctx, stored.TransactionID, event.status, paidAt); err != nil {
			log.Printf("[webhook][usecase] status update failed id=%s err=%v", stored.TransactionID, err)
		} else {
			outcome.StoredUpdated = true
		}
	} else {
		log.Printf("[webhook][usecase] no stored transaction id=%s external_ref=%s", event.transactionID, event.externalRef)
	}

	if u.forwarder != nil && (event.status == entities.ChargeStatusPaid || event.status == entities.ChargeStatusRefunded) {
		result := u.forwarder.Forward(ctx, buildConversionOrder(event, stored))
		outcome.Forwarded = result.Success
		outcome.ForwardError = result.Error
		outcome.ForwardData = result.Data
		if !result.Success {
			log.Printf("[webhook][usecase] analytics forward failed id=%s err=%s", event.transactionID, result.Error)
		}
	}

	return outcome, nil
}

func (u *WebhookUseCase) lookupTransaction(ctx context.Context, event webhookEvent) entities.Transaction {
	if u.repo == nil {
		return entities.Transaction{}
	}

	stored, err := u.repo.GetByID(ctx, event.transactionID)
	if err != nil {
		log.Printf("[webhook][usecase] lookup by id failed id=%s err=%v", event.transactionID, err)
	}
	if stored.TransactionID == "" && event.externalRef != "" {
		stored, err = u.repo.GetByExternalRef(ctx, event.externalRef)
		if err != nil {
			log.Printf("[webhook][usecase] lookup by external_ref failed ref=%s err=%v", event.externalRef, err)
		}
	}
	return stored
}

func classifyWebhook(payload json.RawMessage) (webhookEvent, error) {
	var probe struct {
		Type          string          `json:"type"`
		Data          json.RawMessage `json:"data"`
		WebhookType   string          `json:"webhook_type"`
		TransactionID string          `json:"transaction_id"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return webhookEvent{}, ErrInvalidWebhookPayload
	}

	switch {
	case probe.Type == "transaction" && len(probe.Data) > 0:
		return parseMarchaWebhook(payload)
	case probe.WebhookType == "transaction" && probe.TransactionID != "":
		return parseParadiseWebhook(payload)
	default:
		return webhookEvent{}, ErrUnknownWebhookFormat
	}
}

func parseMarchaWebhook(payload json.RawMessage) (webhookEvent, error) {
	var ev marchaWebhookEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return webhookEvent{}, ErrInvalidWebhookPayload
	}
	id := ev.Data.ID.String()
	if id == "" || ev.Data.Amount == 0 {
		return webhookEvent{}, ErrMissingWebhookFields
	}

	return webhookEvent{
		provider:      "marcha",
		transactionID: id,
		externalRef:   ev.Data.ExternalRef,
		status:        entities.CollapseMarchaStatus(ev.Data.Status),
		rawStatus:     ev.Data.Status,
		amountCents:   ev.Data.Amount,
		paymentMethod: ev.Data.PaymentMethod,
		customer: entities.Customer{
			Name:     ev.Data.Customer.Name,
			Email:    ev.Data.Customer.Email,
			Phone:    ev.Data.Customer.Phone,
			Document: ev.Data.Customer.Document.Number,
		},
		customerIP: ev.Data.IP,
		createdAt:  parseEventTime(ev.Data.CreatedAt),
		paidAt:     parseEventTime(ev.Data.PaidAt),
	}, nil
}

func parseParadiseWebhook(payload json.RawMessage) (webhookEvent, error) {
	var ev paradiseWebhookEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return webhookEvent{}, ErrInvalidWebhookPayload
	}
	if ev.TransactionID == "" || ev.Amount == 0 || ev.Customer.Name == "" {
		return webhookEvent{}, ErrMissingWebhookFields
	}

	event := webhookEvent{
		provider:      "paradise",
		transactionID: ev.TransactionID,
		externalRef:   ev.ExternalID,
		status:        entities.CollapseParadiseStatus(ev.Status),
		rawStatus:     ev.Status,
		amountCents:   ev.Amount,
		paymentMethod: ev.PaymentMethod,
		customer: entities.Customer{
			Name:     ev.Customer.Name,
			Email:    ev.Customer.Email,
			Phone:    ev.Customer.Phone,
			Document: ev.Customer.Document,
		},
		tracking:  ev.Tracking,
		createdAt: parseEventTime(ev.Timestamp),
	}
	if event.status == entities.ChargeStatusPaid {
		event.paidAt = event.createdAt
	}
	return event, nil
}

// buildConversionOrder merges the event with stored tracking data. Stored
// parameters win: they were captured on the page that created the charge.
func buildConversionOrder(event webhookEvent, stored entities.Transaction) entities.ConversionOrder {
	order := entities.ConversionOrder{
		OrderID:       event.transactionID,
		PaymentMethod: event.paymentMethod,
		Status:        event.status,
		AmountCents:   event.amountCents,
		Customer:      event.customer,
		CustomerIP:    event.customerIP,
		CreatedAt:     event.createdAt,
		PaidAt:        event.paidAt,
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = "pix"
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	if event.status == entities.ChargeStatusRefunded {
		order.RefundedAt = order.CreatedAt
	}

	if event.tracking != nil {
		order.Tracking = *event.tracking
	}
	if stored.TransactionID != "" {
		order.Tracking = stored.Tracking
		if stored.CustomerIP != "" {
			order.CustomerIP = stored.CustomerIP
		}
	}
	return order
}

func parseEventTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	// Numeric unix timestamps show up on some provider payloads.
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(n, 0).UTC()
	}
	return time.Time{}
}
