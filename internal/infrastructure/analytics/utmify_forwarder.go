package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/cietz/laranjinhao/internal/domain/entities"
	"github.com/cietz/laranjinhao/internal/usecase/interfaces"
)

var ErrMissingUTMifyToken = errors.New("missing UTMIFY_API_TOKEN")

const (
	utmifyAPIURL       = "https://api.utmify.com.br/api-credentials/orders"
	utmifyPlatform     = "Laranjinhao"
	utmifyDateLayout   = "2006-01-02 15:04:05"
	utmifyGatewayFee   = 0.03
	forwardHTTPTimeout = 10 * time.Second
)

// UTMifyForwarder posts conversion orders to the UTMify tracking API.
type UTMifyForwarder struct {
	apiURL     string
	apiToken   string
	httpClient *http.Client
}

var _ interfaces.IAnalyticsForwarder = (*UTMifyForwarder)(nil)

func NewUTMifyForwarder(apiToken string) (*UTMifyForwarder, error) {
	if apiToken == "" {
		log.Printf("[analytics][utmify] missing api token")
		return nil, ErrMissingUTMifyToken
	}
	return &UTMifyForwarder{
		apiURL:     utmifyAPIURL,
		apiToken:   apiToken,
		httpClient: &http.Client{Timeout: forwardHTTPTimeout},
	}, nil
}

// utmifyOrder is the wire payload of the orders endpoint. Nullable fields are
// pointers because the API distinguishes null from empty.
type utmifyOrder struct {
	OrderID       string          `json:"orderId"`
	Platform      string          `json:"platform"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"createdAt"`
	ApprovedDate  *string         `json:"approvedDate"`
	RefundedAt    *string         `json:"refundedAt"`
	Customer      utmifyCustomer  `json:"customer"`
	Products      []utmifyProduct `json:"products"`
	Tracking      utmifyTracking  `json:"trackingParameters"`
	Commission    utmifyCommission `json:"commission"`
	IsTest        bool            `json:"isTest"`
}

type utmifyCustomer struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
	Document *string `json:"document"`
	Country  string  `json:"country"`
	IP       *string `json:"ip"`
}

type utmifyProduct struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	PlanID       *string `json:"planId"`
	PlanName     *string `json:"planName"`
	Quantity     int     `json:"quantity"`
	PriceInCents int64   `json:"priceInCents"`
}

type utmifyTracking struct {
	Src         *string `json:"src"`
	Sck         *string `json:"sck"`
	UTMSource   *string `json:"utm_source"`
	UTMCampaign *string `json:"utm_campaign"`
	UTMMedium   *string `json:"utm_medium"`
	UTMContent  *string `json:"utm_content"`
	UTMTerm     *string `json:"utm_term"`
}

type utmifyCommission struct {
	TotalPriceInCents     int64 `json:"totalPriceInCents"`
	GatewayFeeInCents     int64 `json:"gatewayFeeInCents"`
	UserCommissionInCents int64 `json:"userCommissionInCents"`
}

var utmifyStatuses = map[entities.ChargeStatus]string{
	entities.ChargeStatusWaiting:   "waiting_payment",
	entities.ChargeStatusPaid:      "paid",
	entities.ChargeStatusRefused:   "refused",
	entities.ChargeStatusFailed:    "refused",
	entities.ChargeStatusCancelled: "refused",
	entities.ChargeStatusRefunded:  "refunded",
}

func (f *UTMifyForwarder) Forward(ctx context.Context, order entities.ConversionOrder) entities.ForwardResult {
	payload := buildOrderPayload(order)

	body, err := json.Marshal(payload)
	if err != nil {
		return entities.ForwardResult{Error: fmt.Sprintf("marshal payload: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.apiURL, bytes.NewReader(body))
	if err != nil {
		return entities.ForwardResult{Error: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-token", f.apiToken)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		log.Printf("[analytics][utmify] send failed order=%s err=%v", order.OrderID, err)
		return entities.ForwardResult{Error: err.Error()}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[analytics][utmify] api error order=%s status=%d", order.OrderID, resp.StatusCode)
		return entities.ForwardResult{Error: fmt.Sprintf("UTMify API error: %d - %s", resp.StatusCode, string(respBody))}
	}

	log.Printf("[analytics][utmify] order forwarded order=%s status=%s", order.OrderID, payload.Status)
	result := entities.ForwardResult{Success: true}
	if json.Valid(respBody) {
		result.Data = respBody
	}
	return result
}

func buildOrderPayload(order entities.ConversionOrder) utmifyOrder {
	status, ok := utmifyStatuses[order.Status]
	if !ok {
		status = string(order.Status)
	}

	fee := int64(math.Round(float64(order.AmountCents) * utmifyGatewayFee))
	payload := utmifyOrder{
		OrderID:       order.OrderID,
		Platform:      utmifyPlatform,
		PaymentMethod: order.PaymentMethod,
		Status:        status,
		CreatedAt:     formatUTMifyDate(order.CreatedAt),
		ApprovedDate:  optionalDate(order.PaidAt),
		RefundedAt:    optionalDate(order.RefundedAt),
		Customer: utmifyCustomer{
			Name:     order.Customer.Name,
			Email:    order.Customer.Email,
			Phone:    nullable(order.Customer.Phone),
			Document: nullable(order.Customer.Document),
			Country:  "BR",
			IP:       nullable(order.CustomerIP),
		},
		Products: []utmifyProduct{
			{
				ID:           "plano-premium",
				Name:         "Plano Premium",
				Quantity:     1,
				PriceInCents: order.AmountCents,
			},
		},
		Tracking: utmifyTracking{
			Src:         nullable(order.Tracking.Src),
			Sck:         nullable(order.Tracking.Sck),
			UTMSource:   nullable(order.Tracking.UTMSource),
			UTMCampaign: nullable(order.Tracking.UTMCampaign),
			UTMMedium:   nullable(order.Tracking.UTMMedium),
			UTMContent:  nullable(order.Tracking.UTMContent),
			UTMTerm:     nullable(order.Tracking.UTMTerm),
		},
		Commission: utmifyCommission{
			TotalPriceInCents:     order.AmountCents,
			GatewayFeeInCents:     fee,
			UserCommissionInCents: order.AmountCents - fee,
		},
	}
	return payload
}

// formatUTMifyDate renders the YYYY-MM-DD HH:MM:SS (UTC) format the API requires.
func formatUTMifyDate(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(utmifyDateLayout)
}

func optionalDate(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(utmifyDateLayout)
	return &s
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
