package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/cietz/laranjinhao/internal/usecase"
	"github.com/cietz/laranjinhao/pkg"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives payment status notifications from providers.

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// Receive accepts a provider notification, updates the stored transaction and
// forwards conversion events downstream. Providers retry on non-2xx, so only
// payloads we can never process return an error status.
func (h *WebhookHandler) Receive(c *gin.Context) {
	payload, err := readWebhookPayload(c)
	if err != nil {
		log.Printf("[webhook][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_WEBHOOK", "Corpo do webhook inválido", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	outcome, err := h.usecase.Process(c.Request.Context(), payload)
	if err != nil {
		log.Printf("[webhook][handler] process failed err=%v", err)
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[webhook][handler] processed provider=%s transaction_id=%s status=%s forwarded=%t",
		outcome.Provider, outcome.TransactionID, outcome.Status, outcome.Forwarded)

	c.JSON(http.StatusOK, gin.H{
		"received":       true,
		"provider":       outcome.Provider,
		"transaction_id": outcome.TransactionID,
		"status":         outcome.Status,
		"updated":        outcome.StoredUpdated,
		"forwarded":      outcome.Forwarded,
	})
}

func readWebhookPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, errors.New("webhook body is empty")
	}
	if !json.Valid(raw) {
		return nil, errors.New("webhook body is not valid json")
	}
	return json.RawMessage(raw), nil
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWebhookPayload), errors.Is(err, usecase.ErrMissingWebhookFields):
		return pkg.NewDomainErrorSimple("INVALID_WEBHOOK", "Corpo do webhook inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownWebhookFormat):
		return pkg.NewDomainErrorSimple("UNKNOWN_WEBHOOK_FORMAT", "Formato de webhook não reconhecido", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro ao processar webhook", err, http.StatusInternalServerError)
	}
}
