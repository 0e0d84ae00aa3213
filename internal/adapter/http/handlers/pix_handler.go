package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	request "github.com/cietz/laranjinhao/internal/adapter/http/dto/request"
	response "github.com/cietz/laranjinhao/internal/adapter/http/dto/response"
	"github.com/cietz/laranjinhao/internal/domain/entities"
	"github.com/cietz/laranjinhao/internal/usecase"
	"github.com/cietz/laranjinhao/pkg"

	"github.com/gin-gonic/gin"
)

// PixHandler handles HTTP requests for PIX charges.

type PixHandler struct {
	usecase usecase.IPixChargeUseCase
}

func NewPixHandler(uc usecase.IPixChargeUseCase) *PixHandler {
	return &PixHandler{usecase: uc}
}

// CreateCharge creates a PIX charge on the configured provider.
func (h *PixHandler) CreateCharge(c *gin.Context) {
	var req request.PixChargeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[pix][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Corpo da requisição inválido", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	input := usecase.ChargeInput{
		Amount:      req.ResolveAmount(),
		Description: req.Description,
		Name:        req.Name,
		Email:       req.Email,
		WebhookURL:  req.WebhookURL,
		Metadata:    req.Metadata,
	}

	charge, err := h.usecase.CreateCharge(c.Request.Context(), input)
	if err != nil {
		log.Printf("[pix][handler] create failed err=%v", err)
		appErr := mapPixChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[pix][handler] create success id=%s amount_cents=%d status=%s", charge.ID, charge.AmountCents, charge.Status)

	c.JSON(http.StatusOK, response.FromPixCharge(charge))
}

// GetChargeStatus polls the provider for the charge identified by ?id=.
func (h *PixHandler) GetChargeStatus(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		appErr := pkg.NewDomainErrorSimple("MISSING_ID", "ID do pagamento é obrigatório", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[pix][handler] status start id=%s", id)

	view, err := h.usecase.GetChargeStatus(c.Request.Context(), id)
	if err != nil {
		log.Printf("[pix][handler] status failed id=%s err=%v", id, err)
		appErr := mapPixChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[pix][handler] status success id=%s status=%s", id, view.Status)

	c.JSON(http.StatusOK, response.FromChargeStatusView(view))
}

func mapPixChargeError(err error) *pkg.AppError {
	var minErr *usecase.MinimumAmountError
	var rejection *entities.GatewayRejectionError
	var transport *entities.GatewayTransportError

	switch {
	case errors.Is(err, entities.ErrAmountRequired):
		return pkg.NewDomainErrorSimple("AMOUNT_REQUIRED", "Campo amount é obrigatório", http.StatusBadRequest)
	case errors.Is(err, entities.ErrAmountNotNumeric):
		return pkg.NewDomainErrorSimple("AMOUNT_INVALID", "Campo amount deve ser numérico", http.StatusBadRequest)
	case errors.As(err, &minErr):
		msg := fmt.Sprintf("Valor mínimo permitido: %.2f", entities.AmountDecimal(minErr.MinCents))
		return pkg.NewDomainErrorSimple("AMOUNT_BELOW_MINIMUM", msg, http.StatusBadRequest)
	case errors.As(err, &rejection):
		return pkg.NewDomainErrorSimple("PAYMENT_REFUSED", rejection.Reason, http.StatusBadRequest).
			WithStatus("refused").
			WithRemote(rejection.Raw)
	case errors.As(err, &transport):
		return mapTransportError(transport)
	case errors.Is(err, entities.ErrPaymentCodeNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_CODE_NOT_FOUND", "Código PIX não retornado pelo provedor", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrChargeIDRequired):
		return pkg.NewDomainErrorSimple("MISSING_ID", "ID do pagamento é obrigatório", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayNotConfigured), errors.Is(err, usecase.ErrGatewayCredentialsEmpty):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Gateway de pagamento não configurado", http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro ao gerar pagamento PIX", err, http.StatusInternalServerError)
	}
}

// mapTransportError proxies the provider's status verbatim whenever it is a
// valid error status; only a missing or nonsensical code gets collapsed.
func mapTransportError(t *entities.GatewayTransportError) *pkg.AppError {
	switch t.StatusCode {
	case http.StatusBadRequest:
		return pkg.NewDomainErrorSimple("PROVIDER_BAD_REQUEST", t.Message, http.StatusBadRequest).WithRemote(t.Remote)
	case http.StatusUnauthorized:
		return pkg.NewDomainErrorSimple("PROVIDER_UNAUTHORIZED", t.Message, http.StatusUnauthorized).WithRemote(t.Remote)
	case 0:
		return pkg.NewDomainErrorSimple("PROVIDER_UNREACHABLE", "Erro ao comunicar com o provedor de pagamento", http.StatusInternalServerError)
	default:
		status := t.StatusCode
		if status < http.StatusBadRequest || status > 599 {
			status = http.StatusBadGateway
		}
		return pkg.NewDomainErrorSimple("PROVIDER_ERROR", t.Message, status).WithRemote(t.Remote)
	}
}
