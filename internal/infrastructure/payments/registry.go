package payments

import (
	"fmt"

	"github.com/cietz/laranjinhao/internal/config"
	"github.com/cietz/laranjinhao/internal/usecase/interfaces"
)

// NewGateway wires the single provider this deployment runs against.
// Missing credentials fail the construction of that adapter only; callers
// decide whether to run degraded or refuse to start.
func NewGateway(cfg *config.Config) (interfaces.IPixGateway, error) {
	switch cfg.Gateway.Provider {
	case "marcha":
		return NewMarchaGateway(cfg.Marcha.PublicKey, cfg.Marcha.SecretKey)
	case "paradise":
		return NewParadiseGateway(cfg.Paradise.APIKey)
	case "pushinpay":
		return NewPushinPayGateway(cfg.PushinPay.Token)
	case "abacatepay":
		return NewAbacatePayGateway(cfg.AbacatePay.Token)
	case "mercadopago":
		return NewMercadoPagoGateway(cfg.MercadoPago.AccessToken)
	default:
		return nil, fmt.Errorf("unknown pix gateway %q", cfg.Gateway.Provider)
	}
}
