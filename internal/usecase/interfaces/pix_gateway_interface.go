package interfaces

import (
	"context"

	"github.com/cietz/laranjinhao/internal/domain/entities"
)

// IPixGateway abstracts one external PIX payment provider. Each deployment
// wires exactly one implementation; adapters are pure translation layers with
// no side effects beyond the outbound call.
type IPixGateway interface {
	// Name identifies the provider in logs and stored transactions.
	Name() string

	// MinAmountCents is the provider's minimum charge, enforced before any
	// outbound call is made.
	MinAmountCents() int64

	// CreateCharge builds the provider-specific request from the normalized
	// order, issues it, and maps success/refusal/error shapes onto the
	// canonical charge.
	CreateCharge(ctx context.Context, order entities.ChargeOrder) (entities.PixCharge, error)

	// GetCharge re-queries the provider for the charge's current state.
	GetCharge(ctx context.Context, id string) (entities.ChargeStatusView, error)
}
