package interfaces

import (
	"context"

	"github.com/cietz/laranjinhao/internal/domain/entities"
)

// IAnalyticsForwarder is the consumer interface for marketing analytics.
// Forwarding failures are reported in the result, never as an error that
// could fail webhook processing.
type IAnalyticsForwarder interface {
	Forward(ctx context.Context, order entities.ConversionOrder) entities.ForwardResult
}
