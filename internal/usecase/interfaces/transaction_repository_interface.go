package interfaces

import (
	"context"
	"time"

	"github.com/cietz/laranjinhao/internal/domain/entities"
)

// ITransactionRepository is the persistence port for created charges.
// Lookups return a zero-valued Transaction (empty TransactionID) when
// nothing matches.
type ITransactionRepository interface {
	Save(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	GetByID(ctx context.Context, transactionID string) (entities.Transaction, error)
	GetByExternalRef(ctx context.Context, externalRef string) (entities.Transaction, error)
	UpdateStatus(ctx context.Context, transactionID string, status entities.ChargeStatus, paidAt time.Time) (entities.Transaction, error)
}
