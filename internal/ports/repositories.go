package ports

import (
	"context"

	"github.com/stockkeeper/core/internal/domain/entities"
)

// LedgerRepository defines the interface for ledger persistence operations
type LedgerRepository interface {
	Load(ctx context.Context, path string) (entities.Ledger, error)
	Save(ctx context.Context, path string, ledger entities.Ledger) error
}
