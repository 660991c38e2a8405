package ports

import (
	"context"
	"io"

	"github.com/stockkeeper/core/internal/domain/entities"
)

// InventoryService interface for inventory ledger operations
type InventoryService interface {
	AddStock(ctx context.Context, req AddStockRequest) error
	RemoveStock(ctx context.Context, req RemoveStockRequest) error
	GetQuantity(ctx context.Context, item string) (int, error)
	ListLowStock(ctx context.Context, threshold int) ([]string, error)
	Report(ctx context.Context, w io.Writer) error
	Snapshot(ctx context.Context) entities.Ledger
	Load(ctx context.Context, path string)
	Save(ctx context.Context, path string) error
}

// AuditSink consumes audit events produced by mutating operations
type AuditSink interface {
	Record(event entities.AuditEvent)
}

// Request Types

type AddStockRequest struct {
	Item     string `json:"item" validate:"required"`
	Quantity int    `json:"quantity" validate:"min=0"`
}

type RemoveStockRequest struct {
	Item     string `json:"item" validate:"required"`
	Quantity int    `json:"quantity" validate:"min=1"`
}
