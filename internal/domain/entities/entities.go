package entities

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrItemNotFound      = errors.New("item not found in stock")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrSaveFailed        = errors.New("failed to save inventory")
)

// Ledger maps item names to their current quantities. An item reaching
// quantity zero is removed from the map entirely, so every entry holds a
// strictly positive quantity and key absence means quantity zero.
type Ledger map[string]int

// Clone returns a defensive copy of the ledger.
func (l Ledger) Clone() Ledger {
	cloned := make(Ledger, len(l))
	for name, qty := range l {
		cloned[name] = qty
	}
	return cloned
}

// AuditEventType identifies the kind of mutation an audit event records
type AuditEventType string

const (
	AuditStockAdded   AuditEventType = "stock_added"
	AuditStockRemoved AuditEventType = "stock_removed"
)

// AuditEvent is a discrete record of a mutating inventory operation
type AuditEvent struct {
	ID         uuid.UUID      `json:"id"`
	Type       AuditEventType `json:"type"`
	Item       string         `json:"item"`
	Quantity   int            `json:"quantity"`
	Message    string         `json:"message"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// NewStockAddedEvent builds the audit event for a successful add
func NewStockAddedEvent(item string, qty int) AuditEvent {
	return AuditEvent{
		ID:         uuid.New(),
		Type:       AuditStockAdded,
		Item:       item,
		Quantity:   qty,
		Message:    fmt.Sprintf("Added %d of %s", qty, item),
		OccurredAt: time.Now(),
	}
}

// NewStockRemovedEvent builds the audit event for a successful remove
func NewStockRemovedEvent(item string, qty int) AuditEvent {
	return AuditEvent{
		ID:         uuid.New(),
		Type:       AuditStockRemoved,
		Item:       item,
		Quantity:   qty,
		Message:    fmt.Sprintf("Removed %d of %s", qty, item),
		OccurredAt: time.Now(),
	}
}
