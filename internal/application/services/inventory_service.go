package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/stockkeeper/core/internal/domain/entities"
	"github.com/stockkeeper/core/internal/infrastructure/logger"
	"github.com/stockkeeper/core/internal/infrastructure/metrics"
	"github.com/stockkeeper/core/internal/ports"
)

// InventoryService handles stock ledger operations
type InventoryService struct {
	mu       sync.Mutex
	ledger   entities.Ledger
	repo     ports.LedgerRepository
	logger   *logger.Logger
	metrics  *metrics.Metrics
	sinks    []ports.AuditSink
	validate *validator.Validate
}

// NewInventoryService creates a new inventory service with an empty ledger
func NewInventoryService(repo ports.LedgerRepository, logger *logger.Logger, metrics *metrics.Metrics, sinks ...ports.AuditSink) *InventoryService {
	return &InventoryService{
		ledger:   make(entities.Ledger),
		repo:     repo,
		logger:   logger,
		metrics:  metrics,
		sinks:    sinks,
		validate: validator.New(),
	}
}

// AddStock increases an item's quantity, creating the entry if absent
func (s *InventoryService) AddStock(ctx context.Context, req ports.AddStockRequest) error {
	if err := s.validate.Struct(req); err != nil {
		s.metrics.OperationErrors.WithLabelValues("add").Inc()
		return fmt.Errorf("%w: %v", entities.ErrInvalidArgument, err)
	}

	s.mu.Lock()
	next := s.ledger[req.Item] + req.Quantity
	// A zero result means a zero-quantity add on an absent item; creating
	// the entry would break the no-zero-entries invariant.
	if next > 0 {
		s.ledger[req.Item] = next
	}
	s.metrics.LedgerItems.Set(float64(len(s.ledger)))
	s.mu.Unlock()

	s.metrics.OperationsTotal.WithLabelValues("add").Inc()
	s.publish(entities.NewStockAddedEvent(req.Item, req.Quantity))

	return nil
}

// RemoveStock decreases an item's quantity, deleting the entry at zero
func (s *InventoryService) RemoveStock(ctx context.Context, req ports.RemoveStockRequest) error {
	if err := s.validate.Struct(req); err != nil {
		s.metrics.OperationErrors.WithLabelValues("remove").Inc()
		return fmt.Errorf("%w: %v", entities.ErrInvalidArgument, err)
	}

	s.mu.Lock()
	current, exists := s.ledger[req.Item]
	if !exists {
		s.mu.Unlock()
		s.metrics.OperationErrors.WithLabelValues("remove").Inc()
		return fmt.Errorf("remove %q: %w", req.Item, entities.ErrItemNotFound)
	}
	if current < req.Quantity {
		s.mu.Unlock()
		s.metrics.OperationErrors.WithLabelValues("remove").Inc()
		return fmt.Errorf("remove %d of %q with %d on hand: %w", req.Quantity, req.Item, current, entities.ErrInsufficientStock)
	}

	remaining := current - req.Quantity
	if remaining == 0 {
		delete(s.ledger, req.Item)
	} else {
		s.ledger[req.Item] = remaining
	}
	s.metrics.LedgerItems.Set(float64(len(s.ledger)))
	s.mu.Unlock()

	s.metrics.OperationsTotal.WithLabelValues("remove").Inc()
	s.publish(entities.NewStockRemovedEvent(req.Item, req.Quantity))

	return nil
}

// GetQuantity returns an item's current quantity, 0 when absent
func (s *InventoryService) GetQuantity(ctx context.Context, item string) (int, error) {
	if item == "" {
		return 0, fmt.Errorf("%w: item name must not be empty", entities.ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledger[item], nil
}

// ListLowStock returns the names of items with quantity strictly below
// threshold, sorted by name
func (s *InventoryService) ListLowStock(ctx context.Context, threshold int) ([]string, error) {
	if threshold < 0 {
		return nil, fmt.Errorf("%w: threshold must be non-negative, got %d", entities.ErrInvalidArgument, threshold)
	}

	s.mu.Lock()
	low := make([]string, 0)
	for name, qty := range s.ledger {
		if qty < threshold {
			low = append(low, name)
		}
	}
	s.mu.Unlock()

	sort.Strings(low)

	return low, nil
}

// Report writes a human-readable listing of all items and quantities
func (s *InventoryService) Report(ctx context.Context, w io.Writer) error {
	snapshot := s.Snapshot(ctx)

	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)

	if _, err := fmt.Fprintln(w, "Items Report"); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	for _, name := range names {
		if _, err := fmt.Fprintf(w, "%s -> %d\n", name, snapshot[name]); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	return nil
}

// Snapshot returns a defensive copy of the current ledger
func (s *InventoryService) Snapshot(ctx context.Context) entities.Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledger.Clone()
}

// Load replaces the ledger wholesale with the persisted state at path.
// Load never fails: a missing or unreadable file degrades to an empty
// ledger and the condition is logged.
func (s *InventoryService) Load(ctx context.Context, path string) {
	loaded, err := s.repo.Load(ctx, path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.logger.Warnw("Inventory file not found, starting with empty inventory", "path", path)
		loaded = make(entities.Ledger)
	case err != nil:
		s.logger.WithError(err).Errorw("Failed to load inventory, starting with empty inventory", "path", path)
		loaded = make(entities.Ledger)
	default:
		s.logger.Infow("Loaded inventory", "path", path, "items", len(loaded))
	}

	s.mu.Lock()
	s.ledger = loaded
	s.metrics.LedgerItems.Set(float64(len(s.ledger)))
	s.mu.Unlock()

	s.metrics.OperationsTotal.WithLabelValues("load").Inc()
}

// Save persists the current ledger to path, overwriting any existing file
func (s *InventoryService) Save(ctx context.Context, path string) error {
	snapshot := s.Snapshot(ctx)

	if err := s.repo.Save(ctx, path, snapshot); err != nil {
		s.metrics.OperationErrors.WithLabelValues("save").Inc()
		s.logger.WithError(err).Errorw("Failed to save inventory", "path", path)
		return fmt.Errorf("%w: %v", entities.ErrSaveFailed, err)
	}

	s.metrics.OperationsTotal.WithLabelValues("save").Inc()
	s.logger.Infow("Saved inventory", "path", path, "items", len(snapshot))

	return nil
}

func (s *InventoryService) publish(event entities.AuditEvent) {
	for _, sink := range s.sinks {
		sink.Record(event)
	}
	s.logger.LogAuditEvent(event)
}
