package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/stockkeeper/core/internal/domain/entities"
	"github.com/stockkeeper/core/internal/infrastructure/logger"
	"github.com/stockkeeper/core/internal/ports"
)

// LedgerRepositoryImpl implements the LedgerRepository interface over a
// single JSON file
type LedgerRepositoryImpl struct {
	logger *logger.Logger
}

// NewLedgerRepository creates a new file-backed ledger repository
func NewLedgerRepository(logger *logger.Logger) ports.LedgerRepository {
	return &LedgerRepositoryImpl{logger: logger}
}

// Load reads and parses the JSON ledger at path. Entries whose values are
// not non-negative integers are skipped with a warning; the returned
// ledger contains only the entries that passed filtering. A missing file
// surfaces as an error wrapping fs.ErrNotExist.
func (r *LedgerRepositoryImpl) Load(ctx context.Context, path string) (entities.Ledger, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read inventory file: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse inventory file %s: %w", path, err)
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("parse inventory file %s: top-level value must be a JSON object", path)
	}

	ledger := make(entities.Ledger, len(obj))
	for name, value := range obj {
		qty, ok := coerceQuantity(value)
		if !ok {
			r.logger.Warnw("Skipping entry with non-integer quantity", "item", name, "value", value)
			continue
		}
		if qty < 0 {
			r.logger.Warnw("Skipping entry with negative quantity", "item", name, "quantity", qty)
			continue
		}
		ledger[name] = qty
	}

	return ledger, nil
}

// Save serializes the ledger as an indented JSON object and writes it to
// path, overwriting any existing file
func (r *LedgerRepositoryImpl) Save(ctx context.Context, path string, ledger entities.Ledger) error {
	data, err := json.MarshalIndent(ledger, "", "  ")
	if err != nil {
		return fmt.Errorf("encode inventory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write inventory file %s: %w", path, err)
	}

	return nil
}

// coerceQuantity accepts JSON numbers with an integral value. Strings,
// booleans, nulls, and fractional numbers are rejected.
func coerceQuantity(value any) (int, bool) {
	num, ok := value.(json.Number)
	if !ok {
		return 0, false
	}

	if n, err := num.Int64(); err == nil {
		if n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	}

	// Values like 7.0 arrive as floats but still denote integers.
	f, err := num.Float64()
	// math.MaxInt rounds up when converted to float64, so the upper bound
	// is exclusive.
	if err != nil || f != math.Trunc(f) || f < math.MinInt || f >= math.MaxInt {
		return 0, false
	}

	return int(f), true
}
