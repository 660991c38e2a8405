package audit

import (
	"sync"

	"github.com/stockkeeper/core/internal/domain/entities"
	"github.com/stockkeeper/core/internal/infrastructure/logger"
	"github.com/stockkeeper/core/internal/ports"
)

// LoggerSink writes audit events to the application logger
type LoggerSink struct {
	logger *logger.Logger
}

// NewLoggerSink creates a sink that forwards audit events to the logger
func NewLoggerSink(logger *logger.Logger) ports.AuditSink {
	return &LoggerSink{logger: logger.WithComponent("audit")}
}

func (s *LoggerSink) Record(event entities.AuditEvent) {
	s.logger.Infow(event.Message,
		"event_id", event.ID,
		"event_type", event.Type,
		"item", event.Item,
		"quantity", event.Quantity,
		"occurred_at", event.OccurredAt,
	)
}

// MemorySink buffers audit events in memory so callers can inspect the
// audit trail of a sequence of operations without any I/O
type MemorySink struct {
	mu     sync.Mutex
	events []entities.AuditEvent
}

// NewMemorySink creates an empty in-memory audit sink
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Record(event entities.AuditEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, event)
}

// Events returns a copy of all recorded events in arrival order
func (s *MemorySink) Events() []entities.AuditEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := make([]entities.AuditEvent, len(s.events))
	copy(events, s.events)
	return events
}

// Reset discards all recorded events
func (s *MemorySink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = nil
}
