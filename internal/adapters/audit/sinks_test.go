package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockkeeper/core/internal/domain/entities"
)

func TestMemorySinkRecordsInOrder(t *testing.T) {
	sink := NewMemorySink()

	first := entities.NewStockAddedEvent("apple", 5)
	second := entities.NewStockRemovedEvent("apple", 2)
	sink.Record(first)
	sink.Record(second)

	events := sink.Events()
	require.Len(t, events, 2)
	assert.Equal(t, first.ID, events[0].ID)
	assert.Equal(t, second.ID, events[1].ID)
}

func TestMemorySinkEventsReturnsCopy(t *testing.T) {
	sink := NewMemorySink()
	sink.Record(entities.NewStockAddedEvent("apple", 5))

	events := sink.Events()
	events[0].Item = "mutated"

	assert.Equal(t, "apple", sink.Events()[0].Item)
}

func TestMemorySinkReset(t *testing.T) {
	sink := NewMemorySink()
	sink.Record(entities.NewStockAddedEvent("apple", 5))

	sink.Reset()

	assert.Empty(t, sink.Events())
}
