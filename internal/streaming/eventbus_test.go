package streaming

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naccost-lab/internal/domain/models"
	"naccost-lab/pkg/logger"
)

func testReport() *models.Report {
	return &models.Report{
		ID:        uuid.New(),
		SubjectID: "portnox",
		VendorIDs: []string{"portnox", "cisco", "aruba"},
		Result: models.ComparisonResult{
			SubjectID:      "portnox",
			Savings:        120000,
			SavingsPercent: 35,
		},
		CreatedAt: time.Now().UTC(),
	}
}

func TestEventBusPublishSubscribe(t *testing.T) {
	bus := NewEventBus(nil, logger.NewDefault())
	defer bus.Close()

	ch, unsubscribe := bus.Subscribe()
	defer unsubscribe()
	assert.Equal(t, 1, bus.SubscriberCount())

	event := NewReportCompletedEvent(testReport())
	bus.Publish(event)

	select {
	case got := <-ch:
		assert.Equal(t, EventTypeReportCompleted, got.Type)
		assert.Equal(t, "portnox", got.SubjectID)
		assert.Equal(t, 3, got.VendorCount)
		assert.Equal(t, 120000.0, got.Savings)
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}

func TestEventBusUnsubscribe(t *testing.T) {
	bus := NewEventBus(nil, logger.NewDefault())
	defer bus.Close()

	ch, unsubscribe := bus.Subscribe()
	unsubscribe()
	assert.Equal(t, 0, bus.SubscriberCount())

	// Unsubscribe closes the channel
	_, open := <-ch
	assert.False(t, open)

	// Double unsubscribe is a no-op
	unsubscribe()
}

func TestEventBusSlowSubscriberDoesNotBlock(t *testing.T) {
	bus := NewEventBus(nil, logger.NewDefault())
	defer bus.Close()

	_, unsubscribe := bus.Subscribe()
	defer unsubscribe()

	done := make(chan struct{})
	go func() {
		defer close(done)
		event := NewCatalogReloadedEvent("v1", 12)
		// Channel buffer is 100; overflow must drop, not block
		for i := 0; i < 500; i++ {
			bus.Publish(event)
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

func TestSubscriptionMatches(t *testing.T) {
	report := NewReportCompletedEvent(testReport())
	reload := NewCatalogReloadedEvent("v1", 12)

	all := &Subscription{}
	assert.True(t, all.Matches(report))
	assert.True(t, all.Matches(reload))

	filtered := &Subscription{Types: []EventType{EventTypeCatalogReloaded}}
	assert.False(t, filtered.Matches(report))
	assert.True(t, filtered.Matches(reload))
}

func TestCatalogReloadedEvent(t *testing.T) {
	event := NewCatalogReloadedEvent("2025.06.01", 12)

	require.NotEmpty(t, event.ID)
	assert.Equal(t, EventTypeCatalogReloaded, event.Type)
	assert.Equal(t, "2025.06.01", event.CatalogVersion)
	assert.Equal(t, 12, event.TotalVendors)
	assert.Empty(t, event.ReportID)
}
