package receipt

import (
	"testing"
	"time"

	"ezero/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBooking() *models.PickupBooking {
	return &models.PickupBooking{
		ID:            "BK-MB3K2J9X-4F7A",
		SchemaVersion: models.CurrentSchemaVersion,
		CreatedAt:     time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		Status:        models.StatusScheduled,
		Items:         map[string]int{"phones": 2},
		Schedule:      models.Schedule{Date: "2026-03-13", TimeSlotID: "slot-9"},
		Contact: models.Contact{
			Name: "Asha Verma", Phone: "9876543210",
			Address: "12 MG Road, Indiranagar", City: "Bengaluru", Pincode: "560038",
		},
		Pricing:      models.Quote{ItemValue: 600, PickupFee: 150, NetAmount: 450},
		EarnedPoints: 100,
	}
}

func TestRenderReceiptPayout(t *testing.T) {
	doc, err := NewTextRenderer().Render(sampleBooking())
	require.NoError(t, err)

	text := string(doc)
	assert.Contains(t, text, "BK-MB3K2J9X-4F7A")
	assert.Contains(t, text, "Mobile Phones")
	assert.Contains(t, text, "09:00 - 11:00")
	assert.Contains(t, text, "We pay you")
	assert.Contains(t, text, "450.00 INR")
	assert.NotContains(t, text, "You pay")
}

func TestRenderReceiptCustomerOwes(t *testing.T) {
	b := sampleBooking()
	b.Services = []string{"data-destruction"}
	b.Pricing = models.Quote{ItemValue: 40, ServiceCharges: 500, PickupFee: 150, NetAmount: -610}

	doc, err := NewTextRenderer().Render(b)
	require.NoError(t, err)

	text := string(doc)
	assert.Contains(t, text, "Certified Data Destruction")
	assert.Contains(t, text, "You pay")
	assert.Contains(t, text, "610.00 INR")
}

func TestRenderNilBooking(t *testing.T) {
	_, err := NewTextRenderer().Render(nil)
	assert.Error(t, err)
}
