package booking

import (
	"fmt"
	"sort"
	"time"

	"ezero/models"
)

// SummaryLine is one item row of the review summary.
type SummaryLine struct {
	CategoryID string  `json:"categoryId"`
	Category   string  `json:"category"`
	Quantity   int     `json:"quantity"`
	Value      float64 `json:"value"`
}

// BookingSummary is the read-only review shown on the final step.
type BookingSummary struct {
	Items    []SummaryLine `json:"items"`
	Schedule string        `json:"schedule"`
	Contact  string        `json:"contact"`
	Address  string        `json:"address"`
	Pricing  models.Quote  `json:"pricing"`
	Points   int           `json:"points"`
}

// BuildSummary derives the review summary from the draft. It is a pure read:
// the draft is never mutated and repeated calls yield the same summary.
func BuildSummary(d *models.BookingDraft, cfg PricingConfig) *BookingSummary {
	var lines []SummaryLine
	for id, qty := range d.Items {
		if qty <= 0 {
			continue
		}
		name := id
		if cat, ok := models.CategoryByID(id); ok {
			name = cat.Name
		}
		lines = append(lines, SummaryLine{
			CategoryID: id,
			Category:   name,
			Quantity:   qty,
			Value:      float64(qty) * cfg.Rates[id],
		})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].CategoryID < lines[j].CategoryID })

	return &BookingSummary{
		Items:    lines,
		Schedule: scheduleLabel(d.Schedule),
		Contact:  fmt.Sprintf("%s (%s)", d.Contact.Name, d.Contact.Phone),
		Address:  fmt.Sprintf("%s, %s %s", d.Contact.Address, d.Contact.City, d.Contact.Pincode),
		Pricing:  ComputePricing(d.Items, d.Services, cfg),
		Points:   EstimatePoints(d.Items),
	}
}

func scheduleLabel(s models.Schedule) string {
	label := s.Date
	if date, err := time.Parse("2006-01-02", s.Date); err == nil {
		label = date.Format("Mon, 2 Jan 2006")
	}
	if slot, ok := models.SlotByID(s.TimeSlotID); ok {
		label += " at " + slot.Label
	}
	return label
}
