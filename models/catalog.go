package models

import "fmt"

// ItemCategory describes a recyclable item type with its payout rate and
// reward points per unit.
type ItemCategory struct {
	ID     string  `bson:"id" json:"id"`
	Name   string  `bson:"name" json:"name"`
	Rate   float64 `bson:"rate" json:"rate"` // payout per unit, INR
	Unit   string  `bson:"unit" json:"unit"` // "per item" or "per kg"
	Points int     `bson:"points" json:"points"`
}

// AddonService is an optional add-on with a flat charge to the customer.
type AddonService struct {
	ID   string  `bson:"id" json:"id"`
	Name string  `bson:"name" json:"name"`
	Fee  float64 `bson:"fee" json:"fee"`
}

// TimeSlot is a two-hour pickup window.
type TimeSlot struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Start int    `json:"start"` // hour of day
	End   int    `json:"end"`
}

var itemCategories = []ItemCategory{
	{ID: "phones", Name: "Mobile Phones", Rate: 300, Unit: "per item", Points: 50},
	{ID: "laptops", Name: "Laptops", Rate: 800, Unit: "per item", Points: 100},
	{ID: "desktops", Name: "Desktops", Rate: 600, Unit: "per item", Points: 90},
	{ID: "tablets", Name: "Tablets", Rate: 400, Unit: "per item", Points: 75},
	{ID: "monitors", Name: "Monitors", Rate: 350, Unit: "per item", Points: 80},
	{ID: "printers", Name: "Printers", Rate: 300, Unit: "per item", Points: 70},
	{ID: "servers", Name: "Servers", Rate: 2000, Unit: "per item", Points: 200},
	{ID: "batteries", Name: "Batteries", Rate: 100, Unit: "per kg", Points: 30},
	{ID: "chargers", Name: "Chargers", Rate: 50, Unit: "per item", Points: 20},
	{ID: "cables", Name: "Cables & Wires", Rate: 40, Unit: "per kg", Points: 15},
	{ID: "appliances", Name: "Appliances", Rate: 450, Unit: "per item", Points: 85},
	{ID: "other", Name: "Other E-Waste", Rate: 100, Unit: "per item", Points: 25},
}

var addonServices = []AddonService{
	{ID: "data-destruction", Name: "Certified Data Destruction", Fee: 500},
	{ID: "certificate", Name: "Recycling Certificate", Fee: 300},
	{ID: "express", Name: "Express Pickup", Fee: 1000},
	{ID: "asset-report", Name: "IT Asset Report", Fee: 750},
}

// ItemCategories returns the fixed category schedule.
func ItemCategories() []ItemCategory {
	out := make([]ItemCategory, len(itemCategories))
	copy(out, itemCategories)
	return out
}

// AddonServices returns the fixed add-on service schedule.
func AddonServices() []AddonService {
	out := make([]AddonService, len(addonServices))
	copy(out, addonServices)
	return out
}

// CategoryByID looks up an item category.
func CategoryByID(id string) (ItemCategory, bool) {
	for _, c := range itemCategories {
		if c.ID == id {
			return c, true
		}
	}
	return ItemCategory{}, false
}

// ServiceByID looks up an add-on service.
func ServiceByID(id string) (AddonService, bool) {
	for _, s := range addonServices {
		if s.ID == id {
			return s, true
		}
	}
	return AddonService{}, false
}

// PickupTimeSlots generates the two-hour pickup windows between 09:00 and 18:00.
func PickupTimeSlots() []TimeSlot {
	const (
		startHour = 9
		endHour   = 18
		interval  = 2
	)
	var slots []TimeSlot
	for hour := startHour; hour < endHour; hour += interval {
		slots = append(slots, TimeSlot{
			ID:    fmt.Sprintf("slot-%d", hour),
			Label: fmt.Sprintf("%02d:00 - %02d:00", hour, hour+interval),
			Start: hour,
			End:   hour + interval,
		})
	}
	return slots
}

// SlotByID looks up a pickup time slot.
func SlotByID(id string) (TimeSlot, bool) {
	for _, s := range PickupTimeSlots() {
		if s.ID == id {
			return s, true
		}
	}
	return TimeSlot{}, false
}
