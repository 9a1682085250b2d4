package models

import "time"

// BookingStatus tracks a pickup through its lifecycle. Only the transition to
// cancelled is customer-facing; the rest are driven by admin/ops.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusScheduled BookingStatus = "scheduled"
	StatusConfirmed BookingStatus = "confirmed"
	StatusInTransit BookingStatus = "in-transit"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is a known lifecycle status.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusScheduled, StatusConfirmed, StatusInTransit, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CurrentSchemaVersion is stamped on every new pickup record so the shape can
// be migrated if it ever changes.
const CurrentSchemaVersion = 1

// Quote is the computed payout estimate. NetAmount = ItemValue -
// ServiceCharges - PickupFee; positive means E-Zero pays the customer,
// negative means the customer owes the difference.
type Quote struct {
	ItemValue      float64 `bson:"itemValue" json:"itemValue"`
	ServiceCharges float64 `bson:"serviceCharges" json:"serviceCharges"`
	PickupFee      float64 `bson:"pickupFee" json:"pickupFee"`
	NetAmount      float64 `bson:"netAmount" json:"netAmount"`
}

// ImageMeta is what survives of an attached item photo once a booking is
// persisted. Payloads are dropped before persistence to bound record size.
type ImageMeta struct {
	Name        string `bson:"name" json:"name"`
	Size        int64  `bson:"size" json:"size"`
	ContentType string `bson:"contentType" json:"contentType"`
}

// PickupBooking is a confirmed, immutable pickup record.
type PickupBooking struct {
	ID            string         `bson:"id" json:"id"`
	SchemaVersion int            `bson:"schemaVersion" json:"schemaVersion"`
	CreatedAt     time.Time      `bson:"createdAt" json:"createdAt"`
	Status        BookingStatus  `bson:"status" json:"status"`
	Items         map[string]int `bson:"items" json:"items"`
	Schedule      Schedule       `bson:"schedule" json:"schedule"`
	Contact       Contact        `bson:"contact" json:"contact"`
	Services      []string       `bson:"services,omitempty" json:"services,omitempty"`
	Images        []ImageMeta    `bson:"images,omitempty" json:"images,omitempty"`
	Pricing       Quote          `bson:"pricing" json:"pricing"`
	EarnedPoints  int            `bson:"earnedPoints" json:"earnedPoints"`
}
