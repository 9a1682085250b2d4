package models

import "time"

// BookingStep identifies a stage of the pickup booking flow.
type BookingStep int

const (
	StepItems BookingStep = iota + 1
	StepSchedule
	StepContact
	StepReview
)

// TotalSteps is the number of stages including the final review.
const TotalSteps = 4

// Schedule holds the requested pickup date and window.
type Schedule struct {
	Date         string `bson:"date" json:"date"` // YYYY-MM-DD
	TimeSlotID   string `bson:"timeSlotId" json:"timeSlotId"`
	Instructions string `bson:"instructions,omitempty" json:"instructions,omitempty"`
}

// Contact holds the customer's pickup contact details.
type Contact struct {
	Name    string `bson:"name" json:"name"`
	Phone   string `bson:"phone" json:"phone"`
	Email   string `bson:"email" json:"email"`
	Address string `bson:"address" json:"address"`
	City    string `bson:"city" json:"city"`
	Pincode string `bson:"pincode" json:"pincode"`
}

// ImageAttachment is an item photo attached to a draft. The payload lives only
// in the session; it is reduced to ImageMeta at submission.
type ImageAttachment struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	Data        []byte `json:"data,omitempty"`
}

// Meta strips the attachment down to its persisted form.
func (a ImageAttachment) Meta() ImageMeta {
	return ImageMeta{Name: a.Name, Size: a.Size, ContentType: a.ContentType}
}

// BookingDraft holds the in-flight booking state between steps.
type BookingDraft struct {
	SessionID string            `json:"sessionId"`
	Step      BookingStep       `json:"step"`
	Items     map[string]int    `json:"items"` // category id -> quantity
	Schedule  Schedule          `json:"schedule"`
	Contact   Contact           `json:"contact"`
	Services  []string          `json:"services,omitempty"`
	Images    []ImageAttachment `json:"images,omitempty"`
	Pricing   Quote             `json:"pricing"`
	CreatedAt time.Time         `json:"createdAt"`
	ClientIP  string            `json:"clientIp,omitempty"`
	UserAgent string            `json:"userAgent,omitempty"`
}

// NewBookingDraft returns an empty draft positioned at the items step.
func NewBookingDraft(sessionID string) *BookingDraft {
	return &BookingDraft{
		SessionID: sessionID,
		Step:      StepItems,
		Items:     make(map[string]int),
		CreatedAt: time.Now(),
	}
}

// TotalQuantity sums the selected item quantities.
func (d *BookingDraft) TotalQuantity() int {
	total := 0
	for _, qty := range d.Items {
		if qty > 0 {
			total += qty
		}
	}
	return total
}
