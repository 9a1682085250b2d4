package models

// ReminderPayload is the queued payload for a pickup-eve reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	FireDate  string `json:"fireDate"`
	Title     string `json:"title"`
	Body      string `json:"body"`
}
