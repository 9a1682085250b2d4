package booking

import (
	"regexp"
	"strings"
	"time"

	"ezero/models"
)

var (
	// Indian mobile numbers: 10 digits, first digit 6-9.
	phonePattern   = regexp.MustCompile(`^[6-9]\d{9}$`)
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	pincodePattern = regexp.MustCompile(`^\d{6}$`)

	phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
)

// normalizePhone strips the separators people type into phone numbers.
func normalizePhone(phone string) string {
	return phoneSeparators.Replace(strings.TrimSpace(phone))
}

// ValidateStep checks the predicate for one step of the draft. Validation is
// a pure read: repeated calls without mutation return the same verdict.
func ValidateStep(d *models.BookingDraft, step models.BookingStep, now time.Time) []FieldError {
	switch step {
	case models.StepItems:
		return validateItems(d.Items, d.Services)
	case models.StepSchedule:
		return validateSchedule(d.Schedule, now)
	case models.StepContact:
		return validateContact(d.Contact)
	default:
		return nil
	}
}

// validateAll re-checks every data-entry step, used before submission since a
// user can retreat and corrupt earlier steps.
func validateAll(d *models.BookingDraft, now time.Time) []FieldError {
	var errs []FieldError
	errs = append(errs, validateItems(d.Items, d.Services)...)
	errs = append(errs, validateSchedule(d.Schedule, now)...)
	errs = append(errs, validateContact(d.Contact)...)
	return errs
}

func validateItems(items map[string]int, services []string) []FieldError {
	var errs []FieldError
	total := 0
	for id, qty := range items {
		if _, ok := models.CategoryByID(id); !ok {
			errs = append(errs, FieldError{Field: "items." + id, Message: "unknown item category"})
			continue
		}
		if qty < 0 {
			errs = append(errs, FieldError{Field: "items." + id, Message: "quantity cannot be negative"})
			continue
		}
		total += qty
	}
	if len(errs) == 0 && total == 0 {
		errs = append(errs, FieldError{Field: "items", Message: "select at least one item"})
	}
	for _, id := range services {
		if _, ok := models.ServiceByID(id); !ok {
			errs = append(errs, FieldError{Field: "services." + id, Message: "unknown service"})
		}
	}
	return errs
}

func validateSchedule(s models.Schedule, now time.Time) []FieldError {
	var errs []FieldError

	date, err := time.ParseInLocation("2006-01-02", s.Date, now.Location())
	if err != nil {
		errs = append(errs, FieldError{Field: "schedule.date", Message: "invalid or out-of-range date"})
	} else {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		earliest := today.AddDate(0, 0, 1)
		latest := today.AddDate(0, 0, 30)
		if date.Before(earliest) || date.After(latest) {
			errs = append(errs, FieldError{Field: "schedule.date", Message: "invalid or out-of-range date"})
		}
	}

	if s.TimeSlotID == "" {
		errs = append(errs, FieldError{Field: "schedule.timeSlot", Message: "time slot required"})
	} else if _, ok := models.SlotByID(s.TimeSlotID); !ok {
		errs = append(errs, FieldError{Field: "schedule.timeSlot", Message: "time slot required"})
	}
	return errs
}

func validateContact(c models.Contact) []FieldError {
	var errs []FieldError
	if len(strings.TrimSpace(c.Name)) < 2 {
		errs = append(errs, FieldError{Field: "contact.name", Message: "name too short"})
	}
	if !phonePattern.MatchString(normalizePhone(c.Phone)) {
		errs = append(errs, FieldError{Field: "contact.phone", Message: "invalid phone"})
	}
	if !emailPattern.MatchString(strings.TrimSpace(c.Email)) {
		errs = append(errs, FieldError{Field: "contact.email", Message: "invalid email"})
	}
	if len(strings.TrimSpace(c.Address)) < 10 {
		errs = append(errs, FieldError{Field: "contact.address", Message: "address too short"})
	}
	if len(strings.TrimSpace(c.City)) < 2 {
		errs = append(errs, FieldError{Field: "contact.city", Message: "city required"})
	}
	if !pincodePattern.MatchString(strings.TrimSpace(c.Pincode)) {
		errs = append(errs, FieldError{Field: "contact.pincode", Message: "invalid pincode"})
	}
	return errs
}
