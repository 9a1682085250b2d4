// File: services/booking/crud.go
package booking

import (
	"context"

	"ezero/models"
)

// ListPickups returns the persisted booking history, most recent first.
func (w *DefaultWorkflow) ListPickups(ctx context.Context) ([]models.PickupBooking, error) {
	records, err := w.Repo.List(ctx)
	if err != nil {
		return nil, &PersistenceError{Err: err}
	}
	return records, nil
}

// GetPickup returns a single booking record.
func (w *DefaultWorkflow) GetPickup(ctx context.Context, id string) (*models.PickupBooking, error) {
	return w.Repo.GetByID(ctx, id)
}

// CancelPickup marks a booking cancelled. Unknown ids surface as
// pickupRepo.ErrNotFound rather than a silent no-op; cancelling twice is a
// harmless repeat.
func (w *DefaultWorkflow) CancelPickup(ctx context.Context, id string) (*models.PickupBooking, error) {
	record, err := w.Repo.Cancel(ctx, id)
	if err != nil {
		return nil, err
	}
	if w.Notifier != nil {
		w.Notifier.BookingCancelled(ctx, record)
	}
	return record, nil
}

// UpdatePickupStatus moves a booking through its fulfilment lifecycle.
func (w *DefaultWorkflow) UpdatePickupStatus(ctx context.Context, id string, status models.BookingStatus) error {
	return w.Repo.UpdateStatus(ctx, id, status)
}
