package notification

import (
	"context"

	"ezero/models"
)

// NotificationService publishes booking lifecycle events. Calls are
// fire-and-forget: implementations log failures and never surface them to the
// booking workflow.
type NotificationService interface {
	BookingConfirmed(ctx context.Context, b *models.PickupBooking)
	BookingCancelled(ctx context.Context, b *models.PickupBooking)
}
