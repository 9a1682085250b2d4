package booking

import (
	"context"
	"time"

	pickupRepo "ezero/database/repository/pickup"
	"ezero/models"
	"ezero/services/notification"
)

// StepInput carries the form data for the step currently being completed.
// Only the fields relevant to that step are read.
type StepInput struct {
	Items    map[string]int   `json:"items,omitempty"`
	Services []string         `json:"services,omitempty"`
	Schedule *models.Schedule `json:"schedule,omitempty"`
	Contact  *models.Contact  `json:"contact,omitempty"`
}

// SessionView is the workflow state returned to callers. Summary is present
// only while the draft sits at the review step; it is recomputed from the
// draft on every read.
type SessionView struct {
	Draft   *models.BookingDraft `json:"draft"`
	Summary *BookingSummary      `json:"summary,omitempty"`
}

// WorkflowService drives the multi-step pickup booking flow and the
// persisted booking history.
type WorkflowService interface {
	StartSession(ctx context.Context, clientIP, userAgent string) (*SessionView, error)
	GetSession(ctx context.Context, sessionID string) (*SessionView, error)
	Advance(ctx context.Context, sessionID string, input StepInput) (*SessionView, error)
	Retreat(ctx context.Context, sessionID string) (*SessionView, error)
	AttachImage(ctx context.Context, sessionID, name, contentType string, data []byte) (*SessionView, error)
	Submit(ctx context.Context, sessionID string) (*models.PickupBooking, error)
	Reset(ctx context.Context, sessionID string) (*SessionView, error)
	CancelSession(ctx context.Context, sessionID string) error

	ListPickups(ctx context.Context) ([]models.PickupBooking, error)
	GetPickup(ctx context.Context, id string) (*models.PickupBooking, error)
	CancelPickup(ctx context.Context, id string) (*models.PickupBooking, error)
	UpdatePickupStatus(ctx context.Context, id string, status models.BookingStatus) error
}

// DefaultWorkflow implements WorkflowService.
type DefaultWorkflow struct {
	Sessions SessionStore
	Repo     pickupRepo.PickupRepository
	Pricing  PricingConfig
	Notifier notification.NotificationService

	now func() time.Time
}

// NewDefaultWorkflow wires a workflow with the given collaborators.
func NewDefaultWorkflow(
	sessions SessionStore,
	repo pickupRepo.PickupRepository,
	pricing PricingConfig,
	notifier notification.NotificationService,
) *DefaultWorkflow {
	return &DefaultWorkflow{
		Sessions: sessions,
		Repo:     repo,
		Pricing:  pricing,
		Notifier: notifier,
		now:      time.Now,
	}
}
