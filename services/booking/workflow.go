// File: services/booking/workflow.go
package booking

import (
	"context"
	"strconv"
	"strings"
	"time"

	"ezero/models"
	"ezero/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// StartSession creates a fresh draft at the items step and stores it.
func (w *DefaultWorkflow) StartSession(ctx context.Context, clientIP, userAgent string) (*SessionView, error) {
	draft := models.NewBookingDraft(uuid.New().String())
	draft.ClientIP = clientIP
	draft.UserAgent = userAgent
	if err := w.Sessions.Put(ctx, draft); err != nil {
		return nil, err
	}
	return w.view(draft), nil
}

// GetSession returns the current draft state.
func (w *DefaultWorkflow) GetSession(ctx context.Context, sessionID string) (*SessionView, error) {
	draft, err := w.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return w.view(draft), nil
}

// Advance merges the step payload into the draft, validates the current step,
// and moves forward on success. On validation failure nothing is persisted and
// the step does not change.
func (w *DefaultWorkflow) Advance(ctx context.Context, sessionID string, input StepInput) (*SessionView, error) {
	draft, err := w.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.Step >= models.StepReview {
		return nil, ErrAlreadyAtReview
	}

	applyStepInput(draft, input)

	if errs := ValidateStep(draft, draft.Step, w.now()); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	draft.Pricing = ComputePricing(draft.Items, draft.Services, w.Pricing)
	draft.Step++

	if err := w.Sessions.Put(ctx, draft); err != nil {
		return nil, err
	}
	return w.view(draft), nil
}

// Retreat steps back without validation. At the first step it is a no-op.
func (w *DefaultWorkflow) Retreat(ctx context.Context, sessionID string) (*SessionView, error) {
	draft, err := w.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.Step > models.StepItems {
		draft.Step--
		if err := w.Sessions.Put(ctx, draft); err != nil {
			return nil, err
		}
	}
	return w.view(draft), nil
}

// AttachImage adds an item photo to the draft. Payloads stay in the session
// only; they are reduced to metadata at submission.
func (w *DefaultWorkflow) AttachImage(ctx context.Context, sessionID, name, contentType string, data []byte) (*SessionView, error) {
	draft, err := w.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(data) > utils.MaxImageBytes {
		return nil, &ValidationError{Fields: []FieldError{
			{Field: "images", Message: "image exceeds the 5 MB limit"},
		}}
	}
	if !allowedImageTypes[contentType] {
		return nil, &ValidationError{Fields: []FieldError{
			{Field: "images", Message: "unsupported image type (JPEG, PNG or WebP only)"},
		}}
	}
	draft.Images = append(draft.Images, models.ImageAttachment{
		Name:        name,
		ContentType: contentType,
		Size:        int64(len(data)),
		Data:        data,
	})
	if err := w.Sessions.Put(ctx, draft); err != nil {
		return nil, err
	}
	return w.view(draft), nil
}

// Submit finalizes the draft into a persisted pickup record. It is valid only
// from the review step, re-validates every data-entry step, and holds a
// single-flight lock so concurrent submissions of the same session are
// rejected instead of racing.
func (w *DefaultWorkflow) Submit(ctx context.Context, sessionID string) (*models.PickupBooking, error) {
	draft, err := w.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepReview {
		return nil, ErrNotAtReview
	}

	ok, err := w.Sessions.AcquireSubmitLock(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrSubmitInProgress
	}
	defer w.Sessions.ReleaseSubmitLock(ctx, sessionID)

	if errs := validateAll(draft, w.now()); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	record := w.snapshot(draft)
	if err := w.Repo.Save(ctx, record); err != nil {
		// Keep the session so the user can retry; the booking must not be
		// silently dropped.
		return nil, &PersistenceError{Err: err}
	}

	if err := w.Sessions.Delete(ctx, sessionID); err != nil {
		zap.L().Warn("failed to clear submitted booking session",
			zap.String("sessionId", sessionID), zap.Error(err))
	}

	if w.Notifier != nil {
		w.Notifier.BookingConfirmed(ctx, &record)
	}
	return &record, nil
}

// Reset discards the draft contents and returns the session to the items step.
func (w *DefaultWorkflow) Reset(ctx context.Context, sessionID string) (*SessionView, error) {
	if _, err := w.Sessions.Get(ctx, sessionID); err != nil {
		return nil, err
	}
	draft := models.NewBookingDraft(sessionID)
	if err := w.Sessions.Put(ctx, draft); err != nil {
		return nil, err
	}
	return w.view(draft), nil
}

// CancelSession abandons the draft entirely.
func (w *DefaultWorkflow) CancelSession(ctx context.Context, sessionID string) error {
	return w.Sessions.Delete(ctx, sessionID)
}

// snapshot freezes the draft into an immutable record. Image payloads are
// dropped before persistence to bound record size; only metadata survives.
func (w *DefaultWorkflow) snapshot(draft *models.BookingDraft) models.PickupBooking {
	now := w.now()

	items := make(map[string]int, len(draft.Items))
	for id, qty := range draft.Items {
		if qty > 0 {
			items[id] = qty
		}
	}
	var images []models.ImageMeta
	for _, img := range draft.Images {
		images = append(images, img.Meta())
	}
	services := make([]string, len(draft.Services))
	copy(services, draft.Services)

	return models.PickupBooking{
		ID:            generateBookingID(now),
		SchemaVersion: models.CurrentSchemaVersion,
		CreatedAt:     now,
		Status:        models.StatusScheduled,
		Items:         items,
		Schedule:      draft.Schedule,
		Contact:       draft.Contact,
		Services:      services,
		Images:        images,
		Pricing:       ComputePricing(items, services, w.Pricing),
		EarnedPoints:  EstimatePoints(items),
	}
}

func (w *DefaultWorkflow) view(draft *models.BookingDraft) *SessionView {
	view := &SessionView{Draft: draft}
	if draft.Step == models.StepReview {
		view.Summary = BuildSummary(draft, w.Pricing)
	}
	return view
}

func applyStepInput(draft *models.BookingDraft, input StepInput) {
	switch draft.Step {
	case models.StepItems:
		if input.Items != nil {
			items := make(map[string]int, len(input.Items))
			for id, qty := range input.Items {
				items[id] = qty
			}
			draft.Items = items
		}
		if input.Services != nil {
			draft.Services = append([]string(nil), input.Services...)
		}
	case models.StepSchedule:
		if input.Schedule != nil {
			draft.Schedule = *input.Schedule
		}
	case models.StepContact:
		if input.Contact != nil {
			draft.Contact = *input.Contact
		}
	}
}

// generateBookingID builds ids like BK-MB3K2J9X-4F7A: a base36 timestamp plus
// a short random suffix.
func generateBookingID(t time.Time) string {
	ts := strings.ToUpper(strconv.FormatInt(t.UnixMilli(), 36))
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:4])
	return "BK-" + ts + "-" + suffix
}
