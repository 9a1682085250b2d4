package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	pickupRepo "ezero/database/repository/pickup"
	"ezero/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memSessionStore mimics the Redis store, including its JSON round-trip so a
// draft mutated by a caller never leaks back into storage without a Put.
type memSessionStore struct {
	data  map[string][]byte
	locks map[string]bool
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{data: make(map[string][]byte), locks: make(map[string]bool)}
}

func (s *memSessionStore) Get(_ context.Context, sessionID string) (*models.BookingDraft, error) {
	raw, ok := s.data[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	var draft models.BookingDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *memSessionStore) Put(_ context.Context, draft *models.BookingDraft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	s.data[draft.SessionID] = raw
	return nil
}

func (s *memSessionStore) Delete(_ context.Context, sessionID string) error {
	delete(s.data, sessionID)
	return nil
}

func (s *memSessionStore) AcquireSubmitLock(_ context.Context, sessionID string) (bool, error) {
	if s.locks[sessionID] {
		return false, nil
	}
	s.locks[sessionID] = true
	return true, nil
}

func (s *memSessionStore) ReleaseSubmitLock(_ context.Context, sessionID string) error {
	delete(s.locks, sessionID)
	return nil
}

type memPickupRepo struct {
	saved   []models.PickupBooking
	saveErr error
}

func (r *memPickupRepo) Save(_ context.Context, record models.PickupBooking) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, record)
	return nil
}

func (r *memPickupRepo) List(_ context.Context) ([]models.PickupBooking, error) {
	out := make([]models.PickupBooking, 0, len(r.saved))
	for i := len(r.saved) - 1; i >= 0; i-- {
		out = append(out, r.saved[i])
	}
	return out, nil
}

func (r *memPickupRepo) GetByID(_ context.Context, id string) (*models.PickupBooking, error) {
	for i := range r.saved {
		if r.saved[i].ID == id {
			record := r.saved[i]
			return &record, nil
		}
	}
	return nil, pickupRepo.ErrNotFound
}

func (r *memPickupRepo) Cancel(_ context.Context, id string) (*models.PickupBooking, error) {
	for i := range r.saved {
		if r.saved[i].ID == id {
			r.saved[i].Status = models.StatusCancelled
			record := r.saved[i]
			return &record, nil
		}
	}
	return nil, pickupRepo.ErrNotFound
}

func (r *memPickupRepo) UpdateStatus(_ context.Context, id string, status models.BookingStatus) error {
	for i := range r.saved {
		if r.saved[i].ID == id {
			r.saved[i].Status = status
			return nil
		}
	}
	return pickupRepo.ErrNotFound
}

func newTestWorkflow() (*DefaultWorkflow, *memSessionStore, *memPickupRepo) {
	store := newMemSessionStore()
	repo := &memPickupRepo{}
	w := NewDefaultWorkflow(store, repo, testPricingConfig(), nil)
	w.now = func() time.Time { return testNow }
	return w, store, repo
}

func advanceToReview(t *testing.T, w *DefaultWorkflow, sessionID string) {
	t.Helper()
	ctx := context.Background()

	_, err := w.Advance(ctx, sessionID, StepInput{Items: map[string]int{"phones": 1}})
	require.NoError(t, err)

	_, err = w.Advance(ctx, sessionID, StepInput{Schedule: &models.Schedule{
		Date:       testNow.AddDate(0, 0, 3).Format("2006-01-02"),
		TimeSlotID: "slot-9",
	}})
	require.NoError(t, err)

	_, err = w.Advance(ctx, sessionID, StepInput{Contact: &models.Contact{
		Name:    "Asha Verma",
		Phone:   "9876543210",
		Email:   "asha@example.com",
		Address: "12 MG Road, Indiranagar",
		City:    "Bengaluru",
		Pincode: "560038",
	}})
	require.NoError(t, err)
}

func TestStartSessionBeginsAtItemsStep(t *testing.T) {
	w, _, _ := newTestWorkflow()
	view, err := w.StartSession(context.Background(), "10.0.0.1", "test-agent")
	require.NoError(t, err)
	assert.Equal(t, models.StepItems, view.Draft.Step)
	assert.NotEmpty(t, view.Draft.SessionID)
	assert.Nil(t, view.Summary)
}

func TestAdvanceValidationFailureDoesNotMoveOrPersist(t *testing.T) {
	w, _, _ := newTestWorkflow()
	ctx := context.Background()
	view, err := w.StartSession(ctx, "", "")
	require.NoError(t, err)
	id := view.Draft.SessionID

	_, err = w.Advance(ctx, id, StepInput{Items: map[string]int{"phones": 0}})
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "items", valErr.Fields[0].Field)

	after, err := w.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StepItems, after.Draft.Step)
	assert.Empty(t, after.Draft.Items)
}

func TestRetreatIsNoOpAtFirstStep(t *testing.T) {
	w, _, _ := newTestWorkflow()
	ctx := context.Background()
	view, err := w.StartSession(ctx, "", "")
	require.NoError(t, err)

	back, err := w.Retreat(ctx, view.Draft.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepItems, back.Draft.Step)
}

func TestRetreatKeepsDataAndSkipsValidation(t *testing.T) {
	w, _, _ := newTestWorkflow()
	ctx := context.Background()
	view, err := w.StartSession(ctx, "", "")
	require.NoError(t, err)
	id := view.Draft.SessionID

	_, err = w.Advance(ctx, id, StepInput{Items: map[string]int{"phones": 2}})
	require.NoError(t, err)

	back, err := w.Retreat(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StepItems, back.Draft.Step)
	assert.Equal(t, map[string]int{"phones": 2}, back.Draft.Items)
}

func TestAdvancePastReviewRejected(t *testing.T) {
	w, _, _ := newTestWorkflow()
	ctx := context.Background()
	view, err := w.StartSession(ctx, "", "")
	require.NoError(t, err)
	id := view.Draft.SessionID
	advanceToReview(t, w, id)

	_, err = w.Advance(ctx, id, StepInput{})
	assert.ErrorIs(t, err, ErrAlreadyAtReview)
}

func TestFullBookingFlow(t *testing.T) {
	w, _, repo := newTestWorkflow()
	ctx := context.Background()

	view, err := w.StartSession(ctx, "203.0.113.7", "test-agent")
	require.NoError(t, err)
	id := view.Draft.SessionID
	advanceToReview(t, w, id)

	review, err := w.GetSession(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, review.Summary)
	assert.Equal(t, models.StepReview, review.Draft.Step)
	require.Len(t, review.Summary.Items, 1)
	assert.Equal(t, "Mobile Phones", review.Summary.Items[0].Category)

	record, err := w.Submit(ctx, id)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^BK-[0-9A-Z]+-[0-9A-F]{4}$`), record.ID)
	assert.Equal(t, models.StatusScheduled, record.Status)
	assert.Equal(t, models.CurrentSchemaVersion, record.SchemaVersion)
	assert.Equal(t, testNow, record.CreatedAt)

	// 1 phone at 300, below the threshold of 3, so the 150 fee applies.
	assert.Equal(t, 300.0, record.Pricing.ItemValue)
	assert.Equal(t, 150.0, record.Pricing.PickupFee)
	assert.Equal(t, 150.0, record.Pricing.NetAmount)
	assert.Equal(t, 50, record.EarnedPoints)

	require.Len(t, repo.saved, 1)

	// The session is gone once the booking is stored.
	_, err = w.GetSession(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSubmitRequiresReviewStep(t *testing.T) {
	w, _, _ := newTestWorkflow()
	ctx := context.Background()
	view, err := w.StartSession(ctx, "", "")
	require.NoError(t, err)

	_, err = w.Submit(ctx, view.Draft.SessionID)
	assert.ErrorIs(t, err, ErrNotAtReview)
}

func TestSubmitRejectsConcurrentSubmission(t *testing.T) {
	w, store, _ := newTestWorkflow()
	ctx := context.Background()
	view, err := w.StartSession(ctx, "", "")
	require.NoError(t, err)
	id := view.Draft.SessionID
	advanceToReview(t, w, id)

	ok, err := store.AcquireSubmitLock(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = w.Submit(ctx, id)
	assert.ErrorIs(t, err, ErrSubmitInProgress)
}

func TestSubmitPersistenceFailureKeepsSession(t *testing.T) {
	w, _, repo := newTestWorkflow()
	repo.saveErr = errors.New("mongo unavailable")
	ctx := context.Background()

	view, err := w.StartSession(ctx, "", "")
	require.NoError(t, err)
	id := view.Draft.SessionID
	advanceToReview(t, w, id)

	_, err = w.Submit(ctx, id)
	var persistErr *PersistenceError
	require.ErrorAs(t, err, &persistErr)

	// The draft survives so the customer can retry.
	after, err := w.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StepReview, after.Draft.Step)

	// The lock was released with the failure; a retry goes through.
	repo.saveErr = nil
	_, err = w.Submit(ctx, id)
	assert.NoError(t, err)
}

func TestAttachImageLimits(t *testing.T) {
	w, _, _ := newTestWorkflow()
	ctx := context.Background()
	view, err := w.StartSession(ctx, "", "")
	require.NoError(t, err)
	id := view.Draft.SessionID

	_, err = w.AttachImage(ctx, id, "huge.jpg", "image/jpeg", bytes.Repeat([]byte{0xFF}, 5<<20+1))
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)

	_, err = w.AttachImage(ctx, id, "doc.pdf", "application/pdf", []byte("%PDF"))
	require.ErrorAs(t, err, &valErr)

	after, err := w.AttachImage(ctx, id, "item.jpg", "image/jpeg", bytes.Repeat([]byte{0xFF}, 2<<20))
	require.NoError(t, err)
	require.Len(t, after.Draft.Images, 1)
	assert.Equal(t, int64(2<<20), after.Draft.Images[0].Size)
}

func TestSubmittedRecordStripsImagePayloads(t *testing.T) {
	w, _, repo := newTestWorkflow()
	ctx := context.Background()
	view, err := w.StartSession(ctx, "", "")
	require.NoError(t, err)
	id := view.Draft.SessionID

	_, err = w.AttachImage(ctx, id, "item.jpg", "image/jpeg", bytes.Repeat([]byte{0xAB}, 1024))
	require.NoError(t, err)
	advanceToReview(t, w, id)

	record, err := w.Submit(ctx, id)
	require.NoError(t, err)
	require.Len(t, record.Images, 1)
	assert.Equal(t, "item.jpg", record.Images[0].Name)
	assert.Equal(t, int64(1024), record.Images[0].Size)
	assert.Equal(t, "image/jpeg", record.Images[0].ContentType)

	require.Len(t, repo.saved, 1)
}

func TestResetReturnsToItemsStep(t *testing.T) {
	w, _, _ := newTestWorkflow()
	ctx := context.Background()
	view, err := w.StartSession(ctx, "", "")
	require.NoError(t, err)
	id := view.Draft.SessionID
	advanceToReview(t, w, id)

	fresh, err := w.Reset(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StepItems, fresh.Draft.Step)
	assert.Empty(t, fresh.Draft.Items)
	assert.Equal(t, id, fresh.Draft.SessionID)
}

func TestCancelUnknownSessionAndPickup(t *testing.T) {
	w, _, _ := newTestWorkflow()
	ctx := context.Background()

	_, err := w.GetSession(ctx, "no-such-session")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = w.CancelPickup(ctx, "BK-NOPE-0000")
	assert.ErrorIs(t, err, pickupRepo.ErrNotFound)
}

func TestCancelPickupIsIdempotent(t *testing.T) {
	w, _, _ := newTestWorkflow()
	ctx := context.Background()
	view, err := w.StartSession(ctx, "", "")
	require.NoError(t, err)
	id := view.Draft.SessionID
	advanceToReview(t, w, id)

	record, err := w.Submit(ctx, id)
	require.NoError(t, err)

	first, err := w.CancelPickup(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, first.Status)

	second, err := w.CancelPickup(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, second.Status)
}

func TestListPickupsNewestFirst(t *testing.T) {
	w, _, _ := newTestWorkflow()
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		view, err := w.StartSession(ctx, "", "")
		require.NoError(t, err)
		advanceToReview(t, w, view.Draft.SessionID)
		record, err := w.Submit(ctx, view.Draft.SessionID)
		require.NoError(t, err)
		ids = append(ids, record.ID)
	}

	records, err := w.ListPickups(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, ids[2], records[0].ID)
	assert.Equal(t, ids[0], records[2].ID)
}
