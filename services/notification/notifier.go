package notification

import (
	"context"
	"fmt"
	"time"

	"ezero/config"
	"ezero/models"
	"ezero/services/tasks"
	"ezero/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// DefaultNotificationService logs lifecycle events and schedules pickup-eve
// reminders on the task queue.
type DefaultNotificationService struct {
	Queue  *asynq.Client
	Logger *zap.Logger

	now func() time.Time
}

// NewDefaultNotificationService connects a notifier to the reminder queue.
func NewDefaultNotificationService() *DefaultNotificationService {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	return &DefaultNotificationService{
		Queue:  client,
		Logger: utils.GetLogger(),
		now:    time.Now,
	}
}

// BookingConfirmed announces the new booking and queues a reminder for the
// evening before the pickup date.
func (s *DefaultNotificationService) BookingConfirmed(ctx context.Context, b *models.PickupBooking) {
	s.Logger.Info("pickup booked",
		zap.String("bookingId", b.ID),
		zap.String("date", b.Schedule.Date),
		zap.Float64("netAmount", b.Pricing.NetAmount),
	)
	if s.Queue == nil {
		return
	}

	fireAt, err := reminderFireTime(b.Schedule.Date, s.now())
	if err != nil {
		s.Logger.Warn("skipping reminder for unparseable pickup date",
			zap.String("bookingId", b.ID), zap.Error(err))
		return
	}
	slotLabel := b.Schedule.TimeSlotID
	if slot, ok := models.SlotByID(b.Schedule.TimeSlotID); ok {
		slotLabel = slot.Label
	}
	payload := models.ReminderPayload{
		BookingID: b.ID,
		FireDate:  fireAt.Format(time.RFC3339),
		Title:     "Pickup tomorrow",
		Body:      fmt.Sprintf("Your e-waste pickup %s is scheduled for %s (%s).", b.ID, b.Schedule.Date, slotLabel),
	}
	task, opts, err := tasks.NewPickupReminderTask(payload, fireAt)
	if err != nil {
		s.Logger.Warn("failed to build pickup reminder task", zap.String("bookingId", b.ID), zap.Error(err))
		return
	}
	if _, err := s.Queue.EnqueueContext(ctx, task, opts...); err != nil {
		s.Logger.Warn("failed to enqueue pickup reminder", zap.String("bookingId", b.ID), zap.Error(err))
	}
}

// BookingCancelled records the cancellation.
func (s *DefaultNotificationService) BookingCancelled(ctx context.Context, b *models.PickupBooking) {
	s.Logger.Info("pickup cancelled",
		zap.String("bookingId", b.ID),
		zap.String("date", b.Schedule.Date),
	)
}

// reminderFireTime is 18:00 on the eve of the pickup; if that is already in
// the past the reminder fires a minute from now.
func reminderFireTime(pickupDate string, now time.Time) (time.Time, error) {
	date, err := time.ParseInLocation("2006-01-02", pickupDate, now.Location())
	if err != nil {
		return time.Time{}, err
	}
	fireAt := date.AddDate(0, 0, -1).Add(18 * time.Hour)
	if fireAt.Before(now) {
		fireAt = now.Add(time.Minute)
	}
	return fireAt, nil
}
