package tasks

import (
	"encoding/json"
	"time"

	"ezero/models"

	"github.com/hibiken/asynq"
)

const TypePickupReminder = "pickup:reminder"

// NewPickupReminderTask builds an asynq task that fires at the given time.
func NewPickupReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypePickupReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
