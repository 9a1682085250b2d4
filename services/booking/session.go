package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ezero/models"
	"ezero/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore persists in-flight booking drafts between steps.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.BookingDraft, error)
	Put(ctx context.Context, draft *models.BookingDraft) error
	Delete(ctx context.Context, sessionID string) error

	// AcquireSubmitLock takes the single-flight submission lock for a session.
	// It returns false without error if another submission holds the lock.
	AcquireSubmitLock(ctx context.Context, sessionID string) (bool, error)
	ReleaseSubmitLock(ctx context.Context, sessionID string) error
}

// RedisSessionStore stores drafts as JSON in Redis with a rolling TTL.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisSessionStore returns a store on the shared session cache client.
func NewRedisSessionStore() *RedisSessionStore {
	return &RedisSessionStore{
		Client: utils.GetSessionCacheClient(),
		TTL:    utils.BookingSessionTTL,
	}
}

func sessionKey(id string) string { return utils.BookingSessionPrefix + id }
func lockKey(id string) string    { return utils.SubmitLockPrefix + id }

// Get loads a draft; a missing or expired key maps to ErrSessionNotFound.
func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.BookingDraft, error) {
	data, err := s.Client.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var draft models.BookingDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &draft, nil
}

// Put writes the draft back, refreshing the TTL.
func (s *RedisSessionStore) Put(ctx context.Context, draft *models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Client.Set(ctx, sessionKey(draft.SessionID), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

// Delete removes the draft.
func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}

// AcquireSubmitLock uses SETNX with a bounded TTL so a crashed submission
// cannot wedge the session forever.
func (s *RedisSessionStore) AcquireSubmitLock(ctx context.Context, sessionID string) (bool, error) {
	ok, err := s.Client.SetNX(ctx, lockKey(sessionID), "1", utils.SubmitLockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire submit lock: %w", err)
	}
	return ok, nil
}

// ReleaseSubmitLock frees the submission lock.
func (s *RedisSessionStore) ReleaseSubmitLock(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, lockKey(sessionID)).Err()
}
