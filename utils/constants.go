// File: utils/constants.go
package utils

import "time"

// BookingSessionTTL is the time-to-live for an in-flight booking draft.
// A draft abandoned mid-form simply expires; only submitted pickups are durable.
const BookingSessionTTL = 30 * time.Minute

// BookingSessionPrefix is the Redis key prefix for booking draft sessions.
const BookingSessionPrefix = "bookingsession:"

// SubmitLockPrefix is the Redis key prefix for single-flight submission locks.
const SubmitLockPrefix = "bookingsubmit:"

// SubmitLockTTL bounds how long a submission lock can be held.
const SubmitLockTTL = 30 * time.Second

// PickupHistoryCap is the maximum number of persisted pickup records.
// Older records are evicted FIFO once the cap is exceeded.
const PickupHistoryCap = 50

// MaxImageBytes caps a single attached item photo at 5 MB.
const MaxImageBytes = 5 << 20
