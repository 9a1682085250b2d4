package pickupRepo

import (
	"context"
	"errors"

	"ezero/database"
	"ezero/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no pickup record matches the given id.
var ErrNotFound = errors.New("pickup record not found")

// PickupRepository stores confirmed pickup bookings. The history is capped at
// utils.PickupHistoryCap records; Save evicts the oldest beyond the cap.
type PickupRepository interface {
	Save(ctx context.Context, record models.PickupBooking) error
	List(ctx context.Context) ([]models.PickupBooking, error)
	GetByID(ctx context.Context, id string) (*models.PickupBooking, error)
	Cancel(ctx context.Context, id string) (*models.PickupBooking, error)
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error
}

type mongoPickupRepo struct {
	coll *mongo.Collection
}

// NewMongoPickupRepo returns a PickupRepository backed by MongoDB.
func NewMongoPickupRepo() PickupRepository {
	db := database.MongoClient.Database("ezero")
	return &mongoPickupRepo{
		coll: db.Collection("pickup_bookings"),
	}
}
