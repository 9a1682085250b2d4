package pickupRepo

import (
	"context"
	"errors"
	"sort"
	"time"

	"ezero/models"
	"ezero/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Save inserts a new pickup record and evicts the oldest records beyond the
// history cap. Eviction failure is not fatal: the new record is already durable.
func (r *mongoPickupRepo) Save(ctx context.Context, record models.PickupBooking) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return err
	}
	return r.evictBeyondCap(ctx)
}

// recordStamp is the id/timestamp projection used for eviction decisions.
type recordStamp struct {
	ID        string    `bson:"id"`
	CreatedAt time.Time `bson:"createdAt"`
}

// staleRecordIDs returns the ids of every record beyond the `keep` newest,
// oldest first. The history cap is small, so deciding over the full id list
// is cheaper than it looks.
func staleRecordIDs(entries []recordStamp, keep int) []string {
	if len(entries) <= keep {
		return nil
	}
	sorted := make([]recordStamp, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	ids := make([]string, 0, len(sorted)-keep)
	for _, e := range sorted[keep:] {
		ids = append(ids, e.ID)
	}
	return ids
}

func (r *mongoPickupRepo) evictBeyondCap(ctx context.Context) error {
	opts := options.Find().SetProjection(bson.M{"id": 1, "createdAt": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var entries []recordStamp
	if err := cursor.All(ctx, &entries); err != nil {
		return err
	}
	stale := staleRecordIDs(entries, utils.PickupHistoryCap)
	if len(stale) == 0 {
		return nil
	}
	_, err = r.coll.DeleteMany(ctx, bson.M{"id": bson.M{"$in": stale}})
	return err
}

// List returns the stored pickups, most recent first.
func (r *mongoPickupRepo) List(ctx context.Context) ([]models.PickupBooking, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(utils.PickupHistoryCap))
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.PickupBooking
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetByID returns a pickup record by its booking id.
func (r *mongoPickupRepo) GetByID(ctx context.Context, id string) (*models.PickupBooking, error) {
	var record models.PickupBooking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Cancel marks the record cancelled and returns the updated document.
// Cancelling an already-cancelled record is a harmless repeat.
func (r *mongoPickupRepo) Cancel(ctx context.Context, id string) (*models.PickupBooking, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var record models.PickupBooking
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": models.StatusCancelled}},
		opts,
	).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateStatus sets an arbitrary lifecycle status (admin path).
func (r *mongoPickupRepo) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
