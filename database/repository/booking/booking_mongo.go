package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"pawhaven/database"
	"pawhaven/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.Collection("caregiver_bookings")
	repo := &MongoBookingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		// Backs the overlap query and the per-caregiver day listing.
		{Keys: bson.D{{Key: "caregiver_id", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// overlapFilter matches active bookings whose [start, end) intersects the
// candidate interval: s1 < e2 && s2 < e1.
func overlapFilter(caregiverID, date string, start, end int) bson.M {
	return bson.M{
		"caregiver_id": caregiverID,
		"date":         date,
		"status":       bson.M{"$ne": models.BookingRejected},
		"start":        bson.M{"$lt": end},
		"end":          bson.M{"$gt": start},
	}
}

// CreateIfSlotFree runs the overlap check and the insert inside one Mongo
// transaction so two concurrent requests for intersecting intervals cannot
// both commit.
func (r *MongoBookingRepo) CreateIfSlotFree(ctx context.Context, b *models.Booking) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	txnFn := func(sc mongo.SessionContext) error {
		n, err := r.coll.CountDocuments(sc, overlapFilter(b.CaregiverID, b.Date, b.Start, b.End))
		if err != nil {
			return fmt.Errorf("overlap check failed: %w", err)
		}
		if n > 0 {
			return ErrSlotTaken
		}
		if _, err := r.coll.InsertOne(sc, b); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrSlotTaken {
			return ErrSlotTaken
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &b, nil
}

func (r *MongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// GetByUser lists a user's bookings, newest first.
func (r *MongoBookingRepo) GetByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

// GetByCaregiverDate lists all bookings for a caregiver on a date.
func (r *MongoBookingRepo) GetByCaregiverDate(ctx context.Context, caregiverID, date string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"caregiver_id": caregiverID, "date": date})
}

// GetAll lists every booking, newest first.
func (r *MongoBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	return r.find(ctx, bson.M{})
}

// UpdateStatus sets the status of a booking and refreshes updated_at.
func (r *MongoBookingRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var b models.Booking
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update booking %s status: %w", id, err)
	}
	return &b, nil
}
