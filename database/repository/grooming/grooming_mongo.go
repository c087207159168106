package groomingRepo

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

// MongoGroomingRepo implements GroomingRepository using MongoDB.
type MongoGroomingRepo struct {
	coll *mongo.Collection
}

// NewMongoGroomingRepo creates a new GroomingRepository backed by MongoDB.
func NewMongoGroomingRepo() GroomingRepository {
	coll := database.Collection("grooming_bookings")
	repo := &MongoGroomingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create grooming indexes: %v\n", err)
	}
	return repo
}

func (r *MongoGroomingRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "slot", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// CreateIfSlotFree inserts the booking inside a transaction guarding the
// exact-match (date, slot) pair.
func (r *MongoGroomingRepo) CreateIfSlotFree(ctx context.Context, b *models.GroomingBooking) error {
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
		filter := bson.M{
			"date":   b.Date,
			"slot":   b.Slot,
			"status": bson.M{"$ne": models.BookingRejected},
		}
		n, err := r.coll.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("slot check failed: %w", err)
		}
		if n > 0 {
			return ErrSlotTaken
		}
		if _, err := r.coll.InsertOne(sc, b); err != nil {
			return fmt.Errorf("insert grooming booking failed: %w", err)
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
		return fmt.Errorf("grooming booking transaction failed: %w", err)
	}

	return nil
}

// GetByID retrieves a grooming booking by its unique ID.
func (r *MongoGroomingRepo) GetByID(ctx context.Context, id string) (*models.GroomingBooking, error) {
	var b models.GroomingBooking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch grooming booking with id %s: %w", id, err)
	}
	return &b, nil
}

func (r *MongoGroomingRepo) find(ctx context.Context, filter bson.M) ([]models.GroomingBooking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve grooming bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.GroomingBooking
	for cursor.Next(ctx) {
		var b models.GroomingBooking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode grooming booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// GetByUser lists a user's grooming bookings, newest first.
func (r *MongoGroomingRepo) GetByUser(ctx context.Context, userID string) ([]models.GroomingBooking, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

// GetAll lists every grooming booking, newest first.
func (r *MongoGroomingRepo) GetAll(ctx context.Context) ([]models.GroomingBooking, error) {
	return r.find(ctx, bson.M{})
}

// UpdateStatus sets the status and refreshes updated_at.
func (r *MongoGroomingRepo) UpdateStatus(ctx context.Context, id, status string) (*models.GroomingBooking, error) {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var b models.GroomingBooking
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update grooming booking %s status: %w", id, err)
	}
	return &b, nil
}
