package paymentRepo

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

// PaymentRepository defines methods for payment-record storage.
type PaymentRepository interface {
	GetByID(id string) (*models.Payment, error)
	GetByUser(userID string) ([]models.Payment, error)
	GetAll() ([]models.Payment, error)
	Create(p *models.Payment) error
	Update(p *models.Payment) error
}

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo creates a new PaymentRepository backed by MongoDB.
func NewMongoPaymentRepo() PaymentRepository {
	coll := database.Collection("payments")
	repo := &MongoPaymentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create payment indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPaymentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a payment record by its unique ID.
func (r *MongoPaymentRepo) GetByID(id string) (*models.Payment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Payment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch payment with id %s: %w", id, err)
	}
	return &p, nil
}

func (r *MongoPaymentRepo) find(filter bson.M) ([]models.Payment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payments: %w", err)
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	for cursor.Next(ctx) {
		var p models.Payment
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, nil
}

// GetByUser lists a user's payment records, newest first.
func (r *MongoPaymentRepo) GetByUser(userID string) ([]models.Payment, error) {
	return r.find(bson.M{"user_id": userID})
}

// GetAll lists every payment record, newest first.
func (r *MongoPaymentRepo) GetAll() ([]models.Payment, error) {
	return r.find(bson.M{})
}

// Create inserts a new payment document.
func (r *MongoPaymentRepo) Create(p *models.Payment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// Update modifies an existing payment document.
func (r *MongoPaymentRepo) Update(p *models.Payment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	p.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": p.ID}, bson.M{"$set": p})
	if err != nil {
		return fmt.Errorf("failed to update payment with id %s: %w", p.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("payment with id %s not found", p.ID)
	}
	return nil
}
