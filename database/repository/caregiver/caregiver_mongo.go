package caregiverRepo

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

// MongoCaregiverRepo implements CaregiverRepository using MongoDB.
type MongoCaregiverRepo struct {
	coll *mongo.Collection
}

// NewMongoCaregiverRepo creates a new CaregiverRepository backed by MongoDB.
func NewMongoCaregiverRepo() CaregiverRepository {
	coll := database.Collection("caregivers")
	repo := &MongoCaregiverRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create caregiver indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCaregiverRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a caregiver by its unique ID.
func (r *MongoCaregiverRepo) GetByID(id string) (*models.Caregiver, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var cg models.Caregiver
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&cg); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch caregiver with id %s: %w", id, err)
	}
	return &cg, nil
}

// GetAll retrieves all caregivers.
func (r *MongoCaregiverRepo) GetAll() ([]models.Caregiver, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve caregivers: %w", err)
	}
	defer cursor.Close(ctx)

	var caregivers []models.Caregiver
	for cursor.Next(ctx) {
		var cg models.Caregiver
		if err := cursor.Decode(&cg); err != nil {
			return nil, fmt.Errorf("failed to decode caregiver: %w", err)
		}
		caregivers = append(caregivers, cg)
	}
	return caregivers, nil
}

// Create inserts a new caregiver document.
func (r *MongoCaregiverRepo) Create(cg *models.Caregiver) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	cg.CreatedAt = now
	cg.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, cg); err != nil {
		return fmt.Errorf("failed to create caregiver: %w", err)
	}
	return nil
}

// Update modifies an existing caregiver document.
func (r *MongoCaregiverRepo) Update(cg *models.Caregiver) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cg.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": cg.ID}, bson.M{"$set": cg})
	if err != nil {
		return fmt.Errorf("failed to update caregiver with id %s: %w", cg.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("caregiver with id %s not found", cg.ID)
	}
	return nil
}

// Delete removes a caregiver document by its ID.
func (r *MongoCaregiverRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete caregiver with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("caregiver with id %s not found", id)
	}
	return nil
}
