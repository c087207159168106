package programRepo

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

// ProgramRepository defines methods for program listing data access.
type ProgramRepository interface {
	GetByID(id string) (*models.Program, error)
	// GetAll lists programs, optionally filtered by kind ("" for all).
	GetAll(kind string) ([]models.Program, error)
	Create(p *models.Program) error
	Update(p *models.Program) error
	Delete(id string) error
}

// MongoProgramRepo implements ProgramRepository using MongoDB.
type MongoProgramRepo struct {
	coll *mongo.Collection
}

// NewMongoProgramRepo creates a new ProgramRepository backed by MongoDB.
func NewMongoProgramRepo() ProgramRepository {
	coll := database.Collection("programs")
	repo := &MongoProgramRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create program indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoProgramRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "kind", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a program by its unique ID.
func (r *MongoProgramRepo) GetByID(id string) (*models.Program, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Program
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch program with id %s: %w", id, err)
	}
	return &p, nil
}

// GetAll lists programs, optionally filtered by kind.
func (r *MongoProgramRepo) GetAll(kind string) ([]models.Program, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if kind != "" {
		filter["kind"] = kind
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve programs: %w", err)
	}
	defer cursor.Close(ctx)

	var programs []models.Program
	for cursor.Next(ctx) {
		var p models.Program
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode program: %w", err)
		}
		programs = append(programs, p)
	}
	return programs, nil
}

// Create inserts a new program document.
func (r *MongoProgramRepo) Create(p *models.Program) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create program: %w", err)
	}
	return nil
}

// Update modifies an existing program document.
func (r *MongoProgramRepo) Update(p *models.Program) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	p.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": p.ID}, bson.M{"$set": p})
	if err != nil {
		return fmt.Errorf("failed to update program with id %s: %w", p.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("program with id %s not found", p.ID)
	}
	return nil
}

// Delete removes a program document by its ID.
func (r *MongoProgramRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete program with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("program with id %s not found", id)
	}
	return nil
}
