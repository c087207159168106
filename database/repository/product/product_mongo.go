package productRepo

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

// ProductRepository defines methods for catalog data access.
type ProductRepository interface {
	GetByID(id string) (*models.Product, error)
	// GetAll lists products, optionally filtered by category ("" for all).
	GetAll(category string) ([]models.Product, error)
	Create(p *models.Product) error
	Update(p *models.Product) error
	Delete(id string) error
}

// MongoProductRepo implements ProductRepository using MongoDB.
type MongoProductRepo struct {
	coll *mongo.Collection
}

// NewMongoProductRepo creates a new ProductRepository backed by MongoDB.
func NewMongoProductRepo() ProductRepository {
	coll := database.Collection("products")
	repo := &MongoProductRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create product indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoProductRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a product by its unique ID.
func (r *MongoProductRepo) GetByID(id string) (*models.Product, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Product
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch product with id %s: %w", id, err)
	}
	return &p, nil
}

// GetAll lists products, optionally filtered by category.
func (r *MongoProductRepo) GetAll(category string) ([]models.Product, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	for cursor.Next(ctx) {
		var p models.Product
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode product: %w", err)
		}
		products = append(products, p)
	}
	return products, nil
}

// Create inserts a new product document.
func (r *MongoProductRepo) Create(p *models.Product) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update modifies an existing product document.
func (r *MongoProductRepo) Update(p *models.Product) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	p.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": p.ID}, bson.M{"$set": p})
	if err != nil {
		return fmt.Errorf("failed to update product with id %s: %w", p.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("product with id %s not found", p.ID)
	}
	return nil
}

// Delete removes a product document by its ID.
func (r *MongoProductRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("product with id %s not found", id)
	}
	return nil
}
