package postRepo

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

// PostRepository defines methods for community message-board data access.
type PostRepository interface {
	GetByID(id string) (*models.Post, error)
	GetAll() ([]models.Post, error)
	Create(p *models.Post) error
	// AddComment appends a comment to a post. Returns (nil, nil) when the post
	// does not exist.
	AddComment(postID string, comment models.Comment) (*models.Post, error)
	Delete(id string) error
}

// MongoPostRepo implements PostRepository using MongoDB.
type MongoPostRepo struct {
	coll *mongo.Collection
}

// NewMongoPostRepo creates a new PostRepository backed by MongoDB.
func NewMongoPostRepo() PostRepository {
	coll := database.Collection("community_posts")
	repo := &MongoPostRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create post indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPostRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "author_id", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a post by its unique ID.
func (r *MongoPostRepo) GetByID(id string) (*models.Post, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Post
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch post with id %s: %w", id, err)
	}
	return &p, nil
}

// GetAll lists every post, newest first.
func (r *MongoPostRepo) GetAll() ([]models.Post, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	for cursor.Next(ctx) {
		var p models.Post
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, nil
}

// Create inserts a new post document.
func (r *MongoPostRepo) Create(p *models.Post) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Comments == nil {
		p.Comments = []models.Comment{}
	}

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// AddComment appends a comment to a post and returns the updated document.
func (r *MongoPostRepo) AddComment(postID string, comment models.Comment) (*models.Post, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"comments": comment},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p models.Post
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": postID}, update, opts).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to add comment to post %s: %w", postID, err)
	}
	return &p, nil
}

// Delete removes a post document by its ID.
func (r *MongoPostRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete post with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("post with id %s not found", id)
	}
	return nil
}
