package community

import (
	"errors"
	"fmt"
	"time"

	postRepo "pawhaven/database/repository/post"
	"pawhaven/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotAuthor is returned when a caller deletes a post they did not write.
var ErrNotAuthor = errors.New("post does not belong to the caller")

// CommunityService runs the message board.
type CommunityService interface {
	CreatePost(authorID, title, body string) (*models.Post, error)
	GetPost(id string) (*models.Post, error)
	ListPosts() ([]models.Post, error)
	AddComment(postID, authorID, body string) (*models.Post, error)
	// DeletePost removes a post; the author or an admin may delete.
	DeletePost(postID, callerID string, isAdmin bool) error
}

// DefaultCommunityService is the production CommunityService.
type DefaultCommunityService struct {
	Repo   postRepo.PostRepository
	Logger *zap.Logger
}

// CreatePost publishes a new board entry.
func (s *DefaultCommunityService) CreatePost(authorID, title, body string) (*models.Post, error) {
	if title == "" || body == "" {
		return nil, errors.New("title and body are required")
	}

	p := &models.Post{
		ID:       uuid.New().String(),
		AuthorID: authorID,
		Title:    title,
		Body:     body,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}

	s.Logger.Info("post created", zap.String("postID", p.ID))
	return p, nil
}

// GetPost fetches a board entry.
func (s *DefaultCommunityService) GetPost(id string) (*models.Post, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("post with id %s not found", id)
	}
	return p, nil
}

// ListPosts lists the board, newest first.
func (s *DefaultCommunityService) ListPosts() ([]models.Post, error) {
	return s.Repo.GetAll()
}

// AddComment appends a comment to a post.
func (s *DefaultCommunityService) AddComment(postID, authorID, body string) (*models.Post, error) {
	if body == "" {
		return nil, errors.New("comment body is required")
	}

	comment := models.Comment{
		ID:        uuid.New().String(),
		AuthorID:  authorID,
		Body:      body,
		CreatedAt: time.Now(),
	}
	p, err := s.Repo.AddComment(postID, comment)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("post with id %s not found", postID)
	}
	return p, nil
}

// DeletePost removes a post; the author or an admin may delete.
func (s *DefaultCommunityService) DeletePost(postID, callerID string, isAdmin bool) error {
	p, err := s.GetPost(postID)
	if err != nil {
		return err
	}
	if !isAdmin && p.AuthorID != callerID {
		return ErrNotAuthor
	}
	return s.Repo.Delete(postID)
}
