package catalog

import (
	"errors"
	"fmt"

	productRepo "pawhaven/database/repository/product"
	programRepo "pawhaven/database/repository/program"
	"pawhaven/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogService serves the product catalog and program listings.
type CatalogService interface {
	ListProducts(category string) ([]models.Product, error)
	GetProduct(id string) (*models.Product, error)
	CreateProduct(input ProductInput) (*models.Product, error)
	UpdateProduct(id string, input ProductInput) (*models.Product, error)
	DeleteProduct(id string) error

	ListPrograms(kind string) ([]models.Program, error)
	GetProgram(id string) (*models.Program, error)
	CreateProgram(input ProgramInput) (*models.Program, error)
	UpdateProgram(id string, input ProgramInput) (*models.Program, error)
	DeleteProgram(id string) error
}

// ProductInput carries the mutable product fields.
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// ProgramInput carries the mutable program fields.
type ProgramInput struct {
	Title         string  `json:"title"`
	Kind          string  `json:"kind"`
	Description   string  `json:"description,omitempty"`
	DurationWeeks int     `json:"durationWeeks"`
	Price         float64 `json:"price"`
}

// DefaultCatalogService is the production CatalogService.
type DefaultCatalogService struct {
	Products productRepo.ProductRepository
	Programs programRepo.ProgramRepository
	Logger   *zap.Logger
}

// ListProducts lists the catalog, optionally filtered by category.
func (s *DefaultCatalogService) ListProducts(category string) ([]models.Product, error) {
	return s.Products.GetAll(category)
}

// GetProduct fetches a catalog item.
func (s *DefaultCatalogService) GetProduct(id string) (*models.Product, error) {
	p, err := s.Products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("product with id %s not found", id)
	}
	return p, nil
}

// CreateProduct adds a catalog item.
func (s *DefaultCatalogService) CreateProduct(input ProductInput) (*models.Product, error) {
	if input.Name == "" || input.Category == "" {
		return nil, errors.New("name and category are required")
	}
	if input.Price < 0 {
		return nil, errors.New("price must not be negative")
	}

	p := &models.Product{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
	}
	if err := s.Products.Create(p); err != nil {
		return nil, err
	}

	s.Logger.Info("product created", zap.String("productID", p.ID))
	return p, nil
}

// UpdateProduct applies changes to a catalog item.
func (s *DefaultCatalogService) UpdateProduct(id string, input ProductInput) (*models.Product, error) {
	p, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		p.Name = input.Name
	}
	if input.Description != "" {
		p.Description = input.Description
	}
	if input.Category != "" {
		p.Category = input.Category
	}
	if input.Price > 0 {
		p.Price = input.Price
	}
	if input.Stock >= 0 {
		p.Stock = input.Stock
	}
	if input.ImageURL != "" {
		p.ImageURL = input.ImageURL
	}

	if err := s.Products.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProduct removes a catalog item.
func (s *DefaultCatalogService) DeleteProduct(id string) error {
	return s.Products.Delete(id)
}

// ListPrograms lists program offerings, optionally filtered by kind.
func (s *DefaultCatalogService) ListPrograms(kind string) ([]models.Program, error) {
	return s.Programs.GetAll(kind)
}

// GetProgram fetches a program listing.
func (s *DefaultCatalogService) GetProgram(id string) (*models.Program, error) {
	p, err := s.Programs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("program with id %s not found", id)
	}
	return p, nil
}

// CreateProgram adds a program listing.
func (s *DefaultCatalogService) CreateProgram(input ProgramInput) (*models.Program, error) {
	if input.Title == "" {
		return nil, errors.New("title is required")
	}
	if input.Kind != models.ProgramTraining && input.Kind != models.ProgramPregnancy {
		return nil, fmt.Errorf("kind must be %q or %q", models.ProgramTraining, models.ProgramPregnancy)
	}

	p := &models.Program{
		ID:            uuid.New().String(),
		Title:         input.Title,
		Kind:          input.Kind,
		Description:   input.Description,
		DurationWeeks: input.DurationWeeks,
		Price:         input.Price,
	}
	if err := s.Programs.Create(p); err != nil {
		return nil, err
	}

	s.Logger.Info("program created", zap.String("programID", p.ID))
	return p, nil
}

// UpdateProgram applies changes to a program listing.
func (s *DefaultCatalogService) UpdateProgram(id string, input ProgramInput) (*models.Program, error) {
	p, err := s.GetProgram(id)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		p.Title = input.Title
	}
	if input.Kind != "" {
		if input.Kind != models.ProgramTraining && input.Kind != models.ProgramPregnancy {
			return nil, fmt.Errorf("kind must be %q or %q", models.ProgramTraining, models.ProgramPregnancy)
		}
		p.Kind = input.Kind
	}
	if input.Description != "" {
		p.Description = input.Description
	}
	if input.DurationWeeks > 0 {
		p.DurationWeeks = input.DurationWeeks
	}
	if input.Price > 0 {
		p.Price = input.Price
	}

	if err := s.Programs.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProgram removes a program listing.
func (s *DefaultCatalogService) DeleteProgram(id string) error {
	return s.Programs.Delete(id)
}
