package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shelfsmart/internal/domain"
	"shelfsmart/internal/expiry"
	"shelfsmart/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrSummarizerDisabled = errors.New("nutrition summarization is not configured")
)

// BarcodeLookup is the food-database collaborator: it resolves a scanned
// barcode to a pre-filled product, or (nil, nil) when the database does not
// know it.
type BarcodeLookup interface {
	LookupBarcode(ctx context.Context, barcode string) (*domain.Product, error)
}

// NutritionSummarizer condenses raw label text into a short summary.
type NutritionSummarizer interface {
	Summarize(ctx context.Context, extractedText string) (string, error)
}

// AddProductInput carries the fields of a new inventory entry. Validation of
// shape (required name, positive units) happens at the transport boundary;
// the expiration date is accepted as-is, malformed or not.
type AddProductInput struct {
	Name           string
	Brand          string
	Manufacturer   string
	Category       string
	Barcode        string
	ExpirationDate string
	Units          int
	QuantityValue  *float64
	QuantityUnit   *string
	PhotoURL       *string
}

// UpdateProductInput carries a partial update; nil/zero fields are left
// unchanged.
type UpdateProductInput struct {
	Name           *string
	Brand          *string
	Manufacturer   *string
	Category       *string
	Barcode        *string
	ExpirationDate *string
	Units          *int
	QuantityValue  *float64
	QuantityUnit   *string
	PhotoURL       *string
}

// InventoryService defines the business operations over the inventory.
type InventoryService interface {
	AddProduct(ctx context.Context, input AddProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	LookupBarcode(ctx context.Context, barcode string) (*domain.Product, error)
	SummarizeNutrition(ctx context.Context, id uuid.UUID, extractedText string) (*domain.Product, error)
	Alerts(ctx context.Context) (expiry.Summary, error)
}

type inventoryService struct {
	products   repository.ProductRepository
	lookup     BarcodeLookup
	summarizer NutritionSummarizer
	alertCfg   expiry.Config
}

// NewInventoryService creates a new instance of InventoryService. summarizer
// may be nil when the feature is disabled.
func NewInventoryService(
	products repository.ProductRepository,
	lookup BarcodeLookup,
	summarizer NutritionSummarizer,
	alertCfg expiry.Config,
) InventoryService {
	return &inventoryService{
		products:   products,
		lookup:     lookup,
		summarizer: summarizer,
		alertCfg:   alertCfg,
	}
}

// AddProduct inserts a new entry, or merges into the existing entry when one
// with the same barcode and expiration date is already stored (a repeat scan
// of the same item), incrementing its units.
func (s *inventoryService) AddProduct(ctx context.Context, input AddProductInput) (*domain.Product, error) {
	if input.Barcode != "" {
		existing, err := s.products.FindByBarcodeAndExpiration(ctx, input.Barcode, input.ExpirationDate)
		if err != nil && err != repository.ErrProductNotFound {
			return nil, fmt.Errorf("failed to check for existing product: %w", err)
		}
		if existing != nil {
			existing.Units += input.Units
			existing.UpdatedAt = time.Now()
			if err := s.products.Update(ctx, existing); err != nil {
				return nil, fmt.Errorf("failed to merge product units: %w", err)
			}
			return existing, nil
		}
	}

	now := time.Now()
	product := &domain.Product{
		ID:             uuid.New(),
		Name:           input.Name,
		Brand:          input.Brand,
		Manufacturer:   input.Manufacturer,
		Category:       input.Category,
		Barcode:        input.Barcode,
		ExpirationDate: input.ExpirationDate,
		Units:          input.Units,
		QuantityValue:  input.QuantityValue,
		QuantityUnit:   input.QuantityUnit,
		PhotoURL:       input.PhotoURL,
		PurchaseDate:   now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// UpdateProduct applies a partial update to an existing entry.
func (s *inventoryService) UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrProductNotFound {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Brand != nil {
		product.Brand = *input.Brand
	}
	if input.Manufacturer != nil {
		product.Manufacturer = *input.Manufacturer
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Barcode != nil {
		product.Barcode = *input.Barcode
	}
	if input.ExpirationDate != nil {
		product.ExpirationDate = *input.ExpirationDate
	}
	if input.Units != nil {
		product.Units = *input.Units
	}
	if input.QuantityValue != nil {
		product.QuantityValue = input.QuantityValue
	}
	if input.QuantityUnit != nil {
		product.QuantityUnit = input.QuantityUnit
	}
	if input.PhotoURL != nil {
		product.PhotoURL = input.PhotoURL
	}
	product.UpdatedAt = time.Now()

	if err := s.products.Update(ctx, product); err != nil {
		if err == repository.ErrProductNotFound {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

// DeleteProduct removes an entry by id.
func (s *inventoryService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.products.Delete(ctx, id); err != nil {
		if err == repository.ErrProductNotFound {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// GetProduct retrieves an entry by id.
func (s *inventoryService) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrProductNotFound {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return product, nil
}

// ListProducts returns the full inventory, most recently purchased first.
func (s *inventoryService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

// LookupBarcode enriches a scanned barcode from the food database. A miss is
// (nil, nil): the caller proceeds with manual entry.
func (s *inventoryService) LookupBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	return s.lookup.LookupBarcode(ctx, barcode)
}

// SummarizeNutrition stores the raw label text on the product alongside the
// generated one-line summary.
func (s *inventoryService) SummarizeNutrition(ctx context.Context, id uuid.UUID, extractedText string) (*domain.Product, error) {
	if s.summarizer == nil {
		return nil, ErrSummarizerDisabled
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrProductNotFound {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	summary, err := s.summarizer.Summarize(ctx, extractedText)
	if err != nil {
		return nil, err
	}

	product.NutritionRaw = &extractedText
	product.NutritionSummary = &summary
	product.UpdatedAt = time.Now()

	if err := s.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to store nutrition summary: %w", err)
	}
	return product, nil
}

// Alerts classifies the current snapshot into alert buckets.
func (s *inventoryService) Alerts(ctx context.Context) (expiry.Summary, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return expiry.Summary{}, fmt.Errorf("failed to load inventory: %w", err)
	}
	return expiry.Classify(products, time.Now(), s.alertCfg), nil
}
