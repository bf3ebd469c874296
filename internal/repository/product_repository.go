package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shelfsmart/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for inventory data access. List
// returns the full snapshot in purchase order and doubles as the read-only
// snapshot provider the classifier and alert worker consume.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	FindByBarcodeAndExpiration(ctx context.Context, barcode, expirationDate string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Count(ctx context.Context) (int, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository.
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, name, brand, manufacturer, category, barcode, expiration_date,
	units, quantity_value, quantity_unit, photo_url, nutrition_raw, nutrition_summary,
	purchase_date, created_at, updated_at`

// Create inserts a new product using parameterized queries. The expiration
// date is stored verbatim as dd/mm/yyyy text.
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		product.ID,
		product.Name,
		product.Brand,
		product.Manufacturer,
		product.Category,
		product.Barcode,
		product.ExpirationDate,
		product.Units,
		product.QuantityValue,
		product.QuantityUnit,
		product.PhotoURL,
		product.NutritionRaw,
		product.NutritionSummary,
		product.PurchaseDate,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// Update replaces all mutable fields of an existing product.
func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products
		SET name = $2, brand = $3, manufacturer = $4, category = $5, barcode = $6,
		    expiration_date = $7, units = $8, quantity_value = $9, quantity_unit = $10,
		    photo_url = $11, nutrition_raw = $12, nutrition_summary = $13, updated_at = $14
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		product.ID,
		product.Name,
		product.Brand,
		product.Manufacturer,
		product.Category,
		product.Barcode,
		product.ExpirationDate,
		product.Units,
		product.QuantityValue,
		product.QuantityUnit,
		product.PhotoURL,
		product.NutritionRaw,
		product.NutritionSummary,
		product.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete removes a product by id.
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// FindByID retrieves a product by id.
func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := r.scanOne(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return product, nil
}

// FindByBarcodeAndExpiration retrieves the entry that a newly scanned item
// with the same barcode and expiration date would merge into. Entries without
// a barcode never merge.
func (r *productRepository) FindByBarcodeAndExpiration(ctx context.Context, barcode, expirationDate string) (*domain.Product, error) {
	if barcode == "" {
		return nil, ErrProductNotFound
	}

	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE barcode = $1 AND expiration_date = $2
		ORDER BY purchase_date DESC
		LIMIT 1
	`

	product, err := r.scanOne(r.db.QueryRowContext(ctx, query, barcode, expirationDate))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by barcode: %w", err)
	}
	return product, nil
}

// List returns the full inventory snapshot, most recently purchased first.
func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY purchase_date DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		product, err := r.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// Count returns the number of inventory entries.
func (r *productRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *productRepository) scanOne(row rowScanner) (*domain.Product, error) {
	product := &domain.Product{}
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Brand,
		&product.Manufacturer,
		&product.Category,
		&product.Barcode,
		&product.ExpirationDate,
		&product.Units,
		&product.QuantityValue,
		&product.QuantityUnit,
		&product.PhotoURL,
		&product.NutritionRaw,
		&product.NutritionSummary,
		&product.PurchaseDate,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return product, nil
}
