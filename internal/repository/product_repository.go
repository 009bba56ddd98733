package repository

import (
	"context"
	"database/sql"
	"time"

	"secondhand/market-service/internal/models"

	"github.com/lib/pq"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	ListProducts(ctx context.Context) ([]*models.Product, error)
	CountOwnerProducts(ctx context.Context, ownerID string, from, to time.Time) (int, error)
	SetProductActive(ctx context.Context, id string, active bool) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	DeleteProductsByOwner(ctx context.Context, ownerID string) (imageIDs []string, deleted int64, err error)
	DeleteProductsOlderThan(ctx context.Context, before time.Time) (imageIDs []string, deleted int64, err error)
}

type productRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{
		db: db,
	}
}

const productColumns = `id, owner_id, name, description, price, category, address, purchasing_date,
	image_ids, image_urls, thumbnail, is_active, is_sold, created_at, updated_at`

func scanProduct(row rowScanner) (*models.Product, error) {
	var p models.Product
	var imageIDs, imageURLs []string

	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Address,
		&p.PurchasingDate, pq.Array(&imageIDs), pq.Array(&imageURLs), &p.Thumbnail,
		&p.IsActive, &p.IsSold, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}

	for i, id := range imageIDs {
		img := models.Image{ID: id}
		if i < len(imageURLs) {
			img.URL = imageURLs[i]
		}
		p.Images = append(p.Images, img)
	}

	return &p, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, p *models.Product) error {
	query := `
	INSERT INTO products (id, owner_id, name, description, price, category, address, purchasing_date,
		image_ids, image_urls, thumbnail, is_active, is_sold, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
	RETURNING created_at, updated_at
	`

	ids := make([]string, 0, len(p.Images))
	urls := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		ids = append(ids, img.ID)
		urls = append(urls, img.URL)
	}

	return r.db.QueryRowContext(ctx, query,
		p.ID, p.OwnerID, p.Name, p.Description, p.Price, p.Category, p.Address, p.PurchasingDate,
		pq.Array(ids), pq.Array(urls), p.Thumbnail, p.IsActive, p.IsSold,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *productRepository) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return scanProduct(r.db.QueryRowContext(ctx, query, id))
}

func (r *productRepository) ListProducts(ctx context.Context) ([]*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *productRepository) CountOwnerProducts(ctx context.Context, ownerID string, from, to time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM products WHERE owner_id = $1 AND created_at >= $2 AND created_at < $3`

	var count int
	err := r.db.QueryRowContext(ctx, query, ownerID, from, to).Scan(&count)
	return count, err
}

func (r *productRepository) SetProductActive(ctx context.Context, id string, active bool) (*models.Product, error) {
	query := `UPDATE products SET is_active = $2, updated_at = NOW() WHERE id = $1 RETURNING ` + productColumns
	return scanProduct(r.db.QueryRowContext(ctx, query, id, active))
}

func (r *productRepository) DeleteProduct(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}

	return expectAffected(result)
}

func (r *productRepository) DeleteProductsByOwner(ctx context.Context, ownerID string) ([]string, int64, error) {
	query := `DELETE FROM products WHERE owner_id = $1 RETURNING image_ids`
	return r.deleteReturningImages(ctx, query, ownerID)
}

func (r *productRepository) DeleteProductsOlderThan(ctx context.Context, before time.Time) ([]string, int64, error) {
	query := `DELETE FROM products WHERE created_at < $1 RETURNING image_ids`
	return r.deleteReturningImages(ctx, query, before)
}

func (r *productRepository) deleteReturningImages(ctx context.Context, query string, arg interface{}) ([]string, int64, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var imageIDs []string
	var deleted int64
	for rows.Next() {
		var ids []string
		if err := rows.Scan(pq.Array(&ids)); err != nil {
			return nil, 0, err
		}
		imageIDs = append(imageIDs, ids...)
		deleted++
	}

	return imageIDs, deleted, rows.Err()
}
