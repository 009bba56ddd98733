package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"secondhand/market-service/internal/models"
	"secondhand/market-service/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	maxProductImages      = 5
	monthlyListingAllowed = 10
)

type NewProductInput struct {
	OwnerID        string
	Name           string
	Description    string
	Category       string
	Price          float64
	PurchasingDate time.Time
	ProvinceName   string
	DistrictName   string
	Images         []Upload
}

type ProductService interface {
	Create(ctx context.Context, in NewProductInput) (*models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Delete(ctx context.Context, userID, id string) error
	CleanupOlderThan(ctx context.Context, before time.Time) (int64, error)
}

type productService struct {
	products repository.ProductRepository
	users    repository.UserRepository
	media    MediaStore
	logger   *logrus.Logger
	now      func() time.Time
}

func NewProductService(products repository.ProductRepository, users repository.UserRepository, media MediaStore, logger *logrus.Logger) ProductService {
	return &productService{
		products: products,
		users:    users,
		media:    media,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *productService) Create(ctx context.Context, in NewProductInput) (*models.Product, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}

	images := make([]Upload, 0, len(in.Images))
	for _, file := range in.Images {
		sniffed, err := sniffImage(file)
		if err != nil {
			return nil, err
		}
		images = append(images, sniffed)
	}

	owner, err := s.users.GetUserByID(ctx, in.OwnerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !owner.Premium.IsAvailable {
		now := s.now()
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		count, err := s.products.CountOwnerProducts(ctx, owner.ID, monthStart, monthStart.AddDate(0, 1, 0))
		if err != nil {
			return nil, err
		}
		if count >= monthlyListingAllowed {
			return nil, ErrListingLimit
		}
	}

	product := &models.Product{
		ID:             uuid.New().String(),
		OwnerID:        owner.ID,
		Name:           strings.TrimSpace(in.Name),
		Description:    strings.TrimSpace(in.Description),
		Price:          in.Price,
		Category:       in.Category,
		Address:        in.ProvinceName + "_" + in.DistrictName,
		PurchasingDate: in.PurchasingDate,
		IsActive:       true,
	}

	for _, file := range images {
		img, err := s.media.Upload(ctx, file.Filename, file.Body)
		if err != nil {
			s.destroyImages(ctx, product.ImageIDs())
			return nil, err
		}
		product.Images = append(product.Images, img)
	}
	if len(product.Images) > 0 {
		product.Thumbnail = product.Images[0].URL
	}

	if err := s.products.CreateProduct(ctx, product); err != nil {
		s.logger.WithError(err).Error("Failed to create product")
		s.destroyImages(ctx, product.ImageIDs())
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"product_id": product.ID,
		"owner_id":   owner.ID,
		"images":     len(product.Images),
	}).Info("Product listed")

	return product, nil
}

func (s *productService) Get(ctx context.Context, id string) (*models.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: product id %q", ErrInvalidID, id)
	}

	product, err := s.products.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	return product, nil
}

func (s *productService) Delete(ctx context.Context, userID, id string) error {
	product, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if product.OwnerID != userID {
		return ErrForbidden
	}

	if err := s.products.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	s.destroyImages(ctx, product.ImageIDs())
	return nil
}

// CleanupOlderThan deletes listings created before the cutoff together with
// their images.
func (s *productService) CleanupOlderThan(ctx context.Context, before time.Time) (int64, error) {
	imageIDs, deleted, err := s.products.DeleteProductsOlderThan(ctx, before)
	if err != nil {
		s.logger.WithError(err).Error("Failed to delete expired products")
		return 0, err
	}

	s.destroyImages(ctx, imageIDs)

	s.logger.WithFields(logrus.Fields{
		"deleted": deleted,
		"before":  before,
	}).Info("Expired products removed")

	return deleted, nil
}

// destroyImages is best effort; orphaned media is logged, not surfaced.
func (s *productService) destroyImages(ctx context.Context, ids []string) {
	if len(ids) == 0 {
		return
	}
	if err := s.media.Destroy(ctx, ids...); err != nil {
		s.logger.WithError(err).WithField("images", len(ids)).Warn("Failed to destroy product images")
	}
}

func validateProduct(in NewProductInput) error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return fmt.Errorf("%w: name is required", ErrValidation)
	case strings.TrimSpace(in.Description) == "":
		return fmt.Errorf("%w: description is required", ErrValidation)
	case strings.TrimSpace(in.Category) == "":
		return fmt.Errorf("%w: category is required", ErrValidation)
	case in.Price < 0:
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	case in.PurchasingDate.IsZero():
		return fmt.Errorf("%w: purchasing date is required", ErrValidation)
	case len(in.Images) > maxProductImages:
		return fmt.Errorf("%w: at most %d images are allowed", ErrValidation, maxProductImages)
	}

	for _, img := range in.Images {
		if !img.IsImage() {
			return fmt.Errorf("%w: invalid image file %q", ErrValidation, img.Filename)
		}
	}

	return nil
}
