package service

import (
	"context"
	"errors"
	"fmt"

	"secondhand/market-service/internal/models"
	"secondhand/market-service/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AdminService interface {
	ListListings(ctx context.Context) ([]*models.Product, error)
	ListUsers(ctx context.Context, page, limit int) ([]*models.User, error)
	SetProductStatus(ctx context.Context, productID string, active bool) (*models.Product, error)
	SetUserStatus(ctx context.Context, userID string, active bool) (*models.User, error)
}

type adminService struct {
	users    repository.UserRepository
	products repository.ProductRepository
	media    MediaStore
	logger   *logrus.Logger
}

func NewAdminService(users repository.UserRepository, products repository.ProductRepository, media MediaStore, logger *logrus.Logger) AdminService {
	return &adminService{
		users:    users,
		products: products,
		media:    media,
		logger:   logger,
	}
}

func (s *adminService) ListListings(ctx context.Context) ([]*models.Product, error) {
	return s.products.ListProducts(ctx)
}

func (s *adminService) ListUsers(ctx context.Context, page, limit int) ([]*models.User, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	return s.users.ListUsers(ctx, limit, (page-1)*limit)
}

func (s *adminService) SetProductStatus(ctx context.Context, productID string, active bool) (*models.Product, error) {
	if _, err := uuid.Parse(productID); err != nil {
		return nil, fmt.Errorf("%w: product id %q", ErrInvalidID, productID)
	}

	product, err := s.products.SetProductActive(ctx, productID, active)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"product_id": productID,
		"is_active":  active,
	}).Info("Product status updated")

	return product, nil
}

// SetUserStatus toggles a user. Blocking a user removes all of their
// listings and destroys the listing images on the media host.
func (s *adminService) SetUserStatus(ctx context.Context, userID string, active bool) (*models.User, error) {
	if err := parseUserID(userID); err != nil {
		return nil, err
	}

	user, err := s.users.SetUserActive(ctx, userID, active)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.IsActive {
		return user, nil
	}

	imageIDs, deleted, err := s.products.DeleteProductsByOwner(ctx, userID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to delete products of blocked user")
		return nil, err
	}

	if len(imageIDs) > 0 {
		if err := s.media.Destroy(ctx, imageIDs...); err != nil {
			s.logger.WithError(err).WithField("user_id", userID).Error("Failed to destroy images of blocked user")
			return nil, err
		}
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":  userID,
		"products": deleted,
		"images":   len(imageIDs),
	}).Info("User blocked")

	return user, nil
}
