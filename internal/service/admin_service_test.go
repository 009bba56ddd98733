package service

import (
	"context"
	"sort"
	"testing"

	"secondhand/market-service/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetUserStatusCascades(t *testing.T) {
	ctx := context.Background()
	seller := newUser("seller")
	other := newUser("other")
	products := newFakeProducts(
		&models.Product{ID: uuid.NewString(), OwnerID: seller.ID, Images: []models.Image{{ID: "a"}, {ID: "b"}}},
		&models.Product{ID: uuid.NewString(), OwnerID: seller.ID, Images: []models.Image{{ID: "c"}}},
		&models.Product{ID: uuid.NewString(), OwnerID: other.ID, Images: []models.Image{{ID: "keep"}}},
	)
	media := &fakeMedia{}
	svc := NewAdminService(newFakeUsers(seller, other), products, media, quietLogger())

	user, err := svc.SetUserStatus(ctx, seller.ID, false)
	require.NoError(t, err)
	assert.False(t, user.IsActive)

	sort.Strings(media.destroyed)
	assert.Equal(t, []string{"a", "b", "c"}, media.destroyed)

	remaining, err := svc.ListListings(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, other.ID, remaining[0].OwnerID)
}

func TestSetUserStatusWithoutProducts(t *testing.T) {
	ctx := context.Background()
	seller := newUser("seller")
	media := &fakeMedia{}
	svc := NewAdminService(newFakeUsers(seller), newFakeProducts(), media, quietLogger())

	user, err := svc.SetUserStatus(ctx, seller.ID, false)
	require.NoError(t, err)
	assert.False(t, user.IsActive)
	assert.Empty(t, media.destroyed)

	user, err = svc.SetUserStatus(ctx, seller.ID, true)
	require.NoError(t, err)
	assert.True(t, user.IsActive)
}

func TestSetUserStatusUnknownUser(t *testing.T) {
	svc := NewAdminService(newFakeUsers(), newFakeProducts(), &fakeMedia{}, quietLogger())

	_, err := svc.SetUserStatus(context.Background(), uuid.NewString(), false)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.SetUserStatus(context.Background(), "42", false)
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestSetProductStatus(t *testing.T) {
	ctx := context.Background()
	product := &models.Product{ID: uuid.NewString(), IsActive: true}
	svc := NewAdminService(newFakeUsers(), newFakeProducts(product), &fakeMedia{}, quietLogger())

	updated, err := svc.SetProductStatus(ctx, product.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	_, err = svc.SetProductStatus(ctx, uuid.NewString(), false)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestListUsersPaginates(t *testing.T) {
	users := newFakeUsers(newUser("a"), newUser("b"), newUser("c"))
	svc := NewAdminService(users, newFakeProducts(), &fakeMedia{}, quietLogger())

	page, err := svc.ListUsers(context.Background(), 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "c", page[0].Name)

	page, err = svc.ListUsers(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Len(t, page, 3)
}
