package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"secondhand/market-service/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func imageUpload(name string) Upload {
	return Upload{Filename: name, ContentType: "image/jpeg", Body: strings.NewReader(jpegData + name)}
}

func validProduct(owner string, images ...Upload) NewProductInput {
	return NewProductInput{
		OwnerID:        owner,
		Name:           "Bike",
		Description:    "Barely used",
		Category:       "Vehicles",
		Price:          120,
		PurchasingDate: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
		ProvinceName:   "Hanoi",
		DistrictName:   "Cau Giay",
		Images:         images,
	}
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()
	owner := newUser("seller")
	products := newFakeProducts()
	media := &fakeMedia{}
	svc := NewProductService(products, newFakeUsers(owner), media, quietLogger())

	product, err := svc.Create(ctx, validProduct(owner.ID, imageUpload("a.jpg"), imageUpload("b.jpg")))
	require.NoError(t, err)
	require.Len(t, product.Images, 2)
	assert.Equal(t, product.Images[0].URL, product.Thumbnail)
	assert.Equal(t, "Hanoi_Cau Giay", product.Address)
	assert.True(t, product.IsActive)

	stored, err := svc.Get(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.Name, stored.Name)
}

func TestCreateProductValidation(t *testing.T) {
	ctx := context.Background()
	owner := newUser("seller")
	media := &fakeMedia{}
	svc := NewProductService(newFakeProducts(), newFakeUsers(owner), media, quietLogger())

	tooMany := validProduct(owner.ID)
	for i := 0; i < 6; i++ {
		tooMany.Images = append(tooMany.Images, imageUpload("x.jpg"))
	}
	_, err := svc.Create(ctx, tooMany)
	assert.ErrorIs(t, err, ErrValidation)

	notImage := validProduct(owner.ID, Upload{Filename: "x.pdf", ContentType: "application/pdf", Body: strings.NewReader("")})
	_, err = svc.Create(ctx, notImage)
	assert.ErrorIs(t, err, ErrValidation)

	disguised := validProduct(owner.ID, imageUpload("a.jpg"), Upload{
		Filename:    "x.html",
		ContentType: "image/jpeg",
		Body:        strings.NewReader("<html><script>alert(1)</script></html>"),
	})
	_, err = svc.Create(ctx, disguised)
	assert.ErrorIs(t, err, ErrValidation)

	noName := validProduct(owner.ID)
	noName.Name = " "
	_, err = svc.Create(ctx, noName)
	assert.ErrorIs(t, err, ErrValidation)

	assert.Empty(t, media.uploaded)
}

func TestCreateProductMonthlyLimit(t *testing.T) {
	ctx := context.Background()
	owner := newUser("seller")
	products := newFakeProducts()
	products.monthly = monthlyListingAllowed
	users := newFakeUsers(owner)
	svc := NewProductService(products, users, &fakeMedia{}, quietLogger())

	_, err := svc.Create(ctx, validProduct(owner.ID))
	assert.ErrorIs(t, err, ErrListingLimit)

	expires := time.Now().AddDate(0, 1, 0)
	require.NoError(t, users.UpdatePremium(ctx, owner.ID, models.PremiumStatus{
		Subscription: "HV_1M",
		ExpiresAt:    &expires,
		IsAvailable:  true,
	}))

	_, err = svc.Create(ctx, validProduct(owner.ID))
	assert.NoError(t, err)
}

func TestCreateProductRollsBackUploads(t *testing.T) {
	ctx := context.Background()
	owner := newUser("seller")
	media := &fakeMedia{failAfter: 1}
	svc := NewProductService(newFakeProducts(), newFakeUsers(owner), media, quietLogger())

	_, err := svc.Create(ctx, validProduct(owner.ID, imageUpload("a.jpg"), imageUpload("b.jpg")))
	assert.ErrorIs(t, err, errUploadFailed)
	assert.Equal(t, media.uploaded, media.destroyed)
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()
	owner := newUser("seller")
	product := &models.Product{
		ID:      uuid.NewString(),
		OwnerID: owner.ID,
		Images:  []models.Image{{ID: "img-1"}, {ID: "img-2"}},
	}
	products := newFakeProducts(product)
	media := &fakeMedia{}
	svc := NewProductService(products, newFakeUsers(owner), media, quietLogger())

	assert.ErrorIs(t, svc.Delete(ctx, newUser("thief").ID, product.ID), ErrForbidden)

	require.NoError(t, svc.Delete(ctx, owner.ID, product.ID))
	assert.Equal(t, []string{"img-1", "img-2"}, media.destroyed)

	_, err := svc.Get(ctx, product.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCleanupOlderThan(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	old := &models.Product{ID: uuid.NewString(), CreatedAt: now.AddDate(0, -2, 0), Images: []models.Image{{ID: "old"}}}
	fresh := &models.Product{ID: uuid.NewString(), CreatedAt: now, Images: []models.Image{{ID: "fresh"}}}
	products := newFakeProducts(old, fresh)
	media := &fakeMedia{}
	svc := NewProductService(products, newFakeUsers(), media, quietLogger())

	deleted, err := svc.CleanupOlderThan(ctx, now.Add(-720*time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)
	assert.Equal(t, []string{"old"}, media.destroyed)

	_, err = svc.Get(ctx, fresh.ID)
	assert.NoError(t, err)
}
