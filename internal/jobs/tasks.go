package jobs

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"
)

const (
	TypePremiumExpire  = "premium:expire"
	TypeProductCleanup = "product:cleanup"
)

type PremiumExpirer interface {
	ExpirePremium(ctx context.Context, now time.Time) (int64, error)
}

type ProductCleaner interface {
	CleanupOlderThan(ctx context.Context, before time.Time) (int64, error)
}

// Handlers processes the periodic maintenance tasks.
type Handlers struct {
	premium    PremiumExpirer
	products   ProductCleaner
	productTTL time.Duration
	logger     *logrus.Logger
	now        func() time.Time
}

func NewHandlers(premium PremiumExpirer, products ProductCleaner, productTTL time.Duration, logger *logrus.Logger) *Handlers {
	return &Handlers{
		premium:    premium,
		products:   products,
		productTTL: productTTL,
		logger:     logger,
		now:        time.Now,
	}
}

func (h *Handlers) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TypePremiumExpire, h.ExpirePremium)
	mux.HandleFunc(TypeProductCleanup, h.CleanupProducts)
}

func (h *Handlers) ExpirePremium(ctx context.Context, _ *asynq.Task) error {
	expired, err := h.premium.ExpirePremium(ctx, h.now())
	if err != nil {
		return err
	}

	h.logger.WithField("expired", expired).Info("Premium subscriptions expired")
	return nil
}

func (h *Handlers) CleanupProducts(ctx context.Context, _ *asynq.Task) error {
	_, err := h.products.CleanupOlderThan(ctx, h.now().Add(-h.productTTL))
	return err
}
