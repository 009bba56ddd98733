package handler

import (
	"context"
	"errors"
	"io"
	"net/url"
	"time"

	"secondhand/market-service/internal/models"
	"secondhand/market-service/internal/service"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// fakeAuth resolves tokens from a fixed table. Tokens not in the table are
// treated as malformed.
type fakeAuth struct {
	service.AuthService

	users  map[string]*models.User
	errors map[string]error
}

func (f *fakeAuth) VerifyToken(token string) (service.Identity, error) {
	if token == "" {
		return service.Identity{}, service.ErrTokenMissing
	}
	if err, ok := f.errors[token]; ok {
		return service.Identity{}, err
	}
	if u, ok := f.users[token]; ok {
		return service.Identity{UserID: u.ID}, nil
	}
	return service.Identity{}, service.ErrTokenInvalid
}

func (f *fakeAuth) Authenticate(_ context.Context, token string) (*models.User, error) {
	if _, err := f.VerifyToken(token); err != nil {
		return nil, err
	}
	return f.users[token], nil
}

type fakeConversations struct {
	service.ConversationService

	id        string
	err       error
	summaries []service.Summary
	seen      []string
}

func (f *fakeConversations) GetOrCreate(_ context.Context, userID, peerID string) (string, error) {
	return f.id, f.err
}

func (f *fakeConversations) Summarize(context.Context, string) ([]service.Summary, error) {
	return f.summaries, f.err
}

func (f *fakeConversations) MarkSeen(_ context.Context, conversationID, viewerID, peerID string) error {
	if f.err != nil {
		return f.err
	}
	f.seen = append(f.seen, conversationID+"/"+viewerID+"/"+peerID)
	return nil
}

func (f *fakeConversations) AppendChat(_ context.Context, _, senderID, content string, ts time.Time) (*models.Chat, error) {
	return &models.Chat{SentBy: senderID, Content: content, Timestamp: ts}, nil
}

func (f *fakeConversations) Profile(_ context.Context, userID string) (models.Profile, error) {
	return models.Profile{ID: userID}, nil
}

type fakeAdmin struct {
	service.AdminService

	products []*models.Product
	blocked  map[string]bool
}

func (f *fakeAdmin) ListListings(context.Context) ([]*models.Product, error) {
	return f.products, nil
}

func (f *fakeAdmin) SetUserStatus(_ context.Context, userID string, active bool) (*models.User, error) {
	if f.blocked == nil {
		f.blocked = make(map[string]bool)
	}
	f.blocked[userID] = !active
	return &models.User{ID: userID, IsActive: active}, nil
}

type fakeProducts struct {
	service.ProductService

	created *service.NewProductInput
}

func (f *fakeProducts) Create(_ context.Context, in service.NewProductInput) (*models.Product, error) {
	for _, img := range in.Images {
		if _, err := io.ReadAll(img.Body); err != nil {
			return nil, err
		}
	}
	f.created = &in
	return &models.Product{ID: "p-1", OwnerID: in.OwnerID, Name: in.Name, PurchasingDate: in.PurchasingDate}, nil
}

func (f *fakeProducts) Get(_ context.Context, id string) (*models.Product, error) {
	if id != "p-1" {
		return nil, service.ErrProductNotFound
	}
	return &models.Product{ID: "p-1", Name: "bike"}, nil
}

type fakePayments struct {
	service.PaymentService
}

func (fakePayments) HandleReturn(_ context.Context, q url.Values) (*service.PaymentResult, error) {
	if q.Get("vnp_SecureHash") != "ok" {
		return &service.PaymentResult{Code: "97"}, service.ErrInvalidSignature
	}
	return &service.PaymentResult{Code: q.Get("vnp_ResponseCode")}, nil
}

var errBoom = errors.New("database exploded")
