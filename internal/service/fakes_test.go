package service

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"secondhand/market-service/internal/models"
	"secondhand/market-service/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type fakeConversations struct {
	mu      sync.Mutex
	byID    map[primitive.ObjectID]*models.Conversation
	byKey   map[string]primitive.ObjectID
	upserts int
	clock   time.Time
}

func newFakeConversations() *fakeConversations {
	return &fakeConversations{
		byID:  make(map[primitive.ObjectID]*models.Conversation),
		byKey: make(map[string]primitive.ObjectID),
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeConversations) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeConversations) EnsureIndexes(context.Context) error { return nil }

func (f *fakeConversations) Upsert(_ context.Context, key string, participants []string) (*models.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts++

	if id, ok := f.byKey[key]; ok {
		return clone(f.byID[id]), nil
	}

	now := f.tick()
	conv := &models.Conversation{
		ID:              primitive.NewObjectID(),
		ParticipantsKey: key,
		Participants:    append([]string(nil), participants...),
		Chats:           []models.Chat{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	f.byID[conv.ID] = conv
	f.byKey[key] = conv.ID
	return clone(conv), nil
}

func (f *fakeConversations) FindByID(_ context.Context, id primitive.ObjectID) (*models.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	conv, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return clone(conv), nil
}

func (f *fakeConversations) AppendChat(_ context.Context, id primitive.ObjectID, chat models.Chat) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	conv, ok := f.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	conv.Chats = append(conv.Chats, chat)
	conv.UpdatedAt = f.tick()
	return nil
}

func (f *fakeConversations) MarkSeen(_ context.Context, id primitive.ObjectID, peerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	conv, ok := f.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	for i := range conv.Chats {
		if conv.Chats[i].SentBy == peerID {
			conv.Chats[i].Viewed = true
		}
	}
	return nil
}

func (f *fakeConversations) ListDigests(_ context.Context, userID string) ([]models.ConversationDigest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var convs []*models.Conversation
	for _, c := range f.byID {
		if c.HasParticipant(userID) && len(c.Chats) > 0 {
			convs = append(convs, c)
		}
	}
	sort.Slice(convs, func(i, j int) bool { return convs[i].UpdatedAt.After(convs[j].UpdatedAt) })

	digests := make([]models.ConversationDigest, 0, len(convs))
	for _, c := range convs {
		unread := 0
		for _, chat := range c.Chats {
			if !chat.Viewed && chat.SentBy != userID {
				unread++
			}
		}
		digests = append(digests, models.ConversationDigest{
			ID:           c.ID,
			Participants: c.Participants,
			LastChat:     c.Chats[len(c.Chats)-1],
			UnreadCount:  unread,
		})
	}
	return digests, nil
}

func (f *fakeConversations) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byID)
}

func clone(c *models.Conversation) *models.Conversation {
	cp := *c
	cp.Participants = append([]string(nil), c.Participants...)
	cp.Chats = append([]models.Chat(nil), c.Chats...)
	return &cp
}

type fakeUsers struct {
	mu       sync.Mutex
	users    map[string]*models.User
	tokens   map[string][]string
	premiums map[string]models.PremiumStatus
}

func newFakeUsers(users ...*models.User) *fakeUsers {
	f := &fakeUsers{
		users:    make(map[string]*models.User),
		tokens:   make(map[string][]string),
		premiums: make(map[string]models.PremiumStatus),
	}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func newUser(name string) *models.User {
	return &models.User{ID: uuid.NewString(), Name: name, Email: name + "@example.com", IsActive: true}
}

func (f *fakeUsers) CreateUser(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUsers) GetUserByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUsers) GetProfiles(_ context.Context, ids []string) (map[string]models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]models.Profile, len(ids))
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out[id] = u.Profile()
		}
	}
	return out, nil
}

func (f *fakeUsers) ListUsers(_ context.Context, limit, offset int) ([]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]*models.User, 0, len(f.users))
	for _, u := range f.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	if offset >= len(all) {
		return []*models.User{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeUsers) SetUserActive(_ context.Context, id string, active bool) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u.IsActive = active
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) UpdatePremium(_ context.Context, id string, premium models.PremiumStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Premium = premium
	f.premiums[id] = premium
	return nil
}

func (f *fakeUsers) ExpirePremium(_ context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, u := range f.users {
		if u.Premium.IsAvailable && u.Premium.ExpiresAt != nil && u.Premium.ExpiresAt.Before(now) {
			u.Premium = models.PremiumStatus{}
			n++
		}
	}
	return n, nil
}

func (f *fakeUsers) AddRefreshToken(_ context.Context, userID, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[userID] = append(f.tokens[userID], token)
	return nil
}

func (f *fakeUsers) RotateRefreshToken(_ context.Context, userID, oldToken, newToken string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	tokens := f.tokens[userID]
	for i, t := range tokens {
		if t == oldToken {
			tokens[i] = newToken
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeUsers) RemoveRefreshToken(_ context.Context, userID, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	tokens := f.tokens[userID]
	for i, t := range tokens {
		if t == token {
			f.tokens[userID] = append(tokens[:i], tokens[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeUsers) ClearRefreshTokens(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tokens, userID)
	return nil
}

func (f *fakeUsers) refreshTokens(userID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.tokens[userID]...)
}

type fakeProducts struct {
	mu       sync.Mutex
	products map[string]*models.Product
	monthly  int
}

func newFakeProducts(products ...*models.Product) *fakeProducts {
	f := &fakeProducts{products: make(map[string]*models.Product)}
	for _, p := range products {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeProducts) CreateProduct(_ context.Context, p *models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	f.products[p.ID] = p
	return nil
}

func (f *fakeProducts) GetProductByID(_ context.Context, id string) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProducts) ListProducts(context.Context) ([]*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProducts) CountOwnerProducts(_ context.Context, ownerID string, from, to time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := f.monthly
	for _, p := range f.products {
		if p.OwnerID == ownerID && !p.CreatedAt.Before(from) && p.CreatedAt.Before(to) {
			n++
		}
	}
	return n, nil
}

func (f *fakeProducts) SetProductActive(_ context.Context, id string, active bool) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p.IsActive = active
	cp := *p
	return &cp, nil
}

func (f *fakeProducts) DeleteProduct(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProducts) DeleteProductsByOwner(_ context.Context, ownerID string) ([]string, int64, error) {
	return f.deleteWhere(func(p *models.Product) bool { return p.OwnerID == ownerID })
}

func (f *fakeProducts) DeleteProductsOlderThan(_ context.Context, before time.Time) ([]string, int64, error) {
	return f.deleteWhere(func(p *models.Product) bool { return p.CreatedAt.Before(before) })
}

func (f *fakeProducts) deleteWhere(match func(*models.Product) bool) ([]string, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []string
	var n int64
	for id, p := range f.products {
		if match(p) {
			ids = append(ids, p.ImageIDs()...)
			delete(f.products, id)
			n++
		}
	}
	return ids, n, nil
}

type fakeInvoices struct {
	mu       sync.Mutex
	invoices []*models.Invoice
	err      error
}

func (f *fakeInvoices) CreateInvoice(_ context.Context, invoice *models.Invoice) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	invoice.CreatedAt = time.Now()
	f.invoices = append(f.invoices, invoice)
	return nil
}

type fakeMedia struct {
	mu        sync.Mutex
	uploaded  []string
	destroyed []string
	failAfter int
}

var errUploadFailed = errors.New("upload failed")

// Leading bytes that content sniffing recognizes as images.
const (
	pngData  = "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"
	jpegData = "\xff\xd8\xff\xe0\x00\x10JFIF"
)

func (f *fakeMedia) Upload(_ context.Context, filename string, body io.Reader) (models.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAfter > 0 && len(f.uploaded) >= f.failAfter {
		return models.Image{}, errUploadFailed
	}
	if _, err := io.ReadAll(body); err != nil {
		return models.Image{}, err
	}
	id := uuid.NewString() + "-" + filename
	f.uploaded = append(f.uploaded, id)
	return models.Image{ID: id, URL: "https://media.test/" + id}, nil
}

func (f *fakeMedia) Destroy(_ context.Context, ids ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.destroyed = append(f.destroyed, ids...)
	return nil
}
