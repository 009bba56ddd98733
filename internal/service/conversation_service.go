package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"secondhand/market-service/internal/models"
	"secondhand/market-service/internal/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ChatView struct {
	ID     string         `json:"id"`
	Text   string         `json:"text"`
	Time   time.Time      `json:"time"`
	Viewed bool           `json:"viewed"`
	User   models.Profile `json:"user"`
}

type ConversationView struct {
	ID          string         `json:"id"`
	Chats       []ChatView     `json:"chats"`
	PeerProfile models.Profile `json:"peerProfile"`
}

type Summary struct {
	ID          string         `json:"id"`
	LastMessage string         `json:"lastMessage"`
	Timestamp   time.Time      `json:"timestamp"`
	UnreadCount int            `json:"unreadChatCounts"`
	PeerProfile models.Profile `json:"peerProfile"`
}

type ConversationService interface {
	GetOrCreate(ctx context.Context, userID, peerID string) (string, error)
	AppendChat(ctx context.Context, conversationID, senderID, content string, ts time.Time) (*models.Chat, error)
	AppendChatOnce(ctx context.Context, conversationID, senderID, content string, ts time.Time, window time.Duration) (*models.Chat, bool, error)
	SendImage(ctx context.Context, conversationID, senderID string, file Upload) (*models.Chat, models.Image, error)
	MarkSeen(ctx context.Context, conversationID, viewerID, peerID string) error
	Project(ctx context.Context, conversationID, viewerID string) (*ConversationView, error)
	Summarize(ctx context.Context, viewerID string) ([]Summary, error)
	Profile(ctx context.Context, userID string) (models.Profile, error)
}

type conversationService struct {
	conversations repository.ConversationRepository
	users         repository.UserRepository
	media         MediaStore
	logger        *logrus.Logger
}

func NewConversationService(conversations repository.ConversationRepository, users repository.UserRepository, media MediaStore, logger *logrus.Logger) ConversationService {
	return &conversationService{
		conversations: conversations,
		users:         users,
		media:         media,
		logger:        logger,
	}
}

func (s *conversationService) GetOrCreate(ctx context.Context, userID, peerID string) (string, error) {
	if err := parseUserID(userID); err != nil {
		return "", err
	}
	if err := parseUserID(peerID); err != nil {
		return "", err
	}
	if userID == peerID {
		return "", fmt.Errorf("%w: cannot create conversation with yourself", ErrValidation)
	}

	if _, err := s.users.GetUserByID(ctx, peerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		s.logger.WithError(err).Error("Failed to load peer")
		return "", err
	}

	key := models.ParticipantsKey(userID, peerID)
	conv, err := s.conversations.Upsert(ctx, key, []string{userID, peerID})
	if err != nil {
		s.logger.WithError(err).Error("Failed to get or create conversation")
		return "", err
	}

	s.logger.WithFields(logrus.Fields{
		"conversation_id": conv.ID.Hex(),
		"user_id":         userID,
		"peer_id":         peerID,
	}).Debug("Conversation resolved")

	return conv.ID.Hex(), nil
}

func (s *conversationService) AppendChat(ctx context.Context, conversationID, senderID, content string, ts time.Time) (*models.Chat, error) {
	oid, _, err := s.loadForParticipant(ctx, conversationID, senderID)
	if err != nil {
		return nil, err
	}

	return s.append(ctx, oid, senderID, content, ts)
}

// AppendChatOnce appends unless the log already holds a chat with the same
// sender and content whose timestamp is within window of ts. Callers must
// serialize calls per conversation for the check to hold.
func (s *conversationService) AppendChatOnce(ctx context.Context, conversationID, senderID, content string, ts time.Time, window time.Duration) (*models.Chat, bool, error) {
	oid, conv, err := s.loadForParticipant(ctx, conversationID, senderID)
	if err != nil {
		return nil, false, err
	}
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	for i := len(conv.Chats) - 1; i >= 0; i-- {
		c := conv.Chats[i]
		if c.SentBy != senderID || c.Content != content {
			continue
		}
		if absDuration(c.Timestamp.Sub(ts)) <= window {
			s.logger.WithFields(logrus.Fields{
				"conversation_id": conversationID,
				"sender_id":       senderID,
				"chat_id":         c.ID.Hex(),
			}).Info("Duplicate chat suppressed")
			return &c, true, nil
		}
	}

	chat, err := s.append(ctx, oid, senderID, content, ts)
	if err != nil {
		return nil, false, err
	}
	return chat, false, nil
}

func (s *conversationService) SendImage(ctx context.Context, conversationID, senderID string, file Upload) (*models.Chat, models.Image, error) {
	if !file.IsImage() {
		return nil, models.Image{}, fmt.Errorf("%w: invalid image file", ErrValidation)
	}

	oid, _, err := s.loadForParticipant(ctx, conversationID, senderID)
	if err != nil {
		return nil, models.Image{}, err
	}

	file, err = sniffImage(file)
	if err != nil {
		return nil, models.Image{}, err
	}

	img, err := s.media.Upload(ctx, file.Filename, file.Body)
	if err != nil {
		s.logger.WithError(err).Error("Failed to upload chat image")
		return nil, models.Image{}, err
	}

	chat, err := s.append(ctx, oid, senderID, img.URL, time.Now().UTC())
	if err != nil {
		return nil, models.Image{}, err
	}

	return chat, img, nil
}

func (s *conversationService) MarkSeen(ctx context.Context, conversationID, viewerID, peerID string) error {
	if err := parseUserID(peerID); err != nil {
		return err
	}

	oid, conv, err := s.loadForParticipant(ctx, conversationID, viewerID)
	if err != nil {
		return err
	}
	if peerID == viewerID || !conv.HasParticipant(peerID) {
		return ErrNotParticipant
	}

	if err := s.conversations.MarkSeen(ctx, oid, peerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrConversationNotFound
		}
		s.logger.WithError(err).Error("Failed to mark chats as seen")
		return err
	}

	return nil
}

func (s *conversationService) Project(ctx context.Context, conversationID, viewerID string) (*ConversationView, error) {
	_, conv, err := s.loadForParticipant(ctx, conversationID, viewerID)
	if err != nil {
		return nil, err
	}

	profiles, err := s.users.GetProfiles(ctx, conv.Participants)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load participant profiles")
		return nil, err
	}

	view := &ConversationView{
		ID:          conv.ID.Hex(),
		Chats:       make([]ChatView, 0, len(conv.Chats)),
		PeerProfile: profileOrID(profiles, peerOf(conv.Participants, viewerID)),
	}
	for _, c := range conv.Chats {
		view.Chats = append(view.Chats, ChatView{
			ID:     c.ID.Hex(),
			Text:   c.Content,
			Time:   c.Timestamp,
			Viewed: c.Viewed,
			User:   profileOrID(profiles, c.SentBy),
		})
	}

	return view, nil
}

func (s *conversationService) Summarize(ctx context.Context, viewerID string) ([]Summary, error) {
	if err := parseUserID(viewerID); err != nil {
		return nil, err
	}

	digests, err := s.conversations.ListDigests(ctx, viewerID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list conversations")
		return nil, err
	}

	peers := make([]string, 0, len(digests))
	for _, d := range digests {
		peers = append(peers, peerOf(d.Participants, viewerID))
	}

	profiles := map[string]models.Profile{}
	if len(peers) > 0 {
		profiles, err = s.users.GetProfiles(ctx, peers)
		if err != nil {
			s.logger.WithError(err).Error("Failed to load peer profiles")
			return nil, err
		}
	}

	summaries := make([]Summary, 0, len(digests))
	for i, d := range digests {
		summaries = append(summaries, Summary{
			ID:          d.ID.Hex(),
			LastMessage: d.LastChat.Content,
			Timestamp:   d.LastChat.Timestamp,
			UnreadCount: d.UnreadCount,
			PeerProfile: profileOrID(profiles, peers[i]),
		})
	}

	return summaries, nil
}

func (s *conversationService) Profile(ctx context.Context, userID string) (models.Profile, error) {
	if err := parseUserID(userID); err != nil {
		return models.Profile{}, err
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Profile{}, ErrUserNotFound
		}
		return models.Profile{}, err
	}

	return user.Profile(), nil
}

func (s *conversationService) loadForParticipant(ctx context.Context, conversationID, userID string) (primitive.ObjectID, *models.Conversation, error) {
	oid, err := parseConversationID(conversationID)
	if err != nil {
		return oid, nil, err
	}
	if err := parseUserID(userID); err != nil {
		return oid, nil, err
	}

	conv, err := s.conversations.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return oid, nil, ErrConversationNotFound
		}
		s.logger.WithError(err).Error("Failed to load conversation")
		return oid, nil, err
	}

	if !conv.HasParticipant(userID) {
		return oid, nil, ErrNotParticipant
	}

	return oid, conv, nil
}

func (s *conversationService) append(ctx context.Context, oid primitive.ObjectID, senderID, content string, ts time.Time) (*models.Chat, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: message content is empty", ErrValidation)
	}
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	chat := models.Chat{
		ID:        primitive.NewObjectID(),
		SentBy:    senderID,
		Content:   content,
		Timestamp: ts,
		Viewed:    false,
	}

	if err := s.conversations.AppendChat(ctx, oid, chat); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrConversationNotFound
		}
		s.logger.WithError(err).Error("Failed to append chat")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"chat_id":         chat.ID.Hex(),
		"conversation_id": oid.Hex(),
		"sender_id":       senderID,
	}).Info("Chat appended")

	return &chat, nil
}

func peerOf(participants []string, viewerID string) string {
	for _, p := range participants {
		if p != viewerID {
			return p
		}
	}
	return ""
}

func profileOrID(profiles map[string]models.Profile, id string) models.Profile {
	if p, ok := profiles[id]; ok {
		return p
	}
	return models.Profile{ID: id}
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
