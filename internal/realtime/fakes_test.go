package realtime

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"testing"
	"time"

	"secondhand/market-service/internal/models"
	"secondhand/market-service/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type appended struct {
	ConversationID string
	SenderID       string
	Content        string
	Time           time.Time
}

type seenCall struct {
	ConversationID string
	ViewerID       string
	PeerID         string
}

// serverTime stamps chats whose sender left the time out.
var serverTime = time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

// fakeConversations records what the dispatcher persists. AppendChatOnce
// reads then writes with a pause in between so unguarded callers race.
type fakeConversations struct {
	service.ConversationService

	mu      sync.Mutex
	chats   []appended
	seen    []seenCall
	pause   time.Duration
	failing bool
}

func (f *fakeConversations) AppendChat(_ context.Context, conversationID, senderID, content string, ts time.Time) (*models.Chat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, service.ErrNotParticipant
	}
	if ts.IsZero() {
		ts = serverTime
	}
	f.chats = append(f.chats, appended{conversationID, senderID, content, ts})
	return &models.Chat{ID: primitive.NewObjectID(), SentBy: senderID, Content: content, Timestamp: ts}, nil
}

func (f *fakeConversations) AppendChatOnce(ctx context.Context, conversationID, senderID, content string, ts time.Time, window time.Duration) (*models.Chat, bool, error) {
	f.mu.Lock()
	var dup bool
	for _, c := range f.chats {
		d := c.Time.Sub(ts)
		if d < 0 {
			d = -d
		}
		if c.ConversationID == conversationID && c.SenderID == senderID && c.Content == content && d <= window {
			dup = true
		}
	}
	f.mu.Unlock()

	if dup {
		return nil, true, nil
	}
	time.Sleep(f.pause)

	chat, err := f.AppendChat(ctx, conversationID, senderID, content, ts)
	return chat, false, err
}

func (f *fakeConversations) MarkSeen(_ context.Context, conversationID, viewerID, peerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = append(f.seen, seenCall{conversationID, viewerID, peerID})
	return nil
}

func (f *fakeConversations) Profile(_ context.Context, userID string) (models.Profile, error) {
	return models.Profile{ID: userID, Name: "name-" + userID}, nil
}

func (f *fakeConversations) appended() []appended {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]appended(nil), f.chats...)
}

func (f *fakeConversations) seenCalls() []seenCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]seenCall(nil), f.seen...)
}

// detachedClient is a client without a connection. Frames pushed to it stay
// in its send buffer.
func detachedClient(userID string) *Client {
	return NewClient(userID, nil, quietLogger())
}

type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func drain(t *testing.T, c *Client) []frame {
	t.Helper()
	var frames []frame
	for {
		select {
		case raw := <-c.send:
			var f frame
			require.NoError(t, json.Unmarshal(raw, &f))
			frames = append(frames, f)
		default:
			return frames
		}
	}
}

func envelope(t *testing.T, event string, data interface{}) Envelope {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	return Envelope{Event: event, Data: raw}
}
