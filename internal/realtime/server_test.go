package realtime

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T) (*Hub, *fakeConversations, string) {
	t.Helper()
	hub := NewHub(quietLogger())
	convs := &fakeConversations{}
	dispatcher := NewDispatcher(hub, convs, NewMemoryGuard(), time.Second, quietLogger())
	srv := NewServer(hub, dispatcher, nil, quietLogger())

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = srv.Serve(w, r, r.URL.Query().Get("user"))
	}))
	t.Cleanup(func() {
		hub.Close()
		ts.Close()
	})

	return hub, convs, "ws" + strings.TrimPrefix(ts.URL, "http")
}

func dial(t *testing.T, base, user string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(base+"?user="+user, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestServerRoundTrip(t *testing.T) {
	hub, convs, url := startServer(t)

	alice := dial(t, url, "alice")
	bob := dial(t, url, "bob")
	require.Eventually(t, func() bool {
		return hub.Size("alice") == 1 && hub.Size("bob") == 1
	}, time.Second, 5*time.Millisecond)

	// malformed frames are dropped without closing the socket
	require.NoError(t, alice.WriteMessage(websocket.TextMessage, []byte("{")))

	require.NoError(t, alice.WriteJSON(map[string]interface{}{
		"event": EventChatNew,
		"data": map[string]interface{}{
			"conversationId": "conv-1",
			"to":             "bob",
			"message":        map[string]interface{}{"id": "m1", "text": "hello", "time": time.Now().UTC()},
		},
	}))

	require.NoError(t, bob.SetReadDeadline(time.Now().Add(2*time.Second)))
	var got struct {
		Event string             `json:"event"`
		Data  ChatMessagePayload `json:"data"`
	}
	require.NoError(t, bob.ReadJSON(&got))
	assert.Equal(t, EventChatMessage, got.Event)
	assert.Equal(t, "hello", got.Data.Message.Text)
	assert.Equal(t, "alice", got.Data.From.ID)

	chats := convs.appended()
	require.Len(t, chats, 1)
	assert.Equal(t, "alice", chats[0].SenderID)
}

func TestServerLeavesRoomOnDisconnect(t *testing.T) {
	hub, _, url := startServer(t)

	conn := dial(t, url, "carol")
	require.Eventually(t, func() bool { return hub.Size("carol") == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	conn.Close()

	require.Eventually(t, func() bool { return hub.Rooms() == 0 }, time.Second, 5*time.Millisecond)
}

func TestHubCloseDisconnectsClients(t *testing.T) {
	hub, _, url := startServer(t)

	conn := dial(t, url, "dave")
	require.Eventually(t, func() bool { return hub.Size("dave") == 1 }, time.Second, 5*time.Millisecond)

	hub.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	var closeErr *websocket.CloseError
	require.ErrorAs(t, err, &closeErr)
	assert.Equal(t, websocket.CloseGoingAway, closeErr.Code)
}

func TestEnvelopeDecoding(t *testing.T) {
	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(`{"event":"chat:typing","data":{"to":"bob","active":true}}`), &env))
	assert.Equal(t, EventChatTyping, env.Event)

	var p TypingPayload
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, TypingPayload{To: "bob", Active: true}, p)
}
