package realtime

import (
	"encoding/json"
	"time"

	"secondhand/market-service/internal/models"
)

const (
	EventChatNew     = "chat:new"
	EventChatImage   = "chat:image"
	EventChatSeen    = "chat:seen"
	EventChatTyping  = "chat:typing"
	EventChatMessage = "chat:message"
)

// Envelope is the frame exchanged over the socket.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type outbound struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type MessageProfile struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

type IncomingChat struct {
	ID   string         `json:"id"`
	Time time.Time      `json:"time"`
	Text string         `json:"text"`
	User MessageProfile `json:"user"`
}

type ChatNewPayload struct {
	ConversationID string        `json:"conversationId"`
	To             string        `json:"to"`
	Message        *IncomingChat `json:"message"`
}

type OutgoingChat struct {
	ID     string         `json:"id"`
	Time   time.Time      `json:"time"`
	Text   string         `json:"text"`
	User   MessageProfile `json:"user"`
	Viewed bool           `json:"viewed"`
}

type ChatMessagePayload struct {
	Message        OutgoingChat   `json:"message"`
	From           models.Profile `json:"from"`
	ConversationID string         `json:"conversationId"`
}

type SeenPayload struct {
	ConversationID string `json:"conversationId"`
	PeerID         string `json:"peerId"`
	MessageID      string `json:"messageId"`
}

type SeenNotice struct {
	ConversationID string `json:"conversationId"`
	MessageID      string `json:"messageId"`
}

type TypingPayload struct {
	To     string `json:"to"`
	Active bool   `json:"active"`
}

type TypingNotice struct {
	Typing bool   `json:"typing"`
	From   string `json:"from"`
}

func profileFrom(p models.Profile) MessageProfile {
	return MessageProfile{ID: p.ID, Name: p.Name, Avatar: p.Avatar}
}
