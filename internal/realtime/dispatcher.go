package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"secondhand/market-service/internal/models"
	"secondhand/market-service/internal/service"

	"github.com/sirupsen/logrus"
)

var errMissingField = errors.New("missing required field")

// Dispatcher handles inbound socket events. Failures are logged and never
// reported back to the emitting client.
type Dispatcher struct {
	hub           *Hub
	conversations service.ConversationService
	guard         Guard
	window        time.Duration
	logger        *logrus.Logger
}

func NewDispatcher(hub *Hub, conversations service.ConversationService, guard Guard, window time.Duration, logger *logrus.Logger) *Dispatcher {
	if window <= 0 {
		window = time.Second
	}
	return &Dispatcher{
		hub:           hub,
		conversations: conversations,
		guard:         guard,
		window:        window,
		logger:        logger,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, c *Client, env Envelope) {
	var err error
	switch env.Event {
	case EventChatNew:
		err = d.handleChat(ctx, c, env.Data, false)
	case EventChatImage:
		err = d.handleChat(ctx, c, env.Data, true)
	case EventChatSeen:
		err = d.handleSeen(ctx, c, env.Data)
	case EventChatTyping:
		err = d.handleTyping(c, env.Data)
	default:
		d.logger.WithFields(logrus.Fields{
			"event":   env.Event,
			"user_id": c.UserID,
		}).Warn("Unknown socket event")
		return
	}

	if err != nil {
		d.logger.WithError(err).WithFields(logrus.Fields{
			"event":   env.Event,
			"user_id": c.UserID,
		}).Error("Failed to handle socket event")
	}
}

func (d *Dispatcher) handleChat(ctx context.Context, c *Client, raw json.RawMessage, image bool) error {
	var p ChatNewPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return err
	}
	if p.ConversationID == "" || p.To == "" || p.Message == nil {
		return errMissingField
	}

	var chat *models.Chat
	if image {
		release, err := d.guard.Acquire(ctx, p.ConversationID)
		if err != nil {
			return err
		}
		defer release()

		stored, duplicate, err := d.conversations.AppendChatOnce(ctx, p.ConversationID, c.UserID, p.Message.Text, p.Message.Time, d.window)
		if err != nil {
			return err
		}
		if duplicate {
			return nil
		}
		chat = stored
	} else {
		stored, err := d.conversations.AppendChat(ctx, p.ConversationID, c.UserID, p.Message.Text, p.Message.Time)
		if err != nil {
			return err
		}
		chat = stored
	}

	from, err := d.conversations.Profile(ctx, c.UserID)
	if err != nil {
		return err
	}

	d.hub.Emit(p.To, EventChatMessage, ChatMessagePayload{
		Message: OutgoingChat{
			ID:     p.Message.ID,
			Time:   chat.Timestamp,
			Text:   p.Message.Text,
			User:   profileFrom(from),
			Viewed: false,
		},
		From:           from,
		ConversationID: p.ConversationID,
	})

	return nil
}

func (d *Dispatcher) handleSeen(ctx context.Context, c *Client, raw json.RawMessage) error {
	var p SeenPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return err
	}
	if p.ConversationID == "" || p.PeerID == "" {
		return errMissingField
	}

	if err := d.conversations.MarkSeen(ctx, p.ConversationID, c.UserID, p.PeerID); err != nil {
		return err
	}

	d.hub.Emit(p.PeerID, EventChatSeen, SeenNotice{
		ConversationID: p.ConversationID,
		MessageID:      p.MessageID,
	})
	return nil
}

func (d *Dispatcher) handleTyping(c *Client, raw json.RawMessage) error {
	var p TypingPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return err
	}
	if p.To == "" {
		return errMissingField
	}

	d.hub.Emit(p.To, EventChatTyping, TypingNotice{Typing: p.Active, From: c.UserID})
	return nil
}
