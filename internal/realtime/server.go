package realtime

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Server upgrades authenticated requests and runs the connection until it
// closes.
type Server struct {
	hub        *Hub
	dispatcher *Dispatcher
	upgrader   websocket.Upgrader
	logger     *logrus.Logger
}

func NewServer(hub *Hub, dispatcher *Dispatcher, checkOrigin func(*http.Request) bool, logger *logrus.Logger) *Server {
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}
	return &Server{
		hub:        hub,
		dispatcher: dispatcher,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
		logger: logger,
	}
}

// Serve upgrades the request for userID and blocks until the connection is
// closed. The connection joins the room named after userID.
func (s *Server) Serve(w http.ResponseWriter, r *http.Request, userID string) error {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	client := NewClient(userID, conn, s.logger)
	s.hub.Join(userID, client)
	go client.writeLoop()

	log := s.logger.WithFields(logrus.Fields{
		"user_id":   userID,
		"client_id": client.ID,
	})
	log.Info("Socket connected")

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-client.Done()
		cancel()
	}()

	client.readLoop(ctx, s.dispatcher.Dispatch)

	s.hub.Leave(userID, client)
	client.Close(websocket.CloseNormalClosure, "")
	cancel()
	log.Info("Socket disconnected")

	return nil
}
