package handler

import (
	"errors"
	"net/http"

	"secondhand/market-service/internal/realtime"
	"secondhand/market-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type SocketHandler struct {
	auth   service.AuthService
	server *realtime.Server
	logger *logrus.Logger
}

func NewSocketHandler(auth service.AuthService, server *realtime.Server, logger *logrus.Logger) *SocketHandler {
	return &SocketHandler{
		auth:   auth,
		server: server,
		logger: logger,
	}
}

// Connect authenticates the handshake before upgrading. The token comes from
// the Authorization header or, for browsers, the token query parameter.
func (h *SocketHandler) Connect(c *gin.Context) {
	token := bearerToken(c.GetHeader("Authorization"))
	if token == "" {
		token = c.Query("token")
	}

	identity, err := h.auth.VerifyToken(token)
	if err != nil {
		reason := service.ErrTokenInvalid.Error()
		switch {
		case errors.Is(err, service.ErrTokenMissing):
			reason = service.ErrTokenMissing.Error()
		case errors.Is(err, service.ErrTokenExpired):
			reason = service.ErrTokenExpired.Error()
		}
		h.logger.WithField("reason", reason).Debug("Socket handshake rejected")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": reason})
		return
	}

	if err := h.server.Serve(c.Writer, c.Request, identity.UserID); err != nil {
		h.logger.WithError(err).WithField("user_id", identity.UserID).Warn("Socket upgrade failed")
	}
}
