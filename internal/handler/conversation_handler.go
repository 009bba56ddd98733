package handler

import (
	"net/http"

	"secondhand/market-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ConversationHandler struct {
	conversations service.ConversationService
	logger        *logrus.Logger
}

func NewConversationHandler(conversations service.ConversationService, logger *logrus.Logger) *ConversationHandler {
	return &ConversationHandler{
		conversations: conversations,
		logger:        logger,
	}
}

func (h *ConversationHandler) GetOrCreate(c *gin.Context) {
	id, err := h.conversations.GetOrCreate(c.Request.Context(), currentUser(c).ID, c.Param("peerId"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversationId": id})
}

func (h *ConversationHandler) GetConversation(c *gin.Context) {
	view, err := h.conversations.Project(c.Request.Context(), c.Param("conversationId"), currentUser(c).ID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversation": view})
}

func (h *ConversationHandler) LastChats(c *gin.Context) {
	chats, err := h.conversations.Summarize(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"chats": chats})
}

func (h *ConversationHandler) MarkSeen(c *gin.Context) {
	err := h.conversations.MarkSeen(c.Request.Context(), c.Param("conversationId"), currentUser(c).ID, c.Param("peerId"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Updated successfully"})
}

func (h *ConversationHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		badRequest(c, "Invalid image file!")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	defer file.Close()

	chat, img, err := h.conversations.SendImage(c.Request.Context(), c.Param("conversationId"), currentUser(c).ID, service.Upload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Image uploaded successfully!",
		"image":   img,
		"chat": gin.H{
			"id":        chat.ID.Hex(),
			"sentBy":    chat.SentBy,
			"content":   chat.Content,
			"timestamp": chat.Timestamp,
			"viewed":    chat.Viewed,
		},
	})
}
