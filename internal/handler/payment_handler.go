package handler

import (
	"errors"
	"net/http"
	"time"

	"secondhand/market-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type PaymentHandler struct {
	payments service.PaymentService
	logger   *logrus.Logger
}

func NewPaymentHandler(payments service.PaymentService, logger *logrus.Logger) *PaymentHandler {
	return &PaymentHandler{
		payments: payments,
		logger:   logger,
	}
}

func (h *PaymentHandler) CreatePaymentURL(c *gin.Context) {
	var input struct {
		UserID   string `json:"userId" binding:"required"`
		PlanName string `json:"planName" binding:"required"`
		Amount   int64  `json:"amount" binding:"required"`
		BankCode string `json:"bankCode"`
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Invalid payment request!")
		return
	}

	paymentURL, err := h.payments.CreatePaymentURL(service.PaymentRequest{
		UserID:   input.UserID,
		PlanName: input.PlanName,
		Amount:   input.Amount,
		BankCode: input.BankCode,
		Locale:   input.Language,
		ClientIP: c.ClientIP(),
	}, time.Now())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": paymentURL})
}

func (h *PaymentHandler) Return(c *gin.Context) {
	result, err := h.payments.HandleReturn(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		if errors.Is(err, service.ErrInvalidSignature) {
			c.JSON(http.StatusOK, gin.H{"code": result.Code})
			return
		}
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": result.Code})
}
