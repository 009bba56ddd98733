package handler

import (
	"net/http"
	"strconv"

	"secondhand/market-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AdminHandler struct {
	admin  service.AdminService
	logger *logrus.Logger
}

func NewAdminHandler(admin service.AdminService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{
		admin:  admin,
		logger: logger,
	}
}

type statusInput struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

func (h *AdminHandler) Listings(c *gin.Context) {
	products, err := h.admin.ListListings(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": productViews(products)})
}

func (h *AdminHandler) Users(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("pageNo", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	users, err := h.admin.ListUsers(c.Request.Context(), page, limit)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	data := make([]gin.H, 0, len(users))
	for _, u := range users {
		data = append(data, userView(u))
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (h *AdminHandler) SetProductStatus(c *gin.Context) {
	var input statusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "isActive is required!")
		return
	}

	product, err := h.admin.SetProductStatus(c.Request.Context(), c.Param("id"), *input.IsActive)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product status updated", "data": newProductView(product)})
}

func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	var input statusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "isActive is required!")
		return
	}

	user, err := h.admin.SetUserStatus(c.Request.Context(), c.Param("id"), *input.IsActive)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User status updated", "data": userView(user)})
}
