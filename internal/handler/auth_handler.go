package handler

import (
	"net/http"

	"secondhand/market-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	auth   service.AuthService
	logger *logrus.Logger
}

func NewAuthHandler(auth service.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		logger: logger,
	}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var input struct {
		Email        string `json:"email" binding:"required"`
		Password     string `json:"password" binding:"required"`
		Name         string `json:"name" binding:"required"`
		ProvinceName string `json:"provinceName"`
		DistrictName string `json:"districtName"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Invalid sign-up payload!")
		return
	}

	user, err := h.auth.SignUp(c.Request.Context(), service.SignUpInput{
		Email:        input.Email,
		Password:     input.Password,
		Name:         input.Name,
		ProvinceName: input.ProvinceName,
		DistrictName: input.DistrictName,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"profile": userView(user)})
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Email and password are required!")
		return
	}

	session, err := h.auth.SignIn(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, sessionView(session))
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.RefreshToken == "" {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid request!"})
		return
	}

	session, err := h.auth.Refresh(c.Request.Context(), input.RefreshToken)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, sessionView(session))
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.RefreshToken == "" {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid request!"})
		return
	}

	if err := h.auth.SignOut(c.Request.Context(), currentUser(c).ID, input.RefreshToken); err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"profile": userView(currentUser(c))})
}

func (h *AuthHandler) PublicProfile(c *gin.Context) {
	profile, err := h.auth.PublicProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func sessionView(s *service.Session) gin.H {
	return gin.H{
		"profile": userView(s.User),
		"tokens": gin.H{
			"refresh": s.RefreshToken,
			"access":  s.AccessToken,
		},
	}
}
