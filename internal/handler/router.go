package handler

import (
	"net/http"

	"secondhand/market-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type RouterConfig struct {
	AllowOrigins []string
	MediaPrefix  string
	Media        http.FileSystem
}

type Handlers struct {
	Auth         *AuthHandler
	Conversation *ConversationHandler
	Admin        *AdminHandler
	Product      *ProductHandler
	Payment      *PaymentHandler
	Socket       *SocketHandler
}

func NewRouter(cfg RouterConfig, auth service.AuthService, h Handlers, logger *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), AccessLog(logger))

	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowOrigins) == 0 || (len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	corsCfg.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsCfg))

	if cfg.Media != nil && cfg.MediaPrefix != "" {
		media := r.Group(cfg.MediaPrefix, NoSniff())
		media.StaticFS("/", cfg.Media)
	}

	isAuth := IsAuth(auth, logger)

	r.GET("/socket-message", h.Socket.Connect)

	authGroup := r.Group("/auth")
	authGroup.POST("/sign-up", h.Auth.SignUp)
	authGroup.POST("/sign-in", h.Auth.SignIn)
	authGroup.POST("/refresh-token", h.Auth.RefreshToken)
	authGroup.POST("/sign-out", isAuth, h.Auth.SignOut)
	authGroup.GET("/profile", isAuth, h.Auth.Profile)
	authGroup.GET("/profile/:id", isAuth, h.Auth.PublicProfile)

	conv := r.Group("/conversation", isAuth)
	conv.GET("/with/:peerId", h.Conversation.GetOrCreate)
	conv.GET("/chats/:conversationId", h.Conversation.GetConversation)
	conv.GET("/last-chats", h.Conversation.LastChats)
	conv.PATCH("/seen/:conversationId/:peerId", h.Conversation.MarkSeen)
	conv.POST("/:conversationId/upload-image", h.Conversation.UploadImage)

	admin := r.Group("/admin", isAuth, RequireAdmin())
	admin.GET("/listings", h.Admin.Listings)
	admin.GET("/user-listing", h.Admin.Users)
	admin.PATCH("/check-active/:id", h.Admin.SetProductStatus)
	admin.PATCH("/check-user-active/:id", h.Admin.SetUserStatus)

	product := r.Group("/product")
	product.POST("/list", isAuth, h.Product.List)
	product.GET("/detail/:id", h.Product.Detail)
	product.DELETE("/:id", isAuth, h.Product.Delete)

	payment := r.Group("/payment")
	payment.POST("/create_payment_url", h.Payment.CreatePaymentURL)
	payment.GET("/vnpay_return", h.Payment.Return)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found!"})
	})

	return r
}
