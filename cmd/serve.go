package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"secondhand/market-service/internal/config"
	grpcServer "secondhand/market-service/internal/grpc"
	"secondhand/market-service/internal/handler"
	"secondhand/market-service/internal/media"
	"secondhand/market-service/internal/realtime"
	"secondhand/market-service/internal/repository"
	"secondhand/market-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP, websocket and gRPC servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			return serve(cfg, logger)
		},
	}
}

func serve(cfg *config.Config, logger *logrus.Logger) error {
	ctx := context.Background()

	dsn := cfg.Database.DSN()
	if err := repository.RunMigrations(dsn); err != nil {
		return err
	}
	db, err := repository.NewPostgresDB(dsn)
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Info("Connected to PostgreSQL database")

	mongoDB, err := repository.NewMongoDB(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		return err
	}
	defer func() {
		_ = mongoDB.Client().Disconnect(context.Background())
	}()
	logger.Info("Connected to MongoDB")

	conversationRepo := repository.NewConversationRepository(mongoDB)
	if err := conversationRepo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure conversation indexes: %w", err)
	}
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)

	store, err := media.NewStore(afero.NewOsFs(), cfg.Media.Root, cfg.Media.PublicURL, logger)
	if err != nil {
		return err
	}

	tokens := service.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL)
	authService := service.NewAuthService(userRepo, tokens, logger)
	conversationService := service.NewConversationService(conversationRepo, userRepo, store, logger)
	adminService := service.NewAdminService(userRepo, productRepo, store, logger)
	productService := service.NewProductService(productRepo, userRepo, store, logger)
	paymentService := service.NewPaymentService(service.VNPayConfig{
		TmnCode:    cfg.VNPay.TmnCode,
		HashSecret: cfg.VNPay.HashSecret,
		URL:        cfg.VNPay.URL,
		ReturnURL:  cfg.VNPay.ReturnURL,
	}, invoiceRepo, userRepo, logger)

	guard, closeGuard, err := newGuard(cfg, logger)
	if err != nil {
		return err
	}
	defer closeGuard()

	hub := realtime.NewHub(logger)
	dispatcher := realtime.NewDispatcher(hub, conversationService, guard, cfg.Realtime.DuplicateWindow, logger)
	socketServer := realtime.NewServer(hub, dispatcher, nil, logger)

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handler.NewRouter(handler.RouterConfig{
		AllowOrigins: cfg.CORS.AllowOrigins,
		MediaPrefix:  cfg.Media.Prefix,
		Media:        store.FileSystem(),
	}, authService, handler.Handlers{
		Auth:         handler.NewAuthHandler(authService, logger),
		Conversation: handler.NewConversationHandler(conversationService, logger),
		Admin:        handler.NewAdminHandler(adminService, logger),
		Product:      handler.NewProductHandler(productService, logger),
		Payment:      handler.NewPaymentHandler(paymentService, logger),
		Socket:       handler.NewSocketHandler(authService, socketServer, logger),
	}, logger)

	httpSrv := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Infof("Starting HTTP server on %s", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	var rpc *grpc.Server
	if cfg.GRPC.Enabled {
		lis, err := net.Listen("tcp", cfg.GRPC.Address())
		if err != nil {
			return fmt.Errorf("listen on %s: %w", cfg.GRPC.Address(), err)
		}

		rpc = grpc.NewServer(grpc.UnaryInterceptor(grpcServer.UnaryLogger(logger)))
		grpcServer.NewConversationServer(conversationService, logger).Register(rpc)
		if cfg.GRPC.ReflectionEnabled {
			reflection.Register(rpc)
			logger.Info("gRPC reflection enabled")
		}

		go func() {
			logger.Infof("Starting gRPC server on %s", cfg.GRPC.Address())
			if err := rpc.Serve(lis); err != nil {
				errCh <- fmt.Errorf("grpc server: %w", err)
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case <-quit:
	case runErr = <-errCh:
		logger.WithError(runErr).Error("Server failed")
	}

	logger.Info("Shutting down servers...")
	hub.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Warn("HTTP server shutdown timeout")
	}

	if rpc != nil {
		stopGRPC(rpc, cfg.GRPC.ShutdownTimeout, logger)
	}

	logger.Info("Server exited")
	return runErr
}

func newGuard(cfg *config.Config, logger *logrus.Logger) (realtime.Guard, func(), error) {
	if cfg.Realtime.Guard != "redis" {
		return realtime.NewMemoryGuard(), func() {}, nil
	}

	opt, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}
	logger.Info("Using redis image guard")

	return realtime.NewRedisGuard(client, cfg.Realtime.GuardTTL), func() { _ = client.Close() }, nil
}

func stopGRPC(s *grpc.Server, timeout time.Duration, logger *logrus.Logger) {
	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		logger.Info("gRPC server exited gracefully")
	case <-time.After(timeout):
		logger.Info("gRPC server shutdown timeout")
		s.Stop()
	}
}
