package main

import (
	"context"
	"os/signal"
	"syscall"

	"secondhand/market-service/internal/jobs"
	"secondhand/market-service/internal/media"
	"secondhand/market-service/internal/repository"
	"secondhand/market-service/internal/service"

	"github.com/hibiken/asynq"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newWorkerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Run the scheduler and the periodic maintenance jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := repository.NewPostgresDB(cfg.Database.DSN())
			if err != nil {
				return err
			}
			defer db.Close()

			store, err := media.NewStore(afero.NewOsFs(), cfg.Media.Root, cfg.Media.PublicURL, logger)
			if err != nil {
				return err
			}

			userRepo := repository.NewUserRepository(db)
			productRepo := repository.NewProductRepository(db)
			productService := service.NewProductService(productRepo, userRepo, store, logger)

			handlers := jobs.NewHandlers(userRepo, productService, cfg.Jobs.ProductTTL, logger)
			mux := asynq.NewServeMux()
			handlers.Register(mux)

			worker, err := jobs.NewWorker(cfg.Redis.URL, cfg.Jobs.Concurrency, logger)
			if err != nil {
				return err
			}
			scheduler, err := jobs.NewScheduler(cfg.Redis.URL, cfg.Jobs.Cron, logger)
			if err != nil {
				return err
			}

			if err := worker.Start(mux); err != nil {
				return err
			}
			if err := scheduler.Start(); err != nil {
				worker.Shutdown()
				return err
			}
			logger.WithField("cron", cfg.Jobs.Cron).Info("Worker started")

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()

			logger.Info("Shutting down worker...")
			scheduler.Shutdown()
			worker.Shutdown()
			logger.Info("Worker exited")
			return nil
		},
	}
}
