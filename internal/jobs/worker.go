package jobs

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"
)

// NewScheduler enqueues both maintenance tasks on cronspec.
func NewScheduler(redisURL, cronspec string, logger *logrus.Logger) (*asynq.Scheduler, error) {
	opt, err := asynq.ParseRedisURI(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	scheduler := asynq.NewScheduler(opt, &asynq.SchedulerOpts{
		Logger: logger,
		PostEnqueueFunc: func(info *asynq.TaskInfo, err error) {
			if err != nil {
				logger.WithError(err).Error("Failed to enqueue scheduled task")
				return
			}
			logger.WithField("task", info.Type).Debug("Scheduled task enqueued")
		},
	})

	for _, taskType := range []string{TypePremiumExpire, TypeProductCleanup} {
		if _, err := scheduler.Register(cronspec, asynq.NewTask(taskType, nil), asynq.MaxRetry(3)); err != nil {
			return nil, fmt.Errorf("register %s: %w", taskType, err)
		}
	}

	return scheduler, nil
}

// NewWorker builds the asynq server that runs the task handlers.
func NewWorker(redisURL string, concurrency int, logger *logrus.Logger) (*asynq.Server, error) {
	opt, err := asynq.ParseRedisURI(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if concurrency <= 0 {
		concurrency = 2
	}

	return asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Logger:      logger,
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			logger.WithError(err).WithField("task", task.Type()).Error("Task failed")
		}),
	}), nil
}
