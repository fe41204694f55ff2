package schedule

import (
	"context"
	"time"

	"turbo-api/internal/domain/usecase/territory"
	"turbo-api/pkg/log"
	"turbo-api/pkg/msg"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const territorySamplingName = "territory_sampling"

// RunLock keeps one instance running a scheduled task at a time, see pkg/redis.Lock
type RunLock interface {
	TryLock(ctx context.Context) (bool, error)
	Unlock(ctx context.Context) error
}

type TerritorySchedulerConfig struct {
	CronExpression string
	// Timeout bounds a single sampling run
	Timeout time.Duration
}

// TerritoryScheduler samples wind data at every territory center on a cron schedule
type TerritoryScheduler struct {
	cron    *cron.Cron
	useCase territory.UseCase
	lock    RunLock
	config  TerritorySchedulerConfig
}

// NewTerritoryScheduler creates the scheduler, lock may be nil for single instance deployments
func NewTerritoryScheduler(useCase territory.UseCase, lock RunLock, config TerritorySchedulerConfig) *TerritoryScheduler {
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Minute
	}
	return &TerritoryScheduler{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		useCase: useCase,
		lock:    lock,
		config:  config,
	}
}

// InitTerritoryScheduleTasks registers the sampling task and starts the cron
func (s *TerritoryScheduler) InitTerritoryScheduleTasks() error {
	if _, err := s.cron.AddFunc(s.config.CronExpression, s.ExecuteScheduledTask); err != nil {
		log.Error(msg.GetMessage("schedule.register_failed", territorySamplingName, err))
		return err
	}

	s.cron.Start()
	log.Info(msg.GetMessage("schedule.registered", territorySamplingName, s.config.CronExpression))
	return nil
}

// ExecuteScheduledTask runs one sampling pass tagged with a fresh request id
func (s *TerritoryScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Timeout)
	defer cancel()

	if s.lock != nil {
		acquired, err := s.lock.TryLock(ctx)
		if err != nil {
			log.Warn(msg.GetMessage("schedule.lock_failed", territorySamplingName, requestID, err))
			return
		}
		if !acquired {
			log.Info(msg.GetMessage("schedule.locked", territorySamplingName, requestID))
			return
		}
		defer func() {
			if err := s.lock.Unlock(context.Background()); err != nil {
				log.Warn(msg.GetMessage("schedule.lock_failed", territorySamplingName, requestID, err))
			}
		}()
	}

	result, err := s.useCase.SampleTerritories(ctx, requestID)
	if err != nil {
		log.Error(msg.GetMessage("territory.sampling.failed", requestID, "all", err), zap.String("request_id", requestID))
		return
	}
	log.Debug("sampling result", zap.String("request_id", requestID), zap.Int("sampled", result.Sampled),
		zap.Int("skipped", result.Skipped), zap.Strings("failed", result.Failed))
}

// Stop waits for a running task to finish and stops the cron
func (s *TerritoryScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
		log.Info(msg.GetMessage("schedule.stopped", territorySamplingName))
	}
}
