package reminders

import (
	"agendly-service/internal/app/config"
	"agendly-service/internal/app/contracts"
	"agendly-service/internal/pkg/constvars"
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// leaderLockKey ensures a single reminder scanner across instances.
const leaderLockKey = "reminders:leader"

// Worker periodically scans upcoming appointments and enqueues reminder
// notifications for them.
type Worker struct {
	log          *zap.Logger
	cfg          *config.InternalConfig
	locker       contracts.LockerService
	appointments contracts.AppointmentRepository
	queue        contracts.NotificationQueueService
	limiter      *rate.Limiter
	cancel       context.CancelFunc
}

func NewWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerSvc contracts.LockerService,
	appointmentRepository contracts.AppointmentRepository,
	queue contracts.NotificationQueueService,
) *Worker {
	perSecond := cfg.App.ReminderPublishPerSecond
	if perSecond <= 0 {
		perSecond = 1
	}
	return &Worker{
		log:          log,
		cfg:          cfg,
		locker:       lockerSvc,
		appointments: appointmentRepository,
		queue:        queue,
		limiter:      rate.NewLimiter(rate.Limit(perSecond), perSecond),
	}
}

// Start begins the periodic loop in its own goroutine.
func (w *Worker) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	interval := time.Duration(w.cfg.App.ReminderIntervalInMinute) * time.Minute
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C:
				w.runOnce(runCtx)
			}
		}
	}()
}

func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	ttl := 2 * time.Minute
	acquired, token, err := w.locker.TryLock(ctx, leaderLockKey, ttl)
	if err != nil {
		w.log.Warn("reminders.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("reminders.worker: leader lock not acquired; another instance is running")
		return
	}
	defer w.locker.Unlock(ctx, leaderLockKey, token)

	now := time.Now()
	lookahead := time.Duration(w.cfg.App.ReminderLookaheadInHour) * time.Hour
	upcoming, err := w.appointments.FindStartingBetween(ctx, now, now.Add(lookahead))
	if err != nil {
		w.log.Warn("reminders.worker: appointment scan failed", zap.Error(err))
		return
	}

	for _, appointment := range upcoming {
		if appointment.Status == "CANCELLED" {
			continue
		}
		if err := w.limiter.Wait(ctx); err != nil {
			return
		}
		err := w.queue.Publish(ctx, contracts.NotificationMessage{
			ID:            uuid.NewString(),
			Kind:          contracts.NotificationKindReminder,
			AppointmentID: appointment.ID,
			ProviderID:    appointment.ProviderID,
			CustomerName:  appointment.CustomerName,
			Status:        appointment.Status,
			StartsAt:      appointment.Start.Format(time.RFC3339),
		})
		if err != nil {
			w.log.Warn("reminders.worker: failed to enqueue reminder",
				zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
				zap.Error(err),
			)
		}
	}
}
