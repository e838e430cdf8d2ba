package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"print4me/internal/domain"
	"print4me/internal/metrics"
	"print4me/internal/port"
)

// NotifyConfig holds settings for order notifications.
type NotifyConfig struct {
	AdminEmail      string
	AttachmentLimit int64
	SendTimeout     time.Duration
}

// NotificationJob is one accepted order waiting to be relayed to the admin.
type NotificationJob struct {
	Order *domain.Order
}

// Dispatcher sends order notifications in the background and removes the
// order's temp files once the attempt is over. Jobs are never retried.
type Dispatcher struct {
	sender  port.EmailSender
	storage port.TempStorage
	cfg     NotifyConfig
	metrics *metrics.Metrics
	wg      sync.WaitGroup
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(sender port.EmailSender, storage port.TempStorage, cfg NotifyConfig, m *metrics.Metrics) *Dispatcher {
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = 2 * time.Minute
	}
	return &Dispatcher{
		sender:  sender,
		storage: storage,
		cfg:     cfg,
		metrics: m,
	}
}

// Dispatch starts delivering job and returns immediately.
func (d *Dispatcher) Dispatch(job NotificationJob) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		// Use a fresh context independent of the request so delivery
		// completes after the response has been sent.
		ctx, cancel := context.WithTimeout(context.Background(), d.cfg.SendTimeout)
		defer cancel()

		_ = d.Deliver(ctx, job)
	}()
}

// Deliver sends the notification for job synchronously, then deletes its
// temp files regardless of the outcome.
func (d *Dispatcher) Deliver(ctx context.Context, job NotificationJob) error {
	order := job.Order
	start := time.Now()
	d.metrics.DispatchStarted()
	defer cleanup(ctx, d.storage, order.Files())

	err := d.send(ctx, order)

	outcome := metrics.OutcomeSent
	switch {
	case errors.Is(err, domain.ErrEmailNotConfigured), errors.Is(err, domain.ErrAdminEmailMissing):
		outcome = metrics.OutcomeNotConfigured
		log.Printf("dispatcher.Deliver: order %s not sent: %v", order.ID, err)
	case err != nil:
		outcome = metrics.OutcomeFailed
		log.Printf("dispatcher.Deliver: order %s failed: %v", order.ID, err)
	default:
		log.Printf("dispatcher.Deliver: order %s sent to admin in %s", order.ID, time.Since(start).Round(time.Millisecond))
	}
	d.metrics.DispatchFinished(outcome, time.Since(start))
	return err
}

func (d *Dispatcher) send(ctx context.Context, order *domain.Order) error {
	if d.cfg.AdminEmail == "" {
		return domain.ErrAdminEmailMissing
	}

	msg, attach, err := BuildNotification(order, d.cfg.AdminEmail, d.cfg.AttachmentLimit)
	if err != nil {
		return err
	}
	if attach {
		for _, f := range order.Files() {
			data, err := d.storage.Read(ctx, f.StorageKey)
			if err != nil {
				return fmt.Errorf("reading attachment %s: %w", f.OriginalName, err)
			}
			msg.Attachments = append(msg.Attachments, port.Attachment{
				FileName:    f.OriginalName,
				ContentType: f.ContentType,
				Data:        data,
			})
		}
	} else {
		log.Printf("dispatcher.send: order %s attachments omitted (%d bytes over %d limit)",
			order.ID, order.TotalSize(), d.cfg.AttachmentLimit)
	}

	return d.sender.Send(ctx, msg)
}

// Wait blocks until every dispatched job has finished or ctx is done.
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
