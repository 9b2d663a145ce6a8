package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/oakline/realty-backend/internal/config"
	"github.com/oakline/realty-backend/internal/domain"
)

type auditAppender interface {
	Append(ctx context.Context, entries []domain.AuditEntry) error
}

// Dispatcher delivers events to the port asynchronously, strictly after the
// originating transaction has committed. Dispatch never blocks the caller:
// a full buffer or a failing port degrades to a DELIVERY_PENDING audit
// marker, not a rollback.
type Dispatcher struct {
	notifier Notifier
	audit    auditAppender
	log      *slog.Logger

	events chan Event
	done   chan struct{}
	wg     sync.WaitGroup

	mu        sync.Mutex
	closed    bool
	closeOnce sync.Once
	drain     time.Duration
}

// NewDispatcher creates a Dispatcher and starts its delivery goroutine.
func NewDispatcher(cfg config.NotifyConfig, notifier Notifier, audit auditAppender, log *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		notifier: notifier,
		audit:    audit,
		log:      log.With("component", "dispatcher"),
		events:   make(chan Event, cfg.BufferSize),
		done:     make(chan struct{}),
		drain:    cfg.DrainTimeout,
	}

	d.wg.Add(1)
	go d.run()

	return d
}

// Dispatch enqueues an event for delivery. Call only after the transition
// is durably committed. Returns immediately; a full buffer or a closed
// dispatcher records a DELIVERY_PENDING marker instead of blocking or
// panicking.
func (d *Dispatcher) Dispatch(event Event) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.log.Warn("dispatch after close, marking delivery pending",
			slog.String("entity_id", event.EntityID.String()))
		d.markPending(event)
		return
	}
	select {
	case d.events <- event:
		d.mu.Unlock()
	default:
		d.mu.Unlock()
		d.log.Warn("event buffer full, marking delivery pending",
			slog.String("entity_id", event.EntityID.String()))
		d.markPending(event)
	}
}

// Close stops accepting events and waits up to the drain timeout for the
// queue to empty. Safe to call more than once.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.events)
		d.mu.Unlock()

		finished := make(chan struct{})
		go func() {
			d.wg.Wait()
			close(finished)
		}()

		select {
		case <-finished:
		case <-time.After(d.drain):
			d.log.Warn("drain timeout exceeded, abandoning queued events")
			close(d.done)
			<-finished
		}
	})
}

func (d *Dispatcher) run() {
	defer d.wg.Done()

	for event := range d.events {
		select {
		case <-d.done:
			d.markPending(event)
			continue
		default:
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := d.notifier.Notify(ctx, event)
		cancel()

		if err != nil {
			d.log.Error("notify failed",
				slog.String("entity_id", event.EntityID.String()),
				slog.String("new_state", event.NewState),
				slog.String("error", err.Error()),
			)
			d.markPending(event)
		}
	}
}

// markPending writes the DELIVERY_PENDING audit marker for an event that
// could not be handed to the port.
func (d *Dispatcher) markPending(event Event) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pending := domain.DeliveryPending
	detail := event.OldState + " -> " + event.NewState

	entry := domain.AuditEntry{
		EntityType: event.EntityType,
		EntityID:   event.EntityID,
		Field:      domain.FieldNotification,
		OldValue:   &detail,
		NewValue:   &pending,
		ActorID:    event.ActorID,
	}

	if err := d.audit.Append(ctx, []domain.AuditEntry{entry}); err != nil {
		// Last resort: the marker itself could not be written.
		d.log.Error("write delivery-pending marker",
			slog.String("entity_id", event.EntityID.String()),
			slog.String("error", err.Error()),
		)
	}
}
