package notify

import (
	"context"
	"log/slog"
)

// SlogNotifier writes transition events to the structured log. It is the
// default port implementation for deployments without an external delivery
// system wired in.
type SlogNotifier struct {
	log *slog.Logger
}

// NewSlogNotifier creates a SlogNotifier.
func NewSlogNotifier(log *slog.Logger) *SlogNotifier {
	return &SlogNotifier{log: log.With("component", "notifier")}
}

// Notify logs the event. Never fails.
func (n *SlogNotifier) Notify(ctx context.Context, event Event) error {
	n.log.InfoContext(ctx, "state transition",
		slog.String("entity_type", event.EntityType.String()),
		slog.String("entity_id", event.EntityID.String()),
		slog.String("old_state", event.OldState),
		slog.String("new_state", event.NewState),
		slog.String("actor_id", event.ActorID.String()),
		slog.Time("occurred_at", event.OccurredAt),
	)
	return nil
}
