package notifier

import "context"

// Notifier defines the interface for publishing a schedule listing
type Notifier interface {
	// Notify publishes message under subject
	Notify(ctx context.Context, subject, message string) error
}
