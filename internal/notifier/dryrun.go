package notifier

import (
	"context"
	"fmt"
	"io"
	"unicode/utf8"
)

// DryRunNotifier prints what would be published without actually publishing
type DryRunNotifier struct {
	w io.Writer
}

// NewDryRunNotifier creates a dry-run notifier writing to w
func NewDryRunNotifier(w io.Writer) *DryRunNotifier {
	return &DryRunNotifier{w: w}
}

// Notify prints the message that would be published
func (n *DryRunNotifier) Notify(ctx context.Context, subject, message string) error {
	_, err := fmt.Fprintf(n.w, "--- Notification: %s ---\n%s\n(Length: %d characters)\n",
		subject, message, utf8.RuneCountInString(message))
	return err
}
