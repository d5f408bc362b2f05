package notify

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"tasnim.dev/aws-key-rotator/internal"
)

// ErrDelivery is returned when the channel rejects a notification.
var ErrDelivery = errors.New("notification delivery failed")

// Notifier publishes outcome messages to an SNS topic.
type Notifier struct {
	publisher internal.Publisher
	subject   string
	log       *zap.Logger
}

// NewNotifier creates a notifier. An empty subject is omitted from messages.
func NewNotifier(publisher internal.Publisher, subject string, log *zap.Logger) *Notifier {
	return &Notifier{publisher: publisher, subject: subject, log: log}
}

// Notify sends message to target once; there is no retry beyond the SDK's.
func (n *Notifier) Notify(ctx context.Context, target, message string) error {
	id, err := n.publisher.Publish(ctx, target, n.subject, message)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}
	n.log.Info("notification published", zap.String("topic", target), zap.String("message_id", id))
	return nil
}
