// Package notifier defines the outbound alert channel consumed by the
// monitoring pipeline. Transport (email, SMS, chat) is an external concern;
// the pipeline only hands over a rendered alert.
//
//go:generate mockgen -package mocknotifier -source=notifier.go -destination=mock/mocknotifier.go *
package notifier

import (
	"context"

	"riskmonitor/pkg/logger"

	"go.uber.org/zap"
)

// Alert is one rendered notification message.
type Alert struct {
	// To is the recipient address.
	To string
	// Subject is the one-line headline.
	Subject string
	// Body is the plain-text message body.
	Body string
}

// Notifier delivers alerts. Delivery is fire-and-forget from the pipeline's
// perspective: a failure is logged by the caller and never rolls anything back.
type Notifier interface {
	SendAlert(ctx context.Context, alert Alert) error
}

// LogNotifier writes alerts to the structured log instead of delivering them.
// It stands in until a real provider is configured behind the interface.
type LogNotifier struct{}

// NewLog creates a log-backed notifier.
func NewLog() *LogNotifier {
	return &LogNotifier{}
}

// SendAlert logs the alert at info level. It never fails.
func (n *LogNotifier) SendAlert(ctx context.Context, alert Alert) error {
	logger.Info(ctx, "alert (simulated delivery)",
		zap.String("to", alert.To),
		zap.String("subject", alert.Subject),
		zap.String("body", alert.Body),
	)

	return nil
}
