// Package mail implements the Mailer port. Until an email provider is
// integrated, the mailer records the confirmation as a structured log entry,
// keeping the checkout flow's notification step exercised end to end.
package mail

import (
	"context"
	"log/slog"

	"sheshape/internal/domain/entity"
	"sheshape/internal/domain/service"
)

// logMailer implements the service.Mailer interface.
type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer is the constructor for logMailer.
func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{
		logger: logger,
	}
}

// SendOrderConfirmation logs the order confirmation that would be emailed.
func (m *logMailer) SendOrderConfirmation(ctx context.Context, recipient string, order *entity.Order) error {
	m.logger.LogAttrs(ctx, slog.LevelInfo, "Order confirmation email",
		slog.String("recipient", recipient),
		slog.String("order_number", order.OrderNumber),
		slog.String("total_amount", order.TotalAmount.StringFixed(2)),
		slog.Int("item_count", len(order.Items)),
	)

	return nil
}
