package service

import (
	"context"

	"sheshape/internal/domain/entity"
)

// Mailer is the port to the transactional email provider. Checkout invokes it
// best-effort: a send failure must never fail the business operation.
type Mailer interface {
	SendOrderConfirmation(ctx context.Context, recipient string, order *entity.Order) error
}
