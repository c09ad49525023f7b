// Package payment implements the PaymentGateway port. The only provider
// shipped today is a mock that validates the payment instrument and approves
// or declines deterministically, standing in for the PSP integration.
package payment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"sheshape/config"
	"sheshape/internal/domain/entity"
	"sheshape/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const minCardNumberDigits = 13

// mockGateway approves every charge whose payment details pass basic
// instrument validation. It never stores card data.
type mockGateway struct {
	latency time.Duration
	logger  *slog.Logger
}

// NewGateway creates the configured payment gateway.
func NewGateway(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	provider := "mock"
	var latency time.Duration
	if cfg.Payment != nil {
		if cfg.Payment.Provider != "" {
			provider = cfg.Payment.Provider
		}
		latency = cfg.Payment.MockLatency
	}

	if provider != "mock" {
		return nil, errors.Errorf("unknown payment provider: %s", provider)
	}

	return &mockGateway{
		latency: latency,
		logger:  logger,
	}, nil
}

// Charge validates the instrument and returns an approval. A rejected
// instrument yields a declined result, not an error.
func (g *mockGateway) Charge(ctx context.Context, req *service.PaymentRequest) (*service.PaymentResult, error) {
	if g.latency > 0 {
		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "payment gateway call cancelled")
		case <-time.After(g.latency):
		}
	}

	if reason := validateInstrument(req.Method, req.Details); reason != "" {
		g.logger.Warn("Mock gateway declined charge",
			slog.String("order_number", req.OrderNumber),
			slog.String("reason", reason),
		)

		return &service.PaymentResult{
			Succeeded:     false,
			FailureReason: reason,
		}, nil
	}

	reference := fmt.Sprintf("mock-%s", uuid.NewString())
	g.logger.Info("Mock gateway approved charge",
		slog.String("order_number", req.OrderNumber),
		slog.String("amount", req.Amount.StringFixed(2)),
		slog.String("reference", reference),
	)

	return &service.PaymentResult{
		Succeeded: true,
		Reference: reference,
	}, nil
}

// validateInstrument returns a decline reason, or "" when the instrument is
// acceptable.
func validateInstrument(method entity.PaymentMethod, details *service.PaymentDetails) string {
	if details == nil {
		return "payment details are required"
	}

	switch method {
	case entity.PaymentMethodCreditCard, entity.PaymentMethodDebitCard:
		if countDigits(details.CardNumber) < minCardNumberDigits {
			return "invalid card number"
		}
		if strings.TrimSpace(details.CVV) == "" {
			return "missing card security code"
		}
	case entity.PaymentMethodWallet:
		if strings.TrimSpace(details.WalletID) == "" {
			return "missing wallet id"
		}
	case entity.PaymentMethodBankTransfer:
		if strings.TrimSpace(details.BankAccountNumber) == "" {
			return "missing bank account number"
		}
	default:
		return fmt.Sprintf("unsupported payment method: %s", method)
	}

	return ""
}

func countDigits(s string) int {
	count := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			count++
		}
	}

	return count
}
