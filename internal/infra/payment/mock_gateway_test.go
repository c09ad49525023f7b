package payment

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"sheshape/config"
	"sheshape/internal/domain/entity"
	"sheshape/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T) service.PaymentGateway {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gateway, err := NewGateway(&config.Config{}, logger)
	require.NoError(t, err)

	return gateway
}

func chargeRequest(method entity.PaymentMethod, details *service.PaymentDetails) *service.PaymentRequest {
	return &service.PaymentRequest{
		OrderID:     uuid.New(),
		OrderNumber: "ORD-1700000000000",
		Method:      method,
		Amount:      decimal.NewFromInt(110),
		Details:     details,
	}
}

func TestMockGateway_ApprovesValidCard(t *testing.T) {
	gateway := newTestGateway(t)

	result, err := gateway.Charge(context.Background(), chargeRequest(entity.PaymentMethodCreditCard, &service.PaymentDetails{
		CardNumber:     "4242 4242 4242 4242",
		ExpiryMonth:    "12",
		ExpiryYear:     "2030",
		CVV:            "123",
		CardHolderName: "Jane Doe",
	}))

	require.NoError(t, err)
	assert.True(t, result.Succeeded)
	assert.NotEmpty(t, result.Reference)
}

func TestMockGateway_DeclinesShortCardNumber(t *testing.T) {
	gateway := newTestGateway(t)

	result, err := gateway.Charge(context.Background(), chargeRequest(entity.PaymentMethodCreditCard, &service.PaymentDetails{
		CardNumber: "4242",
		CVV:        "123",
	}))

	require.NoError(t, err)
	assert.False(t, result.Succeeded)
	assert.Equal(t, "invalid card number", result.FailureReason)
}

func TestMockGateway_DeclinesMissingCVV(t *testing.T) {
	gateway := newTestGateway(t)

	result, err := gateway.Charge(context.Background(), chargeRequest(entity.PaymentMethodDebitCard, &service.PaymentDetails{
		CardNumber: "4242424242424242",
	}))

	require.NoError(t, err)
	assert.False(t, result.Succeeded)
	assert.Equal(t, "missing card security code", result.FailureReason)
}

func TestMockGateway_DeclinesMissingDetails(t *testing.T) {
	gateway := newTestGateway(t)

	result, err := gateway.Charge(context.Background(), chargeRequest(entity.PaymentMethodCreditCard, nil))

	require.NoError(t, err)
	assert.False(t, result.Succeeded)
	assert.Equal(t, "payment details are required", result.FailureReason)
}

func TestMockGateway_WalletAndBankTransfer(t *testing.T) {
	gateway := newTestGateway(t)

	wallet, err := gateway.Charge(context.Background(), chargeRequest(entity.PaymentMethodWallet, &service.PaymentDetails{
		WalletID:       "wallet-123",
		WalletProvider: "mtn",
	}))
	require.NoError(t, err)
	assert.True(t, wallet.Succeeded)

	bank, err := gateway.Charge(context.Background(), chargeRequest(entity.PaymentMethodBankTransfer, &service.PaymentDetails{}))
	require.NoError(t, err)
	assert.False(t, bank.Succeeded)
	assert.Equal(t, "missing bank account number", bank.FailureReason)
}

func TestNewGateway_UnknownProvider(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Payment: &config.PaymentConfig{Provider: "stripe"}}

	_, err := NewGateway(cfg, logger)
	assert.Error(t, err)
}
