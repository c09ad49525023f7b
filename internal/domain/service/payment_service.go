// Package service defines the ports for external collaborators the use cases
// depend on. Concrete implementations live under internal/infra.
package service

import (
	"context"

	"sheshape/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDetails carries the customer-supplied payment instrument fields.
// Real card data must never reach a production implementation of the gateway;
// a PCI-compliant integration replaces these fields with a correlation token.
type PaymentDetails struct {
	// Credit / debit cards
	CardNumber     string `json:"card_number,omitempty"`
	ExpiryMonth    string `json:"expiry_month,omitempty"`
	ExpiryYear     string `json:"expiry_year,omitempty"`
	CVV            string `json:"cvv,omitempty"`
	CardHolderName string `json:"card_holder_name,omitempty"`

	// Digital wallets
	WalletID       string `json:"wallet_id,omitempty"`
	WalletProvider string `json:"wallet_provider,omitempty"`

	// Bank transfer
	BankAccountNumber string `json:"bank_account_number,omitempty"`
	RoutingNumber     string `json:"routing_number,omitempty"`
	BankName          string `json:"bank_name,omitempty"`
}

// PaymentRequest is the charge instruction handed to the gateway.
type PaymentRequest struct {
	OrderID     uuid.UUID
	OrderNumber string
	Method      entity.PaymentMethod
	Amount      decimal.Decimal
	Details     *PaymentDetails
}

// PaymentResult is the gateway's answer to a charge attempt. A declined
// charge is a result, not an error; errors signal the gateway itself failed.
type PaymentResult struct {
	Succeeded     bool
	Reference     string // gateway correlation id for the charge
	FailureReason string
}

// PaymentGateway is the port to the external payment processor. Callers must
// pass a context with a deadline; the gateway honors cancellation.
type PaymentGateway interface {
	Charge(ctx context.Context, req *PaymentRequest) (*PaymentResult, error)
}
