/**
 * @description
 * This file defines the core domain models for the payment-api.
 * These structs represent the cash-out entities and data transfer objects (DTOs)
 * used throughout the service's business logic, storage, and API layers.
 *
 * @notes
 * - Using distinct types for the inbound API request and the persisted record
 *   ensures clear separation of concerns: the record carries server-assigned
 *   metadata (createdAt, status) the request never sees.
 * - Amounts use `decimal.Decimal` to represent exact monetary values and avoid
 *   floating-point inaccuracies with financial data.
 */

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusPending is the only status a cash-out record carries in this version
// of the system. Records are created Pending and never transition.
const StatusPending = "Pending"

// BankAccount identifies one side of a cash-out transfer. It appears twice per
// record, as the source and the destination account.
type BankAccount struct {
	BankCode          string `json:"bankCode"`              // bank code, exactly 3 characters
	Agency            string `json:"agency"`                // branch code, exactly 4 characters
	AgencyDigit       string `json:"agencyDigit,omitempty"` // optional check digit, at most 1 character
	AccountNumber     string `json:"accountNumber"`
	AccountDigit      string `json:"accountDigit"`   // exactly 1 character
	AccountType       string `json:"accountType"`    // "CC" (checking) or "CP" (savings)
	DocumentNumber    string `json:"documentNumber"` // taxpayer id, 11 or 14 characters
	AccountHolderName string `json:"accountHolderName"`
}

// CashOutRequest is the DTO for incoming cash-out submission API requests.
type CashOutRequest struct {
	TransactionID      string          `json:"transactionId"`
	SourceAccount      BankAccount     `json:"sourceAccount"`
	DestinationAccount BankAccount     `json:"destinationAccount"`
	Amount             decimal.Decimal `json:"amount"`
	PaymentDate        time.Time       `json:"paymentDate"`
}

// CashOutRecord is the persisted representation of a cash-out request plus
// server-assigned metadata. One record exists per transactionId; resubmitting
// the same id overwrites the prior record (last writer wins).
type CashOutRecord struct {
	TransactionID      string          `json:"transactionId"`
	SourceAccount      BankAccount     `json:"sourceAccount"`
	DestinationAccount BankAccount     `json:"destinationAccount"`
	Amount             decimal.Decimal `json:"amount"`
	PaymentDate        time.Time       `json:"paymentDate"`
	CreatedAt          time.Time       `json:"createdAt"`
	Status             string          `json:"status"`
}
