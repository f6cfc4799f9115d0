/**
 * @description
 * This file contains the structural validation rules for incoming cash-out
 * requests. Validation is a pure function over the request value: it performs
 * no I/O and reports every violation it finds, in field order, rather than
 * stopping at the first failure. The API layer rejects a request with any
 * violation before it reaches the payment service, so unvalidated input never
 * reaches storage.
 *
 * @notes
 * - Source and destination accounts are checked with the same rule set; there
 *   is no asymmetry between the two sides of a transfer.
 * - The document number is only checked for length (11 for CPF, 14 for CNPJ);
 *   no checksum validation is applied.
 */

package domain

import (
	"fmt"
	"time"
)

// FieldViolation describes a single validation failure on a named field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateCashOutRequest checks the shape and field content of a cash-out
// request. It returns an ordered list of violations, or nil when the request
// is valid. The payment date is compared against the current date at day
// granularity, so a payment scheduled for later today is accepted.
func ValidateCashOutRequest(req CashOutRequest) []FieldViolation {
	var violations []FieldViolation

	if req.TransactionID == "" {
		violations = append(violations, FieldViolation{
			Field:   "transactionId",
			Message: "transaction id is required",
		})
	}

	if !req.Amount.IsPositive() {
		violations = append(violations, FieldViolation{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}

	if beforeToday(req.PaymentDate) {
		violations = append(violations, FieldViolation{
			Field:   "paymentDate",
			Message: "payment date cannot be in the past",
		})
	}

	violations = append(violations, validateBankAccount("sourceAccount", req.SourceAccount)...)
	violations = append(violations, validateBankAccount("destinationAccount", req.DestinationAccount)...)

	return violations
}

// validateBankAccount applies the account rule set under the given field
// prefix so that violations name the exact nested field that failed.
func validateBankAccount(prefix string, account BankAccount) []FieldViolation {
	var violations []FieldViolation

	add := func(field, message string) {
		violations = append(violations, FieldViolation{
			Field:   fmt.Sprintf("%s.%s", prefix, field),
			Message: message,
		})
	}

	if len(account.BankCode) != 3 {
		add("bankCode", "bank code must have 3 characters")
	}
	if len(account.Agency) != 4 {
		add("agency", "agency must have 4 characters")
	}
	if len(account.AgencyDigit) > 1 {
		add("agencyDigit", "agency digit must have 0 or 1 character")
	}
	if account.AccountNumber == "" {
		add("accountNumber", "account number is required")
	}
	if len(account.AccountDigit) != 1 {
		add("accountDigit", "account digit must have 1 character")
	}
	if account.AccountType != "CC" && account.AccountType != "CP" {
		add("accountType", "account type must be CC or CP")
	}
	if len(account.DocumentNumber) != 11 && len(account.DocumentNumber) != 14 {
		add("documentNumber", "document number must have 11 or 14 characters")
	}
	if len(account.AccountHolderName) < 2 {
		add("accountHolderName", "account holder name must have at least 2 characters")
	}

	return violations
}

// beforeToday reports whether the given timestamp falls on a calendar day
// before today. Comparison happens at day granularity in the server's
// location, so time-of-day never matters.
func beforeToday(t time.Time) bool {
	now := time.Now()
	ty, tm, td := t.In(now.Location()).Date()
	ny, nm, nd := now.Date()
	candidate := time.Date(ty, tm, td, 0, 0, 0, 0, now.Location())
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, now.Location())
	return candidate.Before(today)
}
