/**
 * @description
 * This file defines the `Repository` interface, which specifies the contract
 * for all cash-out persistence operations required by the payment-api. By
 * defining an interface, we decouple the application's business logic from the
 * Redis-backed implementation, making the code more modular and easier to test.
 *
 * @dependencies
 * - context: Standard Go library.
 * - internal/domain: For the service's domain models.
 */

package store

import (
	"context"

	"github.com/emensonlima01/payment-api/internal/domain"
)

// Repository defines the set of methods for persisting and retrieving
// cash-out records.
type Repository interface {
	// SaveCashOut persists the record under its transaction id, overwriting
	// any record already stored for that id.
	SaveCashOut(ctx context.Context, record *domain.CashOutRecord) (bool, error)
	// GetCashOut retrieves the record for a transaction id, or nil when no
	// record exists.
	GetCashOut(ctx context.Context, transactionID string) (*domain.CashOutRecord, error)
}
