/**
 * @description
 * This file provides the Redis-backed implementation of the `Repository`
 * interface. It owns the key scheme for cash-out records: a fixed namespace
 * prefix concatenated with the transaction id. The scheme is deterministic,
 * so submission and lookup for the same transaction id always resolve to the
 * same key.
 *
 * @dependencies
 * - context: Standard Go library.
 * - internal/domain: Contains the domain models used for data transfer.
 */

package store

import (
	"context"
	"time"

	"github.com/emensonlima01/payment-api/internal/domain"
)

// cashOutKeyPrefix namespaces cash-out entries in the shared keyspace.
const cashOutKeyPrefix = "cashout:"

// cashOutStore is the subset of KV operations the repository needs. KV
// satisfies it; tests substitute an in-memory implementation.
type cashOutStore interface {
	Save(ctx context.Context, key string, value domain.CashOutRecord, expiry time.Duration) (bool, error)
	Get(ctx context.Context, key string) (*domain.CashOutRecord, error)
	Delete(ctx context.Context, key string) (bool, error)
}

// CashOutRepository is a concrete implementation of the Repository interface
// backed by the typed Redis key-value store.
type CashOutRepository struct {
	kv cashOutStore
}

// NewCashOutRepository creates a new repository over the given typed store.
func NewCashOutRepository(kv cashOutStore) *CashOutRepository {
	return &CashOutRepository{kv: kv}
}

// SaveCashOut persists the record under its transaction id. No expiry is set:
// records do not time out and remain until removed by an operator.
func (r *CashOutRepository) SaveCashOut(ctx context.Context, record *domain.CashOutRecord) (bool, error) {
	return r.kv.Save(ctx, cashOutKey(record.TransactionID), *record, 0)
}

// GetCashOut retrieves the record for a transaction id, or nil when absent.
func (r *CashOutRepository) GetCashOut(ctx context.Context, transactionID string) (*domain.CashOutRecord, error) {
	return r.kv.Get(ctx, cashOutKey(transactionID))
}

func cashOutKey(transactionID string) string {
	return cashOutKeyPrefix + transactionID
}
