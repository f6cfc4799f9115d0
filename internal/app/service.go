/**
 * @description
 * This file contains the core business logic for the payment-api. The `Service`
 * struct orchestrates the cash-out pipeline: it builds the persisted record
 * from an already-validated request, stamps the server-assigned metadata, and
 * delegates persistence and retrieval to the repository.
 *
 * Key features:
 * - Submission is fire-and-forget from the caller's perspective: the record is
 *   stored as Pending and no settlement ever happens in this service.
 * - Resubmitting a transaction id silently overwrites the prior record; the
 *   store's last-write-wins semantics apply.
 *
 * @dependencies
 * - context, time: Standard Go libraries.
 * - internal/domain, internal/store: For domain models and data access.
 */

package app

import (
	"context"
	"time"

	"github.com/emensonlima01/payment-api/internal/domain"
	"github.com/emensonlima01/payment-api/internal/store"
)

// Service provides the core business logic for cash-out processing.
type Service struct {
	repo store.Repository
	now  func() time.Time
}

// NewService creates a new payment service instance.
func NewService(repo store.Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// ProcessCashOut builds a cash-out record from a validated request and
// persists it. The record is created Pending with createdAt set to the
// current server time; createdAt never changes afterwards. Store failures
// are returned unmodified.
func (s *Service) ProcessCashOut(ctx context.Context, req domain.CashOutRequest) error {
	record := &domain.CashOutRecord{
		TransactionID:      req.TransactionID,
		SourceAccount:      req.SourceAccount,
		DestinationAccount: req.DestinationAccount,
		Amount:             req.Amount,
		PaymentDate:        req.PaymentDate,
		CreatedAt:          s.now().UTC(),
		Status:             domain.StatusPending,
	}

	_, err := s.repo.SaveCashOut(ctx, record)
	return err
}

// GetCashOut retrieves the stored record for a transaction id, or nil when
// no record exists. Pure delegation, no transformation.
func (s *Service) GetCashOut(ctx context.Context, transactionID string) (*domain.CashOutRecord, error) {
	return s.repo.GetCashOut(ctx, transactionID)
}
