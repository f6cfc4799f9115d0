package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/emensonlima01/payment-api/internal/domain"
)

// memoryCashOutStore is an in-memory stand-in for the Redis-backed KV store.
// It records the keys and expiries it receives so tests can assert on the
// key scheme.
type memoryCashOutStore struct {
	mu       sync.Mutex
	entries  map[string]domain.CashOutRecord
	lastKey  string
	lastTTL  time.Duration
	failNext error
}

func newMemoryCashOutStore() *memoryCashOutStore {
	return &memoryCashOutStore{entries: make(map[string]domain.CashOutRecord)}
}

func (m *memoryCashOutStore) Save(_ context.Context, key string, value domain.CashOutRecord, expiry time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return false, err
	}
	m.entries[key] = value
	m.lastKey = key
	m.lastTTL = expiry
	return true, nil
}

func (m *memoryCashOutStore) Get(_ context.Context, key string) (*domain.CashOutRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return nil, err
	}
	value, ok := m.entries[key]
	if !ok {
		return nil, nil
	}
	return &value, nil
}

func (m *memoryCashOutStore) Delete(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[key]
	delete(m.entries, key)
	return ok, nil
}

func TestCashOutRepository_KeySchemeIsDeterministic(t *testing.T) {
	kv := newMemoryCashOutStore()
	repo := NewCashOutRepository(kv)
	record := sampleRecord()

	if _, err := repo.SaveCashOut(context.Background(), &record); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if kv.lastKey != "cashout:"+record.TransactionID {
		t.Fatalf("unexpected storage key %q", kv.lastKey)
	}

	// Lookup must resolve to the exact key the save used.
	found, err := repo.GetCashOut(context.Background(), record.TransactionID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if found == nil || found.TransactionID != record.TransactionID {
		t.Fatalf("expected record for %q, got %+v", record.TransactionID, found)
	}
}

func TestCashOutRepository_SavesWithoutExpiry(t *testing.T) {
	kv := newMemoryCashOutStore()
	repo := NewCashOutRepository(kv)
	record := sampleRecord()

	if _, err := repo.SaveCashOut(context.Background(), &record); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if kv.lastTTL != 0 {
		t.Fatalf("expected no expiry on cash-out entries, got %s", kv.lastTTL)
	}
}

func TestCashOutRepository_GetUnknownIDReturnsNil(t *testing.T) {
	repo := NewCashOutRepository(newMemoryCashOutStore())

	found, err := repo.GetCashOut(context.Background(), "never-submitted")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if found != nil {
		t.Fatalf("expected nil for unknown id, got %+v", found)
	}
}

func TestCashOutRepository_ResubmitOverwrites(t *testing.T) {
	kv := newMemoryCashOutStore()
	repo := NewCashOutRepository(kv)

	first := sampleRecord()
	if _, err := repo.SaveCashOut(context.Background(), &first); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	second := sampleRecord()
	second.Status = domain.StatusPending
	second.SourceAccount.AccountNumber = "000111"
	if _, err := repo.SaveCashOut(context.Background(), &second); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	found, err := repo.GetCashOut(context.Background(), first.TransactionID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if found.SourceAccount.AccountNumber != "000111" {
		t.Fatalf("expected last write to win, got account number %q", found.SourceAccount.AccountNumber)
	}
}

func TestCashOutRepository_StoreErrorsPropagateUnmodified(t *testing.T) {
	kv := newMemoryCashOutStore()
	repo := NewCashOutRepository(kv)
	record := sampleRecord()

	storeErr := errors.New("connection refused")
	kv.failNext = storeErr
	if _, err := repo.SaveCashOut(context.Background(), &record); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}

	kv.failNext = storeErr
	if _, err := repo.GetCashOut(context.Background(), record.TransactionID); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}
