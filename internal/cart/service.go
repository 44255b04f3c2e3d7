// internal/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/shopease/shopease-backend/internal/blobstore"
	"github.com/shopease/shopease-backend/internal/models"
)

// Service owns one ledger per user and mirrors every mutation to the blob
// store. Persistence is best-effort: a failed write is logged and in-memory
// state stays the source of truth until the next successful write; a failed
// or corrupt read resumes with an empty ledger.
type Service struct {
	mu      sync.Mutex
	store   blobstore.Store
	ledgers map[string]*Ledger
}

func NewService(store blobstore.Store) *Service {
	return &Service{
		store:   store,
		ledgers: make(map[string]*Ledger),
	}
}

func cartKey(userID string) string {
	return fmt.Sprintf("cart:%s", userID)
}

// ledger returns the user's ledger, loading it from the blob store on first
// access. Missing keys, empty values, and undecodable blobs all resume empty.
func (s *Service) ledger(ctx context.Context, userID string) *Ledger {
	if l, ok := s.ledgers[userID]; ok {
		return l
	}

	l := NewLedger()
	value, err := s.store.Read(ctx, cartKey(userID))
	if err == nil && value != "" {
		if err := json.Unmarshal([]byte(value), l); err != nil {
			logrus.WithError(err).WithField("user_id", userID).
				Warn("Discarding undecodable cart blob")
			l = NewLedger()
		} else {
			l.recompute()
		}
	}

	s.ledgers[userID] = l
	return l
}

func (s *Service) persist(ctx context.Context, userID string, l *Ledger) {
	data, err := json.Marshal(l)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to encode cart")
		return
	}
	if err := s.store.Write(ctx, cartKey(userID), string(data)); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to persist cart")
	}
}

// Get returns a snapshot of the user's ledger.
func (s *Service) Get(ctx context.Context, userID string) Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.ledger(ctx, userID)
	snapshot := *l
	snapshot.Entries = make([]models.CartEntry, len(l.Entries))
	copy(snapshot.Entries, l.Entries)
	return snapshot
}

func (s *Service) Add(ctx context.Context, userID string, product models.Product, quantity int) Ledger {
	return s.mutate(ctx, userID, func(l *Ledger) {
		l.Add(product, quantity)
	})
}

func (s *Service) Remove(ctx context.Context, userID string, productID int) Ledger {
	return s.mutate(ctx, userID, func(l *Ledger) {
		l.Remove(productID)
	})
}

func (s *Service) UpdateQuantity(ctx context.Context, userID string, productID, quantity int) Ledger {
	return s.mutate(ctx, userID, func(l *Ledger) {
		l.UpdateQuantity(productID, quantity)
	})
}

func (s *Service) Increase(ctx context.Context, userID string, productID int) Ledger {
	return s.mutate(ctx, userID, func(l *Ledger) {
		l.Increase(productID)
	})
}

func (s *Service) Decrease(ctx context.Context, userID string, productID int) Ledger {
	return s.mutate(ctx, userID, func(l *Ledger) {
		l.Decrease(productID)
	})
}

func (s *Service) Clear(ctx context.Context, userID string) Ledger {
	return s.mutate(ctx, userID, func(l *Ledger) {
		l.Clear()
	})
}

func (s *Service) mutate(ctx context.Context, userID string, fn func(*Ledger)) Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.ledger(ctx, userID)
	fn(l)
	s.persist(ctx, userID, l)

	snapshot := *l
	snapshot.Entries = make([]models.CartEntry, len(l.Entries))
	copy(snapshot.Entries, l.Entries)
	return snapshot
}
