// Package basket holds the in-memory till session: the ordered basket of
// selected items, the optional customer name, and the checkout protocol
// against the receipt ledger.
package basket

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"tillmate/internal/clock"
	"tillmate/internal/domain"
	"tillmate/internal/money"

	"github.com/google/uuid"
)

// ErrEmptyBasket rejects a checkout with no items; the ledger is never called.
var ErrEmptyBasket = errors.New("cannot checkout with empty basket")

// CheckoutError wraps the cause of a failed commit. The basket is guaranteed
// unchanged when one is returned, so the caller can retry.
type CheckoutError struct {
	Err error
}

func (e *CheckoutError) Error() string {
	return fmt.Sprintf("checkout failed: %v", e.Err)
}

func (e *CheckoutError) Unwrap() error {
	return e.Err
}

type ledger interface {
	CommitReceipt(ctx context.Context, receipt domain.Receipt, lines []domain.ReceiptLine) error
}

type aggregator interface {
	Daily(ctx context.Context, dayKey string) (domain.DailySales, error)
}

// Service is the cart controller. All state lives behind one mutex; checkout
// is a single transition that either clears everything or changes nothing.
type Service struct {
	mu           sync.Mutex
	basket       []domain.Product
	customerName *string
	dailySales   *domain.DailySales

	ledger ledger
	sales  aggregator
	clock  clock.Clock
	logger *log.Logger
}

func New(ledger ledger, sales aggregator, clk clock.Clock, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if clk == nil {
		clk = clock.NewMonotonic()
	}
	return &Service{ledger: ledger, sales: sales, clock: clk, logger: logger}
}

// AddItem appends a snapshot of the product to the basket. Products missing
// an id or name, or carrying a negative price, are dropped silently: they
// come from a trusted catalog, so a malformed one is a caller bug, not a
// user-facing failure.
func (s *Service) AddItem(p domain.Product) {
	if p.ID == "" || p.Name == "" || p.PriceCents < 0 {
		s.logger.Printf("basket: dropping malformed product id=%q name=%q price=%d", p.ID, p.Name, p.PriceCents)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.basket = append(s.basket, p)
}

// ClearEntry removes the most recently added line. No-op on an empty basket.
func (s *Service) ClearEntry() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.basket) == 0 {
		return
	}
	s.basket = s.basket[:len(s.basket)-1]
}

// CancelAll empties the basket and clears the customer name together.
func (s *Service) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.basket = nil
	s.customerName = nil
}

// SetCustomerName trims the input; empty or whitespace-only means absent.
func (s *Service) SetCustomerName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		s.customerName = &trimmed
	} else {
		s.customerName = nil
	}
}

// CustomerName returns the current customer name, nil when absent. The
// pointer is a copy; writing through it cannot touch session state.
func (s *Service) CustomerName() *string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.customerName == nil {
		return nil
	}
	name := *s.customerName
	return &name
}

// Lines returns a copy of the basket in insertion order.
func (s *Service) Lines() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, len(s.basket))
	copy(out, s.basket)
	return out
}

// RunningTotalCents sums the basket's unit prices.
func (s *Service) RunningTotalCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalLocked()
}

func (s *Service) totalLocked() int64 {
	var sum int64
	for _, p := range s.basket {
		sum += p.PriceCents
	}
	return sum
}

// Checkout persists the basket as one receipt with its lines. On success the
// basket and customer name are reset in the same step and the committed
// receipt is returned; on failure every piece of session state is left
// untouched and the cause is wrapped in a CheckoutError.
func (s *Service) Checkout(ctx context.Context) (*domain.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.basket) == 0 {
		return nil, ErrEmptyBasket
	}

	now := s.clock.Now()
	receipt := domain.Receipt{
		ReceiptID:    uuid.New().String(),
		CreatedAt:    now,
		DayKey:       money.DayKey(now),
		TotalCents:   s.totalLocked(),
		CustomerName: s.customerName,
	}

	// Line day keys derive from the receipt so the two can never disagree.
	lines := make([]domain.ReceiptLine, len(s.basket))
	for i, p := range s.basket {
		lines[i] = domain.ReceiptLine{
			ID:             fmt.Sprintf("%s-%d", receipt.ReceiptID, i),
			ReceiptID:      receipt.ReceiptID,
			ItemNumber:     p.ItemNumber(),
			Description:    p.Name,
			UnitPriceCents: p.PriceCents,
			DayKey:         receipt.DayKey,
		}
	}

	if err := s.ledger.CommitReceipt(ctx, receipt, lines); err != nil {
		s.logger.Printf("basket: checkout id=%s failed: %v", receipt.ReceiptID, err)
		return nil, &CheckoutError{Err: err}
	}

	s.basket = nil
	s.customerName = nil
	s.logger.Printf("basket: checkout id=%s lines=%d total=%d", receipt.ReceiptID, len(lines), receipt.TotalCents)
	return &receipt, nil
}

// LoadDailySales refreshes the daily snapshot for dayKey (today when empty).
// On failure the snapshot is reset to empty and the error is still returned.
func (s *Service) LoadDailySales(ctx context.Context, dayKey string) (domain.DailySales, error) {
	sales, err := s.sales.Daily(ctx, dayKey)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.dailySales = &domain.DailySales{Items: []domain.ReceiptLine{}}
		return *s.dailySales, err
	}
	s.dailySales = &sales
	return sales, nil
}

// DailySales returns the last loaded snapshot, nil when never loaded.
func (s *Service) DailySales() *domain.DailySales {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dailySales
}
