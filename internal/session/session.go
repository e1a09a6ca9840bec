// Package session keeps each visitor's storefront state in memory: the
// cart, the selected display currency, and the checkout debounce. State
// lives only as long as the session; eviction is the one way a cart is
// ever cleared.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/irikhenry/topbreeze/internal/cart"
	"github.com/irikhenry/topbreeze/internal/catalog"
	"github.com/irikhenry/topbreeze/internal/currency"
	"github.com/irikhenry/topbreeze/internal/order"
)

const (
	// DefaultTTL is how long an idle session survives before eviction.
	DefaultTTL = 30 * time.Minute

	// cleanupInterval is how often the background eviction runs.
	cleanupInterval = time.Minute
)

// Session is one visitor's state. The cart model is sequential; the
// mutex exists because HTTP requests from the same browser can still
// overlap on the wire.
type Session struct {
	ID string

	mu        sync.Mutex
	cart      *cart.Store
	currency  currency.Code
	submitter *order.Submitter
	lastSeen  time.Time
}

// AddItem adds quantity units of a product to the cart and returns the
// updated lines.
func (s *Session) AddItem(productID string, quantity int) []cart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Add(productID, quantity)
}

// UpdateQuantity sets a line's quantity (clamped to at least 1) and
// returns the updated lines.
func (s *Session) UpdateQuantity(productID string, quantity int) []cart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.UpdateQuantity(productID, quantity)
}

// RemoveItem deletes a line and returns the updated lines.
func (s *Session) RemoveItem(productID string) []cart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Remove(productID)
}

// Snapshot returns the lines, totals, and display currency as one
// consistent read.
func (s *Session) Snapshot() ([]cart.Line, cart.Totals, currency.Code) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines(), s.cart.Totals(), s.currency
}

// Totals recomputes the cart aggregates.
func (s *Session) Totals() cart.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Totals()
}

// Currency returns the selected display currency.
func (s *Session) Currency() currency.Code {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currency
}

// SetCurrency switches the display currency. Stored prices are untouched;
// only presentation changes.
func (s *Session) SetCurrency(code currency.Code) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currency = code
}

// Submitter returns the session's checkout debounce.
func (s *Session) Submitter() *order.Submitter {
	return s.submitter
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// Manager owns the in-memory session table and evicts idle sessions in
// the background.
type Manager struct {
	catalog *catalog.Catalog
	opener  order.Opener
	revert  time.Duration
	ttl     time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session

	stopCleanup chan struct{}
	wg          sync.WaitGroup
}

// NewManager creates a session manager. The opener and revert delay are
// handed to each session's submitter; a non-positive ttl falls back to
// DefaultTTL.
func NewManager(cat *catalog.Catalog, opener order.Opener, revert, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	m := &Manager{
		catalog:     cat,
		opener:      opener,
		revert:      revert,
		ttl:         ttl,
		sessions:    make(map[string]*Session),
		stopCleanup: make(chan struct{}),
	}

	m.wg.Add(1)
	go m.cleanupLoop()

	return m
}

// Create starts a fresh session with an empty cart and the base currency
// selected.
func (m *Manager) Create() *Session {
	s := &Session{
		ID:        uuid.New().String(),
		cart:      cart.NewStore(m.catalog),
		currency:  currency.USD,
		submitter: order.NewSubmitter(m.opener, m.revert),
		lastSeen:  time.Now(),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the session for an ID and refreshes its idle timer.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	s.touch(time.Now())
	return s, true
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Close stops the background eviction.
func (m *Manager) Close() {
	close(m.stopCleanup)
	m.wg.Wait()
}

func (m *Manager) cleanupLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.evictIdle(time.Now())
		case <-m.stopCleanup:
			return
		}
	}
}

func (m *Manager) evictIdle(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, s := range m.sessions {
		if s.idleSince(now) > m.ttl {
			delete(m.sessions, id)
			evicted++
		}
	}
	return evicted
}
