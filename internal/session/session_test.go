package session

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irikhenry/topbreeze/internal/catalog"
	"github.com/irikhenry/topbreeze/internal/currency"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Product{
		{ID: "frag-01", Name: "Nordic Dawn", Category: catalog.CategoryFragrance, Price: decimal.NewFromInt(245)},
		{ID: "diff-03", Name: "Serenity Candle", Category: catalog.CategoryDiffuser, Price: decimal.NewFromInt(95)},
	})
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager(testCatalog(), nil, 10*time.Millisecond, time.Minute)
	t.Cleanup(m.Close)
	return m
}

func TestManager_CreateAndGet(t *testing.T) {
	m := newTestManager(t)

	sess := m.Create()
	require.NotEmpty(t, sess.ID)

	got, ok := m.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)

	_, ok = m.Get("no-such-session")
	assert.False(t, ok)
}

func TestManager_SessionsAreIndependent(t *testing.T) {
	m := newTestManager(t)

	a := m.Create()
	b := m.Create()

	a.AddItem("frag-01", 2)

	assert.Equal(t, 2, a.Totals().ItemCount)
	assert.Equal(t, 0, b.Totals().ItemCount)
}

func TestSession_DefaultsToBaseCurrency(t *testing.T) {
	m := newTestManager(t)

	sess := m.Create()

	assert.Equal(t, currency.USD, sess.Currency())
}

func TestSession_SetCurrencyLeavesCartAlone(t *testing.T) {
	m := newTestManager(t)
	sess := m.Create()
	sess.AddItem("frag-01", 1)

	sess.SetCurrency(currency.NGN)

	lines, totals, code := sess.Snapshot()
	assert.Equal(t, currency.NGN, code)
	require.Len(t, lines, 1)
	// stored prices stay in base currency
	assert.True(t, lines[0].Product.Price.Equal(decimal.NewFromInt(245)))
	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(245)))
}

func TestSession_CartOperations(t *testing.T) {
	m := newTestManager(t)
	sess := m.Create()

	sess.AddItem("frag-01", 2)
	sess.AddItem("diff-03", 1)
	sess.UpdateQuantity("frag-01", 1)
	sess.RemoveItem("diff-03")

	lines, totals, _ := sess.Snapshot()
	require.Len(t, lines, 1)
	assert.Equal(t, "frag-01", lines[0].Product.ID)
	assert.Equal(t, 1, totals.ItemCount)
	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(245)))
}

func TestSession_SubmitterIsWired(t *testing.T) {
	m := newTestManager(t)
	sess := m.Create()

	require.NotNil(t, sess.Submitter())
	assert.True(t, sess.Submitter().Submit("somewhere"))
	assert.False(t, sess.Submitter().Submit("again"))
}

func TestManager_EvictIdle(t *testing.T) {
	m := NewManager(testCatalog(), nil, time.Second, time.Minute)
	t.Cleanup(m.Close)

	stale := m.Create()
	fresh := m.Create()
	stale.touch(time.Now().Add(-2 * time.Minute))

	evicted := m.evictIdle(time.Now())

	assert.Equal(t, 1, evicted)
	assert.Equal(t, 1, m.Len())
	_, ok := m.Get(stale.ID)
	assert.False(t, ok)
	_, ok = m.Get(fresh.ID)
	assert.True(t, ok)
}

func TestManager_GetRefreshesIdleTimer(t *testing.T) {
	m := NewManager(testCatalog(), nil, time.Second, time.Minute)
	t.Cleanup(m.Close)

	sess := m.Create()
	sess.touch(time.Now().Add(-2 * time.Minute))

	// a hit keeps the session alive
	_, ok := m.Get(sess.ID)
	require.True(t, ok)

	assert.Equal(t, 0, m.evictIdle(time.Now()))
}
