package order

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irikhenry/topbreeze/internal/cart"
	"github.com/irikhenry/topbreeze/internal/catalog"
	"github.com/irikhenry/topbreeze/internal/currency"
)

const testContact = "2348035771482"

func testCart(t *testing.T) *cart.Store {
	t.Helper()
	cat := catalog.New([]catalog.Product{
		{ID: "frag-01", Name: "Nordic Dawn", Category: catalog.CategoryFragrance, Price: decimal.NewFromInt(245)},
		{ID: "diff-03", Name: "Serenity Candle", Category: catalog.CategoryDiffuser, Price: decimal.NewFromInt(95)},
	})
	return cart.NewStore(cat)
}

func testCustomer() CustomerInfo {
	return CustomerInfo{
		FullName:   "Ada Obi",
		Email:      "ada@example.com",
		Phone:      "+2348000000000",
		Address:    "12 Marina Road",
		City:       "Lagos",
		PostalCode: "101241",
		Country:    "Nigeria",
	}
}

// ============================================
// BuildMessage Tests
// ============================================

func TestFormatter_BuildMessage_FullOrder(t *testing.T) {
	s := testCart(t)
	s.Add("frag-01", 2)
	s.Add("diff-03", 1)

	info := testCustomer()
	info.Notes = "Please gift-wrap."

	f := NewFormatter(testContact)
	got := f.BuildMessage(s.Lines(), s.Totals(), info, currency.USD)

	expected := strings.Join([]string{
		"*New Order from TopBreeze Website*",
		"",
		"*Customer Details:*",
		"Name: Ada Obi",
		"Email: ada@example.com",
		"Phone: +2348000000000",
		"",
		"*Shipping Address:*",
		"12 Marina Road",
		"Lagos, 101241",
		"Nigeria",
		"",
		"*Order Items:*",
		"• Nordic Dawn x2 - $490.00",
		"• Serenity Candle x1 - $95.00",
		"",
		"*Order Summary:*",
		"Subtotal: $585.00",
		"Shipping: Free",
		"Total: $585.00",
		"",
		"*Additional Notes:*",
		"Please gift-wrap.",
	}, "\n")

	assert.Equal(t, expected, got)
}

func TestFormatter_BuildMessage_OmitsEmptyNotes(t *testing.T) {
	s := testCart(t)
	s.Add("frag-01", 1)

	f := NewFormatter(testContact)
	got := f.BuildMessage(s.Lines(), s.Totals(), testCustomer(), currency.USD)

	assert.NotContains(t, got, "*Additional Notes:*")
	assert.True(t, strings.HasSuffix(got, "Total: $245.00"), "message should end at the total: %q", got)
}

func TestFormatter_BuildMessage_PaidShipping(t *testing.T) {
	s := testCart(t)
	s.Add("diff-03", 1) // 95, below the free-shipping threshold

	f := NewFormatter(testContact)
	got := f.BuildMessage(s.Lines(), s.Totals(), testCustomer(), currency.USD)

	assert.Contains(t, got, "Subtotal: $95.00")
	assert.Contains(t, got, "Shipping: $15.00")
	assert.Contains(t, got, "Total: $110.00")
	assert.NotContains(t, got, "Free")
}

func TestFormatter_BuildMessage_InsertionOrder(t *testing.T) {
	s := testCart(t)
	s.Add("diff-03", 1)
	s.Add("frag-01", 1)
	s.UpdateQuantity("diff-03", 2) // must not reorder

	f := NewFormatter(testContact)
	got := f.BuildMessage(s.Lines(), s.Totals(), testCustomer(), currency.USD)

	candle := strings.Index(got, "Serenity Candle")
	dawn := strings.Index(got, "Nordic Dawn")
	require.NotEqual(t, -1, candle)
	require.NotEqual(t, -1, dawn)
	assert.Less(t, candle, dawn)
}

func TestFormatter_BuildMessage_SelectedCurrency(t *testing.T) {
	s := testCart(t)
	s.Add("frag-01", 1)

	f := NewFormatter(testContact)
	got := f.BuildMessage(s.Lines(), s.Totals(), testCustomer(), currency.NGN)

	// 245 at 1550 NGN/USD
	assert.Contains(t, got, "• Nordic Dawn x1 - ₦379,750")
	assert.Contains(t, got, "Subtotal: ₦379,750")
}

// ============================================
// BuildLink Tests
// ============================================

func TestFormatter_BuildLink(t *testing.T) {
	f := NewFormatter(testContact)

	link := f.BuildLink("hello world")

	assert.Equal(t, "https://wa.me/2348035771482?text=hello%20world", link)
}

func TestFormatter_BuildLink_EncodesMessage(t *testing.T) {
	f := NewFormatter(testContact)

	link := f.BuildLink("*Order*\nTotal: $1,000.00")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/2348035771482?text="))
	assert.Contains(t, link, "%0A")  // newlines survive as percent escapes
	assert.NotContains(t, link, "+") // spaces must be %20, not +
	assert.NotContains(t, link, "\n")
}
