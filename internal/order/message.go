// Package order turns a cart snapshot and customer details into the
// WhatsApp order message and deep link that checkout hands off to the
// external channel. Construction is pure; opening the link is the
// caller's job, reached through the Opener capability.
package order

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/irikhenry/topbreeze/internal/cart"
	"github.com/irikhenry/topbreeze/internal/currency"
)

const waBaseURL = "https://wa.me/"

// CustomerInfo is the checkout form snapshot. The presentation layer
// enforces required-field presence before this package sees it; only
// Notes may be empty here.
type CustomerInfo struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Notes      string `json:"notes"`
}

// Formatter renders order messages and builds the outbound link for a
// fixed destination contact.
type Formatter struct {
	contact string
}

// NewFormatter returns a formatter targeting the given WhatsApp contact
// number (digits only, international format without the plus sign).
func NewFormatter(contact string) *Formatter {
	return &Formatter{contact: contact}
}

// BuildMessage renders the order into the message text the destination
// expects. Field order and labels are part of the contract with the
// receiving side, as is the literal "Free" for zero shipping and the
// notes section appearing only when notes are present. Lines appear in
// cart insertion order.
func (f *Formatter) BuildMessage(lines []cart.Line, totals cart.Totals, info CustomerInfo, code currency.Code) string {
	var b strings.Builder

	b.WriteString("*New Order from TopBreeze Website*\n\n")

	b.WriteString("*Customer Details:*\n")
	fmt.Fprintf(&b, "Name: %s\n", info.FullName)
	fmt.Fprintf(&b, "Email: %s\n", info.Email)
	fmt.Fprintf(&b, "Phone: %s\n\n", info.Phone)

	b.WriteString("*Shipping Address:*\n")
	fmt.Fprintf(&b, "%s\n", info.Address)
	fmt.Fprintf(&b, "%s, %s\n", info.City, info.PostalCode)
	fmt.Fprintf(&b, "%s\n\n", info.Country)

	b.WriteString("*Order Items:*\n")
	for _, line := range lines {
		fmt.Fprintf(&b, "• %s x%d - %s\n",
			line.Product.Name, line.Quantity, currency.Format(line.LineTotal(), code))
	}

	b.WriteString("\n*Order Summary:*\n")
	fmt.Fprintf(&b, "Subtotal: %s\n", currency.Format(totals.Subtotal, code))
	shipping := "Free"
	if !totals.Shipping.IsZero() {
		shipping = currency.Format(totals.Shipping, code)
	}
	fmt.Fprintf(&b, "Shipping: %s\n", shipping)
	fmt.Fprintf(&b, "Total: %s\n", currency.Format(totals.Total, code))

	if info.Notes != "" {
		fmt.Fprintf(&b, "\n*Additional Notes:*\n%s", info.Notes)
	}

	return strings.TrimSpace(b.String())
}

// BuildLink percent-encodes the message text into the destination deep
// link. Spaces are encoded as %20 rather than + so the text survives the
// receiving application's query parsing intact.
func (f *Formatter) BuildLink(text string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return waBaseURL + f.contact + "?text=" + escaped
}
