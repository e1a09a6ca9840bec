package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/irikhenry/topbreeze/internal/api/middleware"
	"github.com/irikhenry/topbreeze/internal/cart"
	"github.com/irikhenry/topbreeze/internal/catalog"
	"github.com/irikhenry/topbreeze/internal/currency"
	"github.com/irikhenry/topbreeze/internal/notify"
	"github.com/irikhenry/topbreeze/internal/order"
)

type Handlers struct {
	catalog   *catalog.Catalog
	formatter *order.Formatter
	publisher notify.Publisher
}

func NewHandlers(cat *catalog.Catalog, formatter *order.Formatter, publisher notify.Publisher) *Handlers {
	return &Handlers{
		catalog:   cat,
		formatter: formatter,
		publisher: publisher,
	}
}

// Product Handlers

type productResponse struct {
	catalog.Product
	DisplayPrice string `json:"display_price"`
}

func toProductResponses(products []catalog.Product, code currency.Code) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, productResponse{
			Product:      p,
			DisplayPrice: currency.Format(p.Price, code),
		})
	}
	return out
}

func (h *Handlers) GetProducts(w http.ResponseWriter, r *http.Request) {
	code := sessionCurrency(r)

	products := h.catalog.List()
	if cat := r.URL.Query().Get("category"); cat != "" {
		products = h.catalog.ByCategory(catalog.Category(cat))
	}
	if r.URL.Query().Get("featured") == "true" {
		featured := make([]catalog.Product, 0, len(products))
		for _, p := range products {
			if p.Featured {
				featured = append(featured, p)
			}
		}
		products = featured
	}

	respondJSON(w, http.StatusOK, toProductResponses(products, code))
}

func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := h.catalog.Get(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, "product not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, productResponse{
		Product:      p,
		DisplayPrice: currency.Format(p.Price, sessionCurrency(r)),
	})
}

func (h *Handlers) GetRelatedProducts(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.catalog.Get(id); !ok {
		respondError(w, "product not found", http.StatusNotFound)
		return
	}
	// the product page shows at most three related items
	related := h.catalog.Related(id, 3)
	respondJSON(w, http.StatusOK, toProductResponses(related, sessionCurrency(r)))
}

// Currency Handlers

func (h *Handlers) GetCurrencies(w http.ResponseWriter, r *http.Request) {
	type currencyResponse struct {
		Code     currency.Code `json:"code"`
		Symbol   string        `json:"symbol"`
		Name     string        `json:"name"`
		Selected bool          `json:"selected"`
	}

	selected := sessionCurrency(r)
	out := make([]currencyResponse, 0)
	for _, info := range currency.List() {
		out = append(out, currencyResponse{
			Code:     info.Code,
			Symbol:   info.Symbol,
			Name:     info.Name,
			Selected: info.Code == selected,
		})
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *Handlers) SetCurrency(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		respondError(w, "no session", http.StatusInternalServerError)
		return
	}

	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	code, err := currency.Parse(req.Code)
	if err != nil {
		respondError(w, "unsupported currency", http.StatusBadRequest)
		return
	}

	sess.SetCurrency(code)
	respondJSON(w, http.StatusOK, map[string]currency.Code{"currency": code})
}

// Cart Handlers

type cartItemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

type cartResponse struct {
	Items     []cartItemResponse `json:"items"`
	ItemCount int                `json:"item_count"`
	Subtotal  string             `json:"subtotal"`
	Shipping  string             `json:"shipping"`
	Total     string             `json:"total"`
	Currency  currency.Code      `json:"currency"`
}

func toCartResponse(lines []cart.Line, totals cart.Totals, code currency.Code) cartResponse {
	items := make([]cartItemResponse, 0, len(lines))
	for _, line := range lines {
		items = append(items, cartItemResponse{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Quantity:  line.Quantity,
			UnitPrice: currency.Format(line.Product.Price, code),
			LineTotal: currency.Format(line.LineTotal(), code),
		})
	}

	shipping := currency.Format(totals.Shipping, code)
	if totals.ItemCount > 0 && totals.Shipping.IsZero() {
		shipping = "Free"
	}

	return cartResponse{
		Items:     items,
		ItemCount: totals.ItemCount,
		Subtotal:  currency.Format(totals.Subtotal, code),
		Shipping:  shipping,
		Total:     currency.Format(totals.Total, code),
		Currency:  code,
	}
}

func (h *Handlers) GetCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		respondError(w, "no session", http.StatusInternalServerError)
		return
	}
	lines, totals, code := sess.Snapshot()
	respondJSON(w, http.StatusOK, toCartResponse(lines, totals, code))
}

func (h *Handlers) AddToCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		respondError(w, "no session", http.StatusInternalServerError)
		return
	}

	var req struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	sess.AddItem(req.ProductID, req.Quantity)
	lines, totals, code := sess.Snapshot()
	respondJSON(w, http.StatusOK, toCartResponse(lines, totals, code))
}

func (h *Handlers) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		respondError(w, "no session", http.StatusInternalServerError)
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	sess.UpdateQuantity(chi.URLParam(r, "id"), req.Quantity)
	lines, totals, code := sess.Snapshot()
	respondJSON(w, http.StatusOK, toCartResponse(lines, totals, code))
}

func (h *Handlers) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		respondError(w, "no session", http.StatusInternalServerError)
		return
	}

	sess.RemoveItem(chi.URLParam(r, "id"))
	lines, totals, code := sess.Snapshot()
	respondJSON(w, http.StatusOK, toCartResponse(lines, totals, code))
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, message string, status int) {
	respondJSON(w, status, map[string]string{"error": message})
}

// sessionCurrency reads the display currency off the request's session,
// falling back to the base currency when no session is attached.
func sessionCurrency(r *http.Request) currency.Code {
	if sess, ok := middleware.GetSession(r.Context()); ok {
		return sess.Currency()
	}
	return currency.USD
}
