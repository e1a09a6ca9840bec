package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/irikhenry/topbreeze/internal/api/middleware"
	"github.com/irikhenry/topbreeze/internal/notify"
	"github.com/irikhenry/topbreeze/internal/order"
)

type checkoutRequest struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Notes      string `json:"notes"`
}

// missingFields names the required fields that are blank. Notes is the
// one optional field.
func (req checkoutRequest) missingFields() []string {
	required := []struct {
		name  string
		value string
	}{
		{"full_name", req.FullName},
		{"email", req.Email},
		{"phone", req.Phone},
		{"address", req.Address},
		{"city", req.City},
		{"postal_code", req.PostalCode},
		{"country", req.Country},
	}

	missing := make([]string, 0)
	for _, f := range required {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

type checkoutResponse struct {
	Reference string `json:"reference"`
	URL       string `json:"url"`
	Message   string `json:"message"`
}

// Checkout builds the order message and hand-off link from the session
// cart. The response carries the link for the client to open; whether the
// external channel ever receives the order is not observable here.
func (h *Handlers) Checkout(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		respondError(w, "no session", http.StatusInternalServerError)
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	if missing := req.missingFields(); len(missing) > 0 {
		respondJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":   "missing required fields",
			"missing": missing,
		})
		return
	}

	lines, totals, code := sess.Snapshot()
	if len(lines) == 0 {
		respondError(w, "cart is empty", http.StatusUnprocessableEntity)
		return
	}

	info := order.CustomerInfo{
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		Notes:      req.Notes,
	}

	message := h.formatter.BuildMessage(lines, totals, info, code)
	link := h.formatter.BuildLink(message)

	if !sess.Submitter().Submit(link) {
		respondError(w, "a submission is already in progress", http.StatusConflict)
		return
	}

	rec := notify.OrderPrepared{
		Reference:  uuid.New().String(),
		SessionID:  sess.ID,
		ItemCount:  totals.ItemCount,
		Total:      totals.Total.String(),
		Currency:   string(code),
		PreparedAt: time.Now(),
	}
	if err := h.publisher.PublishOrderPrepared(r.Context(), rec); err != nil {
		// the hand-off already happened; a lost audit record is not a
		// checkout failure
		log.Warn().Err(err).Str("reference", rec.Reference).Msg("order hand-off record not published")
	}

	respondJSON(w, http.StatusOK, checkoutResponse{
		Reference: rec.Reference,
		URL:       link,
		Message:   message,
	})
}
