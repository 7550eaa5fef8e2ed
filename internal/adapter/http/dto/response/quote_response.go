package response

import (
	"time"

	"mechfinder/internal/domain/entities"
	"mechfinder/internal/usecase"
)

type QuotedPriceResponse struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type QuoteResponse struct {
	ID                string               `json:"id"`
	UserID            string               `json:"user_id"`
	MechanicID        string               `json:"mechanic_id"`
	VehicleID         string               `json:"vehicle_id,omitempty"`
	ServiceType       string               `json:"service_type"`
	Description       string               `json:"description,omitempty"`
	Status            string               `json:"status"`
	QuotedPrice       *QuotedPriceResponse `json:"quoted_price,omitempty"`
	EstimatedDuration string               `json:"estimated_duration,omitempty"`
	ValidUntil        *time.Time           `json:"valid_until,omitempty"`
	MechanicNotes     string               `json:"mechanic_notes,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	resp := QuoteResponse{
		ID:                q.ID,
		UserID:            q.UserID,
		MechanicID:        q.MechanicID,
		VehicleID:         q.VehicleID,
		ServiceType:       q.ServiceType,
		Description:       q.Description,
		Status:            string(q.Status),
		EstimatedDuration: q.EstimatedDuration,
		MechanicNotes:     q.MechanicNotes,
		CreatedAt:         q.CreatedAt,
		UpdatedAt:         q.UpdatedAt,
	}
	if q.QuotedPrice.Amount > 0 {
		resp.QuotedPrice = &QuotedPriceResponse{Amount: q.QuotedPrice.Amount, Currency: q.QuotedPrice.Currency}
	}
	if !q.ValidUntil.IsZero() {
		t := q.ValidUntil
		resp.ValidUntil = &t
	}
	return resp
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}

type QuoteComparisonResponse struct {
	Quotes                []QuoteResponse `json:"quotes"`
	Total                 int             `json:"total"`
	CountByStatus         map[string]int  `json:"count_by_status"`
	LowestQuotedPrice     float64         `json:"lowest_quoted_price,omitempty"`
	HighestMechanicRating float64         `json:"highest_mechanic_rating,omitempty"`
}

func FromQuoteComparison(c usecase.QuoteComparison) QuoteComparisonResponse {
	counts := make(map[string]int, len(c.CountByStatus))
	for status, n := range c.CountByStatus {
		counts[string(status)] = n
	}
	return QuoteComparisonResponse{
		Quotes:                FromQuotes(c.Quotes),
		Total:                 c.Total,
		CountByStatus:         counts,
		LowestQuotedPrice:     c.LowestQuotedPrice,
		HighestMechanicRating: c.HighestMechanicRating,
	}
}

// AcceptQuoteResponse pairs the accepted quote with the booking it spawned.
type AcceptQuoteResponse struct {
	Quote   QuoteResponse   `json:"quote"`
	Booking BookingResponse `json:"booking"`
}

func FromAcceptedQuote(q entities.Quote, b entities.Booking) AcceptQuoteResponse {
	return AcceptQuoteResponse{Quote: FromQuote(q), Booking: FromBooking(b)}
}
