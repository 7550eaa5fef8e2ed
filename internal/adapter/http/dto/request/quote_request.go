package request

import (
	"time"

	"mechfinder/internal/usecase"
)

type QuoteRequest struct {
	MechanicID  string `json:"mechanic_id" binding:"required"`
	VehicleID   string `json:"vehicle_id"`
	ServiceType string `json:"service_type" binding:"required"`
	Description string `json:"description"`
}

func (r QuoteRequest) ToInput() usecase.RequestQuoteInput {
	return usecase.RequestQuoteInput{
		MechanicID:  r.MechanicID,
		VehicleID:   r.VehicleID,
		ServiceType: r.ServiceType,
		Description: r.Description,
	}
}

type QuoteBatchRequest struct {
	MechanicIDs []string `json:"mechanic_ids" binding:"required,min=1"`
	VehicleID   string   `json:"vehicle_id"`
	ServiceType string   `json:"service_type" binding:"required"`
	Description string   `json:"description"`
}

func (r QuoteBatchRequest) ToInput() usecase.RequestQuotesBatchInput {
	return usecase.RequestQuotesBatchInput{
		MechanicIDs: r.MechanicIDs,
		VehicleID:   r.VehicleID,
		ServiceType: r.ServiceType,
		Description: r.Description,
	}
}

// QuoteResponseRequest is the mechanic's priced offer. ValidUntil is an
// RFC 3339 timestamp and optional.
type QuoteResponseRequest struct {
	Amount            float64 `json:"amount" binding:"required,gt=0"`
	Currency          string  `json:"currency"`
	EstimatedDuration string  `json:"estimated_duration"`
	ValidUntil        string  `json:"valid_until"`
	Notes             string  `json:"notes"`
}

func (r QuoteResponseRequest) ToInput() (usecase.QuoteResponseInput, error) {
	in := usecase.QuoteResponseInput{
		Amount:            r.Amount,
		Currency:          r.Currency,
		EstimatedDuration: r.EstimatedDuration,
		Notes:             r.Notes,
	}
	if r.ValidUntil != "" {
		t, err := time.Parse(time.RFC3339, r.ValidUntil)
		if err != nil {
			return usecase.QuoteResponseInput{}, err
		}
		in.ValidUntil = t
	}
	return in, nil
}

type AcceptQuoteRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

func (r AcceptQuoteRequest) ToInput() usecase.AcceptQuoteInput {
	return usecase.AcceptQuoteInput{Date: r.Date, Time: r.Time}
}

type CompareQuotesRequest struct {
	QuoteIDs []string `json:"quote_ids" binding:"required,min=1"`
}
