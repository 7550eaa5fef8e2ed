package entities

import (
	"encoding/json"
	"time"
)

// BookingPaymentStatus is the provider-side outcome of a booking payment.
type BookingPaymentStatus string

const (
	BookingPaymentStatusApproved BookingPaymentStatus = "approved"
	BookingPaymentStatusDenied   BookingPaymentStatus = "denied"
)

// Payment records a processed booking payment.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI1 (booking_id-index): booking_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original body (JSON) for traceability/audit.
//   - ProviderPayload is an optional parsed representation.
type Payment struct {
	ID        string               `json:"id"`
	BookingID string               `json:"booking_id"`
	Date      time.Time            `json:"date"`
	Status    BookingPaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
