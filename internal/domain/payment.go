package domain

import "time"

// PaymentMode is the channel a premium was collected through.
type PaymentMode string

const (
	ModeCash PaymentMode = "Cash"
	ModeMoMo PaymentMode = "MoMo"
)

// Valid reports whether m is one of the accepted modes.
func (m PaymentMode) Valid() bool {
	return m == ModeCash || m == ModeMoMo
}

// Payment represents one premium-collection event. Amount is a positive
// count of minor currency units. PolicyNumber is a soft reference: it is
// not required to resolve to a stored client. ClientName is a snapshot
// taken at collection time and never re-derived.
type Payment struct {
	ID           int64       `json:"id"`
	PolicyNumber string      `json:"policyNumber"`
	ClientName   string      `json:"clientName"`
	Amount       int64       `json:"amount"`
	PaymentMode  PaymentMode `json:"paymentMode"`
	Timestamp    time.Time   `json:"timestamp"`
	Synced       bool        `json:"synced"`
}

// PaymentInput carries collection fields before the store assigns
// identity and the synced flag. A zero Timestamp means capture time.
type PaymentInput struct {
	PolicyNumber string      `json:"policyNumber"`
	ClientName   string      `json:"clientName"`
	Amount       int64       `json:"amount"`
	PaymentMode  PaymentMode `json:"paymentMode"`
	Timestamp    time.Time   `json:"timestamp"`
}

// Validate checks collection bounds before the input reaches any store.
func (in PaymentInput) Validate() error {
	if len(in.PolicyNumber) < 3 {
		return &FieldError{Field: "policyNumber", Reason: "is required"}
	}
	if in.Amount <= 0 {
		return &FieldError{Field: "amount", Reason: "must be greater than 0"}
	}
	if !in.PaymentMode.Valid() {
		return &FieldError{Field: "paymentMode", Reason: "must be Cash or MoMo"}
	}
	return nil
}
