package domain

import "time"

// Gender accepted on client registration.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Valid reports whether g is one of the accepted genders.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// PaymentFrequency is how often a client pays their premium.
type PaymentFrequency string

const (
	FrequencyDaily   PaymentFrequency = "Daily"
	FrequencyWeekly  PaymentFrequency = "Weekly"
	FrequencyMonthly PaymentFrequency = "Monthly"
)

// Valid reports whether f is one of the accepted frequencies.
func (f PaymentFrequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// Client represents a policyholder. PremiumAmount is in minor currency
// units (pesewas); PolicyNumber is the primary lookup key and is never
// re-keyed once the client is stored.
type Client struct {
	ID               int64            `json:"id"`
	FullName         string           `json:"fullName"`
	Age              int              `json:"age"`
	Gender           Gender           `json:"gender"`
	Occupation       string           `json:"occupation"`
	ContactNumber    string           `json:"contactNumber"`
	PaymentFrequency PaymentFrequency `json:"paymentFrequency"`
	PremiumAmount    int64            `json:"premiumAmount"`
	PolicyNumber     string           `json:"policyNumber"`
	IsTemporary      bool             `json:"isTemporary"`
	CreatedAt        time.Time        `json:"createdAt"`
}

// ClientInput carries registration fields before the store assigns
// identity. An empty PolicyNumber means a temporary number must be
// minted; in that case the stored client is marked temporary.
type ClientInput struct {
	FullName         string           `json:"fullName"`
	Age              int              `json:"age"`
	Gender           Gender           `json:"gender"`
	Occupation       string           `json:"occupation"`
	ContactNumber    string           `json:"contactNumber"`
	PaymentFrequency PaymentFrequency `json:"paymentFrequency"`
	PremiumAmount    int64            `json:"premiumAmount"`
	PolicyNumber     string           `json:"policyNumber"`
	IsTemporary      bool             `json:"isTemporary"`
}

// Validate checks registration bounds before the input reaches any store.
func (in ClientInput) Validate() error {
	if len(in.FullName) < 3 {
		return &FieldError{Field: "fullName", Reason: "must be at least 3 characters"}
	}
	if in.Age < 18 || in.Age > 99 {
		return &FieldError{Field: "age", Reason: "must be between 18 and 99"}
	}
	if !in.Gender.Valid() {
		return &FieldError{Field: "gender", Reason: "must be Male, Female or Other"}
	}
	if len(in.Occupation) < 2 {
		return &FieldError{Field: "occupation", Reason: "must be at least 2 characters"}
	}
	if len(in.ContactNumber) < 10 {
		return &FieldError{Field: "contactNumber", Reason: "must be at least 10 characters"}
	}
	if !in.PaymentFrequency.Valid() {
		return &FieldError{Field: "paymentFrequency", Reason: "must be Daily, Weekly or Monthly"}
	}
	if in.PremiumAmount <= 0 {
		return &FieldError{Field: "premiumAmount", Reason: "must be greater than 0"}
	}
	return nil
}
