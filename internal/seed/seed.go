package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type clientSeed struct {
	FullName         string
	Age              int
	Gender           string
	Occupation       string
	ContactNumber    string
	PaymentFrequency string
	PremiumCents     int64
	PolicyNumber     string
	CreatedAt        time.Time
}

// Apply inserts the demo client book for manual testing. It is
// idempotent via ON CONFLICT on the policy number.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	clients := []clientSeed{
		{
			FullName:         "Kofi Mensah",
			Age:              42,
			Gender:           "Male",
			Occupation:       "Taxi Driver",
			ContactNumber:    "0244123456",
			PaymentFrequency: "Daily",
			PremiumCents:     500,
			PolicyNumber:     "SKP20250411002",
			CreatedAt:        time.Date(2025, 4, 10, 10, 0, 0, 0, time.Local),
		},
		{
			FullName:         "Ama Serwaa",
			Age:              35,
			Gender:           "Female",
			Occupation:       "Market Trader",
			ContactNumber:    "0201987654",
			PaymentFrequency: "Weekly",
			PremiumCents:     1000,
			PolicyNumber:     "SKP20250411005",
			CreatedAt:        time.Date(2025, 4, 10, 11, 0, 0, 0, time.Local),
		},
		{
			FullName:         "John Addo",
			Age:              28,
			Gender:           "Male",
			Occupation:       "Mechanic",
			ContactNumber:    "0277889900",
			PaymentFrequency: "Weekly",
			PremiumCents:     800,
			PolicyNumber:     "SKP20250411007",
			CreatedAt:        time.Date(2025, 4, 10, 12, 0, 0, 0, time.Local),
		},
		{
			FullName:         "Grace Ampofo",
			Age:              30,
			Gender:           "Female",
			Occupation:       "Teacher",
			ContactNumber:    "0244567890",
			PaymentFrequency: "Monthly",
			PremiumCents:     500,
			PolicyNumber:     "SKP20250411009",
			CreatedAt:        time.Date(2025, 4, 10, 13, 0, 0, 0, time.Local),
		},
		{
			FullName:         "Francis Boateng",
			Age:              45,
			Gender:           "Male",
			Occupation:       "Farmer",
			ContactNumber:    "0201234567",
			PaymentFrequency: "Monthly",
			PremiumCents:     700,
			PolicyNumber:     "SKP20250411011",
			CreatedAt:        time.Date(2025, 4, 10, 14, 0, 0, 0, time.Local),
		},
	}

	for _, c := range clients {
		if err := upsertClient(ctx, pool, c); err != nil {
			return fmt.Errorf("upsert client %s: %w", c.PolicyNumber, err)
		}
	}

	return nil
}

func upsertClient(ctx context.Context, pool *pgxpool.Pool, c clientSeed) error {
	const q = `
INSERT INTO clients (full_name, age, gender, occupation, contact_number, payment_frequency, premium_amount, policy_number, is_temporary, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, false, $9)
ON CONFLICT (policy_number) DO UPDATE
SET full_name = EXCLUDED.full_name,
    age = EXCLUDED.age,
    gender = EXCLUDED.gender,
    occupation = EXCLUDED.occupation,
    contact_number = EXCLUDED.contact_number,
    payment_frequency = EXCLUDED.payment_frequency,
    premium_amount = EXCLUDED.premium_amount
`
	_, err := pool.Exec(ctx, q, c.FullName, c.Age, c.Gender, c.Occupation, c.ContactNumber, c.PaymentFrequency, c.PremiumCents, c.PolicyNumber, c.CreatedAt)
	return err
}
