package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"5.00", 500, false},
		{"5", 500, false},
		{"5.5", 550, false},
		{"10.00", 1000, false},
		{"0.01", 1, false},
		{".50", 50, false},
		{"0", 0, true},
		{"0.00", 0, true},
		{"", 0, true},
		{"-5.00", 0, true},
		{"5.005", 0, true},
		{"abc", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "GHS 5.00", FormatAmount(500))
	assert.Equal(t, "GHS 0.05", FormatAmount(5))
	assert.Equal(t, "GHS 12.30", FormatAmount(1230))
}

func TestClientInputValidate(t *testing.T) {
	valid := ClientInput{
		FullName:         "Kofi Mensah",
		Age:              42,
		Gender:           GenderMale,
		Occupation:       "Taxi Driver",
		ContactNumber:    "0244123456",
		PaymentFrequency: FrequencyDaily,
		PremiumAmount:    500,
	}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*ClientInput)
		field  string
	}{
		{"short name", func(c *ClientInput) { c.FullName = "Ko" }, "fullName"},
		{"under age", func(c *ClientInput) { c.Age = 17 }, "age"},
		{"over age", func(c *ClientInput) { c.Age = 100 }, "age"},
		{"bad gender", func(c *ClientInput) { c.Gender = "Unknown" }, "gender"},
		{"short occupation", func(c *ClientInput) { c.Occupation = "x" }, "occupation"},
		{"short contact", func(c *ClientInput) { c.ContactNumber = "024412" }, "contactNumber"},
		{"bad frequency", func(c *ClientInput) { c.PaymentFrequency = "Yearly" }, "paymentFrequency"},
		{"zero premium", func(c *ClientInput) { c.PremiumAmount = 0 }, "premiumAmount"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			err := in.Validate()
			require.Error(t, err)
			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tc.field, fe.Field)
			assert.True(t, IsValidation(err))
		})
	}
}

func TestPaymentInputValidate(t *testing.T) {
	valid := PaymentInput{
		PolicyNumber: "SKP20250411005",
		ClientName:   "Ama Serwaa",
		Amount:       1000,
		PaymentMode:  ModeMoMo,
	}
	require.NoError(t, valid.Validate())

	missing := valid
	missing.PolicyNumber = ""
	assert.Error(t, missing.Validate())

	zero := valid
	zero.Amount = 0
	assert.Error(t, zero.Validate())

	badMode := valid
	badMode.PaymentMode = "Cheque"
	assert.Error(t, badMode.Validate())
}
