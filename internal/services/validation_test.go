package services

import (
	"testing"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *models.RegistrationRequest {
	return &models.RegistrationRequest{
		DisplayName:     "Joana",
		NationalID:      "123.456.789-00",
		CasinoAccountID: "casino-77",
	}
}

func TestValidateRegistration_Valid(t *testing.T) {
	cases := map[string]func(r *models.RegistrationRequest){
		"no payout key": func(r *models.RegistrationRequest) {},
		"national id key without value": func(r *models.RegistrationRequest) {
			r.PayoutKeyType = "national_id"
		},
		"email key": func(r *models.RegistrationRequest) {
			r.PayoutKeyType = "email"
			r.PayoutKeyValue = "joana@example.com"
		},
		"phone key": func(r *models.RegistrationRequest) {
			r.PayoutKeyType = "PHONE"
			r.PayoutKeyValue = "+55 11 99999-0000"
		},
		"two character name": func(r *models.RegistrationRequest) {
			r.DisplayName = " Jo "
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			mutate(req)
			assert.NoError(t, validateRegistration(normalizeRegistration(req)))
		})
	}
}

func TestValidateRegistration_FieldErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(r *models.RegistrationRequest)
		field  string
	}{
		{"short name", func(r *models.RegistrationRequest) { r.DisplayName = "J" }, "displayName"},
		{"blank name", func(r *models.RegistrationRequest) { r.DisplayName = "   " }, "displayName"},
		{"ten digits", func(r *models.RegistrationRequest) { r.NationalID = "123.456.789-0" }, "nationalId"},
		{"twelve digits", func(r *models.RegistrationRequest) { r.NationalID = "123456789000" }, "nationalId"},
		{"letters in id", func(r *models.RegistrationRequest) { r.NationalID = "1234567890a" }, "nationalId"},
		{"missing casino account", func(r *models.RegistrationRequest) { r.CasinoAccountID = " " }, "casinoAccountId"},
		{"unknown key type", func(r *models.RegistrationRequest) {
			r.PayoutKeyType = "bitcoin"
			r.PayoutKeyValue = "x"
		}, "payoutKeyType"},
		{"value without type", func(r *models.RegistrationRequest) { r.PayoutKeyValue = "x" }, "payoutKeyType"},
		{"phone without value", func(r *models.RegistrationRequest) { r.PayoutKeyType = "phone" }, "payoutKeyValue"},
		{"random without value", func(r *models.RegistrationRequest) { r.PayoutKeyType = "random" }, "payoutKeyValue"},
		{"bad email", func(r *models.RegistrationRequest) {
			r.PayoutKeyType = "email"
			r.PayoutKeyValue = "not-an-email"
		}, "payoutKeyValue"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)

			err := validateRegistration(normalizeRegistration(req))
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tc.field)
		})
	}
}

func TestValidateRegistration_UnknownKeyTypeReportedOnce(t *testing.T) {
	req := validRequest()
	req.PayoutKeyType = "pix"

	var verr *ValidationError
	require.ErrorAs(t, validateRegistration(normalizeRegistration(req)), &verr)
	assert.Equal(t, map[string]string{"payoutKeyType": verr.Fields["payoutKeyType"]}, verr.Fields)
	assert.NotEmpty(t, verr.Fields["payoutKeyType"])
}

func TestValidateRegistration_ReportsEveryField(t *testing.T) {
	err := validateRegistration(normalizeRegistration(&models.RegistrationRequest{}))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "is required", verr.Fields["displayName"])
	assert.Equal(t, "is required", verr.Fields["nationalId"])
	assert.Equal(t, "is required", verr.Fields["casinoAccountId"])
	assert.Contains(t, verr.Error(), "casinoAccountId is required")
}

func TestValidateRegistration_NilRequest(t *testing.T) {
	var verr *ValidationError
	require.ErrorAs(t, ValidateRegistration(nil), &verr)
	assert.Contains(t, verr.Fields, "body")
	assert.NoError(t, ValidateRegistration(validRequest()))
}
