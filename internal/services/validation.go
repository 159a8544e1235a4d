package services

import (
	"errors"
	"reflect"
	"strings"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ArowuTest/raffle-backend/internal/utils"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// registration is the normalized form checked by the validator
type registration struct {
	DisplayName     string `json:"displayName" validate:"required,min=2"`
	NationalID      string `json:"nationalId" validate:"required,len=11,number"`
	CasinoAccountID string `json:"casinoAccountId" validate:"required"`
	PayoutKeyType   string `json:"payoutKeyType" validate:"omitempty,oneof=national_id email phone random"`
	PayoutKeyValue  string `json:"payoutKeyValue"`
}

func normalizeRegistration(req *models.RegistrationRequest) *registration {
	return &registration{
		DisplayName:     strings.TrimSpace(req.DisplayName),
		NationalID:      utils.NormalizeNationalID(req.NationalID),
		CasinoAccountID: strings.TrimSpace(req.CasinoAccountID),
		PayoutKeyType:   strings.ToLower(strings.TrimSpace(req.PayoutKeyType)),
		PayoutKeyValue:  strings.TrimSpace(req.PayoutKeyValue),
	}
}

// ValidateRegistration checks a registration without storing it
func ValidateRegistration(req *models.RegistrationRequest) error {
	if req == nil {
		return &ValidationError{Fields: map[string]string{"body": "is required"}}
	}
	return validateRegistration(normalizeRegistration(req))
}

// validateRegistration returns nil or a *ValidationError listing every bad field
func validateRegistration(r *registration) error {
	fields := map[string]string{}

	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			if _, seen := fields[fe.Field()]; !seen {
				fields[fe.Field()] = fieldMessage(fe)
			}
		}
	}

	keyType := models.PayoutKeyType(r.PayoutKeyType)
	_, badKeyType := fields["payoutKeyType"]
	switch {
	case badKeyType:
	case keyType == "" && r.PayoutKeyValue != "":
		setField(fields, "payoutKeyType", "is required when payoutKeyValue is set")
	case keyType != "" && keyType != models.PayoutKeyNationalID && r.PayoutKeyValue == "":
		setField(fields, "payoutKeyValue", "is required for this payout key type")
	case keyType == models.PayoutKeyEmail:
		if err := validate.Var(r.PayoutKeyValue, "email"); err != nil {
			setField(fields, "payoutKeyValue", "must be a valid email address")
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func setField(fields map[string]string, name, msg string) {
	if _, seen := fields[name]; !seen {
		fields[name] = msg
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "len":
		return "must have exactly " + fe.Param() + " digits"
	case "number":
		return "must contain only digits"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "email":
		return "must be a valid email address"
	default:
		return "is invalid"
	}
}
