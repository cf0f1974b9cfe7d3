package validator

import (
	"strings"
	"time"

	"foodapp/internal/domain/model"
	"foodapp/internal/usecase"
)

type promoCodeValidator struct{}

func NewPromoCodeValidator() usecase.PromoCodeValidator {
	return promoCodeValidator{}
}

func (promoCodeValidator) ValidatePromoCode(in usecase.PromoCodeInput) error {
	fields := map[string]string{}

	code := strings.TrimSpace(in.Code)
	switch {
	case code == "":
		fields["code"] = msgBlank
	case tooLong(code, maxPromoCodeLength):
		fields["code"] = msgMaxLength(maxPromoCodeLength)
	}

	switch {
	case in.DiscountPercent < 0:
		fields["discount_percent"] = msgMinValue(0)
	case in.DiscountPercent > 100:
		fields["discount_percent"] = msgMaxValue(100)
	}

	from, fromOK := parseDate(in.ValidFrom)
	if !fromOK {
		fields["valid_from"] = "Date has wrong format. Use YYYY-MM-DD."
	}
	to, toOK := parseDate(in.ValidTo)
	if !toOK {
		fields["valid_to"] = "Date has wrong format. Use YYYY-MM-DD."
	}
	if fromOK && toOK && from.After(to) {
		fields["valid_to"] = "valid_to must be on or after valid_from."
	}

	if len(fields) > 0 {
		return usecase.NewValidationError(fields)
	}
	return nil
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(model.DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
