package validator

import (
	"strings"

	"foodapp/internal/domain/model"
	"foodapp/internal/usecase"

	"github.com/shopspring/decimal"
)

const (
	maxFoodNameLength = 100
	maxImageURLLength = 255
	// decimal(8,2)
	priceDecimalPlaces = 2
)

// 整数部は6桁まで
var maxPriceExclusive = decimal.New(1, 6)

type foodValidator struct{}

func NewFoodValidator() usecase.FoodValidator {
	return foodValidator{}
}

func (foodValidator) ValidateFood(in usecase.FoodInput) error {
	fields := map[string]string{}

	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		fields["name"] = msgBlank
	case tooLong(name, maxFoodNameLength):
		fields["name"] = msgMaxLength(maxFoodNameLength)
	}

	switch {
	case in.Price.IsNegative():
		fields["price"] = msgMinValue(0)
	case in.Price.Exponent() < -priceDecimalPlaces:
		fields["price"] = "Ensure that there are no more than 2 decimal places."
	case in.Price.GreaterThanOrEqual(maxPriceExclusive):
		fields["price"] = "Ensure that there are no more than 8 digits in total."
	}

	category := strings.TrimSpace(in.Category)
	switch {
	case category == "":
		fields["category"] = msgRequired
	case !model.FoodCategory(category).Valid():
		fields["category"] = `"` + category + `" is not a valid choice.`
	}

	if tooLong(strings.TrimSpace(in.ImageURL), maxImageURLLength) {
		fields["image_url"] = msgMaxLength(maxImageURLLength)
	}

	if len(fields) > 0 {
		return usecase.NewValidationError(fields)
	}
	return nil
}
