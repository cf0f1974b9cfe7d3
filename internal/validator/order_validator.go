package validator

import (
	"fmt"
	"strings"

	"foodapp/internal/usecase"
)

const (
	maxAddressLength   = 200
	maxPromoCodeLength = 50
)

type orderValidator struct{}

func NewOrderValidator() usecase.OrderValidator {
	return orderValidator{}
}

// 形式だけを見る。商品の存在（0以下のidも含む）や割引コードの有効性はusecaseで確認する
func (orderValidator) ValidateCreateOrder(in usecase.CreateOrderInput) error {
	fields := map[string]string{}

	address := strings.TrimSpace(in.Address)
	switch {
	case address == "":
		fields["address"] = msgBlank
	case tooLong(address, maxAddressLength):
		fields["address"] = msgMaxLength(maxAddressLength)
	}

	if in.Items == nil {
		fields["items"] = msgRequired
	}
	for i, line := range in.Items {
		if line.Quantity < 1 {
			fields[fmt.Sprintf("items[%d].quantity", i)] = msgMinValue(1)
		}
	}

	if in.PromoCode != nil {
		code := strings.TrimSpace(*in.PromoCode)
		switch {
		case code == "":
			fields["promo_code"] = msgBlank
		case tooLong(code, maxPromoCodeLength):
			fields["promo_code"] = msgMaxLength(maxPromoCodeLength)
		}
	}

	if len(fields) > 0 {
		return usecase.NewValidationError(fields)
	}
	return nil
}
