package usecase

import "github.com/shopspring/decimal"

// 通貨の小数桁（decimal(10,2)）
const moneyPlaces = 2

var hundred = decimal.NewFromInt(100)

// 明細の価格 = 単価 × 数量。丸めない
func LinePrice(unitPrice decimal.Decimal, quantity int64) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(quantity))
}

// 割引は明細ごとではなく小計全体にかける。
// 合計は小数2桁に偶数丸め（DBのdecimal(10,2)と同じ桁）
func ApplyDiscount(subtotal decimal.Decimal, percent int) decimal.Decimal {
	discount := subtotal.Mul(decimal.NewFromInt(int64(percent))).Div(hundred)
	return subtotal.Sub(discount).RoundBank(moneyPlaces)
}
