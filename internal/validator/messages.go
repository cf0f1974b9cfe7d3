package validator

import (
	"fmt"
	"unicode/utf8"
)

// 項目ごとのエラーメッセージ
const (
	msgRequired = "This field is required."
	msgBlank    = "This field may not be blank."
)

func msgMaxLength(n int) string {
	return fmt.Sprintf("Ensure this field has no more than %d characters.", n)
}

func msgMinValue(n int) string {
	return fmt.Sprintf("Ensure this value is greater than or equal to %d.", n)
}

func msgMaxValue(n int) string {
	return fmt.Sprintf("Ensure this value is less than or equal to %d.", n)
}

// バイト数ではなく文字数で数える
func tooLong(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}
