package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// エラーの種類。errors.Isで判定できる
var (
	//400 入力不正
	ErrValidation = errors.New("validation error")
	//400 割引コードが無い/無効/期間外
	ErrInvalidPromoCode = errors.New("invalid promo code")
	//401 認証失敗
	ErrUnauthorized = errors.New("unauthorized")
	//403 権限
	ErrForbidden = errors.New("forbidden")
	//404
	ErrNotFound = errors.New("not found")
	//409 競合
	ErrConflict = errors.New("conflict")
	//500
	ErrInternal = errors.New("internal error")
)

type HTTPError struct {
	Status  int
	Message string
	// 項目ごとのエラー（400のとき）
	Fields map[string]string
	Kind   error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.Kind
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
		Kind:    kindOf(status),
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 項目ごとのエラーをまとめた400
func NewValidationError(fields map[string]string) error {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Message: "validation error",
		Fields:  fields,
		Kind:    ErrValidation,
	}
}

// 注文全体を失敗させる。割引なしで作り直すことはしない
func newInvalidPromoCodeError() error {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Message: "validation error",
		Fields:  map[string]string{"promo_code": "Invalid or expired promo code"},
		Kind:    ErrInvalidPromoCode,
	}
}

func newFoodNotFoundError(foodID int64) error {
	return &HTTPError{
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("food %d not found", foodID),
		Kind:    ErrNotFound,
	}
}

// DBなど想定外のエラーはログに残して500にする
func internalError(ctx context.Context, op string, err error) error {
	slog.ErrorContext(ctx, "usecase failed", slog.String("op", op), slog.String("error", err.Error()))
	return NewHTTPError(http.StatusInternalServerError, "db error")
}

func kindOf(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrValidation
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	default:
		return ErrInternal
	}
}
