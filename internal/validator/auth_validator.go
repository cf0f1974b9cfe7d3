package validator

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"

	"foodapp/internal/repository"
	"foodapp/internal/usecase"
)

// 簡易メール形式
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// パスワード最低文字数
const minPasswordLength = 8

type authValidator struct {
	users repository.UserRepository
}

// Usecaseは interface を依存注入
func NewAuthValidator(users repository.UserRepository) usecase.AuthValidator {
	return &authValidator{users: users}
}

// サインアップの入力を検証
func (v *authValidator) ValidateRegister(ctx context.Context, email string, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	fields := map[string]string{}
	switch {
	case email == "":
		fields["email"] = msgBlank
	case !emailPattern.MatchString(email):
		fields["email"] = "Enter a valid email address."
	}
	switch {
	case password == "":
		fields["password"] = msgBlank
	case len(password) < minPasswordLength:
		fields["password"] = "Ensure this field has at least 8 characters."
	}
	if len(fields) > 0 {
		return usecase.NewValidationError(fields)
	}

	// email重複チェック（DBが必要）
	_, err := v.users.FindByEmail(ctx, email)
	if err == nil {
		return usecase.NewHTTPError(http.StatusConflict, "email already used")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return usecase.NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// ログインの入力を検証
func (v *authValidator) ValidateLogin(ctx context.Context, email string, password string) error {
	email = strings.TrimSpace(email)

	fields := map[string]string{}
	switch {
	case email == "":
		fields["email"] = msgBlank
	case !emailPattern.MatchString(email):
		fields["email"] = "Enter a valid email address."
	}
	if password == "" {
		fields["password"] = msgBlank
	}
	if len(fields) > 0 {
		return usecase.NewValidationError(fields)
	}
	return nil
}
