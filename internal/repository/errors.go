package repository

import "errors"

var (
	// 対象の行が無い
	ErrNotFound = errors.New("not found")

	// unique制約違反
	ErrDuplicate = errors.New("duplicate")

	// 他の行から参照されているので消せない
	ErrReferenced = errors.New("referenced")
)
