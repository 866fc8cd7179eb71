package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// 一意制約違反（email重複など）
	ErrDuplicate = errors.New("duplicate")

	// 条件付き更新で対象の状態が変わっていた
	ErrStatusConflict = errors.New("status conflict")
)
