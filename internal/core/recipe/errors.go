package recipe

import (
	"errors"
	"fmt"
)

// 食譜生成失敗的原因
var (
	ErrGenerationFailed     = errors.New("recipe generation failed")
	ErrGeneratorUnavailable = errors.New("recipe generator unavailable")
	ErrInvalidRecipes       = errors.New("generated recipes failed validation")
	ErrNoRecipes            = errors.New("no recipes in response")
)

// GenerationError 兩次嘗試都失敗後回傳給呼叫端
type GenerationError struct {
	Attempts int
	Err      error // 第一次嘗試的錯誤
	RetryErr error // 簡化重試的錯誤，未重試時為 nil
}

func (e *GenerationError) Error() string {
	if e.RetryErr != nil {
		return fmt.Sprintf("%s after %d attempts: %v; retry: %v", ErrGenerationFailed, e.Attempts, e.Err, e.RetryErr)
	}
	return fmt.Sprintf("%s after %d attempts: %v", ErrGenerationFailed, e.Attempts, e.Err)
}

// Unwrap 讓 errors.Is 同時看得到 ErrGenerationFailed 與底層原因
func (e *GenerationError) Unwrap() []error {
	errs := []error{ErrGenerationFailed}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.RetryErr != nil {
		errs = append(errs, e.RetryErr)
	}
	return errs
}

// IsGenerationError 是否為生成失敗（含包裝）
func IsGenerationError(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge)
}
