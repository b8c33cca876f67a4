package services

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func isEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}

// minRunes reports whether the trimmed s has at least n characters.
func minRunes(s string, n int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= n
}

// trimmedOrNil returns nil for blank input so optional text columns store NULL.
func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// nullable turns a nil pointer into an untyped nil for column updates.
func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
