// Package errors maps application errors to stable metric tag values.
package errors

import (
	apperrors "github.com/minegocio/pos-web/internal/errors"
)

// Classify returns a normalized error class suitable for tagging metrics and
// logs. Application error codes map directly; anything else is "internal".
func Classify(err error) string {
	if err == nil {
		return ""
	}
	code := apperrors.GetCode(err)
	if code == "" {
		return "internal"
	}
	return string(code)
}
