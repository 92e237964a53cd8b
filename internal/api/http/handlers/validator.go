package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/spec-kit/notice-board/internal/domain"
)

// RequestValidator wraps go-playground/validator and reports failures as a
// domain.ValidationError keyed by JSON field name.
type RequestValidator struct {
	v *validator.Validate
}

// NewRequestValidator registers the notice_date tag (YYYY-MM-DD).
func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notice_date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(domain.DateLayout, fl.Field().String())
		return err == nil
	})
	return &RequestValidator{v: v}
}

// Validate checks req against its struct tags.
func (rv *RequestValidator) Validate(req any) error {
	err := rv.v.Struct(req)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = fieldError(fe)
	}
	return &domain.ValidationError{Fields: fields}
}

func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "notice_date":
		return field + " must be YYYY-MM-DD"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
