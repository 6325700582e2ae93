package analyticsmodule

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/mantonx/streambase/internal/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func checkEventInsert(req *EventInsert) []apperrors.FieldError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []apperrors.FieldError{{Field: "", Rule: "invalid", Message: err.Error()}}
	}

	fields := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		message := fmt.Sprintf("failed rule %q", fe.Tag())
		switch fe.Tag() {
		case "required":
			message = "is required"
		case "oneof":
			message = fmt.Sprintf("must be one of: %s", fe.Param())
		}
		fields = append(fields, apperrors.FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: message,
		})
	}
	return fields
}
