package rest

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/boards-backend/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("label_color", func(fl validator.FieldLevel) bool {
		return domain.LabelColor(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("board_role", func(fl validator.FieldLevel) bool {
		return domain.BoardRole(fl.Field().String()).IsValid()
	})
	return v
}

// validateStruct runs the validate tags of a request DTO and converts the
// failures into a domain.ValidationError keyed by JSON field name.
func validateStruct(dst any) error {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validate request: %w", err)
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{Field: fe.Field(), Message: describe(fe)})
	}
	return domain.NewValidationErrors(fields)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "uuid", "uuid4":
		return "must be a UUID"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "dive":
		return "invalid element"
	case "label_color":
		return "unknown color"
	case "board_role":
		return "unknown role"
	default:
		return "invalid (" + fe.Tag() + ")"
	}
}
