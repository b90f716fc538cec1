package util

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"HRMS-Lite/pkg/apperror"
)

var Validate *validator.Validate

// emailPattern is the address rule the admin UI has always enforced.
var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

func init() {
	Validate = validator.New()

	// report json names so messages line up with request bodies
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	Validate.RegisterValidation("hremail", validateEmail)
}

func validateEmail(fl validator.FieldLevel) bool {
	return emailPattern.MatchString(fl.Field().String())
}

// ValidateStruct returns nil when s passes, otherwise a *apperror.ValidationError
// carrying one entry per failed field.
func ValidateStruct(s interface{}) error {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.Validation("", "invalid", err.Error())
	}

	out := &apperror.ValidationError{}
	for _, fe := range verrs {
		element := apperror.FieldError{Field: fe.Field(), Tag: fe.Tag()}

		switch fe.Tag() {
		case "required":
			element.Message = fmt.Sprintf("%s is required", fe.Field())
		case "min":
			element.Message = fmt.Sprintf("%s must be at least %s chars", fe.Field(), fe.Param())
		case "hremail":
			element.Message = "Please add a valid email"
		case "oneof":
			element.Message = fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
		default:
			element.Message = fmt.Sprintf("%s failed validation for tag '%s'", fe.Field(), fe.Tag())
		}
		out.Fields = append(out.Fields, element)
	}
	return out
}
