package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"bombe/internal/machine"
)

// recordValidate checks struct tags on File. Custom tags: rotor, reflector.
var recordValidate *validator.Validate

func init() {
	recordValidate = validator.New(validator.WithRequiredStructEnabled())
	for tag, fn := range map[string]validator.Func{
		"rotor":     validateRotor,
		"reflector": validateReflector,
	} {
		if err := recordValidate.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("config: register %q validation: %v", tag, err))
		}
	}
}

func validateRotor(fl validator.FieldLevel) bool {
	_, err := machine.LookupRotor(fl.Field().String())
	return err == nil
}

func validateReflector(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	for _, r := range machine.ReflectorNames() {
		if strings.EqualFold(r, name) {
			return true
		}
	}
	return false
}

// validateRecord runs the tag rules and flattens the failures into one error.
func validateRecord(f *File) error {
	err := recordValidate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "alpha", "uppercase":
		return fmt.Sprintf("%s must contain only letters A-Z (got %q)", field, fe.Value())
	case "rotor":
		return fmt.Sprintf("%s: unknown rotor %q (available: %s)", field, fe.Value(), strings.Join(machine.RotorNames(), ", "))
	case "reflector":
		return fmt.Sprintf("%s: unknown reflector %q (available: %s)", field, fe.Value(), strings.Join(machine.ReflectorNames(), ", "))
	case "min", "max", "len":
		return fmt.Sprintf("%s fails %s=%s (got %v)", field, fe.Tag(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s fails %s", field, fe.Tag())
	}
}
