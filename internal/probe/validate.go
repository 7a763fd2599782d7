package probe

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/conn-castle/lvenv/internal/messages"
)

var recordValidator = sync.OnceValues(newRecordValidator)

func newRecordValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	// abspath: the path must already be absolute and clean, as realpath produces.
	if err := v.RegisterValidation("abspath", validateAbsPath); err != nil {
		return nil, fmt.Errorf(messages.ProbeRegisterValidatorFmt, "abspath", err)
	}
	return v, nil
}

func validateAbsPath(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	return filepath.IsAbs(path) && filepath.Clean(path) == path
}

// validateRecord checks the decoded record with struct tags and reports
// every failing field in one error.
func validateRecord(rec record) error {
	v, err := recordValidator()
	if err != nil {
		return err
	}
	if err := v.Struct(rec); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		msgs = append(msgs, formatFieldError(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	if fe.Field() == "version" && fe.Tag() == "len" {
		return fmt.Sprintf(messages.ProbeVersionLengthFmt, reflect.ValueOf(fe.Value()).Len())
	}
	return fmt.Sprintf(messages.ProbeFieldInvalidFmt, fe.Field(), fe.Tag())
}
