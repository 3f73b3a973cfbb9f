package forms

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"workhub/utils"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries one message per invalid field, keyed by json name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid fields: %s", strings.Join(names, ", "))
}

// Validator checks forms against their struct tags.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for an empty tag name.
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		_, err := utils.ParseClock(fl.Field().String())
		return err == nil
	})
	v.RegisterStructValidation(bookingWindow, BookingForm{})
	return &Validator{validate: v}
}

// bookingWindow requires the booking to end after it starts.
func bookingWindow(sl validator.StructLevel) {
	f := sl.Current().Interface().(BookingForm)
	start, errStart := utils.ParseClock(f.StartTime)
	end, errEnd := utils.ParseClock(f.EndTime)
	if errStart != nil || errEnd != nil {
		return
	}
	if end <= start {
		sl.ReportError(f.EndTime, "endTime", "EndTime", "after_start", "")
	}
}

// Validate returns a *ValidationError when form has invalid fields.
func (v *Validator) Validate(form Form) error {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate %s form: %w", form.Kind(), err)
	}

	messages := form.Messages()
	out := &ValidationError{Fields: map[string]string{}}
	for _, fe := range fieldErrs {
		name := fe.Field()
		if _, seen := out.Fields[name]; seen {
			continue
		}
		msg, ok := messages[name]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", name)
		}
		out.Fields[name] = msg
	}
	return out
}
