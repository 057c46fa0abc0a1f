// Package forms binds url-encoded form posts onto validated input structs and
// keeps what the template needs to redisplay them.
package forms

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Form holds submitted values and field errors keyed by form field name.
type Form struct {
	Values map[string]string
	Errors map[string][]string
}

func newForm() Form {
	return Form{Values: map[string]string{}, Errors: map[string][]string{}}
}

func (f *Form) Value(field string) string {
	return f.Values[field]
}

func (f *Form) FieldErrors(field string) []string {
	return f.Errors[field]
}

func (f *Form) Valid() bool {
	return len(f.Errors) == 0
}

func (f *Form) AddError(field, msg string) {
	f.Errors[field] = append(f.Errors[field], msg)
}

// bind maps values onto dst (a pointer to a struct with form tags), trims
// every string field, records the trimmed values and validates. Only fields
// declared by dst are read; anything else in values is dropped.
func (f *Form) bind(values url.Values, dst interface{}) bool {
	if err := binding.MapFormWithTag(dst, values, "form"); err != nil {
		f.AddError("__all__", "The submitted form could not be read.")
		return false
	}

	rv := reflect.ValueOf(dst).Elem()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		name := strings.SplitN(rt.Field(i).Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" || rv.Field(i).Kind() != reflect.String {
			continue
		}
		trimmed := strings.TrimSpace(rv.Field(i).String())
		rv.Field(i).SetString(trimmed)
		f.Values[name] = trimmed
	}

	if err := validate.Struct(dst); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			f.AddError("__all__", err.Error())
			return false
		}
		for _, fe := range verrs {
			f.AddError(fe.Field(), message(fe))
		}
		return false
	}
	return true
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters (it has %d).", fe.Param(), len([]rune(fmt.Sprint(fe.Value()))))
	case "min":
		return fmt.Sprintf("Ensure this value has at least %s characters.", fe.Param())
	case "eqfield":
		return "The two password fields didn't match."
	case "excludes":
		return fmt.Sprintf("This value may not contain %q.", fe.Param())
	case "email":
		return "Enter a valid email address."
	case "oneof":
		return "Select a valid choice."
	case "datetime":
		return "Enter a valid date (YYYY-MM-DD)."
	default:
		return "Enter a valid value."
	}
}
