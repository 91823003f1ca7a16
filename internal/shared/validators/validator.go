package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

const (
	TagFuncFreq = "funcfreq"
	TagYesNo    = "yesno"
	TagBatchID  = "batchid"
)

// warmer frequencies offered by the dashboard: 10S, 1M, 5M, 15M, 30M, 1H, 2H, 3H
var funcFreqPattern = regexp.MustCompile(`^(10S|1M|5M|15M|30M|1H|2H|3H)$`)

// batch ids become file names, so no separators and no leading dot
var batchIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,127}$`)

// New creates a validator with the project's custom tags registered.
func New() *Validate {
	v := validator.New()
	_ = v.RegisterValidation(TagFuncFreq, func(fl validator.FieldLevel) bool {
		return funcFreqPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation(TagYesNo, func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "Yes" || s == "No"
	})
	_ = v.RegisterValidation(TagBatchID, func(fl validator.FieldLevel) bool {
		return batchIDPattern.MatchString(fl.Field().String())
	})
	return v
}
