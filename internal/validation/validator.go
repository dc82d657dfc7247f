package validation

import (
	"reflect"
	"strings"
	"sync"
	"unicode"

	"predial-consulta/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// Validate validates a struct against its validate tags
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("cuenta_predial", validateCuentaPredial)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// validateCuentaPredial checks a stored account key: already normalized,
// non-empty and free of control characters
func validateCuentaPredial(fl validator.FieldLevel) bool {
	key := fl.Field().String()
	if key == "" {
		return false
	}

	if key != models.NormalizeKey(key) {
		return false
	}

	for _, r := range key {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}
