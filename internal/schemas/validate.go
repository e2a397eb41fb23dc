package schemas

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid wraps every structural validation failure so callers can
// distinguish bad input from store errors.
var ErrInvalid = errors.New("validation failed")

var validate = validator.New()

// Validate checks a schema struct against its declared rules.
func Validate(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
