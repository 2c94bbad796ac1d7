package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the struct tags on an entity. It is applied on create
// paths only; updates merge over records that were valid at creation.
func Validate(entity any) error {
	if err := validate.Struct(entity); err != nil {
		return fmt.Errorf("invalid entity: %w", err)
	}
	return nil
}
