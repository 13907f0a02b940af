package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/rocketscienceinc/mindgames-backend/internal/rps"
)

const tagMove = "rps_move"

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	if err := RegisterCustom(validate); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}

// RegisterCustom - adds the game specific tags to v, so gin binding can share them.
func RegisterCustom(v *validator.Validate) error {
	// rps_move accepts rock, paper or scissors in any case
	if err := v.RegisterValidation(tagMove, func(fl validator.FieldLevel) bool {
		_, err := rps.ParseMove(fl.Field().String())
		return err == nil
	}); err != nil {
		return fmt.Errorf("failed to register %s: %w", tagMove, err)
	}

	return nil
}
