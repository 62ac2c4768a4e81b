package dto

import (
	"fmt"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("yyyymm", validateMonth)
}

func validateMonth(fl validator.FieldLevel) bool {
	_, err := domain.ParseMonth(fl.Field().String())
	return err == nil
}
