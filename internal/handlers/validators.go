package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/gstbill/gst_billing_app/internal/utils"
)

// RegisterCustomValidators installs the domain validation tags on gin's
// binding validator. Must run before the first request is bound.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("gstin", func(fl validator.FieldLevel) bool {
		return utils.IsValidGSTIN(fl.Field().String())
	})
}
