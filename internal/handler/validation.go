package handler

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/mcpmarket/marketplace-manager/pkg/model"
)

func serverCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, category := range model.ServerCategories {
		if category == value {
			return true
		}
	}
	return false
}

// RegisterValidation registers the custom binding validations used by request types.
func RegisterValidation() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return v.RegisterValidation("serverCategory", serverCategory)
	}
	return fmt.Errorf("error getting validation engine")
}
