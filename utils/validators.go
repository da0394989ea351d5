package utils

import (
	"carediary/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// InitValidator registers the custom rules on gin's binding engine
func InitValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterCustomValidators(v)
	}
}

func RegisterCustomValidators(v *validator.Validate) {
	v.RegisterValidation("datekey", ValidateDateKeyRule)
}

func ValidateDateKeyRule(fl validator.FieldLevel) bool {
	return model.IsValidDateKey(fl.Field().String())
}
