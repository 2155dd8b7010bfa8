package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
	"github.com/go-playground/validator/v10"
)

func IsLuna(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// lunaField backs the "luhn" struct tag. Empty values are left to "required".
func lunaField(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || IsLuna(s)
}
