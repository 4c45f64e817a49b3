package util

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var binLocationRegex = regexp.MustCompile(`^[A-Za-z]+\d+$`)

func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("binlocation", binLocation)

	return validate
}

// binLocation accepts identifiers made of a letter prefix followed by digits, like A0001.
func binLocation(fl validator.FieldLevel) bool {
	return binLocationRegex.MatchString(fl.Field().String())
}
