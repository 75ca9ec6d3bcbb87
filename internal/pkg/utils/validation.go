package utils

import (
	"halo-service/internal/pkg/bmi"
	"halo-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate         *validator.Validate
	phoneNumberRegex = regexp.MustCompile(constvars.RegexPhoneNumberGeneral)
	bloodTypeRegex   = regexp.MustCompile(constvars.RegexBloodType)
)

const passwordMinLength = 6

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("blood_type", validateBloodType)
	validate.RegisterValidation("language", validateLanguage)
	validate.RegisterValidation("height_unit", validateHeightUnit)
	validate.RegisterValidation("not_blank", validateNotBlank)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

func validatePassword(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) >= passwordMinLength
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return phoneNumberRegex.MatchString(fl.Field().String())
}

func validateBloodType(fl validator.FieldLevel) bool {
	return bloodTypeRegex.MatchString(strings.ToUpper(fl.Field().String()))
}

func validateLanguage(fl validator.FieldLevel) bool {
	return IsSupportedLanguage(fl.Field().String())
}

func validateHeightUnit(fl validator.FieldLevel) bool {
	return bmi.IsValidUnit(fl.Field().String())
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
