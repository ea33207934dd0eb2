package forms

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

func formTagName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// MaxPasswordBytes is the longest password bcrypt can hash.
const MaxPasswordBytes = 72

func init() {
	_ = validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("@.+-_", r) {
				continue
			}
			return false
		}
		return true
	})
	_ = validate.RegisterValidation("bcryptlen", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= MaxPasswordBytes
	})
}
