// Package forms binds submitted HTML forms and returns cleaned data with per-field errors.
package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Errors maps a form field to its messages. An empty Errors means the form is valid.
type Errors map[string][]string

// Add appends msg to field.
func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Has reports whether field has any message.
func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

// First returns the first message of field or "".
func (e Errors) First(field string) string {
	if msgs := e[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Valid reports whether no field has an error.
func (e Errors) Valid() bool {
	return len(e) == 0
}

var validate = validator.New()

func init() {
	// report form field names rather than Go field names
	validate.RegisterTagNameFunc(formTagName)
}

// clean trims user supplied text. Markup is kept as typed and sanitized when rendered.
func clean(s string) string {
	return strings.TrimSpace(s)
}

// bind reads ctx's form into dst; a missing body is not an error so an empty POST still validates.
func bind(ctx *gin.Context, dst interface{}) error {
	if ctx.Request.Method != "POST" {
		return nil
	}
	if err := ctx.ShouldBind(dst); err != nil {
		return fmt.Errorf("bind form: %w", err)
	}
	return nil
}

// collect converts validator errors into field messages.
func collect(err error, out Errors) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		if err != nil {
			out.Add("__all__", err.Error())
		}
		return
	}
	for _, fe := range verrs {
		out.Add(fe.Field(), message(fe))
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this value has at least %s characters.", fe.Param())
	case "eqfield":
		return "The two password fields didn't match."
	case "bcryptlen":
		return fmt.Sprintf("Ensure this value has at most %d bytes.", MaxPasswordBytes)
	case "username":
		return "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	default:
		return "Enter a valid value."
	}
}
