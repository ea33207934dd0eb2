package forms

import "github.com/gin-gonic/gin"

// SignupForm registers a new account.
type SignupForm struct {
	Username  string `form:"username" validate:"required,min=2,max=150,username"`
	Password1 string `form:"password1" validate:"required,min=8,bcryptlen"`
	Password2 string `form:"password2" validate:"required,eqfield=Password1"`
}

// LoginForm authenticates an existing account.
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
	Next     string `form:"next"`
}

// BindSignup binds and validates the signup form.
func BindSignup(ctx *gin.Context) (SignupForm, Errors) {
	var f SignupForm
	errs := Errors{}
	if err := bind(ctx, &f); err != nil {
		errs.Add("__all__", "The submitted form could not be read.")
		return f, errs
	}
	f.Username = clean(f.Username)
	collect(validate.Struct(&f), errs)
	return f, errs
}

// BindLogin binds and validates the login form. Passwords are never trimmed.
func BindLogin(ctx *gin.Context) (LoginForm, Errors) {
	var f LoginForm
	errs := Errors{}
	if err := bind(ctx, &f); err != nil {
		errs.Add("__all__", "The submitted form could not be read.")
		return f, errs
	}
	f.Username = clean(f.Username)
	collect(validate.Struct(&f), errs)
	return f, errs
}
