package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cppla/yatube/cache"
	"github.com/cppla/yatube/forms"
	"github.com/cppla/yatube/middleware"
	"github.com/cppla/yatube/models"
	"github.com/cppla/yatube/repository"
	"github.com/cppla/yatube/utils"
)

// AuthController handles sign up, log in and log out.
type AuthController struct {
	store      *repository.Store
	secret     string
	sessionTTL time.Duration
	revoked    cache.Store
}

// NewAuthController creates a new AuthController instance.
func NewAuthController(store *repository.Store, secret string, sessionTTL time.Duration, revoked cache.Store) *AuthController {
	return &AuthController{store: store, secret: secret, sessionTTL: sessionTTL, revoked: revoked}
}

// Signup creates an account and logs it in.
func (a *AuthController) Signup(ctx *gin.Context) {
	if ctx.Request.Method != http.MethodPost {
		render(ctx, http.StatusOK, "users/signup.html", gin.H{"form": forms.SignupForm{}, "errors": forms.Errors{}})
		return
	}

	form, errs := forms.BindSignup(ctx)
	if errs.Valid() {
		user := models.User{Username: form.Username}
		if err := user.SetPassword(form.Password1); err != nil {
			serverError(ctx, err, "hash password failed")
			return
		}
		err := a.store.CreateUser(ctx.Request.Context(), &user)
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			errs.Add("username", "A user with that username already exists.")
		case err != nil:
			serverError(ctx, err, "create user failed")
			return
		default:
			if err := middleware.StartSession(ctx, a.secret, &user, a.sessionTTL); err != nil {
				serverError(ctx, err, "start session failed")
				return
			}
			utils.Sugar.Infow("user signed up", "user_id", user.ID, "username", user.Username)
			utils.Redirect(ctx, "/")
			return
		}
	}

	form.Password1, form.Password2 = "", ""
	render(ctx, http.StatusOK, "users/signup.html", gin.H{"form": form, "errors": errs})
}

// Login verifies the credentials and starts a session, then follows a local next path.
func (a *AuthController) Login(ctx *gin.Context) {
	if ctx.Request.Method != http.MethodPost {
		render(ctx, http.StatusOK, "users/login.html", gin.H{
			"form":   forms.LoginForm{},
			"errors": forms.Errors{},
			"next":   utils.SafeNext(ctx.Query("next"), ""),
		})
		return
	}

	form, errs := forms.BindLogin(ctx)
	if errs.Valid() {
		user, err := a.store.UserByUsername(ctx.Request.Context(), form.Username)
		switch {
		case err != nil && !errors.Is(err, repository.ErrNotFound):
			serverError(ctx, err, "load user failed")
			return
		case err != nil || !user.CheckPassword(form.Password):
			errs.Add("__all__", "Please enter a correct username and password. Note that both fields may be case-sensitive.")
		default:
			if err := middleware.StartSession(ctx, a.secret, user, a.sessionTTL); err != nil {
				serverError(ctx, err, "start session failed")
				return
			}
			utils.Redirect(ctx, utils.SafeNext(form.Next, "/"))
			return
		}
	}

	form.Password = ""
	render(ctx, http.StatusOK, "users/login.html", gin.H{
		"form":   form,
		"errors": errs,
		"next":   utils.SafeNext(form.Next, ""),
	})
}

// Logout revokes the session token and clears the cookie.
func (a *AuthController) Logout(ctx *gin.Context) {
	middleware.EndSession(ctx, a.secret, a.revoked)
	utils.Redirect(ctx, "/")
}
