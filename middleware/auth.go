package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cppla/yatube/cache"
	"github.com/cppla/yatube/models"
	"github.com/cppla/yatube/utils"
)

const (
	// SessionCookie holds the signed session token.
	SessionCookie = "yatube_session"
	// ContextUserKey stores the authenticated *models.User inside gin.Context.
	ContextUserKey = "current_user"

	revokedPrefix = "session:revoked:"
)

// UserLoader resolves the user named by a session; repository.Store satisfies it.
type UserLoader interface {
	UserByID(ctx context.Context, id uint) (*models.User, error)
}

// Authenticate attaches the session user to the context. Anonymous requests pass through untouched.
func Authenticate(secret string, users UserLoader, revoked cache.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(SessionCookie)
		if err != nil || token == "" {
			ctx.Next()
			return
		}
		claims, err := utils.ParseToken(secret, token)
		if err != nil {
			ctx.Next()
			return
		}
		if _, gone := revoked.Get(ctx.Request.Context(), revokedPrefix+claims.ID); gone {
			ctx.Next()
			return
		}
		user, err := users.UserByID(ctx.Request.Context(), claims.UserID)
		if err != nil {
			// deleted account or store failure: treat as anonymous
			utils.Sugar.Debugf("session user %d not loaded: %v", claims.UserID, err)
			ctx.Next()
			return
		}
		ctx.Set(ContextUserKey, user)
		ctx.Next()
	}
}

// LoginRequired redirects anonymous callers to loginPath with the requested path as next.
func LoginRequired(loginPath string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if CurrentUser(ctx) == nil {
			utils.Redirect(ctx, utils.LoginURL(loginPath, ctx.Request.URL.RequestURI()))
			return
		}
		ctx.Next()
	}
}

// CurrentUser returns the authenticated user or nil.
func CurrentUser(ctx *gin.Context) *models.User {
	v, ok := ctx.Get(ContextUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*models.User)
	return u
}

// StartSession issues a session token for user and sets the cookie.
func StartSession(ctx *gin.Context, secret string, user *models.User, ttl time.Duration) error {
	token, err := utils.GenerateToken(secret, user.ID, user.Username, ttl)
	if err != nil {
		return err
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(SessionCookie, token, int(ttl.Seconds()), "/", "", ctx.Request.TLS != nil, true)
	ctx.Set(ContextUserKey, user)
	return nil
}

// EndSession revokes the current token until it would have expired and clears the cookie.
func EndSession(ctx *gin.Context, secret string, revoked cache.Store) {
	if token, err := ctx.Cookie(SessionCookie); err == nil && token != "" {
		if claims, err := utils.ParseToken(secret, token); err == nil && claims.ExpiresAt != nil {
			if ttl := time.Until(claims.ExpiresAt.Time); ttl > 0 {
				revoked.Set(ctx.Request.Context(), revokedPrefix+claims.ID, []byte("1"), ttl)
			}
		}
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(SessionCookie, "", -1, "/", "", ctx.Request.TLS != nil, true)
	ctx.Set(ContextUserKey, nil)
}
