package utils

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// JSONResponse is the envelope of the few JSON endpoints (health).
type JSONResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Respond writes a JSON response with the given status code.
func Respond(ctx *gin.Context, status int, code int, message string, data interface{}) {
	ctx.JSON(status, JSONResponse{Code: code, Message: message, Data: data})
}

// Success returns a standard success response.
func Success(ctx *gin.Context, data interface{}) {
	Respond(ctx, http.StatusOK, 0, "success", data)
}

// Redirect sends a 302 to location.
func Redirect(ctx *gin.Context, location string) {
	ctx.Redirect(http.StatusFound, location)
	ctx.Abort()
}

// LoginURL is the login page carrying next as the return path. Slashes stay readable.
func LoginURL(loginPath, next string) string {
	return loginPath + "?next=" + strings.ReplaceAll(url.QueryEscape(next), "%2F", "/")
}

// SafeNext returns next when it is a path on this site, otherwise fallback.
func SafeNext(next, fallback string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return fallback
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return fallback
	}
	return next
}
