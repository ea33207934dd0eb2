package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cppla/yatube/events"
	"github.com/cppla/yatube/middleware"
	"github.com/cppla/yatube/repository"
	"github.com/cppla/yatube/utils"
)

// render executes page inside the base layout. The current user is always available as .user.
func render(ctx *gin.Context, status int, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["user"] = middleware.CurrentUser(ctx)
	ctx.HTML(status, page, data)
}

// NotFound renders the 404 page.
func NotFound(ctx *gin.Context) {
	render(ctx, http.StatusNotFound, "core/404.html", gin.H{"path": ctx.Request.URL.Path})
	ctx.Abort()
}

func serverError(ctx *gin.Context, err error, msg string) {
	utils.Sugar.Errorw(msg, "error", err, "path", ctx.Request.URL.Path, "method", ctx.Request.Method)
	_ = ctx.Error(err)
	render(ctx, http.StatusInternalServerError, "core/500.html", nil)
	ctx.Abort()
}

// fail maps a store error to the 404 or 500 page.
func fail(ctx *gin.Context, err error, msg string) {
	if errors.Is(err, repository.ErrNotFound) {
		NotFound(ctx)
		return
	}
	serverError(ctx, err, msg)
}

// publish sends ev; a broken event bus never fails the request.
func publish(ctx *gin.Context, pub events.Publisher, ev events.Event) {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	if err := pub.Publish(ctx.Request.Context(), ev); err != nil {
		utils.Sugar.Warnw("publish event failed", "subject", ev.Subject, "error", err)
	}
}

// paramID parses a positive numeric path parameter; anything else is a 404.
func paramID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		NotFound(ctx)
		return 0, false
	}
	return uint(id), true
}

func postPath(id uint) string {
	return "/posts/" + strconv.FormatUint(uint64(id), 10) + "/"
}

func profilePath(username string) string {
	return "/profile/" + username + "/"
}
