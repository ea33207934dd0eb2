package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cppla/yatube/events"
	"github.com/cppla/yatube/middleware"
	"github.com/cppla/yatube/models"
	"github.com/cppla/yatube/pagination"
	"github.com/cppla/yatube/repository"
	"github.com/cppla/yatube/utils"
)

// FollowController manages subscriptions between users and authors.
type FollowController struct {
	store  *repository.Store
	events events.Publisher
}

// NewFollowController creates a new FollowController instance.
func NewFollowController(store *repository.Store, pub events.Publisher) *FollowController {
	return &FollowController{store: store, events: pub}
}

// FollowIndex lists posts of the authors the caller follows.
func (f *FollowController) FollowIndex(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	page, err := pagination.Query[models.Post](f.store.FollowedPosts(ctx.Request.Context(), user.ID), ctx.Query("page"), pagination.PerPage)
	if err != nil {
		serverError(ctx, err, "list followed posts failed")
		return
	}
	render(ctx, http.StatusOK, "posts/follow.html", gin.H{"page": page})
}

// ProfileFollow subscribes the caller to an author. Repeated follows and self follows change nothing.
func (f *FollowController) ProfileFollow(ctx *gin.Context) {
	author, err := f.store.UserByUsername(ctx.Request.Context(), ctx.Param("username"))
	if err != nil {
		fail(ctx, err, "load author failed")
		return
	}
	user := middleware.CurrentUser(ctx)
	if author.ID != user.ID {
		created, err := f.store.Follow(ctx.Request.Context(), user.ID, author.ID)
		if err != nil {
			serverError(ctx, err, "follow failed")
			return
		}
		if created {
			publish(ctx, f.events, events.Event{Subject: events.FollowCreated, ActorID: user.ID, AuthorID: author.ID})
		}
	}
	utils.Redirect(ctx, profilePath(author.Username))
}

// ProfileUnfollow removes the subscription; 404 when there is none.
func (f *FollowController) ProfileUnfollow(ctx *gin.Context) {
	author, err := f.store.UserByUsername(ctx.Request.Context(), ctx.Param("username"))
	if err != nil {
		fail(ctx, err, "load author failed")
		return
	}
	user := middleware.CurrentUser(ctx)
	if err := f.store.Unfollow(ctx.Request.Context(), user.ID, author.ID); err != nil {
		fail(ctx, err, "unfollow failed")
		return
	}
	publish(ctx, f.events, events.Event{Subject: events.FollowDeleted, ActorID: user.ID, AuthorID: author.ID})
	utils.Redirect(ctx, profilePath(author.Username))
}
