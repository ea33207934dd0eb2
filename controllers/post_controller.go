package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cppla/yatube/events"
	"github.com/cppla/yatube/forms"
	"github.com/cppla/yatube/middleware"
	"github.com/cppla/yatube/models"
	"github.com/cppla/yatube/pagination"
	"github.com/cppla/yatube/repository"
	"github.com/cppla/yatube/storage"
	"github.com/cppla/yatube/utils"
)

// PostController serves the post listings, detail, create/edit and comment pages.
type PostController struct {
	store  *repository.Store
	media  storage.Store
	events events.Publisher
}

// NewPostController creates a new PostController instance.
func NewPostController(store *repository.Store, media storage.Store, pub events.Publisher) *PostController {
	return &PostController{store: store, media: media, events: pub}
}

// Index lists every post, newest first.
func (p *PostController) Index(ctx *gin.Context) {
	page, err := pagination.Query[models.Post](p.store.AllPosts(ctx.Request.Context()), ctx.Query("page"), pagination.PerPage)
	if err != nil {
		serverError(ctx, err, "list posts failed")
		return
	}
	render(ctx, http.StatusOK, "posts/index.html", gin.H{"page": page})
}

// GroupPosts lists the posts of one group.
func (p *PostController) GroupPosts(ctx *gin.Context) {
	group, query, err := p.store.GroupPosts(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		fail(ctx, err, "load group failed")
		return
	}
	page, err := pagination.Query[models.Post](query, ctx.Query("page"), pagination.PerPage)
	if err != nil {
		serverError(ctx, err, "list group posts failed")
		return
	}
	render(ctx, http.StatusOK, "posts/group_list.html", gin.H{"group": group, "page": page})
}

// Profile lists the posts of one author together with the follow state of the caller.
func (p *PostController) Profile(ctx *gin.Context) {
	author, query, count, err := p.store.AuthorPosts(ctx.Request.Context(), ctx.Param("username"))
	if err != nil {
		fail(ctx, err, "load profile failed")
		return
	}
	page, err := pagination.Query[models.Post](query, ctx.Query("page"), pagination.PerPage)
	if err != nil {
		serverError(ctx, err, "list author posts failed")
		return
	}
	user := middleware.CurrentUser(ctx)
	following, err := p.store.IsFollowing(ctx.Request.Context(), user, author.ID)
	if err != nil {
		serverError(ctx, err, "load follow state failed")
		return
	}
	render(ctx, http.StatusOK, "posts/profile.html", gin.H{
		"author":             author,
		"page":               page,
		"posts_number":       count,
		"following":          following,
		"user_is_not_author": user == nil || user.ID != author.ID,
	})
}

// PostDetail shows one post with its comments.
func (p *PostController) PostDetail(ctx *gin.Context) {
	id, ok := paramID(ctx, "post_id")
	if !ok {
		return
	}
	post, err := p.store.GetPost(ctx.Request.Context(), id)
	if err != nil {
		fail(ctx, err, "load post failed")
		return
	}
	comments, err := p.store.Comments(ctx.Request.Context(), post.ID)
	if err != nil {
		serverError(ctx, err, "list comments failed")
		return
	}
	count, err := p.store.CountPostsByAuthor(ctx.Request.Context(), post.AuthorID)
	if err != nil {
		serverError(ctx, err, "count author posts failed")
		return
	}
	user := middleware.CurrentUser(ctx)
	render(ctx, http.StatusOK, "posts/post_detail.html", gin.H{
		"post":         post,
		"headline":     post.Headline(),
		"comments":     comments,
		"form":         forms.CommentForm{},
		"posts_number": count,
		"is_author":    user != nil && user.ID == post.AuthorID,
	})
}

// PostCreate shows the empty post form and stores a valid submission.
func (p *PostController) PostCreate(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	if ctx.Request.Method != http.MethodPost {
		p.renderForm(ctx, forms.PostForm{}, forms.Errors{}, nil)
		return
	}

	form, errs := forms.BindPost(ctx, p.store)
	if !errs.Valid() {
		p.renderForm(ctx, form, errs, nil)
		return
	}

	post := models.Post{
		AuthorID:    user.ID,
		GroupID:     form.GroupID,
		Title:       form.Title,
		Text:        form.Text,
		Description: form.Description,
	}
	if form.Image != nil {
		ref, err := p.media.Save(ctx.Request.Context(), form.Image)
		if err != nil {
			serverError(ctx, err, "store image failed")
			return
		}
		post.Image = ref
	}
	if err := p.store.CreatePost(ctx.Request.Context(), &post); err != nil {
		p.discard(post.Image)
		serverError(ctx, err, "create post failed")
		return
	}

	utils.Sugar.Infow("post created", "post_id", post.ID, "author", user.Username)
	publish(ctx, p.events, events.Event{Subject: events.PostCreated, ActorID: user.ID, PostID: post.ID, AuthorID: user.ID})
	utils.Redirect(ctx, profilePath(user.Username))
}

// PostEdit lets the author change a post. Anybody else is sent back to the detail page untouched.
func (p *PostController) PostEdit(ctx *gin.Context) {
	id, ok := paramID(ctx, "post_id")
	if !ok {
		return
	}
	post, err := p.store.GetPost(ctx.Request.Context(), id)
	if err != nil {
		fail(ctx, err, "load post failed")
		return
	}
	user := middleware.CurrentUser(ctx)
	if user.ID != post.AuthorID {
		utils.Redirect(ctx, postPath(post.ID))
		return
	}

	if ctx.Request.Method != http.MethodPost {
		p.renderForm(ctx, forms.PostFormFrom(post), forms.Errors{}, post)
		return
	}

	form, errs := forms.BindPost(ctx, p.store)
	if !errs.Valid() {
		p.renderForm(ctx, form, errs, post)
		return
	}

	oldImage := post.Image
	post.Title = form.Title
	post.Text = form.Text
	post.Description = form.Description
	post.GroupID = form.GroupID
	if form.Image != nil {
		ref, err := p.media.Save(ctx.Request.Context(), form.Image)
		if err != nil {
			serverError(ctx, err, "store image failed")
			return
		}
		post.Image = ref
	}
	if err := p.store.UpdatePost(ctx.Request.Context(), post); err != nil {
		if post.Image != oldImage {
			p.discard(post.Image)
		}
		serverError(ctx, err, "update post failed")
		return
	}
	if post.Image != oldImage {
		p.discard(oldImage)
	}

	publish(ctx, p.events, events.Event{Subject: events.PostUpdated, ActorID: user.ID, PostID: post.ID, AuthorID: post.AuthorID})
	utils.Redirect(ctx, postPath(post.ID))
}

// AddComment stores a non-empty comment; an empty one is dropped silently.
func (p *PostController) AddComment(ctx *gin.Context) {
	id, ok := paramID(ctx, "post_id")
	if !ok {
		return
	}
	post, err := p.store.GetPost(ctx.Request.Context(), id)
	if err != nil {
		fail(ctx, err, "load post failed")
		return
	}

	user := middleware.CurrentUser(ctx)
	if form, valid := forms.BindComment(ctx); valid {
		comment := models.Comment{PostID: post.ID, AuthorID: user.ID, Text: form.Text}
		if err := p.store.CreateComment(ctx.Request.Context(), &comment); err != nil {
			serverError(ctx, err, "create comment failed")
			return
		}
		publish(ctx, p.events, events.Event{
			Subject: events.CommentCreated, ActorID: user.ID, PostID: post.ID, CommentID: comment.ID, AuthorID: post.AuthorID,
		})
	}
	utils.Redirect(ctx, postPath(post.ID))
}

func (p *PostController) renderForm(ctx *gin.Context, form forms.PostForm, errs forms.Errors, post *models.Post) {
	groups, err := p.store.Groups(ctx.Request.Context())
	if err != nil {
		serverError(ctx, err, "list groups failed")
		return
	}
	render(ctx, http.StatusOK, "posts/create_post.html", gin.H{
		"form":    form,
		"errors":  errs,
		"groups":  groups,
		"post":    post,
		"is_edit": post != nil,
	})
}

func (p *PostController) discard(ref string) {
	if ref == "" {
		return
	}
	if err := p.media.Delete(ref); err != nil {
		utils.Sugar.Warnw("delete image failed", "ref", ref, "error", err)
	}
}
