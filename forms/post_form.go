package forms

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cppla/yatube/models"
	"github.com/cppla/yatube/repository"
)

// MaxImageSize bounds an uploaded post image.
const MaxImageSize = 5 << 20

// PostForm is the create/edit form of a post.
type PostForm struct {
	Text        string `form:"text" validate:"required"`
	Group       string `form:"group"`
	Title       string `form:"title" validate:"max=255"`
	Description string `form:"description"`

	// Cleaned values, set by BindPost
	GroupID *uint                 `form:"-"`
	Image   *multipart.FileHeader `form:"-"`
}

// GroupLookup resolves a group id; repository.Store satisfies it.
type GroupLookup interface {
	GroupByID(ctx context.Context, id uint) (*models.Group, error)
}

// PostFormFrom pre-populates the form from an existing post.
func PostFormFrom(p *models.Post) PostForm {
	f := PostForm{Text: p.Text, Title: p.Title, Description: p.Description, GroupID: p.GroupID}
	if p.GroupID != nil {
		f.Group = strconv.FormatUint(uint64(*p.GroupID), 10)
	}
	return f
}

// BindPost binds and validates the submitted post form.
func BindPost(ctx *gin.Context, groups GroupLookup) (PostForm, Errors) {
	var f PostForm
	errs := Errors{}
	if err := bind(ctx, &f); err != nil {
		errs.Add("__all__", "The submitted form could not be read.")
		return f, errs
	}
	f.Text = clean(f.Text)
	f.Title = clean(f.Title)
	f.Description = clean(f.Description)
	f.Group = strings.TrimSpace(f.Group)

	collect(validate.Struct(&f), errs)

	if f.Group != "" {
		id, err := strconv.ParseUint(f.Group, 10, 64)
		if err != nil {
			errs.Add("group", "Select a valid choice. That choice is not one of the available choices.")
		} else if g, err := groups.GroupByID(ctx.Request.Context(), uint(id)); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				errs.Add("group", "Select a valid choice. That choice is not one of the available choices.")
			} else {
				errs.Add("__all__", "Groups are unavailable, try again later.")
			}
		} else {
			f.GroupID = &g.ID
		}
	}

	if fh, err := ctx.FormFile("image"); err == nil {
		if msg := checkImage(fh); msg != "" {
			errs.Add("image", msg)
		} else {
			f.Image = fh
		}
	} else if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		errs.Add("image", "The submitted file could not be read.")
	}
	return f, errs
}

func checkImage(fh *multipart.FileHeader) string {
	if fh.Size > MaxImageSize {
		return "The image is too large."
	}
	file, err := fh.Open()
	if err != nil {
		return "The submitted file could not be read."
	}
	defer file.Close()

	head := make([]byte, 512)
	n, _ := file.Read(head)
	if !strings.HasPrefix(http.DetectContentType(head[:n]), "image/") {
		return "Upload a valid image. The file you uploaded was either not an image or a corrupted image."
	}
	return ""
}
