package forms

import "github.com/gin-gonic/gin"

// CommentForm carries a comment body. Text is optional in the form itself;
// handlers persist only non-empty comments.
type CommentForm struct {
	Text string `form:"text"`
}

// BindComment binds the comment form; the comment is only worth saving when ok is true.
func BindComment(ctx *gin.Context) (f CommentForm, ok bool) {
	if err := bind(ctx, &f); err != nil {
		return f, false
	}
	f.Text = clean(f.Text)
	return f, f.Text != ""
}
