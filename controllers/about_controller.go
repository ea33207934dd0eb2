package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cppla/yatube/utils"
)

// AboutController serves the static about pages.
type AboutController struct{}

// NewAboutController creates a new AboutController instance.
func NewAboutController() *AboutController { return &AboutController{} }

// Author renders the author page.
func (AboutController) Author(ctx *gin.Context) {
	render(ctx, http.StatusOK, "about/author.html", nil)
}

// Contacts renders the contacts page.
func (AboutController) Contacts(ctx *gin.Context) {
	render(ctx, http.StatusOK, "about/contacts.html", nil)
}

// Health reports liveness.
func Health(ctx *gin.Context) {
	utils.Success(ctx, gin.H{"status": "ok"})
}
