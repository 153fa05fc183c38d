package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) About(c *gin.Context) {
	Render(c, http.StatusOK, "about.html", nil)
}

func (h *PageHandler) Contact(c *gin.Context) {
	Render(c, http.StatusOK, "contact.html", nil)
}
