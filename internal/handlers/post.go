package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/store"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
)

const indexCacheKey = "posts:index"
const indexCacheTTL = time.Minute

type PostHandler struct {
	posts *store.PostStore
	cache *utils.Cache
}

func NewPostHandler(posts *store.PostStore, cache *utils.Cache) *PostHandler {
	return &PostHandler{posts: posts, cache: cache}
}

// Index lists every post, newest data served through a short-lived cache.
func (h *PostHandler) Index(c *gin.Context) {
	if cached := h.cache.Get(indexCacheKey); cached != nil {
		if posts, ok := cached.([]models.Post); ok {
			Render(c, http.StatusOK, "index.html", gin.H{"Posts": posts})
			return
		}
	}

	posts, err := h.posts.List()
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load posts.")
		return
	}
	h.cache.Set(indexCacheKey, posts, indexCacheTTL)

	Render(c, http.StatusOK, "index.html", gin.H{"Posts": posts})
}

// Show renders one post with its own comments only.
func (h *PostHandler) Show(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	post, err := h.posts.Get(id)
	if err != nil {
		RenderError(c, http.StatusNotFound, "Post not found.")
		return
	}

	comments, err := h.posts.CommentsForPost(post.ID)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load comments.")
		return
	}

	Render(c, http.StatusOK, "post/show.html", gin.H{
		"Post":     post,
		"BodyHTML": utils.RenderMarkdown(post.Body),
		"Comments": comments,
	})
}

// CreateComment is reached only through AuthRequired.
func (h *PostHandler) CreateComment(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	user := middleware.CurrentUser(c)
	text := strings.TrimSpace(c.PostForm("comment"))

	if text == "" {
		Flash(c, "Comment cannot be empty.")
		c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", id))
		return
	}

	var authorID uint
	if user != nil {
		authorID = user.ID
	}

	if _, err := h.posts.CreateComment(text, authorID, id); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			RenderError(c, http.StatusNotFound, "Post not found.")
		case errors.Is(err, store.ErrUnauthenticated):
			Flash(c, "You must be logged in to comment.")
			c.Redirect(http.StatusFound, "/login")
		default:
			RenderError(c, http.StatusInternalServerError, "Could not save your comment.")
		}
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", id))
}

func (h *PostHandler) ShowCreate(c *gin.Context) {
	Render(c, http.StatusOK, "post/make.html", gin.H{"Fields": store.PostFields{}})
}

func (h *PostHandler) Create(c *gin.Context) {
	fields, errMsg := postFormFields(c)
	if errMsg != "" {
		Render(c, http.StatusBadRequest, "post/make.html", gin.H{"Error": errMsg, "Fields": fields})
		return
	}

	user := middleware.CurrentUser(c)
	if _, err := h.posts.Create(fields, user.ID); err != nil {
		if errors.Is(err, store.ErrDuplicateTitle) {
			Render(c, http.StatusConflict, "post/make.html", gin.H{
				"Error":  "A post with that title already exists.",
				"Fields": fields,
			})
			return
		}
		RenderError(c, http.StatusInternalServerError, "Could not save the post.")
		return
	}

	h.cache.Delete(indexCacheKey)
	c.Redirect(http.StatusFound, "/")
}

func (h *PostHandler) ShowEdit(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	post, err := h.posts.Get(id)
	if err != nil {
		RenderError(c, http.StatusNotFound, "Post not found.")
		return
	}

	Render(c, http.StatusOK, "post/make.html", gin.H{
		"IsEdit": true,
		"Post":   post,
		"Fields": store.PostFields{
			Title:    post.Title,
			Subtitle: post.Subtitle,
			Body:     post.Body,
			ImgURL:   post.ImgURL,
		},
	})
}

func (h *PostHandler) Update(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	fields, errMsg := postFormFields(c)
	if errMsg != "" {
		Render(c, http.StatusBadRequest, "post/make.html", gin.H{
			"Error": errMsg, "Fields": fields,
			"IsEdit": true, "Post": &models.Post{ID: id},
		})
		return
	}

	user := middleware.CurrentUser(c)
	post, err := h.posts.Update(id, fields, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			RenderError(c, http.StatusNotFound, "Post not found.")
		case errors.Is(err, store.ErrDuplicateTitle):
			Render(c, http.StatusConflict, "post/make.html", gin.H{
				"Error":  "A post with that title already exists.",
				"Fields": fields,
				"IsEdit": true,
				"Post":   &models.Post{ID: id},
			})
		default:
			RenderError(c, http.StatusInternalServerError, "Could not save the post.")
		}
		return
	}

	h.cache.Delete(indexCacheKey)
	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", post.ID))
}

func (h *PostHandler) Delete(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	if err := h.posts.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RenderError(c, http.StatusNotFound, "Post not found.")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Could not delete the post.")
		return
	}

	h.cache.Delete(indexCacheKey)
	c.Redirect(http.StatusFound, "/")
}

func postFormFields(c *gin.Context) (store.PostFields, string) {
	fields := store.PostFields{
		Title:    strings.TrimSpace(c.PostForm("title")),
		Subtitle: strings.TrimSpace(c.PostForm("subtitle")),
		Body:     c.PostForm("body"),
		ImgURL:   strings.TrimSpace(c.PostForm("img_url")),
	}
	if fields.Title == "" || strings.TrimSpace(fields.Body) == "" {
		return fields, "Title and body are required."
	}
	return fields, ""
}
