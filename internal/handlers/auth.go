package handlers

import (
	"errors"
	"net/http"
	"strings"

	"inkwell/internal/store"
	"inkwell/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users *store.UserStore
}

func NewAuthHandler(users *store.UserStore) *AuthHandler {
	return &AuthHandler{users: users}
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	Render(c, http.StatusOK, "auth/register.html", nil)
}

func (h *AuthHandler) Register(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	if name == "" || email == "" || password == "" {
		Render(c, http.StatusBadRequest, "auth/register.html", gin.H{
			"Error": "All fields are required.",
			"Name":  name, "Email": email,
		})
		return
	}
	if !strings.Contains(email, "@") {
		Render(c, http.StatusBadRequest, "auth/register.html", gin.H{
			"Error": "That doesn't look like an email address.",
			"Name":  name, "Email": email,
		})
		return
	}
	if len(password) < 6 {
		Render(c, http.StatusBadRequest, "auth/register.html", gin.H{
			"Error": "Password must be at least 6 characters.",
			"Name":  name, "Email": email,
		})
		return
	}

	// Pre-check kept for the friendly redirect; the unique constraint in
	// the store is what actually guarantees no duplicate slips through.
	if _, err := h.users.FindByEmail(email); err == nil {
		Flash(c, "Email already registered. Log in instead.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	user, err := h.users.Create(name, email, hash)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateIdentity) {
			Render(c, http.StatusConflict, "auth/register.html", gin.H{
				"Error": "That name or email is already registered.",
				"Name":  name, "Email": email,
			})
			return
		}
		RenderError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	// One message for both unknown email and wrong password so the form
	// can't be used to probe which addresses have accounts.
	user, err := h.users.FindByEmail(email)
	if err != nil || !utils.CheckPasswordHash(password, user.Password) {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{
			"Error": "Invalid email or password.",
			"Email": email,
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

// Logout clears the session. Safe to hit with no active session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/")
}
