package middleware

import (
	"net/http"

	"inkwell/internal/models"
	"inkwell/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"

// LoadUser resolves the session's user_id against the credential store and
// stashes the user on the context. Anything that fails to resolve — no
// session, stale id, deleted account — leaves the request anonymous; it is
// never an error.
func LoadUser(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")

		if id, ok := userID.(uint); ok {
			if user, err := users.FindByID(id); err == nil {
				c.Set(CheckUserKey, user)
			}
		}
		c.Next()
	}
}

// CurrentUser returns the identity LoadUser resolved, or nil for anonymous.
func CurrentUser(c *gin.Context) *models.User {
	if u, exists := c.Get(CheckUserKey); exists {
		return u.(*models.User)
	}
	return nil
}

// AuthRequired ensures a user is logged in, re-checked fresh on every
// request. Anonymous visitors get a flash notice and a redirect to /login.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			session := sessions.Default(c)
			session.AddFlash("You must be logged in to view this page.")
			session.Save()
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminRequired allows only the admin role through; everyone else gets an
// explicit unauthorized page, not a redirect.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin() {
			c.HTML(http.StatusForbidden, "error.html", gin.H{
				"Error":       "You are not authorized to view this page.",
				"CurrentUser": user,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
