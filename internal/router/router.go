package router

import (
	"inkwell/internal/handlers"
	"inkwell/internal/middleware"
	"inkwell/internal/store"
	"inkwell/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires every handler. All dependencies are built here from
// the injected DB handle; nothing is package-global.
func RegisterRoutes(r *gin.Engine, gdb *gorm.DB, cache *utils.Cache) {
	users := store.NewUserStore(gdb)
	posts := store.NewPostStore(gdb)

	authHandler := handlers.NewAuthHandler(users)
	postHandler := handlers.NewPostHandler(posts, cache)
	pageHandler := handlers.NewPageHandler()

	r.Use(middleware.LoadUser(users))

	// Public routes
	r.GET("/", postHandler.Index)
	r.GET("/post/:id", postHandler.Show)
	r.GET("/about", pageHandler.About)
	r.GET("/contact", pageHandler.Contact)

	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)

	// Login required
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/logout", authHandler.Logout)
		authorized.POST("/post/:id", postHandler.CreateComment)
	}

	// Admin only
	admin := r.Group("/")
	admin.Use(middleware.AdminRequired())
	{
		admin.GET("/new-post", postHandler.ShowCreate)
		admin.POST("/new-post", postHandler.Create)
		admin.GET("/edit-post/:id", postHandler.ShowEdit)
		admin.POST("/edit-post/:id", postHandler.Update)
		admin.GET("/delete/:id", postHandler.Delete)
	}
}
