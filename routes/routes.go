package routes

import (
	"os"

	"github.com/Govind-619/Shelfnotes/controllers"
	"github.com/Govind-619/Shelfnotes/utils"
	"github.com/Govind-619/Shelfnotes/views"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes.
// staticDir is served under /static when it exists.
func SetupRouter(ctl *controllers.Controller, staticDir string) (*gin.Engine, error) {
	router := gin.New()

	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	if err := views.Load(router); err != nil {
		return nil, err
	}

	if staticDir != "" {
		if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
			router.Static("/static", staticDir)
		}
	}

	router.GET("/healthz", ctl.Health)

	initBookRoutes(router, ctl)
	initNoteRoutes(router, ctl)

	return router, nil
}

// initBookRoutes registers the book pages. Deletes are plain GET links.
func initBookRoutes(router *gin.Engine, ctl *controllers.Controller) {
	router.GET("/", ctl.ListBooks)

	books := router.Group("/books")
	{
		books.GET("/add", ctl.ShowAddBook)
		books.POST("/add", ctl.CreateBook)
		books.GET("/edit/:id", ctl.ShowEditBook)
		books.POST("/edit/:id", ctl.UpdateBook)
		books.GET("/delete/:id", ctl.DeleteBook)
	}
}

func initNoteRoutes(router *gin.Engine, ctl *controllers.Controller) {
	notes := router.Group("/notes")
	{
		notes.GET("/:id", ctl.ListNotes)
		notes.POST("/add/:id", ctl.CreateNote)
		notes.POST("/update/:noteId", ctl.AppendNote)
		notes.GET("/delete/:bookId/:noteId", ctl.DeleteNote)
	}
}
