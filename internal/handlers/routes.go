package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the word API on router. owner resolves the caller
// identity for the per-owner routes.
func RegisterRoutes(router gin.IRouter, owner gin.HandlerFunc, words *WordHandler, health *HealthHandler) {
	router.GET("/health", health.Health)

	api := router.Group("/", owner)
	{
		api.POST("/post-word", words.PostWord)
		api.GET("/get-word/:date", words.GetWord)
	}

	admin := router.Group("/admin")
	{
		admin.DELETE("/delete-all-words", words.DeleteAllWords)
	}
}
