package routes

import (
	"github.com/JFontaineGit/jif-tube-sub000/internal/api/handlers"
	middlewares "github.com/JFontaineGit/jif-tube-sub000/internal/middleware"
	"github.com/JFontaineGit/jif-tube-sub000/internal/search"
	"github.com/JFontaineGit/jif-tube-sub000/internal/storage"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter(engine *search.Engine, store storage.Store) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestTiming())

	searchHandler := handlers.NewSearchHandler(engine)
	historyHandler := handlers.NewHistoryHandler(engine.History())
	healthHandler := handlers.NewHealthHandler(store)
	versionHandler := handlers.NewVersionHandler()

	api := r.Group("/api/v1")
	{
		api.GET("/search", searchHandler.Search)
		api.GET("/history", historyHandler.List)
		api.DELETE("/history", historyHandler.Clear)
	}

	r.GET("/health", healthHandler.Health)
	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)
	r.GET("/version", versionHandler.Get)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
