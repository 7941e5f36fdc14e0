package main

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	// simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "duration", time.Since(start))
	})

	// CORS Middleware
	origins := app.Config.GetCORSOrigins()
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if slices.Contains(origins, "*") {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else if slices.Contains(origins, origin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	api := r.Group("/api")
	{
		api.GET("/health", app.Handler.Health)

		api.POST("/upload_resume", app.Handler.UploadResume)
		api.GET("/get_resume_analysis/:user_id", app.Handler.GetResumeAnalysis)
		api.GET("/get_job_recommendations/:user_id", app.Handler.GetJobRecommendations)

		api.POST("/start_test", app.Handler.StartTest)
		api.POST("/submit_test", app.Handler.SubmitTest)
		api.GET("/get_test_history/:user_id", app.Handler.GetTestHistory)

		api.POST("/upgrade_me", app.Handler.UpgradeMe)
		api.GET("/profile_overview/:user_id", app.Handler.ProfileOverview)
	}

	return r
}
