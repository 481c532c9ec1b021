package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/jobboard/internal/api/handlers"
	"github.com/yoockh/jobboard/internal/api/middleware"
	"github.com/yoockh/jobboard/internal/auth"
)

type Deps struct {
	Account     *handlers.AccountHandler
	Job         *handlers.JobHandler
	Application *handlers.ApplicationHandler
	Tokens      auth.Tokens
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "welcome home"})
	})
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	r.POST("/signup", d.Account.Signup)
	r.POST("/auth/token", d.Account.Login)
	r.POST("/auth/logout", d.Account.Logout)

	// Protected routes (bearer)
	authed := r.Group("/")
	authed.Use(middleware.BearerAuth(d.Tokens))

	authed.GET("/jobs", d.Job.List)
	authed.POST("/jobs", d.Job.Post)

	authed.POST("/applications", d.Application.Apply)
	authed.GET("/applications", d.Application.ListApplications)
	authed.GET("/applicants", d.Application.ListApplicants)
}
