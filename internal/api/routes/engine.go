package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yoockh/jobboard/internal/api/middleware"
)

// NewEngine builds the gin engine with recovery, request logging and CORS.
// An empty origin list allows every origin.
func NewEngine(l *logrus.Logger, allowOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))

	cfg := cors.DefaultConfig()
	if len(allowOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowOrigins
	}
	cfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", middleware.RequestIDHeader}
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	r.Use(cors.New(cfg))

	return r
}
