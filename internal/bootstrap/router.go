package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/bokyaa/portfolio-backend/internal/api/http"
	apimiddleware "github.com/bokyaa/portfolio-backend/internal/api/http/middleware"
	"github.com/bokyaa/portfolio-backend/internal/auth"
	authhttp "github.com/bokyaa/portfolio-backend/internal/auth/http"
	authmiddleware "github.com/bokyaa/portfolio-backend/internal/auth/middleware"
	projecthttp "github.com/bokyaa/portfolio-backend/internal/projects/http"
	"github.com/bokyaa/portfolio-backend/internal/projects/service"
	"github.com/bokyaa/portfolio-backend/internal/projects/store"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string
	Backend     store.Backend
	Credentials auth.Authenticator
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.Config{
		AllowOrigins:     dep.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(dep.CORSOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	r.Use(cors.New(corsConfig))
	r.Use(apimiddleware.RequestID())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Backend)
	healthHandler.RegisterRoutes(r)

	projectStore := store.New(dep.Backend)
	projectService := service.NewProjectService(projectStore)
	projectHandler := projecthttp.New(projectService)

	sessions := auth.NewSessionManager()
	authHandler := authhttp.New(dep.Credentials, sessions)

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authHandler.Register(authGroup)

	adminGroup := api.Group("/admin/projects")
	adminGroup.Use(authmiddleware.SessionRequired(sessions))
	projectHandler.RegisterAdmin(adminGroup)

	projectHandler.RegisterPublic(api)

	return r
}
