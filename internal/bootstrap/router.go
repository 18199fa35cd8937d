package bootstrap

import (
	"database/sql"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/alealfarizi/portfolio-backend/config"
	httpapi "github.com/alealfarizi/portfolio-backend/internal/api/http"
	"github.com/alealfarizi/portfolio-backend/internal/auth"
	"github.com/alealfarizi/portfolio-backend/internal/content"
	"github.com/alealfarizi/portfolio-backend/internal/gallery"
	"github.com/alealfarizi/portfolio-backend/internal/messages"
	"github.com/alealfarizi/portfolio-backend/internal/projects"
	"github.com/alealfarizi/portfolio-backend/internal/ratelimit"
	"github.com/alealfarizi/portfolio-backend/internal/uploads"
)

type RouterDeps struct {
	ServiceName string
	Cfg         *config.Config
	DB          *pgxpool.Pool
	SQL         *sql.DB
	Redis       *redis.Client
	Objects     uploads.ObjectStore
}

// BuildRouter wires every repository and handler into one gin engine. All
// clients come in through deps; nothing here reaches for globals.
func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.Cfg.App.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Cfg.App.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	tokens := auth.NewTokens(dep.Cfg.Auth.Secret)
	production := dep.Cfg.App.Environment == "production"

	contentRepo := content.NewRepo(dep.DB)
	contentCache := content.NewCache(dep.Redis)
	messageRepo := messages.NewRepo(dep.SQL)
	galleryRepo := gallery.NewRepo(dep.SQL)
	projectRepo := projects.NewRepo(dep.SQL)

	loginLimiter := ratelimit.NewPerIP(5, time.Minute)
	contactLimiter := ratelimit.NewPerIP(3, time.Minute)

	api := r.Group("/api/v1")
	admin := api.Group("", auth.RequireAdmin(tokens))

	auth.Register(api, tokens, dep.Cfg.Auth, loginLimiter, production)
	content.Register(api, admin, contentRepo, contentCache)
	messages.Register(api, admin, messageRepo, contactLimiter)
	gallery.Register(api, admin, galleryRepo, dep.Cfg.Content.MaxUploadBytes)
	projects.Register(api, admin, projectRepo, dep.Cfg.Content.MaxUploadBytes)
	uploads.Register(admin, dep.Objects, dep.Cfg.Content.MaxUploadBytes)

	return r
}
