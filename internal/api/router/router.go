package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"uatf-curricular/backend/config"
	"uatf-curricular/backend/internal/api/handler"
	"uatf-curricular/backend/internal/api/middleware"
	"uatf-curricular/backend/internal/model"
	"uatf-curricular/backend/pkg/jwt"
	"uatf-curricular/backend/pkg/redis"
)

// Setup builds the Gin engine. rdb may be nil; the blacklist and the login
// rate limit are then disabled.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders(&cfg.Server))
	r.Use(middleware.CORS(cfg.Server.CORS))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// ── health ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	var blacklist middleware.Blacklist
	if rdb != nil {
		blacklist = rdb
	}
	adminOnly := middleware.RoleAuth(model.RoleAdmin)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, cfg.Auth.LoginRateLimit, time.Minute, logger), h.Auth.Login)
			auth.POST("/register", h.Auth.Register)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, blacklist, logger))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)

			users := authorized.Group("/users", adminOnly)
			{
				users.GET("", h.User.ListUsers)
				users.POST("", h.User.CreateUser)
				users.PUT("/:id/role", h.User.AssignRole)
			}

			// catalog: reads for everyone, writes for admins
			campuses := authorized.Group("/campuses")
			{
				campuses.GET("", h.Catalog.ListCampuses)
				campuses.POST("", adminOnly, h.Catalog.CreateCampus)
				campuses.PUT("/:id", adminOnly, h.Catalog.UpdateCampus)
				campuses.DELETE("/:id", adminOnly, h.Catalog.DeleteCampus)
			}

			faculties := authorized.Group("/faculties")
			{
				faculties.GET("", h.Catalog.ListFaculties)
				faculties.POST("", adminOnly, h.Catalog.CreateFaculty)
				faculties.PUT("/:id", adminOnly, h.Catalog.UpdateFaculty)
				faculties.DELETE("/:id", adminOnly, h.Catalog.DeleteFaculty)
			}

			programs := authorized.Group("/programs")
			{
				programs.GET("", h.Catalog.ListPrograms)
				programs.GET("/:id", h.Catalog.GetProgram)
				programs.POST("", adminOnly, h.Catalog.CreateProgram)
				programs.PUT("/:id", adminOnly, h.Catalog.UpdateProgram)
				programs.DELETE("/:id", adminOnly, h.Catalog.DeleteProgram)
			}

			authorized.GET("/phases", h.Catalog.ListPhases)

			// editor roles are checked in the service layer
			redesigns := authorized.Group("/redesigns")
			{
				redesigns.GET("", h.Redesign.List)
				redesigns.GET("/:id", h.Redesign.Get)
				redesigns.POST("", adminOnly, h.Redesign.Create)
				redesigns.PUT("/:id", h.Redesign.Update)
				redesigns.DELETE("/:id", adminOnly, h.Redesign.Delete)
				redesigns.POST("/:id/progress/sync", adminOnly, h.Redesign.EnsureProgress)
			}

			progress := authorized.Group("/progress")
			{
				progress.GET("/:id", h.Progress.Get)
				progress.PUT("/:id", h.Progress.Update)
				progress.GET("/:id/evidences", h.Evidence.List)
				progress.POST("/:id/evidences", h.Evidence.Upload)
			}

			evidences := authorized.Group("/evidences")
			{
				evidences.GET("/:id/download", h.Evidence.Download)
				evidences.DELETE("/:id", h.Evidence.Delete)
			}

			reports := authorized.Group("/reports")
			{
				reports.GET("/summary", h.Report.Summary)
				reports.GET("/summary.pdf", h.Report.ExportPDF)
				reports.GET("/summary.xlsx", h.Report.ExportXLSX)
			}

			authorized.GET("/dashboard", h.Dashboard.Get)
		}
	}

	return r
}
