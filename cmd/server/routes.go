package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"growcore.backend/internal/interfaces/http/handlers"
	"growcore.backend/internal/interfaces/http/middleware"
	"growcore.backend/pkg/jwt"
)

type routeDeps struct {
	jwtService           *jwt.JWTService
	authHandler          *handlers.AuthHandler
	userHandler          *handlers.UserHandler
	projectHandler       *handlers.ProjectHandler
	assessmentHandler    *handlers.AssessmentHandler
	certificationHandler *handlers.CertificationHandler
	notificationHandler  *handlers.NotificationHandler
	workSessionHandler   *handlers.WorkSessionHandler
	dashboardHandler     *handlers.DashboardHandler
}

func newRouter(d routeDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	registerAPIV1Routes(r, d)

	return r
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	authRequired := middleware.AuthMiddleware(d.jwtService)

	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/verify-email", d.authHandler.VerifyEmail)
		}

		// Profile routes (protected)
		users := v1.Group("/users")
		users.Use(authRequired)
		{
			users.GET("/profile", d.userHandler.GetProfile)
			users.PUT("/profile", d.userHandler.UpdateProfile)
		}

		// Project and application routes (protected)
		projects := v1.Group("/projects")
		projects.Use(authRequired)
		{
			projects.GET("", d.projectHandler.List)
			projects.GET("/my-applications", d.projectHandler.MyApplications)
			projects.GET("/:id", d.projectHandler.Get)
			projects.POST("/:id/apply", middleware.IdempotencyMiddleware(), d.projectHandler.Apply)
			projects.GET("/:id/can-apply", d.projectHandler.CanApply)
			projects.GET("/:id/stats", d.projectHandler.Stats)
		}

		applications := v1.Group("/applications")
		applications.Use(authRequired)
		{
			applications.PUT("/:id/status", d.projectHandler.UpdateApplicationStatus)
		}

		// Assessment routes (protected)
		assessments := v1.Group("/assessments")
		assessments.Use(authRequired)
		{
			assessments.GET("/project/:projectId", d.assessmentHandler.ListByProject)
			assessments.GET("/:id", d.assessmentHandler.Get)
			assessments.POST("/:id/submit", middleware.IdempotencyMiddleware(), d.assessmentHandler.Submit)
		}

		// Certification routes (protected)
		certifications := v1.Group("/certifications")
		certifications.Use(authRequired)
		{
			certifications.GET("", d.certificationHandler.List)
		}

		// Notification routes (protected)
		notifications := v1.Group("/notifications")
		notifications.Use(authRequired)
		{
			notifications.GET("", d.notificationHandler.List)
			notifications.GET("/unread-count", d.notificationHandler.UnreadCount)
			notifications.PUT("/:id/read", d.notificationHandler.MarkRead)
		}

		// Work session routes (protected)
		workSessions := v1.Group("/work-sessions")
		workSessions.Use(authRequired)
		{
			workSessions.POST("/start", d.workSessionHandler.Start)
			workSessions.PUT("/:id/end", d.workSessionHandler.End)
		}

		// Dashboard routes (protected)
		dashboard := v1.Group("/dashboard")
		dashboard.Use(authRequired)
		{
			dashboard.GET("/summary", d.dashboardHandler.Summary)
		}
	}
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "growcore-backend",
		})
	})
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Request-ID, Idempotency-Key")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}
