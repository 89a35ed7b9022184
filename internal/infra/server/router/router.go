// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/rukun-warga/backend/internal/integration/entrypoint/controller"
	"github.com/rukun-warga/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine           *gin.Engine
	healthController *controller.HealthController
	authController   *controller.AuthController
	memberController *controller.MemberController
	periodController *controller.PeriodController
	recapController  *controller.RecapController
	fundController   *controller.FundController
	loginRateLimiter *middleware.RateLimiter
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	memberController *controller.MemberController,
	periodController *controller.PeriodController,
	recapController *controller.RecapController,
	fundController *controller.FundController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController: healthController,
		authController:   authController,
		memberController: memberController,
		periodController: periodController,
		recapController:  recapController,
		fundController:   fundController,
		loginRateLimiter: loginRateLimiter,
		authMiddleware:   authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			}
		}

		// Member routes (require authentication)
		if r.memberController != nil && r.authMiddleware != nil {
			members := v1.Group("/members")
			members.Use(r.authMiddleware.Authenticate())
			{
				members.GET("", r.memberController.List)
				members.POST("", r.memberController.Create)
				members.PATCH("/:id", r.memberController.Update)
				members.DELETE("/:id", r.memberController.Delete)
			}
		}

		// Period and draw routes (require authentication)
		if r.periodController != nil && r.authMiddleware != nil {
			periods := v1.Group("/periods")
			periods.Use(r.authMiddleware.Authenticate())
			{
				periods.GET("", r.periodController.List)
				periods.POST("", r.periodController.Create)
				periods.GET("/:id", r.periodController.Get)
				periods.PATCH("/:id", r.periodController.Update)
				periods.DELETE("/:id", r.periodController.Delete)
				periods.GET("/:id/draws", r.periodController.ListDraws(false))
				periods.GET("/:id/draws/pending", r.periodController.ListDraws(true))
				periods.POST("/:id/draws", r.periodController.MarkDrawn)
			}
		}

		// Recap routes (require authentication)
		if r.recapController != nil && r.authMiddleware != nil {
			recaps := v1.Group("/recap")
			recaps.Use(r.authMiddleware.Authenticate())
			{
				recaps.GET("/:fund", r.recapController.Get)
				recaps.POST("/:fund", r.recapController.Save)
				recaps.GET("/:fund/export", r.recapController.Export)
			}
		}

		// Cash fund routes (require authentication)
		if r.fundController != nil && r.authMiddleware != nil {
			funds := v1.Group("/funds")
			funds.Use(r.authMiddleware.Authenticate())
			{
				funds.GET("/:fund/transactions", r.fundController.List)
				funds.POST("/:fund/transactions", r.fundController.Create)
				funds.PATCH("/:fund/transactions/:id", r.fundController.Update)
				funds.DELETE("/:fund/transactions/:id", r.fundController.Delete)
				funds.GET("/:fund/summary", r.fundController.Summary)
				funds.GET("/:fund/export", r.fundController.Export)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
