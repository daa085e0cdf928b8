package routes

import (
	"fmt"
	"net/http"

	"maritime-maintenance/internal/api/handlers"
	"maritime-maintenance/internal/api/middleware"
	"maritime-maintenance/internal/auth"
	"maritime-maintenance/internal/clock"
	"maritime-maintenance/internal/config"
	"maritime-maintenance/internal/database/models"
	"maritime-maintenance/internal/repository"
	"maritime-maintenance/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	validator := validator.New()
	clk := clock.New()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	shipRepo := repository.NewShipRepository(db)
	typeRepo := repository.NewComponentTypeRepository(db)
	componentRepo := repository.NewComponentRepository(db)
	updateRepo := repository.NewComponentUpdateRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)

	// Services
	userService := service.NewUserService(userRepo, validator)
	shipService := service.NewShipService(shipRepo, validator, clk)
	shipService.SetLocation(cfg.NotifierLocation())
	typeService := service.NewComponentTypeService(typeRepo, validator)
	componentService := service.NewComponentService(componentRepo, shipRepo, typeRepo, updateRepo, validator, clk)
	componentService.SetWindowDays(cfg.NotifierWindowDays)
	componentService.SetLocation(cfg.NotifierLocation())
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, typeRepo, validator)

	authService, err := auth.NewAuthService(&auth.AuthConfig{
		JWTSecret:    cfg.JWTSecret,
		AccessTTL:    cfg.JWTAccessTTL,
		RefreshTTL:   cfg.JWTRefreshTTL,
		CookieSecure: cfg.CookieSecure,
	})
	if err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(userService, authService)
	userHandler := handlers.NewUserHandler(userService)
	shipHandler := handlers.NewShipHandler(shipService)
	componentHandler := handlers.NewComponentHandler(componentService)
	typeHandler := handlers.NewComponentTypeHandler(typeService)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.Health)

		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/refresh", authMiddleware.RequireRefresh(), authHandler.Refresh)
	}

	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.POST("/logout", authHandler.Logout)
		protected.GET("/me", authHandler.Me)
		protected.PATCH("/users/:id", userHandler.UpdateUser)

		ships := protected.Group("/ships")
		{
			ships.GET("", shipHandler.ListShips)
			ships.POST("", shipHandler.CreateShip)
			ships.GET("/:id", shipHandler.GetShip)
			ships.DELETE("/:id", shipHandler.DeleteShip)
			ships.GET("/:id/components", componentHandler.ListShipComponents)
			ships.POST("/:id/components", componentHandler.CreateComponent)
		}

		components := protected.Group("/components")
		{
			components.GET("/:id", componentHandler.GetComponent)
			components.DELETE("/:id", componentHandler.DeleteComponent)
			components.GET("/:id/updates", componentHandler.ListUpdates)
			components.POST("/:id/update_status", componentHandler.UpdateStatus)
		}
		protected.GET("/expiring_components", componentHandler.ListExpiring)

		protected.GET("/component_types", typeHandler.ListTypes)
		protected.POST("/component_types", authMiddleware.RequireRole(models.RoleAdmin), typeHandler.CreateType)

		protected.GET("/subscriptions", subscriptionHandler.ListSubscriptions)
		protected.POST("/subscribe_component_type", subscriptionHandler.Subscribe)
		protected.POST("/unsubscribe_component_type", subscriptionHandler.Unsubscribe)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success":    false,
			"error":      "endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}
