package api

import (
	"net/http"

	"fitai/workout-planner/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every handler into the gin engine.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	profileService service.ProfileService,
	planService service.PlanService,
	catalogService service.CatalogService,
) {
	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(profileService)
	planHandler := NewPlanHandler(planService)
	catalogHandler := NewCatalogHandler(catalogService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		// --- Identity ---
		protected.GET("/me", authHandler.Me)

		// --- Profile ---
		protected.GET("/profile", profileHandler.GetProfile)
		protected.PUT("/profile", profileHandler.UpdateProfile)

		// --- Plans ---
		planGroup := protected.Group("/plans")
		{
			planGroup.POST("/generate", planHandler.GeneratePlan)
			planGroup.GET("", planHandler.ListPlans)
			planGroup.GET("/:id", planHandler.GetPlan)
			planGroup.DELETE("/:id", planHandler.DeletePlan)
		}

		// --- Reference data ---
		protected.GET("/exercises", catalogHandler.ListExercises)
	}
}
