package routes

import (
	"github.com/diogofgomespinheiro/daily-diet-api/controllers"
	"github.com/diogofgomespinheiro/daily-diet-api/middlewares"
	"github.com/diogofgomespinheiro/daily-diet-api/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SetupRouter wires the public user route and the session-guarded meal
// routes. Every dependency is injected; there is no shared state beyond
// the *gorm.DB handle inside the services.
func SetupRouter(log zerolog.Logger, userSvc *services.UserService, mealSvc *services.MealService) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestLogger(log), gin.Recovery())

	userCtl := controllers.NewUserController(userSvc)
	mealCtl := controllers.NewMealController(mealSvc)

	// Public user routes
	users := r.Group("/users")
	{
		users.POST("", userCtl.Register)
	}

	// Protected meal routes
	meals := r.Group("/meals")
	meals.Use(middlewares.SessionMiddleware(userSvc))
	{
		meals.GET("", mealCtl.ListMeals)
		meals.POST("", mealCtl.CreateMeal)
		meals.GET("/metrics", mealCtl.GetMetrics)
		meals.GET("/:id", mealCtl.GetMeal)
		meals.PATCH("/:id", mealCtl.UpdateMeal)
		meals.DELETE("/:id", mealCtl.DeleteMeal)
	}

	return r
}
