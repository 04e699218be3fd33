package routes

import (
	"github.com/labstack/echo/v4"

	"RealtySiteAPI/handlers"
	"RealtySiteAPI/middleware"
)

func RegisterRoutes(e *echo.Echo, ac *handlers.AuthController, lc *handlers.ListingsController, fc *handlers.FormsController) {
	e.GET("/health", handlers.HealthCheck)

	api := e.Group("/api")

	api.POST("/auth/register", ac.Register)
	api.POST("/auth/login", ac.Login)
	api.POST("/auth/oauth", ac.OAuthLogin)

	authenticated := api.Group("/auth", middleware.JWTMiddleware())
	authenticated.GET("/me", ac.Me)
	authenticated.POST("/logout", ac.Logout)

	api.GET("/listings", lc.ListProperties)
	api.GET("/listings/neighborhoods", lc.Neighborhoods)
	api.GET("/listings/:id", lc.GetProperty)

	api.POST("/leads", fc.SubmitLead)
	api.POST("/inquiries", fc.SubmitPropertyInquiry)
	api.POST("/valuations", fc.SubmitHomeValuation)
}
